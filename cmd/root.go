package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/estimasi/internal/config"
	"github.com/theirongolddev/estimasi/internal/estimator"
	"github.com/theirongolddev/estimasi/internal/logging"
	"github.com/theirongolddev/estimasi/internal/model"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagConfig   string
	flagMode     string
	flagDuration float64
	flagRisk     float64
	flagTax      float64
	flagNoTax    bool
	flagLogLevel string
	flagLogFile  string
)

// cfg is the configuration loaded once per invocation in PersistentPreRunE.
var cfg = config.DefaultConfig()

var restoreLogger = func() {}

var rootCmd = &cobra.Command{
	Use:   "estimasi",
	Short: "Application development budget estimator",
	Long: "Estimate the cost of building an application: team salaries, operational\n" +
		"costs, risk buffer and PPN. Runs the interactive form when no command is given.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) { restoreLogger() }

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagConfig, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/estimasi/config.toml)")
	pf.StringVarP(&flagMode, "mode", "m", "", "Duration mode: manual or features")
	pf.Float64VarP(&flagDuration, "duration", "d", 0, "Project duration in months (manual mode)")
	pf.Float64VarP(&flagRisk, "risk", "r", 0, "Risk buffer percent")
	pf.Float64Var(&flagTax, "tax", 0, "PPN percent")
	pf.BoolVar(&flagNoTax, "no-tax", false, "Exclude PPN from the total")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

// setup loads the configuration and installs the logger. The interactive
// form only logs to a file; every other command logs to stderr.
func setup(cmd *cobra.Command, _ []string) error {
	if flagConfig != "" {
		config.SetPath(flagConfig)
	}

	loaded, cfgErr := config.LoadWithEnv()
	cfg = loaded

	level := cfg.General.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	output := flagLogFile
	if output == "" && !isInteractive(cmd) {
		output = logging.Stderr
	}

	restore, err := logging.Install(level, output)
	if err != nil {
		return err
	}
	restoreLogger = restore

	if cfgErr != nil {
		zap.S().Named("config").Warnw("using default configuration", "path", config.Path(), "error", cfgErr)
	}
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == tuiCmd
}

// loadEstimator is the shared seeding path used by all commands: config
// file, then environment, then explicitly set flags.
func loadEstimator(cmd *cobra.Command) (*estimator.Estimator, error) {
	flags := cmd.Flags()

	if flags.Changed("mode") {
		if _, ok := model.ParseMode(flagMode); !ok {
			return nil, fmt.Errorf("invalid --mode %q: want manual or features", flagMode)
		}
		cfg.Project.Mode = flagMode
	}
	if flags.Changed("duration") {
		cfg.Project.DurationMonths = flagDuration
	}
	if flags.Changed("risk") {
		cfg.Project.RiskBufferPercent = flagRisk
	}
	if flags.Changed("tax") {
		cfg.Project.TaxPercent = flagTax
	}
	if flags.Changed("no-tax") {
		cfg.Project.IncludeTax = !flagNoTax
	}

	est := cfg.NewEstimator()
	p := est.Params()
	zap.S().Named("estimator").Debugw("seeded",
		"mode", p.Mode,
		"duration", p.DurationMonths,
		"team", len(est.Team()),
		"operational", len(est.Operational()),
	)
	return est, nil
}
