// Package clipboard builds the shareable estimate summary and copies it to
// the system clipboard, falling back to an OSC 52 terminal sequence.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"go.uber.org/zap"

	"github.com/theirongolddev/estimasi/internal/cli"
)

// Method reports which mechanism delivered the text.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// SuccessMessage is shown after a successful copy.
const SuccessMessage = "Ringkasan disalin ke clipboard!"

// Summary renders the plain-text estimate summary.
func Summary(durationMonths, grandTotal float64) string {
	return fmt.Sprintf("Estimasi Budget Aplikasi\nDurasi: %s Bulan\nTotal: %s",
		cli.FormatMonths(durationMonths),
		cli.FormatRupiah(grandTotal),
	)
}

// Copier writes text to the clipboard. The zero value is not usable; call
// NewCopier.
type Copier struct {
	system      func(string) error
	unsupported bool
	term        io.Writer
	getenv      func(string) string
}

// NewCopier returns a Copier using the OS clipboard, with OSC 52 written to
// stderr as the fallback.
func NewCopier() *Copier {
	return &Copier{
		system:      clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
		term:        os.Stderr,
		getenv:      os.Getenv,
	}
}

// Copy writes text using the system clipboard when available and the
// terminal escape sequence otherwise.
func (c *Copier) Copy(text string) (Method, error) {
	log := zap.S().Named("clipboard")

	var sysErr error
	if c.unsupported {
		sysErr = errors.New("no clipboard utility available")
	} else {
		sysErr = c.system(text)
		if sysErr == nil {
			return MethodSystem, nil
		}
	}
	log.Debugw("system clipboard unavailable, falling back to osc52", "error", sysErr)

	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case c.getenv("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.term); err != nil {
		return "", fmt.Errorf("copying to clipboard: %w", errors.Join(sysErr, err))
	}
	return MethodOSC52, nil
}
