package main

import "github.com/theirongolddev/estimasi/cmd"

func main() {
	cmd.Execute()
}
