package display

import (
	"fmt"
	"os"

	"github.com/namesafe/namesafe/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` _   _                          ____           __
| \ | |  __ _  _ __ ___    ___ / ___|   __ _  / _|  ___
|  \| | / _`+"`"+` || '_ `+"`"+` _ \  / _ \\___ \  / _`+"`"+` || |_  / _ \
| |\  || (_| || | | | | ||  __/ ___) || (_| ||  _||  __/
|_| \_| \__,_||_| |_| |_| \___||____/  \__,_||_|   \___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
