// Package detector reports whether the process can run an interactive session.
package detector

import (
	"os"

	"golang.org/x/term"
)

// Interactive reports whether stdin and stdout are terminals and no CI
// environment variable is set.
func Interactive() bool {
	return isTerminal(os.Stdin, os.Stdout) && !isCI(os.Getenv("CI"))
}

func isTerminal(files ...*os.File) bool {
	for _, f := range files {
		if !term.IsTerminal(int(f.Fd())) {
			return false
		}
	}
	return true
}

func isCI(value string) bool {
	return value == "true" || value == "1"
}
