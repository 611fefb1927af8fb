package cmd

import (
	"io"
	"os"
	"strings"
)

// checkStdinPipe returns what was piped to the process, if anything.
// Regular files and terminals on stdin are ignored.
func checkStdinPipe() (string, bool) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", false
	}
	if stat.Mode()&os.ModeNamedPipe == 0 {
		return "", false
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// inputText picks the message text from the arguments or, when there are
// none, from piped stdin.
func inputText(args []string) (string, bool) {
	if len(args) > 0 {
		return strings.Join(args, " "), true
	}
	if data, ok := checkStdinPipe(); ok {
		return strings.TrimSpace(data), true
	}
	return "", false
}
