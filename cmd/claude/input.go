package main

import (
	"io"
	"os"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readInput returns any text piped to stdin, followed by the arguments
func readInput(args []string) (string, error) {
	var parts []string

	// If we are piping content in via stdin
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		if data, err := io.ReadAll(os.Stdin); err != nil {
			return "", err
		} else if text := strings.TrimSpace(string(data)); text != "" {
			parts = append(parts, text)
		}
	}

	// Append any further text
	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n\n"), nil
}
