package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptForDirectory asks for the folder to compress. Paths pasted from file
// managers often arrive wrapped in quotes, so those are stripped.
func promptForDirectory(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the path to the folder containing videos: ")

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read directory path: %w", err)
	}
	return cleanDirectoryInput(line), nil
}

func cleanDirectoryInput(value string) string {
	trimmed := strings.TrimSpace(value)
	return strings.Trim(trimmed, `"'`)
}
