package cli

import (
	"fmt"
	"io"
	"os"
)

// readInputs loads the two texts named on the command line. "-" means
// stdin; only one side may use it.
func readInputs(left, right string) (string, string, error) {
	if left == "-" && right == "-" {
		return "", "", fmt.Errorf("only one input may be read from stdin")
	}
	a, err := readText(left)
	if err != nil {
		return "", "", err
	}
	b, err := readText(right)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

func readText(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
