package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// stdin is shared so buffered input survives consecutive prompts.
var stdin = bufio.NewReader(os.Stdin)

// promptLine reads one trimmed line from stdin with a styled label.
func promptLine(label string) string {
	fmt.Print(labelStyle.Render(label + ": "))
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// promptDefault reads one line, falling back to the default when empty.
func promptDefault(label, def string) string {
	if def != "" {
		label = fmt.Sprintf("%s [%s]", label, def)
	}
	line := promptLine(label)
	if line == "" {
		return def
	}
	return line
}

// promptPassword reads a line without echoing it.
func promptPassword(label string) (string, error) {
	fmt.Print(labelStyle.Render(label + ": "))
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(question string) bool {
	answer := promptLine(question + " (y/N)")
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
