// Package ui provides the interactive console prompts and colored
// status output.
package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/valpere/perekaz/internal"
)

// PromptDescription reads one product description from the user. An
// empty answer means the user wants to leave the loop.
func PromptDescription() (string, error) {
	var text string
	prompt := &survey.Multiline{
		Message: "Product description (empty to quit):",
	}
	if err := survey.AskOne(prompt, &text); err != nil {
		return "", err
	}
	return text, nil
}

// lengthOptions are the menu entries for the length hint; each maps to
// a distinct prompt clause.
var lengthOptions = []string{"short", "medium (same length)", "long"}

// PromptTargetLength asks for the length hint once per session.
func PromptTargetLength() (internal.TargetLength, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Target length:",
		Options: lengthOptions,
		Default: "medium (same length)",
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return targetLengthFromChoice(choice), nil
}

func targetLengthFromChoice(choice string) internal.TargetLength {
	switch choice {
	case "short":
		return internal.LengthShort
	case "long":
		return internal.LengthLong
	default:
		return internal.LengthMedium
	}
}

// ShowParaphrase prints the result with a highlighted header.
func ShowParaphrase(text string) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("\nParaphrase:")
	fmt.Printf("%s\n\n", text)
}

// ShowSuccess displays a success message.
func ShowSuccess(message string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("✓ %s\n", message)
}

// ShowError displays an error message.
func ShowError(message string) {
	red := color.New(color.FgRed, color.Bold)
	red.Printf("✗ %s\n", message)
}

// ShowWarning displays an advisory warning.
func ShowWarning(message string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("! %s\n", message)
}
