// Package validator checks that a product description is usable as
// paraphrase input and cleans it up before prompting.
package validator

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/valpere/perekaz/internal/apperr"
)

// Length bounds for a description after trimming, in runes.
const (
	MinDescriptionLength = 10
	MaxDescriptionLength = 5000
)

// Validate returns the cleaned description or a validation error.
//
// Cleanup happens before the length check: the text is NFC-normalized,
// angle brackets are stripped, literal \n sequences become real
// newlines, and surrounding whitespace is trimmed. Content is otherwise
// returned unchanged.
func Validate(text string) (string, error) {
	cleaned := sanitize(text)

	n := len([]rune(cleaned))
	if n < MinDescriptionLength {
		return "", apperr.Validation(fmt.Sprintf(
			"description too short: %d characters after trimming, minimum is %d", n, MinDescriptionLength))
	}
	if n > MaxDescriptionLength {
		return "", apperr.Validation(fmt.Sprintf(
			"description too long: %d characters after trimming, maximum is %d", n, MaxDescriptionLength))
	}

	return cleaned, nil
}

// sanitize strips characters that tend to confuse the model or leak
// markup into the prompt.
func sanitize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "<", "")
	text = strings.ReplaceAll(text, ">", "")
	// Descriptions pasted from shell pipelines often carry literal \n.
	text = strings.ReplaceAll(text, `\n`, "\n")
	return strings.TrimSpace(text)
}
