// Package postprocess removes common LLM artifacts from generated
// paraphrases before they are returned to the caller.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean strips LLM artifacts from text and returns the trimmed result:
// reasoning blocks, instruction echoes ("Here is the rewritten
// description:"), and whole-text quote wrapping.
func Clean(text string) string {
	text = removeReasoningBlocks(text)
	text = removeInstructionEchoes(text)
	text = removeQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// reasoningBlockRe matches complete <thinking>…</thinking> style blocks.
// Each tag variant is listed explicitly because Go's RE2 engine does not
// support backreferences.
var reasoningBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// truncatedReasoningRe matches an opened reasoning tag whose closing tag
// never arrived (the model was cut off mid-thought).
var truncatedReasoningRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func removeReasoningBlocks(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	text = truncatedReasoningRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// echoPatterns match introductory phrases that models sometimes prepend
// even when instructed not to. Anchored to the start of the string and
// requiring a colon to avoid eating legitimate content.
var echoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the| a)? (?:rewritten |simplified |paraphrased |new )?(?:description|paraphrase|version|text)\s*:`),
	regexp.MustCompile(`(?i)^(?:the )?(?:rewritten |simplified |paraphrased )?(?:description|paraphrase|version)\s*:`),
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.]? here(?:'s| is)(?: the| a)? (?:rewritten |simplified |paraphrased )?(?:description|paraphrase|version|text)\s*:`),
}

func removeInstructionEchoes(text string) string {
	for _, re := range echoPatterns {
		if loc := re.FindStringIndex(text); loc != nil && loc[0] == 0 {
			text = strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

// removeQuoteWrapping strips a matching pair of outer quotes when the
// entire text is wrapped in them.
func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	first, last := runes[0], runes[n-1]
	if (first == '"' && last == '"') ||
		(first == '\'' && last == '\'') ||
		(first == '«' && last == '»') ||
		(first == '“' && last == '”') ||
		(first == '‘' && last == '’') {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}
