// Package prompt renders the fixed paraphrasing instruction and the
// user's description into the two-message request sent to the model.
package prompt

import (
	"strings"

	"github.com/valpere/perekaz/internal"
)

// Messages is a rendered two-message chat request.
type Messages struct {
	System string
	User   string
}

const systemInstruction = `You are a product copywriter. Rewrite the product description the user provides in simple, clear language.
Preserve the meaning exactly. Do not introduce facts that are not present in the source text.
Only respond with the rewritten description, nothing else. No explanations, no quotes, just the text.`

// lengthClauses are the three fixed length-hint clauses. The default
// (no hint) behaves like "medium".
var lengthClauses = map[internal.TargetLength]string{
	internal.LengthShort:  "Make the result noticeably shorter than the original.",
	internal.LengthMedium: "Keep the result about the same length as the original.",
	internal.LengthLong:   "Make the result somewhat longer than the original, without padding.",
}

// Build renders the system and user messages for a validated
// description. Pure: identical inputs always produce identical output.
func Build(description string, length internal.TargetLength) Messages {
	clause, ok := lengthClauses[length]
	if !ok {
		clause = lengthClauses[internal.LengthMedium]
	}

	var sb strings.Builder
	sb.WriteString(systemInstruction)
	sb.WriteString("\n")
	sb.WriteString(clause)

	return Messages{
		System: sb.String(),
		User:   "Rewrite this product description:\n" + description,
	}
}
