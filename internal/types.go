package internal

import "time"

// TargetLength is an optional hint steering output length relative to
// the input.
type TargetLength string

const (
	LengthShort  TargetLength = "short"
	LengthMedium TargetLength = "medium"
	LengthLong   TargetLength = "long"
)

// ParseTargetLength validates a user-supplied length hint. The empty
// string is allowed and means "about the same length".
func ParseTargetLength(s string) (TargetLength, bool) {
	switch TargetLength(s) {
	case "", LengthShort, LengthMedium, LengthLong:
		return TargetLength(s), true
	}
	return "", false
}

type ParaphraseRequest struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	TargetLength TargetLength `json:"target_length,omitempty"`
	Timestamp    time.Time    `json:"timestamp"`
}

// ParaphraseResponse is the result of one paraphrase call. It is built
// once by the orchestrator and never mutated afterwards.
type ParaphraseResponse struct {
	Original    string    `json:"original"`
	Paraphrased string    `json:"paraphrased"`
	GeneratedAt time.Time `json:"generated_at"`
	TokensUsed  int       `json:"tokens_used,omitempty"`
}
