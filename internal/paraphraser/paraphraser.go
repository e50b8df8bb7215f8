// Package paraphraser sequences one paraphrase call: validation, prompt
// rendering, the completion request, and result packaging.
package paraphraser

import (
	"context"
	"strings"
	"time"

	"github.com/valpere/perekaz/internal"
	"github.com/valpere/perekaz/internal/prompt"
	"github.com/valpere/perekaz/internal/provider"
	"github.com/valpere/perekaz/internal/validator"
)

// similarityThreshold is the word-overlap ratio below which a paraphrase
// counts as sufficiently different from its source.
const similarityThreshold = 0.7

// Paraphraser runs the pipeline against one completion service. It holds
// no mutable state; the service and config are fixed at construction, so
// a single instance is safe to use from concurrent call sites.
type Paraphraser struct {
	svc provider.CompletionService
	cfg provider.Config
}

func New(svc provider.CompletionService, cfg provider.Config) *Paraphraser {
	return &Paraphraser{svc: svc, cfg: cfg}
}

// Paraphrase runs validate → build prompt → complete → package. Any
// stage failure aborts the call and propagates unchanged.
func (p *Paraphraser) Paraphrase(ctx context.Context, req internal.ParaphraseRequest) (*internal.ParaphraseResponse, error) {
	cleaned, err := validator.Validate(req.Description)
	if err != nil {
		return nil, err
	}

	msgs := prompt.Build(cleaned, req.TargetLength)

	completion, err := p.svc.Complete(ctx, p.cfg, provider.CompletionRequest{
		System: msgs.System,
		User:   msgs.User,
	})
	if err != nil {
		return nil, err
	}

	return &internal.ParaphraseResponse{
		Original:    cleaned,
		Paraphrased: strings.TrimSpace(completion.Text),
		GeneratedAt: time.Now(),
		TokensUsed:  completion.TokensUsed,
	}, nil
}

// IsSignificantlyDifferent reports whether the paraphrase meaningfully
// differs from the original. Word-level overlap (shared words divided by
// the larger word count) below similarityThreshold counts as different;
// case-insensitively identical texts never do. Advisory only — callers
// may warn, the pipeline does not act on it.
func IsSignificantlyDifferent(original, paraphrased string) bool {
	a := strings.TrimSpace(original)
	b := strings.TrimSpace(paraphrased)

	if strings.EqualFold(a, b) {
		return false
	}

	origWords := strings.Fields(strings.ToLower(a))
	paraWords := strings.Fields(strings.ToLower(b))
	if len(origWords) == 0 || len(paraWords) == 0 {
		return true
	}

	seen := make(map[string]struct{}, len(origWords))
	for _, w := range origWords {
		seen[w] = struct{}{}
	}

	shared := 0
	for _, w := range paraWords {
		if _, ok := seen[w]; ok {
			shared++
		}
	}

	larger := len(origWords)
	if len(paraWords) > larger {
		larger = len(paraWords)
	}

	return float64(shared)/float64(larger) < similarityThreshold
}
