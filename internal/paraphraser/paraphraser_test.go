package paraphraser

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/valpere/perekaz/internal"
	"github.com/valpere/perekaz/internal/apperr"
	"github.com/valpere/perekaz/internal/provider"
)

const walletDescription = "This premium leather wallet features multiple card slots, a bill compartment, and RFID protection for secure storage."

type mockService struct {
	completeFunc func(ctx context.Context, cfg provider.Config, req provider.CompletionRequest) (*provider.Completion, error)
	callCount    atomic.Int32
}

func (m *mockService) Name() string { return "mock" }

func (m *mockService) Complete(ctx context.Context, cfg provider.Config, req provider.CompletionRequest) (*provider.Completion, error) {
	m.callCount.Add(1)
	if m.completeFunc != nil {
		return m.completeFunc(ctx, cfg, req)
	}
	return &provider.Completion{Text: "mock paraphrase", TokensUsed: 1}, nil
}

func (m *mockService) IsAvailable(ctx context.Context) error { return nil }

func TestParaphrase_EndToEnd(t *testing.T) {
	svc := &mockService{
		completeFunc: func(ctx context.Context, cfg provider.Config, req provider.CompletionRequest) (*provider.Completion, error) {
			if !strings.Contains(req.User, walletDescription) {
				t.Errorf("expected description in user message, got %q", req.User)
			}
			return &provider.Completion{
				Text:       "A leather wallet with card slots, a bill pocket, and RFID protection.",
				TokensUsed: 89,
			}, nil
		},
	}

	p := New(svc, provider.Config{APIKey: "test-key"})

	before := time.Now()
	resp, err := p.Paraphrase(context.Background(), internal.ParaphraseRequest{Description: walletDescription})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Original != walletDescription {
		t.Errorf("expected original preserved, got %q", resp.Original)
	}
	if resp.Paraphrased != "A leather wallet with card slots, a bill pocket, and RFID protection." {
		t.Errorf("unexpected paraphrase %q", resp.Paraphrased)
	}
	if resp.TokensUsed != 89 {
		t.Errorf("expected 89 tokens used, got %d", resp.TokensUsed)
	}
	if resp.GeneratedAt.Before(before) {
		t.Error("expected GeneratedAt set during the call")
	}
}

func TestParaphrase_InvalidInputNeverCallsService(t *testing.T) {
	svc := &mockService{}
	p := New(svc, provider.Config{})

	_, err := p.Paraphrase(context.Background(), internal.ParaphraseRequest{Description: "tiny"})

	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := svc.callCount.Load(); n != 0 {
		t.Errorf("expected the service never to be called, got %d calls", n)
	}
}

func TestParaphrase_TooLongNeverCallsService(t *testing.T) {
	svc := &mockService{}
	p := New(svc, provider.Config{})

	_, err := p.Paraphrase(context.Background(), internal.ParaphraseRequest{
		Description: strings.Repeat("a", 5001),
	})

	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := svc.callCount.Load(); n != 0 {
		t.Errorf("expected the service never to be called, got %d calls", n)
	}
}

func TestParaphrase_ServiceErrorPropagatesUnchanged(t *testing.T) {
	want := apperr.New(apperr.KindRateLimit, "rate limit exceeded")
	svc := &mockService{
		completeFunc: func(ctx context.Context, cfg provider.Config, req provider.CompletionRequest) (*provider.Completion, error) {
			return nil, want
		},
	}
	p := New(svc, provider.Config{})

	_, err := p.Paraphrase(context.Background(), internal.ParaphraseRequest{Description: walletDescription})

	if err != want {
		t.Errorf("expected the service error unchanged, got %v", err)
	}
}

func TestParaphrase_LengthHintReachesPrompt(t *testing.T) {
	var system string
	svc := &mockService{
		completeFunc: func(ctx context.Context, cfg provider.Config, req provider.CompletionRequest) (*provider.Completion, error) {
			system = req.System
			return &provider.Completion{Text: "short version"}, nil
		},
	}
	p := New(svc, provider.Config{})

	_, err := p.Paraphrase(context.Background(), internal.ParaphraseRequest{
		Description:  walletDescription,
		TargetLength: internal.LengthShort,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(system, "shorter") {
		t.Errorf("expected length clause in system message, got %q", system)
	}
}

func TestParaphrase_TrimsResult(t *testing.T) {
	svc := &mockService{
		completeFunc: func(ctx context.Context, cfg provider.Config, req provider.CompletionRequest) (*provider.Completion, error) {
			return &provider.Completion{Text: "  A trimmed result.  "}, nil
		},
	}
	p := New(svc, provider.Config{})

	resp, err := p.Paraphrase(context.Background(), internal.ParaphraseRequest{Description: walletDescription})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Paraphrased != "A trimmed result." {
		t.Errorf("expected trimmed paraphrase, got %q", resp.Paraphrased)
	}
}

func TestIsSignificantlyDifferent_Identical(t *testing.T) {
	if IsSignificantlyDifferent("A red shirt", "A red shirt") {
		t.Error("expected identical texts to count as not different")
	}
}

func TestIsSignificantlyDifferent_CaseInsensitive(t *testing.T) {
	if IsSignificantlyDifferent("A Red Shirt", "a red shirt") {
		t.Error("expected case-insensitively identical texts to count as not different")
	}
}

func TestIsSignificantlyDifferent_Disjoint(t *testing.T) {
	if !IsSignificantlyDifferent("A red large cotton shirt", "Blue denim pants") {
		t.Error("expected disjoint texts to count as different")
	}
}

func TestIsSignificantlyDifferent_HighOverlap(t *testing.T) {
	// Four of five words shared: overlap 0.8 >= 0.7.
	if IsSignificantlyDifferent("A red large cotton shirt", "A red small cotton shirt") {
		t.Error("expected heavy overlap to count as not different")
	}
}

func TestIsSignificantlyDifferent_Rewrite(t *testing.T) {
	original := "This premium leather wallet features multiple card slots."
	rewritten := "A simple wallet made of leather that holds many cards."

	if !IsSignificantlyDifferent(original, rewritten) {
		t.Error("expected a genuine rewrite to count as different")
	}
}
