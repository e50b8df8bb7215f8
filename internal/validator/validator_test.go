package validator

import (
	"strings"
	"testing"

	"github.com/valpere/perekaz/internal/apperr"
)

func TestValidate_PassThrough(t *testing.T) {
	input := "A sturdy leather wallet with six card slots."

	got, err := Validate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("expected content unchanged, got %q", got)
	}
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	got, err := Validate("   padded description here   \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "padded description here" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}

func TestValidate_TooShort(t *testing.T) {
	_, err := Validate("tiny")

	if err == nil {
		t.Fatal("expected error for short description")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", apperr.KindOf(err))
	}
}

func TestValidate_TooShortAfterTrimming(t *testing.T) {
	// 12 raw characters but only 4 after trimming.
	_, err := Validate("    tiny    ")

	if err == nil {
		t.Fatal("expected error for short trimmed description")
	}
}

func TestValidate_TooLong(t *testing.T) {
	_, err := Validate(strings.Repeat("a", MaxDescriptionLength+1))

	if err == nil {
		t.Fatal("expected error for long description")
	}
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", apperr.KindOf(err))
	}
}

func TestValidate_Bounds(t *testing.T) {
	if _, err := Validate(strings.Repeat("a", MinDescriptionLength)); err != nil {
		t.Errorf("expected %d characters to pass: %v", MinDescriptionLength, err)
	}
	if _, err := Validate(strings.Repeat("a", MaxDescriptionLength)); err != nil {
		t.Errorf("expected %d characters to pass: %v", MaxDescriptionLength, err)
	}
}

func TestValidate_StripsAngleBrackets(t *testing.T) {
	got, err := Validate("A <b>bold</b> claim about this product")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.ContainsAny(got, "<>") {
		t.Errorf("expected angle brackets stripped, got %q", got)
	}
}

func TestValidate_UnescapesNewlines(t *testing.T) {
	got, err := Validate(`First line of the text.\nSecond line.`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("expected a real newline, got %q", got)
	}
	if strings.Contains(got, `\n`) {
		t.Errorf("expected literal \\n removed, got %q", got)
	}
}

func TestValidate_SanitizesBeforeLengthCheck(t *testing.T) {
	// 12 characters raw, 8 once the brackets are gone: must fail.
	_, err := Validate("<<12345678>>")
	if err == nil {
		t.Error("expected error once stripped text falls under the minimum")
	}
}

func TestValidate_CountsRunes(t *testing.T) {
	// 10 runes, more than 10 bytes.
	if _, err := Validate("опис товару"); err != nil {
		t.Errorf("expected multi-byte text to be counted in runes: %v", err)
	}
}
