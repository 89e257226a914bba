package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTranslator struct {
	text, target string
	err          error
}

func (r *recordingTranslator) Translate(_ context.Context, text, target string) (string, error) {
	r.text, r.target = text, target
	return "translated", r.err
}

func TestResolveLanguage(t *testing.T) {
	tests := map[string]string{
		"Hindi":    "hi",
		"hindi":    "hi",
		"KANNADA":  "kn",
		"Telugu":   "te",
		"Tamil":    "ta",
		"Marathi":  "mr",
		"Gujarati": "gu",
		"Bengali":  "bn",
		"English":  "en",
		"fr":       "fr",
		"":         "en",
		" hi ":     "hi",
	}
	for in, want := range tests {
		assert.Equal(t, want, ResolveLanguage(in), in)
	}
}

func TestTranslationService(t *testing.T) {
	tr := &recordingTranslator{}
	s := NewTranslationService(tr, nil, nil)

	out, target, err := s.Translate(context.Background(), "hello", "Hindi")
	require.NoError(t, err)
	assert.Equal(t, "translated", out)
	assert.Equal(t, "hi", target)
	assert.Equal(t, "hi", tr.target)
	assert.Equal(t, "hello", tr.text)

	_, _, err = s.Translate(context.Background(), " ", "Hindi")
	assert.ErrorIs(t, err, ErrMissingInput)

	tr.err = errors.New("unsupported language: xx")
	_, _, err = s.Translate(context.Background(), "hello", "xx")
	assert.ErrorIs(t, err, ErrTranslationFailed)
	assert.Contains(t, err.Error(), "unsupported language: xx")

	_, _, err = NewTranslationService(nil, nil, nil).Translate(context.Background(), "hello", "hi")
	assert.ErrorIs(t, err, ErrTranslationFailed)
}

func TestGeminiTranslator(t *testing.T) {
	gen := &stubGenerator{replies: []string{" नमस्ते \n"}}
	out, err := NewGeminiTranslator(gen).Translate(context.Background(), "hello", "hi")
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते", out)
	assert.Contains(t, gen.prompts[0], `"hi"`)

	_, err = NewGeminiTranslator(&stubGenerator{}).Translate(context.Background(), "hello", "hi")
	assert.Error(t, err)
}

func TestNewGoogleTranslator_RequiresKey(t *testing.T) {
	_, err := NewGoogleTranslator(context.Background(), "")
	assert.Error(t, err)
}
