package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnswerer struct {
	answer string
	err    error
	calls  int
}

func (s *stubAnswerer) Answer(context.Context, string, string) (string, error) {
	s.calls++
	return s.answer, s.err
}

const chatDocument = "The tenant failed to pay rent. The landlord filed for eviction. A hearing is set. Costs were awarded."

func TestChatService_ShortCircuits(t *testing.T) {
	qa := &stubAnswerer{answer: "from model"}
	s := NewChatService(NewAnalysisService(), qa, nil, nil)
	ctx := context.Background()

	tests := []struct {
		question string
		want     string
	}{
		{"Give me a SUMMARY", "The tenant failed to pay rent. The landlord filed for eviction. A hearing is set."},
		{"what kind of case is this", "Case nature: Property Case"},
		{"summary of the case", "The tenant failed to pay rent. The landlord filed for eviction. A hearing is set."},
		{"How much risk?", "Estimated risk score: 30"},
		{"Is there a punishment?", punishmentHint},
		{"list keywords", "Keywords in document: the, tenant, failed, to, pay, rent, landlord, filed, for, eviction, a, hearing, is, set, costs, were, awarded..."},
	}
	for _, tt := range tests {
		answer, err := s.Answer(ctx, tt.question, chatDocument)
		require.NoError(t, err, tt.question)
		assert.Equal(t, tt.want, answer, tt.question)
	}
	assert.Zero(t, qa.calls)

	answer, err := s.Answer(ctx, "Who is the judge?", chatDocument)
	require.NoError(t, err)
	assert.Equal(t, "from model", answer)
	assert.Equal(t, 1, qa.calls)
}

func TestChatService_Errors(t *testing.T) {
	ctx := context.Background()
	s := NewChatService(NewAnalysisService(), &stubAnswerer{err: errors.New("timeout")}, nil, nil)

	_, err := s.Answer(ctx, "", chatDocument)
	assert.ErrorIs(t, err, ErrMissingInput)
	_, err = s.Answer(ctx, "what?", "  ")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = s.Answer(ctx, "Who signed?", chatDocument)
	assert.ErrorIs(t, err, ErrQAFailed)
	assert.Contains(t, err.Error(), "timeout")
}

func TestChatService_DefaultAnswerer(t *testing.T) {
	s := NewChatService(NewAnalysisService(), nil, nil, nil)
	answer, err := s.Answer(context.Background(), "Who signed?", chatDocument)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I don't have an answer for that.", answer)
}

func TestDistinctWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, distinctWords("A b a C b", 10))
	assert.Equal(t, []string{"a", "b"}, distinctWords("a b c", 2))
	assert.Empty(t, distinctWords("...", 5))
}
