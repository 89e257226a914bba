package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"legaldoc-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	prompts []string
	replies []string
	err     error
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	reply := s.replies[0]
	if len(s.replies) > 1 {
		s.replies = s.replies[1:]
	}
	return reply, nil
}

func TestChunkText(t *testing.T) {
	assert.Nil(t, chunkText("", 10))
	assert.Equal(t, []string{"abc"}, chunkText("abc", 10))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, chunkText("abcdefghij", 4))

	chunks := chunkText("धारा३०२धारा", 3)
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c))
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 3)
	}
	assert.Equal(t, "धारा३०२धारा", strings.Join(chunks, ""))
}

func TestGeminiSummarizer(t *testing.T) {
	gen := &stubGenerator{replies: []string{"first part", "second part"}}
	s := NewGeminiSummarizer(gen, 5)

	out, err := s.Summarize(context.Background(), "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "first part second part", out)
	require.Len(t, gen.prompts, 2)
	assert.Contains(t, gen.prompts[0], "01234")
	assert.Contains(t, gen.prompts[1], "56789")

	_, err = NewGeminiSummarizer(&stubGenerator{err: errors.New("quota")}, 0).Summarize(context.Background(), "text")
	assert.Error(t, err)
}

func TestParseRankedLabels(t *testing.T) {
	candidates := models.CandidateCaseNatures()

	ranked, err := parseRankedLabels("```json\n{\"labels\": [\"civil case\", \"Unknown\", \"Contract Case\", \"Civil Case\"]}\n```", candidates)
	require.NoError(t, err)
	assert.Equal(t, []models.CaseNature{models.CaseCivil, models.CaseContract}, ranked)

	_, err = parseRankedLabels(`{"labels": ["Tax Case"]}`, candidates)
	assert.Error(t, err)

	_, err = parseRankedLabels("not json", candidates)
	assert.Error(t, err)
}

func TestGeminiLabelClassifier(t *testing.T) {
	gen := &stubGenerator{replies: []string{`{"labels":["Family Case","Civil Case"]}`}}
	c := NewGeminiLabelClassifier(gen)

	ranked, err := c.RankLabels(context.Background(), "some text", models.CandidateCaseNatures())
	require.NoError(t, err)
	assert.Equal(t, models.CaseFamily, ranked[0])
	assert.Contains(t, gen.prompts[0], "Environmental Case")
}

func TestGeminiQuestionAnswerer(t *testing.T) {
	gen := &stubGenerator{replies: []string{"Rs. 5 lakh"}}
	a := NewGeminiQuestionAnswerer(gen)

	answer, err := a.Answer(context.Background(), "What is the amount?", "The amount is Rs. 5 lakh.")
	require.NoError(t, err)
	assert.Equal(t, "Rs. 5 lakh", answer)
	assert.Contains(t, gen.prompts[0], "QUESTION: What is the amount?")

	answer, err = NewGeminiQuestionAnswerer(&stubGenerator{}).Answer(context.Background(), "q", "t")
	require.NoError(t, err)
	assert.Equal(t, notFoundAnswer, answer)
}

func TestNewGeminiNLP(t *testing.T) {
	gen := &stubGenerator{replies: []string{`{"labels":["Property Case"]}`}}
	nlp := NewGeminiNLP(gen, gen, 0)

	c := NewCaseClassifier(ClassifierWithFallback(nlp.Classifier))
	assert.Equal(t, models.CaseProperty, c.Classify(context.Background(), "no keywords here"))
}
