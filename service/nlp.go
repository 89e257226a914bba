package service

import (
	"context"

	"legaldoc-backend/models"
)

// Summarizer condenses document text
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// QuestionAnswerer answers a free-text question against document text
type QuestionAnswerer interface {
	Answer(ctx context.Context, question, text string) (string, error)
}

// NLP bundles the interchangeable language collaborators
type NLP struct {
	Summarizer Summarizer
	Classifier LabelClassifier
	QA         QuestionAnswerer
}

// Backend names accepted by configuration
const (
	BackendRule   = "rule"
	BackendGemini = "gemini"
)

// NewRuleBasedNLP returns collaborators that need no external model
func NewRuleBasedNLP() NLP {
	return NLP{
		Summarizer: NewSentenceSummarizer(defaultSummarySentences),
		Classifier: CivilFallbackClassifier{},
		QA:         CannedAnswerer{},
	}
}

// NewGeminiNLP returns collaborators backed by Gemini generators.
// jsonGen is used where a structured response is required.
func NewGeminiNLP(textGen, jsonGen TextGenerator, chunkSize int) NLP {
	return NLP{
		Summarizer: NewGeminiSummarizer(textGen, chunkSize),
		Classifier: NewGeminiLabelClassifier(jsonGen),
		QA:         NewGeminiQuestionAnswerer(textGen),
	}
}

// CivilFallbackClassifier always ranks the neutral civil label first
type CivilFallbackClassifier struct{}

// RankLabels implements LabelClassifier
func (CivilFallbackClassifier) RankLabels(_ context.Context, _ string, _ []models.CaseNature) ([]models.CaseNature, error) {
	return []models.CaseNature{models.CaseCivil}, nil
}

const cannedAnswer = "Sorry, I don't have an answer for that."

// CannedAnswerer answers every question with a fixed apology
type CannedAnswerer struct{}

// Answer implements QuestionAnswerer
func (CannedAnswerer) Answer(_ context.Context, _, _ string) (string, error) {
	return cannedAnswer, nil
}
