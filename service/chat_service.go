package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"legaldoc-backend/metrics"

	"go.uber.org/zap"
)

const (
	punishmentHint = "Punishments are based on case type. Try asking about the case nature first."
	maxKeywords    = 20
)

var wordPattern = regexp.MustCompile(`\w+`)

// ChatService answers questions about a document.
// Questions mentioning summary, case, risk, punishment or keywords are answered locally.
type ChatService struct {
	analysis *AnalysisService
	qa       QuestionAnswerer
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(analysis *AnalysisService, qa QuestionAnswerer, m *metrics.Metrics, logger *zap.Logger) *ChatService {
	if qa == nil {
		qa = CannedAnswerer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{analysis: analysis, qa: qa, metrics: m, logger: logger}
}

// Answer replies to a question against the document text
func (s *ChatService) Answer(ctx context.Context, question, text string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" || strings.TrimSpace(text) == "" {
		return "", ErrMissingInput
	}

	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "summary"):
		summary, err := s.analysis.Summarize(ctx, text)
		if err != nil {
			s.metrics.CollaboratorFailed("summarizer")
			return "", fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
		}
		return summary, nil
	case strings.Contains(q, "case"):
		return fmt.Sprintf("Case nature: %s", s.analysis.Classify(ctx, text)), nil
	case strings.Contains(q, "risk"):
		return fmt.Sprintf("Estimated risk score: %d", CalculateRiskScore(text)), nil
	case strings.Contains(q, "punishment"):
		return punishmentHint, nil
	case strings.Contains(q, "keywords"):
		return fmt.Sprintf("Keywords in document: %s...", strings.Join(distinctWords(text, maxKeywords), ", ")), nil
	}

	answer, err := s.qa.Answer(ctx, question, text)
	if err != nil {
		s.metrics.CollaboratorFailed("qa")
		s.logger.Warn("question answering failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrQAFailed, err)
	}
	return answer, nil
}

// distinctWords returns up to limit distinct lower-cased words in order of first appearance
func distinctWords(text string, limit int) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
		if len(words) == limit {
			break
		}
	}
	return words
}
