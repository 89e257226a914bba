package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"legaldoc-backend/metrics"
	"legaldoc-backend/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DocumentArchive keeps uploaded documents alongside their analysis outcome
type DocumentArchive interface {
	Archive(ctx context.Context, req ArchiveRequest) (*models.AnalyzedDocument, error)
}

// AnalysisService sequences extraction, classification, scoring, insight lookup and summarization
type AnalysisService struct {
	extractor       TextExtractor
	classifier      *CaseClassifier
	summarizer      Summarizer
	archive         DocumentArchive
	metrics         *metrics.Metrics
	logger          *zap.Logger
	includeInsights bool
}

// AnalysisServiceOption is a functional option for AnalysisService
type AnalysisServiceOption func(*AnalysisService)

// AnalysisWithExtractor sets the text extractor
func AnalysisWithExtractor(extractor TextExtractor) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.extractor = extractor
	}
}

// AnalysisWithClassifier sets the case classifier
func AnalysisWithClassifier(classifier *CaseClassifier) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.classifier = classifier
	}
}

// AnalysisWithSummarizer sets the summarizer
func AnalysisWithSummarizer(summarizer Summarizer) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.summarizer = summarizer
	}
}

// AnalysisWithArchive sets the document archive
func AnalysisWithArchive(archive DocumentArchive) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.archive = archive
	}
}

// AnalysisWithMetrics sets the metrics collector
func AnalysisWithMetrics(m *metrics.Metrics) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.metrics = m
	}
}

// AnalysisWithLogger sets the logger
func AnalysisWithLogger(logger *zap.Logger) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.logger = logger
	}
}

// AnalysisWithInsights controls whether statute, remedy and lawyer lists are returned
func AnalysisWithInsights(include bool) AnalysisServiceOption {
	return func(s *AnalysisService) {
		s.includeInsights = include
	}
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(opts ...AnalysisServiceOption) *AnalysisService {
	s := &AnalysisService{
		logger:          zap.NewNop(),
		includeInsights: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = NewFileTextExtractor(s.logger)
	}
	if s.classifier == nil {
		s.classifier = NewCaseClassifier(ClassifierWithLogger(s.logger))
	}
	if s.summarizer == nil {
		s.summarizer = NewSentenceSummarizer(defaultSummarySentences)
	}
	return s
}

// AnalyzeRequest represents an uploaded document to analyze
type AnalyzeRequest struct {
	Filename string
	Data     []byte
	EntryID  *uuid.UUID
}

// AnalyzeResult represents the outcome of an analysis
type AnalyzeResult struct {
	Result   *models.AnalysisResult
	Document *models.AnalyzedDocument
}

// Analyze extracts the document text and assembles the analysis payload
func (s *AnalysisService) Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResult, error) {
	doc, err := s.extractor.Extract(ctx, req.Data)
	if err != nil {
		if errors.Is(err, ErrUnreadableDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, ErrEmptyDocument
	}

	result, err := s.AnalyzeText(ctx, doc.Text)
	if err != nil {
		return nil, err
	}

	s.logger.Info("document analyzed",
		zap.String("filename", req.Filename),
		zap.String("method", doc.Method),
		zap.String("case_nature", string(result.CaseNature)),
		zap.Int("risk_score", result.RiskScore),
	)

	out := &AnalyzeResult{Result: result}
	if s.archive != nil {
		archived, err := s.archive.Archive(ctx, ArchiveRequest{
			Filename: req.Filename,
			Data:     req.Data,
			Document: doc,
			Result:   result,
			EntryID:  req.EntryID,
		})
		if err != nil {
			s.logger.Warn("failed to archive document", zap.String("filename", req.Filename), zap.Error(err))
		} else {
			out.Document = archived
		}
	}
	return out, nil
}

// AnalyzeText runs the analysis steps on already extracted text
func (s *AnalysisService) AnalyzeText(ctx context.Context, text string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		s.metrics.CollaboratorFailed("summarizer")
		return nil, fmt.Errorf("%w: %v", ErrSummarizationFailed, err)
	}

	nature := s.classifier.Classify(ctx, text)
	score := CalculateRiskScore(text)

	result := &models.AnalysisResult{
		Summary:     summary,
		CaseNature:  nature,
		RiskScore:   score,
		Punishments: DescribePunishments(nature),
	}
	if s.includeInsights {
		insights := LookupInsights(nature)
		result.IPCSections = insights.IPCSections
		result.Remedies = insights.Remedies
		result.Lawyers = insights.Lawyers
	}

	s.metrics.ObserveAnalysis(string(nature), score)
	return result, nil
}

// Summarize exposes the configured summarizer
func (s *AnalysisService) Summarize(ctx context.Context, text string) (string, error) {
	return s.summarizer.Summarize(ctx, text)
}

// Classify exposes the configured case classifier
func (s *AnalysisService) Classify(ctx context.Context, text string) models.CaseNature {
	return s.classifier.Classify(ctx, text)
}
