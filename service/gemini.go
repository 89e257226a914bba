package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"legaldoc-backend/models"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

const (
	maxRetries            = 3
	initialBackoff        = time.Second
	defaultSummaryChunk   = 1000
	notFoundAnswer        = "Sorry, I couldn't find an answer in the document."
	maxClassifierInputLen = 30000
)

// TextGenerator produces model text for a prompt
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls a Gemini model with retries
type GeminiGenerator struct {
	model          *genai.GenerativeModel
	logger         *zap.Logger
	maxRetries     int
	initialBackoff time.Duration
}

// GeminiGeneratorOption is a functional option for GeminiGenerator
type GeminiGeneratorOption func(*GeminiGenerator)

// GeminiWithJSONResponse requests application/json output
func GeminiWithJSONResponse() GeminiGeneratorOption {
	return func(g *GeminiGenerator) {
		g.model.ResponseMIMEType = "application/json"
	}
}

// GeminiWithTemperature sets the sampling temperature
func GeminiWithTemperature(t float32) GeminiGeneratorOption {
	return func(g *GeminiGenerator) {
		g.model.SetTemperature(t)
	}
}

// GeminiWithLogger sets the logger
func GeminiWithLogger(logger *zap.Logger) GeminiGeneratorOption {
	return func(g *GeminiGenerator) {
		g.logger = logger
	}
}

// NewGeminiGenerator creates a generator for the named model
func NewGeminiGenerator(client *genai.Client, modelName string, opts ...GeminiGeneratorOption) *GeminiGenerator {
	g := &GeminiGenerator{
		model:          client.GenerativeModel(modelName),
		logger:         zap.NewNop(),
		maxRetries:     maxRetries,
		initialBackoff: initialBackoff,
	}
	g.model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text("You are an assistant for analysing Indian legal documents. Be factual and concise. Use plain text without markdown.")},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements TextGenerator
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	backoff := g.initialBackoff
	for attempt := 0; attempt < g.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			g.logger.Warn("gemini request failed", zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		text := responseText(resp)
		if text != "" {
			return text, nil
		}
		lastErr = errors.New("gemini returned empty content")
	}
	return "", fmt.Errorf("failed to generate content after %d attempts: %w", g.maxRetries, lastErr)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// GeminiSummarizer summarizes text chunk by chunk
type GeminiSummarizer struct {
	gen       TextGenerator
	chunkSize int
}

// NewGeminiSummarizer creates a summarizer; chunkSize is measured in characters
func NewGeminiSummarizer(gen TextGenerator, chunkSize int) *GeminiSummarizer {
	if chunkSize <= 0 {
		chunkSize = defaultSummaryChunk
	}
	return &GeminiSummarizer{gen: gen, chunkSize: chunkSize}
}

// Summarize implements Summarizer
func (s *GeminiSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	chunks := chunkText(text, s.chunkSize)
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		prompt := fmt.Sprintf(`Summarize the following excerpt of a legal document in 50 to 150 words.
Keep names, dates, sections and amounts exactly as written.

EXCERPT:
%s`, chunk)
		summary, err := s.gen.Generate(ctx, prompt)
		if err != nil {
			return "", err
		}
		parts = append(parts, summary)
	}
	return strings.Join(parts, " "), nil
}

// chunkText splits text into pieces of at most size runes
func chunkText(text string, size int) []string {
	var chunks []string
	for len(text) > 0 {
		if utf8.RuneCountInString(text) <= size {
			chunks = append(chunks, text)
			break
		}
		cut := 0
		for i := 0; i < size; i++ {
			_, w := utf8.DecodeRuneInString(text[cut:])
			cut += w
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return chunks
}

// GeminiLabelClassifier ranks case-nature labels with a zero-shot prompt
type GeminiLabelClassifier struct {
	gen TextGenerator
}

// NewGeminiLabelClassifier creates a label classifier; gen should return JSON
func NewGeminiLabelClassifier(gen TextGenerator) *GeminiLabelClassifier {
	return &GeminiLabelClassifier{gen: gen}
}

// RankLabels implements LabelClassifier
func (c *GeminiLabelClassifier) RankLabels(ctx context.Context, text string, labels []models.CaseNature) ([]models.CaseNature, error) {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = string(l)
	}
	if utf8.RuneCountInString(text) > maxClassifierInputLen {
		text = chunkText(text, maxClassifierInputLen)[0]
	}

	prompt := fmt.Sprintf(`Classify the legal document below into the candidate labels.
Return JSON of the form {"labels": [...]} listing every candidate label exactly as given,
ordered from most to least likely.

CANDIDATE LABELS: %s

DOCUMENT:
%s`, strings.Join(names, ", "), text)

	raw, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseRankedLabels(raw, labels)
}

func parseRankedLabels(raw string, candidates []models.CaseNature) ([]models.CaseNature, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var resp struct {
		Labels []string `json:"labels"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	known := make(map[string]models.CaseNature, len(candidates))
	for _, c := range candidates {
		known[strings.ToLower(string(c))] = c
	}

	ranked := make([]models.CaseNature, 0, len(resp.Labels))
	seen := make(map[models.CaseNature]bool)
	for _, l := range resp.Labels {
		label, ok := known[strings.ToLower(strings.TrimSpace(l))]
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		ranked = append(ranked, label)
	}
	if len(ranked) == 0 {
		return nil, errors.New("classifier returned no candidate labels")
	}
	return ranked, nil
}

// GeminiQuestionAnswerer answers questions grounded in the document text
type GeminiQuestionAnswerer struct {
	gen TextGenerator
}

// NewGeminiQuestionAnswerer creates a question answerer
func NewGeminiQuestionAnswerer(gen TextGenerator) *GeminiQuestionAnswerer {
	return &GeminiQuestionAnswerer{gen: gen}
}

// Answer implements QuestionAnswerer
func (a *GeminiQuestionAnswerer) Answer(ctx context.Context, question, text string) (string, error) {
	prompt := fmt.Sprintf(`Answer the question using only the document below.
Reply with a short extract or sentence. If the document does not contain the answer, reply exactly:
%s

DOCUMENT:
%s

QUESTION: %s`, notFoundAnswer, text, question)

	answer, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return notFoundAnswer, nil
	}
	return answer, nil
}
