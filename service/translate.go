package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"legaldoc-backend/metrics"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// DefaultTargetLanguage is used when a request names no language
const DefaultTargetLanguage = "en"

var languageCodes = map[string]string{
	"hindi":    "hi",
	"kannada":  "kn",
	"telugu":   "te",
	"tamil":    "ta",
	"marathi":  "mr",
	"gujarati": "gu",
	"bengali":  "bn",
	"english":  "en",
}

// ResolveLanguage maps a language name to its ISO code.
// Unknown names are passed through as codes.
func ResolveLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultTargetLanguage
	}
	if code, ok := languageCodes[strings.ToLower(lang)]; ok {
		return code
	}
	return lang
}

// Translator translates text into a target language code
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// GoogleTranslator uses the Cloud Translation v2 API
type GoogleTranslator struct {
	svc *translate.Service
}

// NewGoogleTranslator creates a translator authenticated with an API key
func NewGoogleTranslator(ctx context.Context, apiKey string) (*GoogleTranslator, error) {
	if apiKey == "" {
		return nil, errors.New("translate: api key is required")
	}
	svc, err := translate.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslator{svc: svc}, nil
}

// Translate implements Translator
func (t *GoogleTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	resp, err := t.svc.Translations.List([]string{text}, target).Format("text").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Translations) == 0 {
		return "", errors.New("translate: empty response")
	}
	return html.UnescapeString(resp.Translations[0].TranslatedText), nil
}

// GeminiTranslator asks a text generator for a translation
type GeminiTranslator struct {
	gen TextGenerator
}

// NewGeminiTranslator creates a Gemini-backed translator
func NewGeminiTranslator(gen TextGenerator) *GeminiTranslator {
	return &GeminiTranslator{gen: gen}
}

// Translate implements Translator
func (t *GeminiTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	prompt := fmt.Sprintf(
		"Translate the following text into the language with ISO 639-1 code %q. "+
			"Return only the translated text.\n\n%s", target, text)
	out, err := t.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", errors.New("translate: empty response")
	}
	return out, nil
}

// TranslationService validates translation requests and resolves languages
type TranslationService struct {
	translator Translator
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTranslationService creates a new translation service
func NewTranslationService(translator Translator, m *metrics.Metrics, logger *zap.Logger) *TranslationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationService{translator: translator, metrics: m, logger: logger}
}

// Translate translates text into the named language, returning the translation and the code used
func (s *TranslationService) Translate(ctx context.Context, text, language string) (string, string, error) {
	if strings.TrimSpace(text) == "" {
		return "", "", ErrMissingInput
	}
	target := ResolveLanguage(language)
	if s.translator == nil {
		return "", target, fmt.Errorf("%w: no translator configured", ErrTranslationFailed)
	}
	translated, err := s.translator.Translate(ctx, text, target)
	if err != nil {
		s.metrics.CollaboratorFailed("translator")
		s.logger.Warn("translation failed", zap.String("target", target), zap.Error(err))
		return "", target, fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	return translated, target, nil
}
