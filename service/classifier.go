package service

import (
	"context"
	"regexp"
	"strings"

	"legaldoc-backend/models"

	"go.uber.org/zap"
)

// caseKeywords maps every keyword-backed case nature to its keyword set
var caseKeywords = map[models.CaseNature][]string{
	models.CaseCriminal: {
		"murder", "homicide", "theft", "robbery", "assault", "fraud", "kidnapping",
		"violence", "police", "crime", "rape", "cybercrime", "section 302", "section 420",
	},
	models.CaseFamily: {
		"divorce", "marriage", "custody", "alimony", "dowry", "domestic", "family dispute",
	},
	models.CaseProperty: {
		"land", "property", "ownership", "lease", "possession", "eviction", "real estate",
		"tenant", "encroachment",
	},
	models.CaseContract: {
		"contract", "agreement", "breach", "business", "partnership", "liability", "obligation",
	},
	models.CaseEnvironmental: {
		"environment", "pollution", "forest", "waste", "ecology", "climate", "emission",
		"sustainability",
	},
}

// MatchMode selects how keywords are located in the document text
type MatchMode int

const (
	// MatchSubstring counts non-overlapping substring occurrences ("landscape" counts as "land")
	MatchSubstring MatchMode = iota
	// MatchWholeWord counts occurrences delimited by word boundaries
	MatchWholeWord
)

// LabelClassifier ranks candidate labels for a text when no keyword matched
type LabelClassifier interface {
	RankLabels(ctx context.Context, text string, labels []models.CaseNature) ([]models.CaseNature, error)
}

// CaseClassifier detects the case nature of a document
type CaseClassifier struct {
	fallback LabelClassifier
	mode     MatchMode
	logger   *zap.Logger
	patterns map[string]*regexp.Regexp
}

// CaseClassifierOption is a functional option for CaseClassifier
type CaseClassifierOption func(*CaseClassifier)

// ClassifierWithFallback sets the collaborator consulted when no keyword scores
func ClassifierWithFallback(fallback LabelClassifier) CaseClassifierOption {
	return func(c *CaseClassifier) {
		c.fallback = fallback
	}
}

// ClassifierWithMatchMode sets the keyword matching mode
func ClassifierWithMatchMode(mode MatchMode) CaseClassifierOption {
	return func(c *CaseClassifier) {
		c.mode = mode
	}
}

// ClassifierWithLogger sets the logger
func ClassifierWithLogger(logger *zap.Logger) CaseClassifierOption {
	return func(c *CaseClassifier) {
		c.logger = logger
	}
}

// NewCaseClassifier creates a new case classifier
func NewCaseClassifier(opts ...CaseClassifierOption) *CaseClassifier {
	c := &CaseClassifier{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.mode == MatchWholeWord {
		c.patterns = make(map[string]*regexp.Regexp)
		for _, keywords := range caseKeywords {
			for _, kw := range keywords {
				c.patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
	return c
}

// Scores returns the summed keyword count of every keyword-backed case nature
func (c *CaseClassifier) Scores(text string) map[models.CaseNature]int {
	lower := normalize(text)
	scores := make(map[models.CaseNature]int, len(caseKeywords))
	for _, label := range models.KeywordCaseNatures {
		for _, kw := range caseKeywords[label] {
			scores[label] += c.count(lower, kw)
		}
	}
	return scores
}

// Classify returns exactly one case nature for text.
// The highest keyword score wins, ties go to the earliest label in
// models.KeywordCaseNatures, and a zero score defers to the fallback classifier.
func (c *CaseClassifier) Classify(ctx context.Context, text string) models.CaseNature {
	scores := c.Scores(text)

	best := models.KeywordCaseNatures[0]
	for _, label := range models.KeywordCaseNatures[1:] {
		if scores[label] > scores[best] {
			best = label
		}
	}
	if scores[best] > 0 {
		return best
	}

	return c.classifyFallback(ctx, text)
}

func (c *CaseClassifier) classifyFallback(ctx context.Context, text string) models.CaseNature {
	if c.fallback == nil {
		return models.CaseCivil
	}

	ranked, err := c.fallback.RankLabels(ctx, text, models.CandidateCaseNatures())
	if err != nil {
		c.logger.Warn("fallback classification failed", zap.Error(err))
		return models.CaseCivil
	}
	if len(ranked) == 0 {
		c.logger.Warn("fallback classification returned no labels")
		return models.CaseCivil
	}
	return ranked[0]
}

func (c *CaseClassifier) count(lower, keyword string) int {
	if c.mode == MatchWholeWord {
		return len(c.patterns[keyword].FindAllStringIndex(lower, -1))
	}
	return strings.Count(lower, keyword)
}

// normalize lower-cases text once for keyword search
func normalize(text string) string {
	return strings.ToLower(text)
}

// containsAny reports whether any keyword occurs in the normalized text
func containsAny(lower string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
