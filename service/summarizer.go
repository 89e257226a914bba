package service

import (
	"context"
	"strings"
)

const defaultSummarySentences = 3

// SentenceSummarizer keeps the leading sentences of a text
type SentenceSummarizer struct {
	sentences int
}

// NewSentenceSummarizer creates a summarizer keeping n sentences
func NewSentenceSummarizer(n int) *SentenceSummarizer {
	if n <= 0 {
		n = defaultSummarySentences
	}
	return &SentenceSummarizer{sentences: n}
}

// Summarize implements Summarizer
func (s *SentenceSummarizer) Summarize(_ context.Context, text string) (string, error) {
	sentences := splitSentences(text)
	if len(sentences) <= s.sentences {
		return text, nil
	}
	return strings.Join(sentences[:s.sentences], " "), nil
}

// splitSentences cuts text at runs of spaces that follow '.', '!' or '?'
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
		default:
			continue
		}
		j := i + 1
		for j < len(text) && text[j] == ' ' {
			j++
		}
		if j == i+1 {
			continue
		}
		sentences = append(sentences, text[start:i+1])
		start = j
		i = j - 1
	}
	return append(sentences, text[start:])
}
