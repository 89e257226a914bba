package service

import "errors"

var (
	ErrMissingInput        = errors.New("missing required input")
	ErrUnreadableDocument  = errors.New("could not read file")
	ErrEmptyDocument       = errors.New("no text extracted")
	ErrSummarizationFailed = errors.New("failed to summarize document")
	ErrTranslationFailed   = errors.New("translation failed")
	ErrQAFailed            = errors.New("question answering failed")
	ErrEntryNotFound       = errors.New("history entry not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrReportFailed        = errors.New("failed to render report")
)
