package handlers

import (
	"errors"
	"net/http"

	"legaldoc-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

type errorMapping struct {
	err    error
	status int
	code   string
	// verbatim surfaces the wrapped collaborator message to the caller
	verbatim bool
}

var errorMappings = []errorMapping{
	{service.ErrMissingInput, http.StatusBadRequest, "MISSING_INPUT", false},
	{service.ErrEmptyDocument, http.StatusBadRequest, "EMPTY_DOCUMENT", false},
	{service.ErrInvalidRating, http.StatusBadRequest, "INVALID_RATING", false},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", false},
	{service.ErrEntryNotFound, http.StatusNotFound, "ENTRY_NOT_FOUND", false},
	{service.ErrDocumentNotFound, http.StatusNotFound, "DOCUMENT_NOT_FOUND", false},
	{service.ErrUnreadableDocument, http.StatusInternalServerError, "UNREADABLE_DOCUMENT", false},
	{service.ErrSummarizationFailed, http.StatusInternalServerError, "SUMMARIZATION_FAILED", true},
	{service.ErrTranslationFailed, http.StatusInternalServerError, "TRANSLATION_FAILED", true},
	{service.ErrQAFailed, http.StatusInternalServerError, "QA_FAILED", true},
	{service.ErrReportFailed, http.StatusInternalServerError, "REPORT_FAILED", true},
}

// respondServiceError maps a service error onto the error envelope
func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.err) {
			continue
		}
		message := m.err.Error()
		if m.verbatim {
			message = err.Error()
		}
		respondError(c, m.status, m.code, message)
		return
	}

	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
