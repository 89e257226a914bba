package handlers

import (
	"net/http"

	"legaldoc-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler handles translation and document Q&A
type AssistantHandler struct {
	translationService *service.TranslationService
	chatService        *service.ChatService
	logger             *zap.Logger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(translationService *service.TranslationService, chatService *service.ChatService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		translationService: translationService,
		chatService:        chatService,
		logger:             logger,
	}
}

// TranslateRequest represents the request body for translation.
// TargetLang takes precedence over Language; both accept codes or language names.
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
	Language   string `json:"language"`
}

// TranslateResponse represents a translation result
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	TargetLang     string `json:"target_lang"`
}

// Translate handles POST /translate
func (h *AssistantHandler) Translate(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	language := req.TargetLang
	if language == "" {
		language = req.Language
	}

	translated, target, err := h.translationService.Translate(c.Request.Context(), req.Text, language)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, TranslateResponse{TranslatedText: translated, TargetLang: target})
}

// ChatRequest represents a question about a document
type ChatRequest struct {
	Question string `json:"question"`
	Text     string `json:"text"`
}

// ChatResponse represents the chatbot's answer
type ChatResponse struct {
	Answer string `json:"answer"`
}

// Chatbot handles POST /chatbot
func (h *AssistantHandler) Chatbot(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	answer, err := h.chatService.Answer(c.Request.Context(), req.Question, req.Text)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ChatResponse{Answer: answer})
}
