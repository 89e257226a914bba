package handlers

import (
	"fmt"
	"io"
	"net/http"

	"legaldoc-backend/models"
	"legaldoc-backend/report"
	"legaldoc-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisHandler handles document analysis, report download and archived documents
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	archiveService  *service.ArchiveService
	renderer        report.Renderer
	maxFileSize     int64
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler; archiveService may be nil
func NewAnalysisHandler(analysisService *service.AnalysisService, archiveService *service.ArchiveService, renderer report.Renderer, maxFileSize int64, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		archiveService:  archiveService,
		renderer:        renderer,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

// AnalyzeResponse is the analysis result plus the archive ID when the upload was kept
type AnalyzeResponse struct {
	*models.AnalysisResult
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
}

// Analyze handles POST /analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}
	if fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_OPEN_ERROR", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FILE_READ_ERROR", err.Error())
		return
	}

	req := service.AnalyzeRequest{
		Filename: fileHeader.Filename,
		Data:     data,
	}
	if s := currentSession(c); s != nil && s.EntryID != uuid.Nil {
		entryID := s.EntryID
		req.EntryID = &entryID
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	resp := AnalyzeResponse{AnalysisResult: result.Result}
	if result.Document != nil {
		resp.DocumentID = &result.Document.ID
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF handles POST /download-pdf
func (h *AnalysisHandler) DownloadPDF(c *gin.Context) {
	var req models.Report
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	pdf, err := h.renderer.Render(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.logger, fmt.Errorf("%w: %v", service.ErrReportFailed, err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// DocumentsResponse lists the documents archived during the current login
type DocumentsResponse struct {
	Documents []*models.AnalyzedDocument `json:"documents"`
}

// ListDocuments handles GET /documents
func (h *AnalysisHandler) ListDocuments(c *gin.Context) {
	s := currentSession(c)
	if h.archiveService == nil || s == nil || s.EntryID == uuid.Nil {
		c.JSON(http.StatusOK, DocumentsResponse{Documents: []*models.AnalyzedDocument{}})
		return
	}

	docs, err := h.archiveService.ListForEntry(c.Request.Context(), s.EntryID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, DocumentsResponse{Documents: docs})
}

// GetDocument handles GET /documents/:id
func (h *AnalysisHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid document ID format")
		return
	}
	if h.archiveService == nil {
		respondServiceError(c, h.logger, service.ErrDocumentNotFound)
		return
	}

	var entryID uuid.UUID
	if s := currentSession(c); s != nil {
		entryID = s.EntryID
	}
	doc, body, err := h.archiveService.Open(c.Request.Context(), id, entryID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	defer body.Close()

	c.DataFromReader(http.StatusOK, doc.Size, doc.MimeType, body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, doc.Filename),
	})
}
