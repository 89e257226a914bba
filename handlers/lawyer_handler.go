package handlers

import (
	"net/http"

	"legaldoc-backend/models"
	"legaldoc-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LawyerHandler serves the lawyer directory
type LawyerHandler struct {
	lawyerService *service.LawyerService
	logger        *zap.Logger
}

// NewLawyerHandler creates a new lawyer handler
func NewLawyerHandler(lawyerService *service.LawyerService, logger *zap.Logger) *LawyerHandler {
	return &LawyerHandler{lawyerService: lawyerService, logger: logger}
}

// FindLawyerRequest represents a directory search
type FindLawyerRequest struct {
	City           string `form:"city" json:"city"`
	Specialization string `form:"specialization" json:"specialization"`
}

// FindLawyerResponse lists matching lawyers
type FindLawyerResponse struct {
	Lawyers []models.Lawyer `json:"lawyers"`
}

// FindLawyer handles POST /find_lawyer
func (h *LawyerHandler) FindLawyer(c *gin.Context) {
	var req FindLawyerRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	lawyers, err := h.lawyerService.Find(req.City, req.Specialization)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, FindLawyerResponse{Lawyers: lawyers})
}
