package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"legaldoc-backend/models"
	"legaldoc-backend/service"
	"legaldoc-backend/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountHandler handles login, logout, feedback, rating and the admin dashboard
type AccountHandler struct {
	historyService *service.HistoryService
	sessions       session.Store
	verifier       service.CredentialVerifier
	sessionTTL     time.Duration
	logger         *zap.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(historyService *service.HistoryService, sessions session.Store, verifier service.CredentialVerifier, sessionTTL time.Duration, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		historyService: historyService,
		sessions:       sessions,
		verifier:       verifier,
		sessionTTL:     sessionTTL,
		logger:         logger,
	}
}

// LoginRequest represents login form data; Gmail is accepted as an alias of Email
type LoginRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Gmail    string `form:"gmail" json:"gmail"`
	Password string `form:"password" json:"password"`
}

// SessionResponse describes the caller's session
type SessionResponse struct {
	LoggedIn  bool       `json:"logged_in"`
	User      string     `json:"user,omitempty"`
	EntryID   *uuid.UUID `json:"entry_id,omitempty"`
	LoginTime *time.Time `json:"login_time,omitempty"`
}

// Login handles POST /login
func (h *AccountHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	email := req.Email
	if email == "" {
		email = req.Gmail
	}

	entry, err := h.historyService.Login(c.Request.Context(), req.Name, email)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	user := strings.TrimSpace(req.Name)
	if user == "" {
		user = entry.Email
	}
	s := &session.Session{User: user, Email: entry.Email, EntryID: entry.ID, LoggedIn: true}
	if prev := currentSession(c); prev != nil {
		s.Token = prev.Token
	}
	if err := h.sessions.Save(c.Request.Context(), s); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	setSessionCookie(c, s.Token, h.sessionTTL)

	c.JSON(http.StatusOK, SessionResponse{
		LoggedIn:  true,
		User:      s.User,
		EntryID:   &entry.ID,
		LoginTime: &entry.LoginTime,
	})
}

// LoginStatus handles GET /login
func (h *AccountHandler) LoginStatus(c *gin.Context) {
	s := currentSession(c)
	if s == nil || !s.LoggedIn {
		c.JSON(http.StatusOK, SessionResponse{LoggedIn: false})
		return
	}
	c.JSON(http.StatusOK, SessionResponse{LoggedIn: true, User: s.User, EntryID: &s.EntryID})
}

// LogoutResponse reports the closed history entry
type LogoutResponse struct {
	EntryID    uuid.UUID  `json:"entry_id"`
	LogoutTime *time.Time `json:"logout_time"`
	Next       string     `json:"next"`
}

// Logout handles GET /logout.
// The session keeps its entry so the following rating lands on it.
func (h *AccountHandler) Logout(c *gin.Context) {
	s := currentSession(c)
	if s == nil || !s.LoggedIn {
		respondError(c, http.StatusUnauthorized, "LOGIN_REQUIRED", "not logged in")
		return
	}

	entry, err := h.historyService.Logout(c.Request.Context(), s.EntryID)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	s.LoggedIn = false
	if err := h.sessions.Save(c.Request.Context(), s); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, LogoutResponse{EntryID: entry.ID, LogoutTime: entry.LogoutTime, Next: "/rating"})
}

// RatingRequest represents a star rating
type RatingRequest struct {
	Stars int `form:"stars" json:"stars"`
}

// EntryResponse wraps an updated history entry with a user-facing message
type EntryResponse struct {
	Message string               `json:"message"`
	Entry   *models.HistoryEntry `json:"entry"`
}

// RatingStatusResponse tells the client whether a rating can be submitted
type RatingStatusResponse struct {
	CanRate bool       `json:"can_rate"`
	EntryID *uuid.UUID `json:"entry_id,omitempty"`
}

// RatingStatus handles GET /rating
func (h *AccountHandler) RatingStatus(c *gin.Context) {
	s := currentSession(c)
	if s == nil || s.EntryID == uuid.Nil {
		c.JSON(http.StatusOK, RatingStatusResponse{CanRate: false})
		return
	}
	c.JSON(http.StatusOK, RatingStatusResponse{CanRate: true, EntryID: &s.EntryID})
}

// Rating handles POST /rating; the session ends once the rating is stored
func (h *AccountHandler) Rating(c *gin.Context) {
	s := currentSession(c)
	if s == nil || s.EntryID == uuid.Nil {
		respondError(c, http.StatusUnauthorized, "LOGIN_REQUIRED", "no session to rate")
		return
	}

	var req RatingRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	entry, err := h.historyService.Rate(c.Request.Context(), s.EntryID, req.Stars)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	if !s.LoggedIn {
		if err := h.sessions.Delete(c.Request.Context(), s.Token); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
		clearSessionCookie(c)
	}
	c.JSON(http.StatusOK, EntryResponse{
		Message: fmt.Sprintf("Thanks for rating us %d ⭐", req.Stars),
		Entry:   entry,
	})
}

// FeedbackRequest represents feedback form data
type FeedbackRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Feedback string `form:"feedback" json:"feedback"`
}

// FeedbackStatus handles GET /feedback
func (h *AccountHandler) FeedbackStatus(c *gin.Context) {
	s := currentSession(c)
	c.JSON(http.StatusOK, gin.H{"name": s.User, "email": s.Email})
}

// Feedback handles POST /feedback
func (h *AccountHandler) Feedback(c *gin.Context) {
	s := currentSession(c)

	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	entry, err := h.historyService.Feedback(c.Request.Context(), s.EntryID, req.Feedback)
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}

	name := req.Name
	if name == "" {
		name = s.User
	}
	c.JSON(http.StatusOK, EntryResponse{
		Message: fmt.Sprintf("Thank you for your feedback, %s!", name),
		Entry:   entry,
	})
}

// AdminRequest represents admin credentials
type AdminRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// AdminResponse lists the history log, newest first
type AdminResponse struct {
	Entries []*models.HistoryEntry `json:"entries"`
}

// Admin handles POST /admin
func (h *AccountHandler) Admin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	if !h.verifier.Verify(req.Name, req.Email, req.Password) {
		h.logger.Warn("admin login rejected", zap.String("client_ip", c.ClientIP()))
		respondServiceError(c, h.logger, service.ErrInvalidCredentials)
		return
	}

	s := currentSession(c)
	if s == nil {
		s = &session.Session{User: req.Name, Email: req.Email}
	}
	s.Admin = true
	if err := h.sessions.Save(c.Request.Context(), s); err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	setSessionCookie(c, s.Token, h.sessionTTL)

	h.respondHistory(c)
}

// AdminDashboard handles GET /admin for sessions that already passed POST /admin
func (h *AccountHandler) AdminDashboard(c *gin.Context) {
	if s := currentSession(c); s == nil || !s.Admin {
		respondError(c, http.StatusUnauthorized, "ADMIN_LOGIN_REQUIRED", "admin credentials required")
		return
	}
	h.respondHistory(c)
}

// AdminLogout handles GET /logout_admin
func (h *AccountHandler) AdminLogout(c *gin.Context) {
	if s := currentSession(c); s != nil {
		if err := h.sessions.Delete(c.Request.Context(), s.Token); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AccountHandler) respondHistory(c *gin.Context) {
	entries, err := h.historyService.Entries(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err)
		return
	}
	if entries == nil {
		entries = []*models.HistoryEntry{}
	}
	c.JSON(http.StatusOK, AdminResponse{Entries: entries})
}
