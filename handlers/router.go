package handlers

import (
	"net/http"

	"legaldoc-backend/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds the handlers and shared dependencies of the HTTP surface
type RouterConfig struct {
	Analysis     *AnalysisHandler
	Assistant    *AssistantHandler
	Account      *AccountHandler
	Lawyer       *LawyerHandler
	Sessions     session.Store
	Metrics      http.Handler
	Logger       *zap.Logger
	RequireLogin bool
}

// NewRouter wires all routes onto a gin engine
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(cfg.Logger, "/health", "/metrics"))
	r.Use(LoadSession(cfg.Sessions, cfg.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics))
	}

	loggedIn := RequireLogin()

	analyze := []gin.HandlerFunc{cfg.Analysis.Analyze}
	if cfg.RequireLogin {
		analyze = append([]gin.HandlerFunc{loggedIn}, analyze...)
	}
	r.POST("/analyze", analyze...)
	r.POST("/download-pdf", cfg.Analysis.DownloadPDF)
	r.GET("/documents", loggedIn, cfg.Analysis.ListDocuments)
	r.GET("/documents/:id", loggedIn, cfg.Analysis.GetDocument)

	r.POST("/translate", cfg.Assistant.Translate)
	r.POST("/chatbot", cfg.Assistant.Chatbot)

	r.POST("/find_lawyer", cfg.Lawyer.FindLawyer)

	r.GET("/login", cfg.Account.LoginStatus)
	r.POST("/login", cfg.Account.Login)
	r.GET("/logout", cfg.Account.Logout)
	r.GET("/rating", cfg.Account.RatingStatus)
	r.POST("/rating", cfg.Account.Rating)
	r.GET("/feedback", loggedIn, cfg.Account.FeedbackStatus)
	r.POST("/feedback", loggedIn, cfg.Account.Feedback)
	r.GET("/admin", cfg.Account.AdminDashboard)
	r.POST("/admin", cfg.Account.Admin)
	r.GET("/logout_admin", cfg.Account.AdminLogout)

	return r
}
