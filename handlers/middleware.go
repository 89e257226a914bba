package handlers

import (
	"errors"
	"net/http"
	"time"

	"legaldoc-backend/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "legaldoc_session"
	sessionKey        = "session"
)

// RequestLogger logs one line per request; 5xx at error and 4xx at warn
func RequestLogger(logger *zap.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
			zap.String("client_ip", c.ClientIP()),
		}
		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// LoadSession attaches the caller's session, if any, to the request context
func LoadSession(store session.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}
		s, err := store.Get(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(sessionKey, s)
		case errors.Is(err, session.ErrNotFound):
		default:
			logger.Warn("failed to load session", zap.Error(err))
		}
		c.Next()
	}
}

// RequireLogin rejects requests without a logged-in session
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s := currentSession(c); s == nil || !s.LoggedIn {
			respondError(c, http.StatusUnauthorized, "LOGIN_REQUIRED", "please log in first")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
