package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry represents one user session's login, feedback and rating record
type HistoryEntry struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	LoginTime  time.Time  `json:"login_time"`
	LogoutTime *time.Time `json:"logout_time"`
	Feedback   *string    `json:"feedback"`
	Rating     *int       `json:"rating"`
}
