package models

// Lawyer is a contact record from the lawyer directory
type Lawyer struct {
	Name           string `json:"name"`
	City           string `json:"city"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Experience     string `json:"experience,omitempty"`
}
