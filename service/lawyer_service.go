package service

import (
	"strings"

	"legaldoc-backend/models"
)

// LawyerFinder looks up lawyers by city and specialization
type LawyerFinder interface {
	FindByCityAndSpecialization(city, specialization string) []models.Lawyer
}

// LawyerService serves the lawyer directory
type LawyerService struct {
	finder LawyerFinder
}

// NewLawyerService creates a new lawyer service
func NewLawyerService(finder LawyerFinder) *LawyerService {
	return &LawyerService{finder: finder}
}

// Find returns lawyers matching both city and specialization
func (s *LawyerService) Find(city, specialization string) ([]models.Lawyer, error) {
	if strings.TrimSpace(city) == "" || strings.TrimSpace(specialization) == "" {
		return nil, ErrMissingInput
	}
	lawyers := s.finder.FindByCityAndSpecialization(city, specialization)
	if lawyers == nil {
		lawyers = []models.Lawyer{}
	}
	return lawyers, nil
}
