package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"legaldoc-backend/models"
)

// LawyerRepository serves the static lawyer directory loaded from a JSON file
type LawyerRepository struct {
	lawyers []models.Lawyer
}

// LoadLawyerRepository reads the directory at path
func LoadLawyerRepository(path string) (*LawyerRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lawyer directory: %w", err)
	}
	var lawyers []models.Lawyer
	if err := json.Unmarshal(data, &lawyers); err != nil {
		return nil, fmt.Errorf("failed to decode lawyer directory: %w", err)
	}
	return NewLawyerRepository(lawyers), nil
}

// NewLawyerRepository creates a repository over an in-memory directory
func NewLawyerRepository(lawyers []models.Lawyer) *LawyerRepository {
	return &LawyerRepository{lawyers: lawyers}
}

// FindByCityAndSpecialization returns lawyers whose city and specialization
// equal the given values, ignoring case and surrounding whitespace
func (r *LawyerRepository) FindByCityAndSpecialization(city, specialization string) []models.Lawyer {
	city = strings.ToLower(strings.TrimSpace(city))
	specialization = strings.ToLower(strings.TrimSpace(specialization))

	matches := make([]models.Lawyer, 0)
	for _, l := range r.lawyers {
		if strings.ToLower(l.City) == city && strings.ToLower(l.Specialization) == specialization {
			matches = append(matches, l)
		}
	}
	return matches
}
