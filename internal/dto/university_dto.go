package dto

import "github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"

type CreateUniversityRequest struct {
	Name     string                     `json:"name"`
	Location string                     `json:"location,omitempty"`
	Contacts *models.UniversityContacts `json:"contacts,omitempty"`
}

type MergeUniversitiesRequest struct {
	BadID  string `json:"badId"`
	GoodID string `json:"goodId"`
}
