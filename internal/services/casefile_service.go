package services

import (
	"errors"
	"strings"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseFileService owns the curated documented-case library. Reading is
// public; writing is restricted to moderators and admins at the route
// level.
type CaseFileService struct {
	db *gorm.DB
}

func NewCaseFileService(db *gorm.DB) *CaseFileService {
	return &CaseFileService{db: db}
}

// List returns all case files, most recent incident first.
func (s *CaseFileService) List() ([]models.CaseFile, error) {
	var cases []models.CaseFile
	err := s.db.Preload("Author").
		Order("date_of_incident DESC NULLS LAST, created_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to list case files")
	}
	return cases, nil
}

// Get returns one case file.
func (s *CaseFileService) Get(id uuid.UUID) (*models.CaseFile, error) {
	var caseFile models.CaseFile
	err := s.db.Preload("Author").First(&caseFile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("case file not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load case file")
	}
	return &caseFile, nil
}

// Create records a new documented case authored by the caller.
func (s *CaseFileService) Create(caller authz.Caller, req *dto.CaseFileRequest) (*models.CaseFile, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Validation("title", "title and description are required")
	}

	caseFile := models.CaseFile{
		Title:          req.Title,
		Description:    req.Description,
		DateOfIncident: req.DateOfIncident,
		SourceURL:      req.SourceURL,
		ImageURL:       req.ImageURL,
		AuthorID:       caller.ID,
	}
	if err := s.db.Create(&caseFile).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create case file")
	}
	return s.Get(caseFile.ID)
}

// Update edits an existing case file.
func (s *CaseFileService) Update(id uuid.UUID, req *dto.CaseFileRequest) (*models.CaseFile, error) {
	caseFile, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"source_url": req.SourceURL,
		"image_url":  req.ImageURL,
	}
	if strings.TrimSpace(req.Title) != "" {
		updates["title"] = req.Title
	}
	if strings.TrimSpace(req.Description) != "" {
		updates["description"] = req.Description
	}
	if req.DateOfIncident != nil {
		updates["date_of_incident"] = req.DateOfIncident
	}

	if err := s.db.Model(caseFile).Updates(updates).Error; err != nil {
		return nil, apperr.Internal(err, "failed to update case file")
	}
	return s.Get(id)
}

// Delete removes a case file.
func (s *CaseFileService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.CaseFile{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error, "failed to delete case file")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("case file not found")
	}
	return nil
}
