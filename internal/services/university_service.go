package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UniversityService owns the shared university reference data: the
// resolve-or-create flow, approval, and duplicate merging.
type UniversityService struct {
	db *gorm.DB
}

func NewUniversityService(db *gorm.DB) *UniversityService {
	return &UniversityService{db: db}
}

// NormalizeName canonicalizes a free-text university name for lookup
// and storage: trimmed, case-folded, inner whitespace collapsed.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Resolve looks up a university by normalized name. It is the pure read
// half of resolve-or-create; it never writes.
func (s *UniversityService) Resolve(name string) (*models.University, error) {
	clean := NormalizeName(name)
	if clean == "" {
		return nil, apperr.Validation("name", "university name is required")
	}

	var uni models.University
	err := s.db.Where("name = ?", clean).First(&uni).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to look up university")
	}
	return &uni, nil
}

// ResolveOrCreate returns the id for a free-text university name,
// creating a pending record when the name is unknown. A concurrent
// create of the same name loses at the unique index and retries the
// lookup once.
func (s *UniversityService) ResolveOrCreate(name string) (uuid.UUID, error) {
	existing, err := s.Resolve(name)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	uni := models.University{
		Name:   NormalizeName(name),
		Status: models.UniversityStatusPending,
	}
	if err := s.db.Create(&uni).Error; err != nil {
		// lost the race: someone created the same name first
		if existing, rerr := s.Resolve(name); rerr == nil && existing != nil {
			return existing.ID, nil
		}
		return uuid.Nil, apperr.Internal(err, "failed to create university")
	}
	return uni.ID, nil
}

// Get returns one university by id.
func (s *UniversityService) Get(id uuid.UUID) (*models.University, error) {
	var uni models.University
	if err := s.db.First(&uni, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("university not found")
		}
		return nil, apperr.Internal(err, "failed to load university")
	}
	return &uni, nil
}

// ListApproved returns the universities shown in public dropdowns and
// filters. Pending records stay hidden until approved.
func (s *UniversityService) ListApproved() ([]models.University, error) {
	var unis []models.University
	err := s.db.Where("status = ?", models.UniversityStatusApproved).
		Order("name ASC").
		Find(&unis).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to list universities")
	}
	return unis, nil
}

// ListPending returns unapproved universities for the admin review list.
func (s *UniversityService) ListPending() ([]models.University, error) {
	var unis []models.University
	err := s.db.Where("status = ?", models.UniversityStatusPending).
		Order("name ASC").
		Find(&unis).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to list pending universities")
	}
	return unis, nil
}

// Create adds a university explicitly. Admin-created records are
// approved immediately.
func (s *UniversityService) Create(req *dto.CreateUniversityRequest) (*models.University, error) {
	clean := NormalizeName(req.Name)
	if clean == "" {
		return nil, apperr.Validation("name", "university name is required")
	}

	uni := models.University{
		Name:     clean,
		Location: req.Location,
		Status:   models.UniversityStatusApproved,
	}
	if req.Contacts != nil {
		if b, err := json.Marshal(req.Contacts); err == nil {
			uni.Contacts = b
		}
	}

	if err := s.db.Create(&uni).Error; err != nil {
		if existing, rerr := s.Resolve(clean); rerr == nil && existing != nil {
			return nil, apperr.Conflict("a university with that name already exists")
		}
		return nil, apperr.Internal(err, "failed to create university")
	}
	return &uni, nil
}

// Approve marks a pending university as approved.
func (s *UniversityService) Approve(id uuid.UUID) (*models.University, error) {
	var uni models.University
	if err := s.db.First(&uni, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("university not found")
		}
		return nil, apperr.Internal(err, "failed to load university")
	}

	if err := s.db.Model(&uni).Update("status", models.UniversityStatusApproved).Error; err != nil {
		return nil, apperr.Internal(err, "failed to approve university")
	}
	uni.Status = models.UniversityStatusApproved
	return &uni, nil
}

// Merge folds the duplicate badID into goodID. Order matters: every
// dependent report and user affiliation moves to the winner before the
// loser is deleted, so a failure partway leaves at worst an orphaned,
// reportless duplicate rather than reports pointing at a deleted
// record. A badID that no longer exists means the merge already
// happened and is not an error.
func (s *UniversityService) Merge(badID, goodID uuid.UUID) error {
	if badID == goodID {
		return apperr.Validation("badId", "cannot merge a university into itself")
	}

	var good models.University
	if err := s.db.First(&good, "id = ?", goodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("target university not found")
		}
		return apperr.Internal(err, "failed to load target university")
	}

	var bad models.University
	if err := s.db.First(&bad, "id = ?", badID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// already merged
			return nil
		}
		return apperr.Internal(err, "failed to load duplicate university")
	}

	// 1. reassign dependents
	if err := s.db.Model(&models.Report{}).
		Where("university_id = ?", badID).
		Update("university_id", goodID).Error; err != nil {
		return apperr.Internal(err, "failed to reassign reports")
	}
	if err := s.db.Model(&models.User{}).
		Where("university_id = ?", badID).
		Update("university_id", goodID).Error; err != nil {
		return apperr.Internal(err, "failed to reassign users")
	}

	// 2. delete the loser
	if err := s.db.Delete(&bad).Error; err != nil {
		return apperr.Internal(err, "failed to delete duplicate university")
	}
	return nil
}

// Delete removes a spam university outright. Reports are not touched;
// use Merge when dependents should survive.
func (s *UniversityService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.University{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internal(result.Error, "failed to delete university")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("university not found")
	}
	return nil
}
