package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/config"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration and login. Tokens carry the caller
// identity the policy engine needs: id, role and university
// affiliation.
type AuthService struct {
	db           *gorm.DB
	cfg          *config.Config
	universities *UniversityService
}

func NewAuthService(db *gorm.DB, cfg *config.Config, universities *UniversityService) *AuthService {
	return &AuthService{db: db, cfg: cfg, universities: universities}
}

// Register creates an account. Students pick (or resolve-or-create) a
// university; everyone else records a profession instead.
func (s *AuthService) Register(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Validation("name", "name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return apperr.Validation("email", "valid email required")
	}
	if len(req.Password) < 6 {
		return apperr.Validation("password", "password must be at least 6 characters")
	}
	if strings.TrimSpace(req.City) == "" {
		return apperr.Validation("city", "city is required")
	}
	if !req.Terms {
		return apperr.Validation("terms", "you must accept the terms and conditions")
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return apperr.Conflict("email already exists")
	}

	var universityID *uuid.UUID
	var yearOfStudy, profession string

	if req.IsStudent {
		yearOfStudy = req.YearOfStudy
		switch {
		case req.UniversityID == UniversitySentinelOther:
			id, err := s.universities.ResolveOrCreate(req.OtherUniversityName)
			if err != nil {
				return err
			}
			universityID = &id
		case req.UniversityID == "":
			return apperr.Validation("university_id", "please select a university")
		default:
			id, err := uuid.Parse(req.UniversityID)
			if err != nil {
				return apperr.Validation("university_id", "invalid university id")
			}
			if _, err := s.universities.Get(id); err != nil {
				return err
			}
			universityID = &id
		}
	} else {
		if strings.TrimSpace(req.Profession) == "" {
			return apperr.Validation("profession", "please provide your profession")
		}
		profession = req.Profession
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err, "failed to hash password")
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hash),
		Role:         "member",
		City:         req.City,
		IsStudent:    req.IsStudent,
		UniversityID: universityID,
		YearOfStudy:  yearOfStudy,
		Profession:   profession,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return apperr.Internal(err, "failed to create user")
	}
	return nil
}

// Login checks credentials and issues the access token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticated("invalid credentials")
		}
		return nil, apperr.Internal(err, "failed to load user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthenticated("invalid credentials")
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return nil, apperr.Internal(err, "failed to sign token")
	}

	return &dto.AuthResponse{
		Token: token,
		User:  newUserResponse(&user),
	}, nil
}

func (s *AuthService) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"name": user.Name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}
	if user.UniversityID != nil {
		claims["university_id"] = user.UniversityID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func newUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		City:         user.City,
		IsStudent:    user.IsStudent,
		UniversityID: user.UniversityID,
		YearOfStudy:  user.YearOfStudy,
		Profession:   user.Profession,
	}
}
