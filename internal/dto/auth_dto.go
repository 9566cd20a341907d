package dto

import (
	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	City      string `json:"city"`
	IsStudent bool   `json:"is_student"`
	Terms     bool   `json:"terms"`

	// Students pick a university; "OTHER" plus a free-text name creates
	// a pending one. Non-students record a profession instead.
	UniversityID        string `json:"university_id,omitempty"`
	OtherUniversityName string `json:"other_university_name,omitempty"`
	YearOfStudy         string `json:"year_of_study,omitempty"`
	Profession          string `json:"profession,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	City         string     `json:"city,omitempty"`
	IsStudent    bool       `json:"is_student"`
	UniversityID *uuid.UUID `json:"university_id,omitempty"`
	YearOfStudy  string     `json:"year_of_study,omitempty"`
	Profession   string     `json:"profession,omitempty"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Password string `json:"password,omitempty"`
}
