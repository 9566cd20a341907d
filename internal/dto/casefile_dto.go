package dto

import "time"

type CaseFileRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	DateOfIncident *time.Time `json:"date_of_incident,omitempty"`
	SourceURL      string     `json:"source_url,omitempty"`
	ImageURL       string     `json:"image_url,omitempty"`
}
