package services

import (
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"gorm.io/gorm"
)

// AnalyticsService answers the aggregate queries behind the public
// dashboard. It is read-only; the change notifier tells the dashboard
// when to re-query.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type UniversityCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type MonthlyCount struct {
	UniversityName string `json:"university_name"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	Count          int64  `json:"count"`
}

// ReportsByUniversity counts reports per university, largest first.
func (s *AnalyticsService) ReportsByUniversity() ([]UniversityCount, error) {
	var rows []UniversityCount
	err := s.db.Raw(`
		SELECT u.name, COUNT(r.id) AS count
		FROM reports r
		JOIN universities u ON u.id = r.university_id
		GROUP BY u.name
		ORDER BY count DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to aggregate reports by university")
	}
	return rows, nil
}

// ReportsByMonth counts reports per university per calendar month.
func (s *AnalyticsService) ReportsByMonth() ([]MonthlyCount, error) {
	var rows []MonthlyCount
	err := s.db.Raw(`
		SELECT u.name AS university_name,
		       EXTRACT(YEAR FROM r.created_at)::int AS year,
		       EXTRACT(MONTH FROM r.created_at)::int AS month,
		       COUNT(r.id) AS count
		FROM reports r
		JOIN universities u ON u.id = r.university_id
		GROUP BY u.name, year, month
		ORDER BY u.name ASC, year ASC, month ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to aggregate reports by month")
	}
	return rows, nil
}
