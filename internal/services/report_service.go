package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/dto"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/notify"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/search"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UniversitySentinelOther is the university_id value that carries a
// free-text name instead of a known id.
const UniversitySentinelOther = "OTHER"

const maxMediaItems = 5

// ReportService owns the report aggregate: CRUD, the engagement ledger
// (likes and flags) and the moderation listings.
type ReportService struct {
	db           *gorm.DB
	universities *UniversityService
	searcher     search.Searcher // nil when search is not configured
	notifier     notify.Notifier
}

func NewReportService(db *gorm.DB, universities *UniversityService, searcher search.Searcher, notifier notify.Notifier) *ReportService {
	return &ReportService{
		db:           db,
		universities: universities,
		searcher:     searcher,
		notifier:     notifier,
	}
}

// Create persists a new report for an authenticated caller. The author
// is always recorded, even for anonymous reports: anonymity is a
// display concern, never a permission one.
func (s *ReportService) Create(caller authz.Caller, req *dto.CreateReportRequest) (*models.Report, error) {
	if !caller.Authenticated {
		return nil, apperr.Unauthenticated("authentication required to create a report")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, apperr.Validation("body", "report body is required")
	}
	if len(req.Media) > maxMediaItems {
		return nil, apperr.Validation("media", "at most 5 media attachments are allowed")
	}

	universityID, err := s.resolveUniversity(req.UniversityID, req.OtherUniversityName)
	if err != nil {
		return nil, err
	}

	report := models.Report{
		Title:        req.Title,
		Body:         req.Body,
		UniversityID: universityID,
		AuthorID:     caller.ID,
		Anonymous:    req.Anonymous,
		IsPublic:     req.IsPublic,
		Status:       models.ReportStatusPending,
	}
	if media, err := json.Marshal(normalizeMedia(req.Media)); err == nil {
		report.Media = media
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create report")
	}

	s.indexReport(&report)
	s.notifier.ContentChanged()

	return s.load(report.ID)
}

// Get returns one report after the visibility check. A private report
// the caller may not see is Forbidden, not NotFound: the policy here is
// existence transparency, applied uniformly.
func (s *ReportService) Get(id uuid.UUID, caller authz.Caller) (*models.Report, int64, int64, error) {
	report, err := s.load(id)
	if err != nil {
		return nil, 0, 0, err
	}

	if !authz.CanViewReport(report, caller) {
		return nil, 0, 0, apperr.Forbidden("you do not have permission to view this report")
	}

	likes := s.likeCount(id)
	flags := s.flagCount(id)
	return report, likes, flags, nil
}

// List returns public reports, newest first. A non-empty query switches
// to relevance ordering via the search index, falling back to a
// database substring match when the index is unavailable.
func (s *ReportService) List(q string) ([]models.Report, map[uuid.UUID]int64, error) {
	var reports []models.Report

	if q = strings.TrimSpace(q); q != "" {
		if s.searcher != nil && s.searcher.Healthy() {
			found, err := s.searchByRelevance(q)
			if err == nil {
				counts, cerr := s.likeCounts(reportIDs(found))
				return found, counts, cerr
			}
			slog.Warn("search backend failed, falling back to database", "error", err)
		}
		err := s.db.Preload("University").Preload("Author").
			Where("is_public = ?", true).
			Where("title ILIKE ? OR body ILIKE ?", "%"+q+"%", "%"+q+"%").
			Order("created_at DESC").
			Find(&reports).Error
		if err != nil {
			return nil, nil, apperr.Internal(err, "failed to search reports")
		}
	} else {
		err := s.db.Preload("University").Preload("Author").
			Where("is_public = ?", true).
			Order("created_at DESC").
			Find(&reports).Error
		if err != nil {
			return nil, nil, apperr.Internal(err, "failed to list reports")
		}
	}

	counts, err := s.likeCounts(reportIDs(reports))
	return reports, counts, err
}

func (s *ReportService) searchByRelevance(q string) ([]models.Report, error) {
	ids, err := s.searcher.Search(q, 50)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Report{}, nil
	}

	var reports []models.Report
	if err := s.db.Preload("University").Preload("Author").
		Where("is_public = ?", true).
		Where("id IN ?", ids).
		Find(&reports).Error; err != nil {
		return nil, err
	}

	// restore relevance order
	rank := make(map[string]int, len(ids))
	for i, id := range ids {
		rank[id] = i
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return rank[reports[i].ID.String()] < rank[reports[j].ID.String()]
	})
	return reports, nil
}

// Update patches title, body, anonymous, is_public and media. The
// university and author are immutable after creation.
func (s *ReportService) Update(id uuid.UUID, caller authz.Caller, req *dto.UpdateReportRequest) (*models.Report, error) {
	report, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if err := s.requireMutate(report.AuthorID, caller); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		if strings.TrimSpace(*req.Body) == "" {
			return nil, apperr.Validation("body", "report body cannot be empty")
		}
		updates["body"] = *req.Body
	}
	if req.Anonymous != nil {
		updates["anonymous"] = *req.Anonymous
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.Media != nil {
		if len(*req.Media) > maxMediaItems {
			return nil, apperr.Validation("media", "at most 5 media attachments are allowed")
		}
		if media, merr := json.Marshal(normalizeMedia(*req.Media)); merr == nil {
			updates["media"] = media
		}
	}
	if len(updates) == 0 {
		return report, nil
	}

	if err := s.db.Model(report).Updates(updates).Error; err != nil {
		return nil, apperr.Internal(err, "failed to update report")
	}

	report, err = s.load(id)
	if err != nil {
		return nil, err
	}
	s.indexReport(report)
	s.notifier.ContentChanged()
	return report, nil
}

// Delete removes a report and cascades its whole discussion: comments,
// replies, likes and flags go in one transaction.
func (s *ReportService) Delete(id uuid.UUID, caller authz.Caller) error {
	report, err := s.load(id)
	if err != nil {
		return err
	}
	if err := s.requireMutate(report.AuthorID, caller); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN (?)",
			tx.Model(&models.Comment{}).Select("id").Where("report_id = ?", id),
		).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", id).Delete(&models.ReportLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", id).Delete(&models.ReportFlag{}).Error; err != nil {
			return err
		}
		return tx.Delete(report).Error
	})
	if err != nil {
		return apperr.Internal(err, "failed to delete report")
	}

	if s.searcher != nil {
		if err := s.searcher.DeleteReport(id.String()); err != nil {
			slog.Warn("failed to remove report from search index", "report_id", id, "error", err)
		}
	}
	s.notifier.ContentChanged()
	return nil
}

// ToggleLike is the symmetric, idempotent-safe like toggle: a member of
// the like set is removed, a non-member is added. The unique index on
// (report_id, user_id) absorbs concurrent toggles from one user.
func (s *ReportService) ToggleLike(id uuid.UUID, caller authz.Caller) (*dto.LikeResponse, error) {
	if !caller.Authenticated {
		return nil, apperr.Unauthenticated("authentication required")
	}
	if _, err := s.load(id); err != nil {
		return nil, err
	}

	result := s.db.Where("report_id = ? AND user_id = ?", id, caller.ID).
		Delete(&models.ReportLike{})
	if result.Error != nil {
		return nil, apperr.Internal(result.Error, "failed to toggle like")
	}

	liked := false
	if result.RowsAffected == 0 {
		like := models.ReportLike{ReportID: id, UserID: caller.ID}
		if err := s.db.Create(&like).Error; err != nil {
			// a concurrent toggle from the same user won the insert;
			// the set already contains the user, which is the state we
			// were converging to
			var n int64
			s.db.Model(&models.ReportLike{}).
				Where("report_id = ? AND user_id = ?", id, caller.ID).
				Count(&n)
			if n == 0 {
				return nil, apperr.Internal(err, "failed to like report")
			}
		}
		liked = true
	}

	s.notifier.ContentChanged()
	return &dto.LikeResponse{Likes: s.likeCount(id), UserHasLiked: liked}, nil
}

// Flag records a review flag. Unlike ToggleLike this is one-way: a
// repeat flag from the same user is a conflict, not a toggle.
func (s *ReportService) Flag(id uuid.UUID, caller authz.Caller) (*dto.FlagResponse, error) {
	if !caller.Authenticated {
		return nil, apperr.Unauthenticated("authentication required")
	}
	if _, err := s.load(id); err != nil {
		return nil, err
	}

	var existing int64
	s.db.Model(&models.ReportFlag{}).
		Where("report_id = ? AND user_id = ?", id, caller.ID).
		Count(&existing)
	if existing > 0 {
		return nil, apperr.Conflict("you have already flagged this report")
	}

	flag := models.ReportFlag{ReportID: id, UserID: caller.ID}
	if err := s.db.Create(&flag).Error; err != nil {
		// the unique index catches the race between check and insert;
		// anything else is a real store failure
		return nil, flagCreateError(err)
	}

	s.notifier.ContentChanged()
	return &dto.FlagResponse{
		Message: "report flagged for review",
		Flags:   s.flagCount(id),
	}, nil
}

// flagCreateError classifies a failed flag insert: a unique-index
// violation means the user already flagged, anything else is internal.
func flagCreateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Conflict("you have already flagged this report")
	}
	return apperr.Internal(err, "failed to flag report")
}

// DismissFlags clears every flag on a report without touching the
// report itself. Admin only, regardless of ownership.
func (s *ReportService) DismissFlags(id uuid.UUID, caller authz.Caller) error {
	if caller.Role != authz.RoleAdmin {
		return apperr.Forbidden("only admins may dismiss flags")
	}
	if _, err := s.load(id); err != nil {
		return err
	}

	if err := s.db.Where("report_id = ?", id).Delete(&models.ReportFlag{}).Error; err != nil {
		return apperr.Internal(err, "failed to dismiss flags")
	}
	s.notifier.ContentChanged()
	return nil
}

// ModerationQueue returns the private reports the caller may triage,
// newest first. Guests get an empty list, not an error.
func (s *ReportService) ModerationQueue(caller authz.Caller) ([]models.Report, error) {
	filter := authz.QueueFor(caller)
	if filter.Empty {
		return []models.Report{}, nil
	}

	var reports []models.Report
	err := s.db.Preload("University").Preload("Author").
		Scopes(filter.Scope()).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to load moderation queue")
	}
	return reports, nil
}

// FlaggedReports lists reports with a non-empty flag set for admin
// triage, most-flagged first, ties broken by recency.
func (s *ReportService) FlaggedReports(caller authz.Caller) ([]models.Report, map[uuid.UUID]int64, error) {
	if caller.Role != authz.RoleAdmin {
		return nil, nil, apperr.Forbidden("only admins may view flagged reports")
	}

	type flagRow struct {
		ReportID uuid.UUID
		Count    int64
	}
	var rows []flagRow
	err := s.db.Model(&models.ReportFlag{}).
		Select("report_id, COUNT(*) AS count").
		Group("report_id").
		Find(&rows).Error
	if err != nil {
		return nil, nil, apperr.Internal(err, "failed to count flags")
	}
	if len(rows) == 0 {
		return []models.Report{}, map[uuid.UUID]int64{}, nil
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		counts[r.ReportID] = r.Count
		ids = append(ids, r.ReportID)
	}

	var reports []models.Report
	if err := s.db.Preload("University").Preload("Author").
		Where("id IN ?", ids).
		Find(&reports).Error; err != nil {
		return nil, nil, apperr.Internal(err, "failed to load flagged reports")
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if counts[reports[i].ID] != counts[reports[j].ID] {
			return counts[reports[i].ID] > counts[reports[j].ID]
		}
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, counts, nil
}

// LikeCount exposes the like tally for projections built elsewhere.
func (s *ReportService) LikeCount(id uuid.UUID) int64 {
	return s.likeCount(id)
}

func (s *ReportService) load(id uuid.UUID) (*models.Report, error) {
	var report models.Report
	err := s.db.Preload("University").Preload("Author").First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("report not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load report")
	}
	return &report, nil
}

func (s *ReportService) requireMutate(authorID uuid.UUID, caller authz.Caller) error {
	if !caller.Authenticated {
		return apperr.Unauthenticated("authentication required")
	}
	if !authz.CanMutate(authorID, caller) {
		return apperr.Forbidden("user not authorized")
	}
	return nil
}

func (s *ReportService) resolveUniversity(idOrSentinel, otherName string) (uuid.UUID, error) {
	if idOrSentinel == UniversitySentinelOther {
		if strings.TrimSpace(otherName) == "" {
			return uuid.Nil, apperr.Validation("other_university_name", "please provide a name for the university")
		}
		return s.universities.ResolveOrCreate(otherName)
	}

	id, err := uuid.Parse(idOrSentinel)
	if err != nil {
		return uuid.Nil, apperr.Validation("university_id", "invalid university id")
	}
	if _, err := s.universities.Get(id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *ReportService) indexReport(r *models.Report) {
	if s.searcher == nil {
		return
	}
	if !r.IsPublic {
		// private reports never enter the public search index
		if err := s.searcher.DeleteReport(r.ID.String()); err != nil {
			slog.Warn("failed to remove private report from search index", "report_id", r.ID, "error", err)
		}
		return
	}
	doc := search.ReportDocument{
		ID:        r.ID.String(),
		Title:     r.Title,
		Body:      r.Body,
		IsPublic:  r.IsPublic,
		CreatedAt: r.CreatedAt.Unix(),
	}
	if err := s.searcher.IndexReport(doc); err != nil {
		slog.Warn("failed to index report", "report_id", r.ID, "error", err)
	}
}

func (s *ReportService) likeCount(id uuid.UUID) int64 {
	var n int64
	s.db.Model(&models.ReportLike{}).Where("report_id = ?", id).Count(&n)
	return n
}

func (s *ReportService) flagCount(id uuid.UUID) int64 {
	var n int64
	s.db.Model(&models.ReportFlag{}).Where("report_id = ?", id).Count(&n)
	return n
}

func (s *ReportService) likeCounts(ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	type likeRow struct {
		ReportID uuid.UUID
		Count    int64
	}
	var rows []likeRow
	err := s.db.Model(&models.ReportLike{}).
		Select("report_id, COUNT(*) AS count").
		Where("report_id IN ?", ids).
		Group("report_id").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to count likes")
	}
	for _, r := range rows {
		counts[r.ReportID] = r.Count
	}
	return counts, nil
}

func reportIDs(reports []models.Report) []uuid.UUID {
	ids := make([]uuid.UUID, len(reports))
	for i := range reports {
		ids[i] = reports[i].ID
	}
	return ids
}

func normalizeMedia(items []models.MediaItem) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(items))
	for _, m := range items {
		if strings.TrimSpace(m.URL) == "" {
			continue
		}
		if m.Kind != "image" && m.Kind != "file" {
			m.Kind = "image"
		}
		out = append(out, m)
	}
	return out
}
