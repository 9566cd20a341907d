package services

import (
	"errors"
	"strings"

	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/apperr"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/authz"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/models"
	"github.com/ShakilaNimanthaDilshan/Sample-AntiRag-Individual-Project/internal/notify"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService owns the threaded discussion under reports: comments
// and their nested replies. Replies live and die with their comment.
type CommentService struct {
	db       *gorm.DB
	filter   *ContentFilter
	notifier notify.Notifier
}

func NewCommentService(db *gorm.DB, filter *ContentFilter, notifier notify.Notifier) *CommentService {
	return &CommentService{db: db, filter: filter, notifier: notifier}
}

// AddComment posts a comment on a report the caller can see.
func (s *CommentService) AddComment(reportID uuid.UUID, caller authz.Caller, body string, anonymous bool) (*models.Comment, error) {
	if !caller.Authenticated {
		return nil, apperr.Unauthenticated("authentication required to comment")
	}
	if err := s.checkBody("comment", body); err != nil {
		return nil, err
	}
	if err := s.requireVisibleReport(reportID, caller); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ReportID:  reportID,
		AuthorID:  caller.ID,
		Anonymous: anonymous,
		Body:      body,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create comment")
	}

	s.notifier.ContentChanged()
	return s.loadComment(comment.ID)
}

// ListForReport returns the discussion for a visible report: comments
// newest first, replies inside each comment oldest first. The asymmetry
// is deliberate; replies read as a conversation.
func (s *CommentService) ListForReport(reportID uuid.UUID, caller authz.Caller) ([]models.Comment, error) {
	if err := s.requireVisibleReport(reportID, caller); err != nil {
		return nil, err
	}

	var comments []models.Comment
	err := s.db.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Replies.Author").
		Where("report_id = ?", reportID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, apperr.Internal(err, "failed to list comments")
	}
	return comments, nil
}

// UpdateComment edits a comment body. Only the comment's own author or
// an admin may edit; the parent report's owner gets no special right.
func (s *CommentService) UpdateComment(commentID uuid.UUID, caller authz.Caller, body string) (*models.Comment, error) {
	if err := s.checkBody("comment", body); err != nil {
		return nil, err
	}

	comment, err := s.loadComment(commentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMutate(comment.AuthorID, caller); err != nil {
		return nil, err
	}

	if err := s.db.Model(comment).Update("body", body).Error; err != nil {
		return nil, apperr.Internal(err, "failed to update comment")
	}

	s.notifier.ContentChanged()
	return s.loadComment(commentID)
}

// DeleteComment removes a comment and all its replies as one write.
func (s *CommentService) DeleteComment(commentID uuid.UUID, caller authz.Caller) error {
	comment, err := s.loadComment(commentID)
	if err != nil {
		return err
	}
	if err := s.requireMutate(comment.AuthorID, caller); err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
	if err != nil {
		return apperr.Internal(err, "failed to delete comment")
	}

	s.notifier.ContentChanged()
	return nil
}

// AddReply posts a reply under a comment. Visibility is checked against
// the parent report, one level up.
func (s *CommentService) AddReply(commentID uuid.UUID, caller authz.Caller, body string, anonymous bool) (*models.Reply, error) {
	if !caller.Authenticated {
		return nil, apperr.Unauthenticated("authentication required to reply")
	}
	if err := s.checkBody("reply", body); err != nil {
		return nil, err
	}

	comment, err := s.loadComment(commentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireVisibleReport(comment.ReportID, caller); err != nil {
		return nil, err
	}

	reply := models.Reply{
		CommentID: commentID,
		AuthorID:  caller.ID,
		Anonymous: anonymous,
		Body:      body,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create reply")
	}

	s.notifier.ContentChanged()
	return s.loadReply(commentID, reply.ID)
}

// UpdateReply edits a reply body, owner or admin only.
func (s *CommentService) UpdateReply(commentID, replyID uuid.UUID, caller authz.Caller, body string) (*models.Reply, error) {
	if err := s.checkBody("reply", body); err != nil {
		return nil, err
	}

	reply, err := s.loadReply(commentID, replyID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMutate(reply.AuthorID, caller); err != nil {
		return nil, err
	}

	if err := s.db.Model(reply).Update("body", body).Error; err != nil {
		return nil, apperr.Internal(err, "failed to update reply")
	}

	s.notifier.ContentChanged()
	return s.loadReply(commentID, replyID)
}

// DeleteReply removes a single reply, owner or admin only.
func (s *CommentService) DeleteReply(commentID, replyID uuid.UUID, caller authz.Caller) error {
	reply, err := s.loadReply(commentID, replyID)
	if err != nil {
		return err
	}
	if err := s.requireMutate(reply.AuthorID, caller); err != nil {
		return err
	}

	if err := s.db.Delete(reply).Error; err != nil {
		return apperr.Internal(err, "failed to delete reply")
	}

	s.notifier.ContentChanged()
	return nil
}

// checkBody validates a discussion body. It runs on every write path,
// creation and edit alike, so the spam filter cannot be bypassed by
// editing a clean body into spam.
func (s *CommentService) checkBody(kind, body string) error {
	if strings.TrimSpace(body) == "" {
		return apperr.Validation("body", kind+" body is required")
	}
	if reason := s.filter.Check(body); reason != "" {
		return apperr.Validation("body", reason)
	}
	return nil
}

func (s *CommentService) requireVisibleReport(reportID uuid.UUID, caller authz.Caller) error {
	var report models.Report
	err := s.db.First(&report, "id = ?", reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("report not found")
	}
	if err != nil {
		return apperr.Internal(err, "failed to load report")
	}
	if !authz.CanViewReport(&report, caller) {
		return apperr.Forbidden("you do not have permission to view this report")
	}
	return nil
}

func (s *CommentService) requireMutate(authorID uuid.UUID, caller authz.Caller) error {
	if !caller.Authenticated {
		return apperr.Unauthenticated("authentication required")
	}
	if !authz.CanMutate(authorID, caller) {
		return apperr.Forbidden("user not authorized")
	}
	return nil
}

func (s *CommentService) loadComment(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("replies.created_at ASC")
		}).
		Preload("Replies.Author").
		First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("comment not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load comment")
	}
	return &comment, nil
}

func (s *CommentService) loadReply(commentID, replyID uuid.UUID) (*models.Reply, error) {
	var reply models.Reply
	err := s.db.Preload("Author").
		First(&reply, "id = ? AND comment_id = ?", replyID, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("reply not found")
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load reply")
	}
	return &reply, nil
}
