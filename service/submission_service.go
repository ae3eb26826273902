package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"showoffs-backend/models"
)

// ValidationError reports a missing or malformed submission field
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ReviewStore persists submitted reviews
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
}

// MeetingStore persists submitted meeting requests
type MeetingStore interface {
	Create(ctx context.Context, meeting *models.Meeting) error
}

// SubmissionService handles the public review and booking endpoints
type SubmissionService struct {
	reviewStore  ReviewStore
	meetingStore MeetingStore
}

// SubmissionServiceOption is a functional option for SubmissionService
type SubmissionServiceOption func(*SubmissionService)

// WithReviewStore sets the review store
func WithReviewStore(store ReviewStore) SubmissionServiceOption {
	return func(s *SubmissionService) {
		s.reviewStore = store
	}
}

// WithMeetingStore sets the meeting store
func WithMeetingStore(store MeetingStore) SubmissionServiceOption {
	return func(s *SubmissionService) {
		s.meetingStore = store
	}
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(opts ...SubmissionServiceOption) *SubmissionService {
	s := &SubmissionService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClampRating rounds a submitted rating and forces it into [1, 5]
func ClampRating(rating float64) int {
	r := int(math.Round(rating))
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

// trimMax trims surrounding whitespace and truncates to max runes
func trimMax(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max])
	}
	return s
}

// SubmitReviewRequest is a public review submission
type SubmitReviewRequest struct {
	ClientName  string
	Rating      float64
	Content     string
	ProjectType string
}

// SubmitReview validates, clamps and stores a public review. New reviews
// are always unapproved until an admin approves them.
func (s *SubmissionService) SubmitReview(ctx context.Context, req SubmitReviewRequest) (*models.Review, error) {
	if strings.TrimSpace(req.ClientName) == "" {
		return nil, &ValidationError{Message: "client_name is required"}
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, &ValidationError{Message: "content is required"}
	}

	review := &models.Review{
		ClientName: trimMax(req.ClientName, 500),
		Rating:     ClampRating(req.Rating),
		Content:    trimMax(req.Content, 5000),
		Approved:   false,
	}
	if pt := trimMax(req.ProjectType, 200); pt != "" {
		review.ProjectType = &pt
	}

	if s.reviewStore == nil {
		return nil, fmt.Errorf("review store not set")
	}
	if err := s.reviewStore.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// SubmitMeetingRequest is a public booking submission
type SubmitMeetingRequest struct {
	Name          string
	Email         string
	Phone         string
	ProjectType   string
	BudgetRange   string
	PreferredDate string
	PreferredTime string
	Message       string
	BriefFileURL  string
}

// SubmitMeeting validates and stores a booking request. When no database
// is configured the submission still reports success with a synthetic id
// so the public form never breaks; the payload is logged and dropped.
func (s *SubmissionService) SubmitMeeting(ctx context.Context, req SubmitMeetingRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.ProjectType) == "" {
		return "", &ValidationError{Message: "missing required fields: name, email, projectType"}
	}

	if s.meetingStore == nil {
		log.Printf("Warning: database not configured; meeting from %s not persisted", req.Email)
		return fmt.Sprintf("demo-%d", time.Now().UnixMilli()), nil
	}

	meeting := &models.Meeting{
		ClientName:  strings.TrimSpace(req.Name),
		ClientEmail: strings.TrimSpace(req.Email),
		ProjectType: strings.TrimSpace(req.ProjectType),
		Status:      models.MeetingStatusPending,
	}
	setOptional(&meeting.ClientPhone, req.Phone)
	setOptional(&meeting.BudgetRange, req.BudgetRange)
	setOptional(&meeting.PreferredDate, req.PreferredDate)
	setOptional(&meeting.PreferredTimeSlot, req.PreferredTime)
	setOptional(&meeting.Message, req.Message)
	setOptional(&meeting.BriefFileURL, req.BriefFileURL)

	if err := s.meetingStore.Create(ctx, meeting); err != nil {
		return "", err
	}
	return meeting.ID.String(), nil
}

func setOptional(dst **string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = &v
	}
}
