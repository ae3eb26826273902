package service

import (
	"context"
	"strings"
	"testing"

	"showoffs-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewStore struct {
	created *models.Review
	err     error
}

func (f *fakeReviewStore) Create(ctx context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	review.ID = uuid.New()
	f.created = review
	return nil
}

type fakeMeetingStore struct {
	created *models.Meeting
	err     error
}

func (f *fakeMeetingStore) Create(ctx context.Context, meeting *models.Meeting) error {
	if f.err != nil {
		return f.err
	}
	meeting.ID = uuid.New()
	f.created = meeting
	return nil
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{9, 5},
		{0, 1},
		{-3, 1},
		{1, 1},
		{5, 5},
		{3, 3},
		{3.6, 4},
		{4.4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampRating(tt.in), "rating %v", tt.in)
	}
}

func TestSubmitReviewRequiresContent(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewSubmissionService(WithReviewStore(store))

	_, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		ClientName: "Alex",
		Rating:     5,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "content")
	assert.Nil(t, store.created)
}

func TestSubmitReviewRequiresClientName(t *testing.T) {
	svc := NewSubmissionService(WithReviewStore(&fakeReviewStore{}))

	_, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		Content: "Great work",
		Rating:  5,
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "client_name")
}

func TestSubmitReviewStoresUnapprovedAndClamped(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewSubmissionService(WithReviewStore(store))

	review, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		ClientName:  "  Alex Rivera  ",
		Rating:      9,
		Content:     "  Loved the reel.  ",
		ProjectType: "Reels",
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)

	assert.NotEqual(t, uuid.Nil, review.ID)
	assert.False(t, review.Approved)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "Alex Rivera", review.ClientName)
	assert.Equal(t, "Loved the reel.", review.Content)
	require.NotNil(t, review.ProjectType)
	assert.Equal(t, "Reels", *review.ProjectType)
}

func TestSubmitReviewTruncatesLongFields(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewSubmissionService(WithReviewStore(store))

	review, err := svc.SubmitReview(context.Background(), SubmitReviewRequest{
		ClientName: strings.Repeat("a", 600),
		Rating:     4,
		Content:    strings.Repeat("b", 6000),
	})
	require.NoError(t, err)

	assert.Len(t, review.ClientName, 500)
	assert.Len(t, review.Content, 5000)
}

func TestSubmitMeetingRequiresFields(t *testing.T) {
	svc := NewSubmissionService(WithMeetingStore(&fakeMeetingStore{}))

	_, err := svc.SubmitMeeting(context.Background(), SubmitMeetingRequest{
		Name: "Alex",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSubmitMeetingPersists(t *testing.T) {
	store := &fakeMeetingStore{}
	svc := NewSubmissionService(WithMeetingStore(store))

	id, err := svc.SubmitMeeting(context.Background(), SubmitMeetingRequest{
		Name:        "Alex",
		Email:       "alex@example.com",
		ProjectType: "Commercial",
		BudgetRange: "5k-10k",
	})
	require.NoError(t, err)
	require.NotNil(t, store.created)

	assert.Equal(t, store.created.ID.String(), id)
	assert.Equal(t, models.MeetingStatusPending, store.created.Status)
	require.NotNil(t, store.created.BudgetRange)
	assert.Equal(t, "5k-10k", *store.created.BudgetRange)
	assert.Nil(t, store.created.ClientPhone)
}

func TestSubmitMeetingWithoutDatabaseReportsSuccess(t *testing.T) {
	svc := NewSubmissionService()

	id, err := svc.SubmitMeeting(context.Background(), SubmitMeetingRequest{
		Name:        "Alex",
		Email:       "alex@example.com",
		ProjectType: "Commercial",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "demo-"))
}
