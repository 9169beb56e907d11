package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/service/ports/mocks"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, repo
}

func createEventInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:                "Desert Dunes Expedition",
		Description:          "Two days of dune driving in the high desert.",
		ShortDescription:     "Dune weekend",
		Date:                 testNow.Add(30 * 24 * time.Hour),
		Location:             domain.Location{Address: "Glamis, CA"},
		Price:                250,
		MaxParticipants:      12,
		Difficulty:           domain.DifficultyIntermediate,
		Duration:             "2 days",
		RegistrationDeadline: testNow.Add(25 * 24 * time.Hour),
	}
}

func TestEventService_Create_Success(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), createEventInput(), "admin-1")

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusDraft, event.Status) // default when unset
	assert.Equal(t, "admin-1", event.CreatedBy)
	assert.Equal(t, 0, event.CurrentParticipants)
}

func TestEventService_Create_ExplicitActive(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	in := createEventInput()
	in.Status = domain.EventStatusActive

	event, err := svc.Create(context.Background(), in, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusActive, event.Status)
}

func TestEventService_Create_ReportsAllViolations(t *testing.T) {
	svc, _ := newEventService(t)

	in := createEventInput()
	in.Title = ""
	in.Price = -5
	in.MaxParticipants = 0

	_, err := svc.Create(context.Background(), in, "admin-1")

	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
}

func TestEventService_Create_PastDate(t *testing.T) {
	svc, _ := newEventService(t)

	in := createEventInput()
	in.Date = testNow.Add(-time.Hour)

	_, err := svc.Create(context.Background(), in, "admin-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_PartialFields(t *testing.T) {
	svc, repo := newEventService(t)

	existing := &domain.Event{
		ID:                   "e1",
		Title:                "Old title",
		Price:                100,
		MaxParticipants:      10,
		CurrentParticipants:  3,
		Difficulty:           domain.DifficultyBeginner,
		Status:               domain.EventStatusActive,
		Date:                 testNow.Add(20 * 24 * time.Hour),
		RegistrationDeadline: testNow.Add(15 * 24 * time.Hour),
	}

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	newTitle := "New title"
	newPrice := 150.0

	event, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{
		Title: &newTitle,
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", event.Title)
	assert.Equal(t, 150.0, event.Price)
	assert.Equal(t, 10, event.MaxParticipants)
	assert.Equal(t, 3, event.CurrentParticipants)
}

func TestEventService_Update_TimingRevalidated(t *testing.T) {
	svc, repo := newEventService(t)

	existing := &domain.Event{
		ID:                   "e1",
		Status:               domain.EventStatusActive,
		Date:                 testNow.Add(20 * 24 * time.Hour),
		RegistrationDeadline: testNow.Add(15 * 24 * time.Hour),
	}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	// Moving the date before the existing deadline breaks the ordering.
	newDate := testNow.Add(10 * 24 * time.Hour)

	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{Date: &newDate})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_InvalidPrice(t *testing.T) {
	svc, repo := newEventService(t)

	existing := &domain.Event{ID: "e1", Status: domain.EventStatusActive}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)

	bad := -10.0
	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{Price: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_NotFound(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateEventInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_ChangeStatus_Success(t *testing.T) {
	svc, repo := newEventService(t)

	existing := &domain.Event{ID: "e1", Status: domain.EventStatusDraft}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "e1", domain.EventStatusActive).Return(nil)

	event, err := svc.ChangeStatus(context.Background(), "e1", domain.EventStatusActive)

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusActive, event.Status)
}

func TestEventService_ChangeStatus_InvalidStatus(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.ChangeStatus(context.Background(), "e1", "archived")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Delete_Success(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
}

func TestEventService_Delete_HasRegistrations(t *testing.T) {
	svc, repo := newEventService(t)

	repo.EXPECT().Delete(mock.Anything, "e1").Return(domain.ErrEventHasRegistrations)

	err := svc.Delete(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventHasRegistrations)
}

func TestEventService_CompletePastEvents(t *testing.T) {
	svc, repo := newEventService(t)

	completed := []*domain.Event{
		{ID: "e1", Title: "Past trip", Status: domain.EventStatusCompleted},
	}
	repo.EXPECT().CompletePast(mock.Anything).Return(completed, nil)

	result, err := svc.CompletePastEvents(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
