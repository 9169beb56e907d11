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

func newContactService(t *testing.T) (*ContactService, *mocks.MockContactRepo, *mocks.MockNotifier) {
	t.Helper()
	repo := mocks.NewMockContactRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewContactService(repo, notifier, newTestLogger(t))
	svc.now = func() time.Time { return testNow }
	return svc, repo, notifier
}

func createContactInput() domain.CreateContactInput {
	return domain.CreateContactInput{
		Name:    "Jordan Lee",
		Email:   "jordan@example.com",
		Phone:   "+15550003333",
		Subject: "Group booking",
		Message: "Do you run private trips for clubs?",
	}
}

func TestContactService_Create_Success(t *testing.T) {
	svc, repo, notifier := newContactService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyContact(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().MarkNotified(mock.Anything, mock.Anything, testNow).Return(nil)

	contact, err := svc.Create(context.Background(), createContactInput())

	require.NoError(t, err)
	assert.NotEmpty(t, contact.ID)
	assert.Equal(t, domain.ContactStatusNew, contact.Status)
	assert.Equal(t, domain.ContactPriorityMedium, contact.Priority)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestContactService_Create_Invalid(t *testing.T) {
	svc, _, _ := newContactService(t)

	_, err := svc.Create(context.Background(), domain.CreateContactInput{Email: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactService_Create_NotifyFailureSkipsMark(t *testing.T) {
	svc, repo, notifier := newContactService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyContact(mock.Anything, mock.Anything).Return(assert.AnError)

	// MarkNotified must not be called when the notification failed; the mock
	// asserts no unexpected calls on cleanup.
	_, err := svc.Create(context.Background(), createContactInput())

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestContactService_Update_ResolvedStampsResponseDate(t *testing.T) {
	svc, repo, _ := newContactService(t)

	existing := &domain.Contact{ID: "c1", Status: domain.ContactStatusInProgress}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	resolved := domain.ContactStatusResolved
	contact, err := svc.Update(context.Background(), "c1", domain.UpdateContactInput{Status: &resolved})

	require.NoError(t, err)
	assert.Equal(t, domain.ContactStatusResolved, contact.Status)
	require.NotNil(t, contact.ResponseDate)
	assert.Equal(t, testNow, *contact.ResponseDate)
}

func TestContactService_Update_ResponseDateStampedOnce(t *testing.T) {
	svc, repo, _ := newContactService(t)

	first := testNow.Add(-24 * time.Hour)
	existing := &domain.Contact{ID: "c1", Status: domain.ContactStatusResolved, ResponseDate: &first}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	closed := domain.ContactStatusClosed
	contact, err := svc.Update(context.Background(), "c1", domain.UpdateContactInput{Status: &closed})

	require.NoError(t, err)
	require.NotNil(t, contact.ResponseDate)
	assert.Equal(t, first, *contact.ResponseDate)
}

func TestContactService_Update_InvalidStatus(t *testing.T) {
	svc, _, _ := newContactService(t)

	bad := domain.ContactStatus("spam")
	_, err := svc.Update(context.Background(), "c1", domain.UpdateContactInput{Status: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactService_Update_PriorityAndNotes(t *testing.T) {
	svc, repo, _ := newContactService(t)

	existing := &domain.Contact{ID: "c1", Status: domain.ContactStatusNew, Priority: domain.ContactPriorityMedium}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	urgent := domain.ContactPriorityUrgent
	notes := "called back, waiting on club roster"
	contact, err := svc.Update(context.Background(), "c1", domain.UpdateContactInput{
		Priority:   &urgent,
		AdminNotes: &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ContactPriorityUrgent, contact.Priority)
	assert.Equal(t, notes, contact.AdminNotes)
	assert.Nil(t, contact.ResponseDate)
}

func TestContactService_Update_NotFound(t *testing.T) {
	svc, repo, _ := newContactService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrContactNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateContactInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}
