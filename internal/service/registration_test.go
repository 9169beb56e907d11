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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockNotifier) {
	t.Helper()
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockNotifier(t)

	svc := NewRegistrationService(regRepo, eventRepo, notifier, newTestLogger(t))
	svc.now = func() time.Time { return testNow }

	return svc, regRepo, eventRepo, notifier
}

func openEvent() *domain.Event {
	return &domain.Event{
		ID:                   "e1",
		Title:                "Rock Crawl Weekend",
		Status:               domain.EventStatusActive,
		Price:                199.50,
		MaxParticipants:      10,
		CurrentParticipants:  4,
		Date:                 testNow.Add(10 * 24 * time.Hour),
		RegistrationDeadline: testNow.Add(7 * 24 * time.Hour),
	}
}

func registerInput() domain.RegisterInput {
	return domain.RegisterInput{
		EventID: "e1",
		UserID:  "u1",
		Details: domain.ParticipantDetails{
			Name:  "Alex Rivera",
			Email: "alex@example.com",
			Phone: "+15550001111",
			EmergencyContact: domain.EmergencyContact{
				Name:         "Sam Rivera",
				Phone:        "+15550002222",
				Relationship: "spouse",
			},
			Experience: domain.ExperienceIntermediate,
			Vehicle:    domain.VehicleDetails{Make: "Jeep", Model: "Wrangler", Year: 2021},
		},
		WaiverSigned: true,
	}
}

func TestRegistrationService_Register_Success(t *testing.T) {
	svc, regRepo, eventRepo, notifier := newRegistrationService(t)

	event := openEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistration(mock.Anything, mock.Anything, event).Return(nil)

	reg, err := svc.Register(context.Background(), registerInput())

	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)
	assert.Equal(t, domain.PaymentStatusPending, reg.Payment)
	assert.Equal(t, event.Price, reg.PaymentAmount)
	assert.Equal(t, testNow, reg.RegisteredAt)
	assert.True(t, reg.WaiverSigned)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_PriceSnapshot(t *testing.T) {
	svc, regRepo, eventRepo, notifier := newRegistrationService(t)

	event := openEvent()
	event.Price = 300
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistration(mock.Anything, mock.Anything, event).Return(nil)

	reg, err := svc.Register(context.Background(), registerInput())

	require.NoError(t, err)
	assert.Equal(t, 300.0, reg.PaymentAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Register_InvalidDetails(t *testing.T) {
	svc, _, _, _ := newRegistrationService(t)

	in := registerInput()
	in.Details.Email = "not-an-email"
	in.Details.Vehicle.Make = ""

	_, err := svc.Register(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), registerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_DeadlinePassed(t *testing.T) {
	svc, _, eventRepo, _ := newRegistrationService(t)

	event := openEvent()
	event.RegistrationDeadline = testNow.Add(-time.Hour)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Register(context.Background(), registerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegistrationService_Register_InactiveEvent(t *testing.T) {
	svc, _, eventRepo, _ := newRegistrationService(t)

	event := openEvent()
	event.Status = domain.EventStatusDraft
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Register(context.Background(), registerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
}

func TestRegistrationService_Register_EventFull(t *testing.T) {
	svc, _, eventRepo, _ := newRegistrationService(t)

	event := openEvent()
	event.CurrentParticipants = event.MaxParticipants
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Register(context.Background(), registerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Register_LostRace(t *testing.T) {
	svc, regRepo, eventRepo, _ := newRegistrationService(t)

	// The open-check saw a free seat but the conditional increment in the
	// repository lost the race for it.
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEventFull)

	_, err := svc.Register(context.Background(), registerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	svc, regRepo, eventRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), registerInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Register_NotifyFailureDoesNotFail(t *testing.T) {
	svc, regRepo, eventRepo, notifier := newRegistrationService(t)

	event := openEvent()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRegistration(mock.Anything, mock.Anything, event).Return(assert.AnError)

	_, err := svc.Register(context.Background(), registerInput())

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Get_Owner(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", UserID: "u1"}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	got, err := svc.Get(context.Background(), "r1", "u1", false)

	require.NoError(t, err)
	assert.Equal(t, reg, got)
}

func TestRegistrationService_Get_ForbiddenForOtherUser(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Registration{ID: "r1", UserID: "u1"}, nil)

	_, err := svc.Get(context.Background(), "r1", "u2", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Get_AdminSeesAny(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", UserID: "u1"}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	got, err := svc.Get(context.Background(), "r1", "admin", true)

	require.NoError(t, err)
	assert.Equal(t, reg, got)
}

func TestRegistrationService_List_ScopesNonAdmin(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	regRepo.EXPECT().List(mock.Anything, domain.RegistrationFilter{EventID: "e1", UserID: "u1"}).
		Return([]*domain.Registration{}, nil)

	// The caller asked for someone else's registrations; the filter is forced
	// back to their own.
	_, err := svc.List(context.Background(), domain.RegistrationFilter{EventID: "e1", UserID: "u2"}, "u1", false)

	require.NoError(t, err)
}

func TestRegistrationService_List_AdminKeepsFilter(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	f := domain.RegistrationFilter{EventID: "e1", UserID: "u2"}
	regRepo.EXPECT().List(mock.Anything, f).Return([]*domain.Registration{}, nil)

	_, err := svc.List(context.Background(), f, "admin", true)

	require.NoError(t, err)
}

func TestRegistrationService_ChangeStatus_ConfirmDoesNotTouchCounter(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusPending}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, reg, domain.RegistrationStatusConfirmed, false).Return(nil)

	got, err := svc.ChangeStatus(context.Background(), "r1", domain.RegistrationStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusConfirmed, got.Status)
}

func TestRegistrationService_ChangeStatus_LeavingConfirmedFreesSeat(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", Status: domain.RegistrationStatusConfirmed}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, reg, domain.RegistrationStatusCompleted, true).Return(nil)

	got, err := svc.ChangeStatus(context.Background(), "r1", domain.RegistrationStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusCompleted, got.Status)
}

func TestRegistrationService_ChangeStatus_IllegalTransition(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", Status: domain.RegistrationStatusCancelled}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	_, err := svc.ChangeStatus(context.Background(), "r1", domain.RegistrationStatusConfirmed)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestRegistrationService_ChangeStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newRegistrationService(t)

	_, err := svc.ChangeStatus(context.Background(), "r1", "archived")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_Cancel_ConfirmedFreesSeat(t *testing.T) {
	svc, regRepo, eventRepo, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusConfirmed}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, reg, domain.RegistrationStatusCancelled, true).Return(nil)

	err := svc.Cancel(context.Background(), "r1", "u1", false)

	require.NoError(t, err)
}

func TestRegistrationService_Cancel_PendingDoesNotFreeSeat(t *testing.T) {
	svc, regRepo, eventRepo, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusPending}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, reg, domain.RegistrationStatusCancelled, false).Return(nil)

	err := svc.Cancel(context.Background(), "r1", "u1", false)

	require.NoError(t, err)
}

func TestRegistrationService_Cancel_ForbiddenForOtherUser(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusConfirmed}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	err := svc.Cancel(context.Background(), "r1", "u2", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegistrationService_Cancel_AdminMayCancelAny(t *testing.T) {
	svc, regRepo, eventRepo, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusPending}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(openEvent(), nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, reg, domain.RegistrationStatusCancelled, false).Return(nil)

	err := svc.Cancel(context.Background(), "r1", "someone-else", true)

	require.NoError(t, err)
}

func TestRegistrationService_Cancel_InsideNoticeWindow(t *testing.T) {
	svc, regRepo, eventRepo, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusConfirmed}
	event := openEvent()
	event.Date = testNow.Add(48 * time.Hour)

	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := svc.Cancel(context.Background(), "r1", "u1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCancellationWindow)
}

func TestRegistrationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.RegistrationStatusCancelled}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)

	err := svc.Cancel(context.Background(), "r1", "u1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestRegistrationService_UpdatePayment_PaidStampsDate(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	reg := &domain.Registration{ID: "r1", Payment: domain.PaymentStatusPending}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	regRepo.EXPECT().UpdatePayment(mock.Anything, "r1", domain.PaymentStatusPaid, &testNow).Return(nil)

	got, err := svc.UpdatePayment(context.Background(), "r1", domain.PaymentStatusPaid)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, got.Payment)
	require.NotNil(t, got.PaymentDate)
	assert.Equal(t, testNow, *got.PaymentDate)
}

func TestRegistrationService_UpdatePayment_RefundKeepsDate(t *testing.T) {
	svc, regRepo, _, _ := newRegistrationService(t)

	paidAt := testNow.Add(-24 * time.Hour)
	reg := &domain.Registration{ID: "r1", Payment: domain.PaymentStatusPaid, PaymentDate: &paidAt}
	regRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	regRepo.EXPECT().UpdatePayment(mock.Anything, "r1", domain.PaymentStatusRefunded, (*time.Time)(nil)).Return(nil)

	got, err := svc.UpdatePayment(context.Background(), "r1", domain.PaymentStatusRefunded)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRefunded, got.Payment)
	require.NotNil(t, got.PaymentDate)
	assert.Equal(t, paidAt, *got.PaymentDate)
}

func TestRegistrationService_UpdatePayment_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newRegistrationService(t)

	_, err := svc.UpdatePayment(context.Background(), "r1", "comped")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
