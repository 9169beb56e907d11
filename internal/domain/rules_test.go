package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRegistrationOpen(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	base := Event{
		Status:               EventStatusActive,
		MaxParticipants:      10,
		CurrentParticipants:  5,
		RegistrationDeadline: now.Add(24 * time.Hour),
	}

	tests := []struct {
		name    string
		mutate  func(e *Event)
		wantErr error
	}{
		{
			name:    "open",
			mutate:  func(e *Event) {},
			wantErr: nil,
		},
		{
			name:    "deadline passed",
			mutate:  func(e *Event) { e.RegistrationDeadline = now.Add(-time.Minute) },
			wantErr: ErrRegistrationClosed,
		},
		{
			name: "deadline passed on full event reports closed",
			mutate: func(e *Event) {
				e.RegistrationDeadline = now.Add(-time.Minute)
				e.CurrentParticipants = e.MaxParticipants
			},
			wantErr: ErrRegistrationClosed,
		},
		{
			name:    "draft event",
			mutate:  func(e *Event) { e.Status = EventStatusDraft },
			wantErr: ErrRegistrationClosed,
		},
		{
			name:    "cancelled event",
			mutate:  func(e *Event) { e.Status = EventStatusCancelled },
			wantErr: ErrRegistrationClosed,
		},
		{
			name:    "completed event",
			mutate:  func(e *Event) { e.Status = EventStatusCompleted },
			wantErr: ErrRegistrationClosed,
		},
		{
			name:    "full",
			mutate:  func(e *Event) { e.CurrentParticipants = e.MaxParticipants },
			wantErr: ErrEventFull,
		},
		{
			name:    "last seat still open",
			mutate:  func(e *Event) { e.CurrentParticipants = e.MaxParticipants - 1 },
			wantErr: nil,
		},
		{
			name:    "deadline exactly now",
			mutate:  func(e *Event) { e.RegistrationDeadline = now },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := base
			tt.mutate(&e)

			err := IsRegistrationOpen(&e, now)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestIsCancellationAllowed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventDate time.Time
		want      bool
	}{
		{"four days out", now.Add(4 * 24 * time.Hour), true},
		{"exactly three days out", now.Add(3 * 24 * time.Hour), true},
		{"just under three days rounds up", now.Add(3*24*time.Hour - time.Hour), true},
		{"two days out", now.Add(2 * 24 * time.Hour), false},
		{"just over two days rounds up to three", now.Add(2*24*time.Hour + time.Minute), true},
		{"same day", now.Add(2 * time.Hour), false},
		{"event already passed", now.Add(-24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCancellationAllowed(tt.eventDate, now))
		})
	}
}

func TestCanTransitionRegistration(t *testing.T) {
	tests := []struct {
		from RegistrationStatus
		to   RegistrationStatus
		want bool
	}{
		{RegistrationStatusPending, RegistrationStatusConfirmed, true},
		{RegistrationStatusPending, RegistrationStatusCancelled, true},
		{RegistrationStatusPending, RegistrationStatusCompleted, false},
		{RegistrationStatusPending, RegistrationStatusPending, false},
		{RegistrationStatusConfirmed, RegistrationStatusCompleted, true},
		{RegistrationStatusConfirmed, RegistrationStatusCancelled, true},
		{RegistrationStatusConfirmed, RegistrationStatusPending, false},
		{RegistrationStatusCancelled, RegistrationStatusPending, false},
		{RegistrationStatusCancelled, RegistrationStatusConfirmed, false},
		{RegistrationStatusCompleted, RegistrationStatusCancelled, false},
		{RegistrationStatusCompleted, RegistrationStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionRegistration(tt.from, tt.to))
		})
	}
}

func TestFreesSeat(t *testing.T) {
	assert.True(t, FreesSeat(RegistrationStatusConfirmed, RegistrationStatusCancelled))
	assert.True(t, FreesSeat(RegistrationStatusConfirmed, RegistrationStatusCompleted))
	assert.False(t, FreesSeat(RegistrationStatusPending, RegistrationStatusCancelled))
	assert.False(t, FreesSeat(RegistrationStatusPending, RegistrationStatusConfirmed))
}

func TestEvent_AvailableSpots(t *testing.T) {
	e := Event{MaxParticipants: 10, CurrentParticipants: 7}
	assert.Equal(t, 3, e.AvailableSpots())
	assert.False(t, e.IsFull())

	e.CurrentParticipants = 10
	assert.Equal(t, 0, e.AvailableSpots())
	assert.True(t, e.IsFull())
}

func TestValidationError_CollectsFields(t *testing.T) {
	var v ValidationError
	assert.NoError(t, v.AsError())

	v.Add("title", "is required")
	v.Add("price", "must not be negative")

	err := v.AsError()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 2)
}
