package domain

import (
	"math"
	"time"
)

// CancellationNoticeDays is the minimum number of whole days between a
// cancellation and the event date.
const CancellationNoticeDays = 3

// IsRegistrationOpen reports why an event does not accept registrations, or
// nil when it does. Pure: no store access, callers pass the clock.
func IsRegistrationOpen(e *Event, now time.Time) error {
	if now.After(e.RegistrationDeadline) {
		return ErrRegistrationClosed
	}
	if e.Status != EventStatusActive {
		return ErrRegistrationClosed
	}
	if e.CurrentParticipants >= e.MaxParticipants {
		return ErrEventFull
	}
	return nil
}

// IsCancellationAllowed applies the whole-day notice rule: the remaining time
// until the event, rounded up to whole days, must be at least
// CancellationNoticeDays. A cancellation exactly 3.0 days out is allowed.
func IsCancellationAllowed(eventDate, now time.Time) bool {
	daysLeft := int(math.Ceil(eventDate.Sub(now).Hours() / 24))
	return daysLeft >= CancellationNoticeDays
}

// registrationTransitions: pending -> confirmed -> completed, with cancelled
// reachable from pending or confirmed. Cancelled and completed are terminal.
var registrationTransitions = map[RegistrationStatus][]RegistrationStatus{
	RegistrationStatusPending:   {RegistrationStatusConfirmed, RegistrationStatusCancelled},
	RegistrationStatusConfirmed: {RegistrationStatusCompleted, RegistrationStatusCancelled},
}

func CanTransitionRegistration(from, to RegistrationStatus) bool {
	for _, t := range registrationTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// FreesSeat reports whether a status change must release the participant slot
// counted at registration time. Seats are counted at registration, not at
// confirmation, so only leaving the confirmed state gives one back.
func FreesSeat(from, to RegistrationStatus) bool {
	return from == RegistrationStatusConfirmed && to != RegistrationStatusConfirmed
}
