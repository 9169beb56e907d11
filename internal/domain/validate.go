package domain

import (
	"regexp"
	"time"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(s string) bool { return emailRe.MatchString(s) }

// ValidateNewEvent checks every constraint on event creation and returns a
// ValidationError listing all violations, or nil.
func ValidateNewEvent(in CreateEventInput, now time.Time) error {
	var v ValidationError

	if in.Title == "" {
		v.Add("title", "is required")
	}
	if in.Description == "" {
		v.Add("description", "is required")
	}
	if in.ShortDescription == "" {
		v.Add("short_description", "is required")
	}
	if in.Location.Address == "" {
		v.Add("location.address", "is required")
	}
	if in.Date.IsZero() {
		v.Add("date", "is required")
	} else if !in.Date.After(now) {
		v.Add("date", "must be in the future")
	}
	if in.RegistrationDeadline.IsZero() {
		v.Add("registration_deadline", "is required")
	} else if !in.Date.IsZero() && !in.RegistrationDeadline.Before(in.Date) {
		v.Add("registration_deadline", "must precede the event date")
	}
	if in.Price < 0 {
		v.Add("price", "must not be negative")
	}
	if in.MaxParticipants < 1 {
		v.Add("max_participants", "must be at least 1")
	}
	if !in.Difficulty.Valid() {
		v.Add("difficulty", "must be one of beginner, intermediate, advanced, expert")
	}
	if in.Status != EventStatusDraft && in.Status != EventStatusActive {
		v.Add("status", "must be draft or active at creation")
	}
	if n := PrimaryImageCount(in.Images); n > 1 {
		v.Add("images", "at most one image may be primary")
	}
	for _, img := range in.Images {
		if img.URL == "" {
			v.Add("images", "image url is required")
			break
		}
	}

	return v.AsError()
}

// ValidateEventTiming re-checks the date ordering whenever date or deadline
// change on an existing event.
func ValidateEventTiming(date, deadline, now time.Time) error {
	var v ValidationError

	if !date.After(now) {
		v.Add("date", "must be in the future")
	}
	if !deadline.Before(date) {
		v.Add("registration_deadline", "must precede the event date")
	}

	return v.AsError()
}

func PrimaryImageCount(images []EventImage) int {
	n := 0
	for _, img := range images {
		if img.IsPrimary {
			n++
		}
	}
	return n
}

// ValidateParticipantDetails checks the participant payload of a registration.
func ValidateParticipantDetails(d ParticipantDetails) error {
	var v ValidationError

	if d.Name == "" {
		v.Add("participant_details.name", "is required")
	}
	if d.Email == "" {
		v.Add("participant_details.email", "is required")
	} else if !ValidEmail(d.Email) {
		v.Add("participant_details.email", "is not a valid email address")
	}
	if d.Phone == "" {
		v.Add("participant_details.phone", "is required")
	}
	if d.EmergencyContact.Name == "" {
		v.Add("participant_details.emergency_contact.name", "is required")
	}
	if d.EmergencyContact.Phone == "" {
		v.Add("participant_details.emergency_contact.phone", "is required")
	}
	if d.EmergencyContact.Relationship == "" {
		v.Add("participant_details.emergency_contact.relationship", "is required")
	}
	if !d.Experience.Valid() {
		v.Add("participant_details.experience", "must be one of beginner, intermediate, advanced, expert")
	}
	if d.Vehicle.Make == "" {
		v.Add("participant_details.vehicle.make", "is required")
	}
	if d.Vehicle.Model == "" {
		v.Add("participant_details.vehicle.model", "is required")
	}
	if d.Vehicle.Year < 1950 || d.Vehicle.Year > time.Now().Year()+1 {
		v.Add("participant_details.vehicle.year", "is out of range")
	}

	return v.AsError()
}

func ValidateNewContact(in CreateContactInput) error {
	var v ValidationError

	if in.Name == "" {
		v.Add("name", "is required")
	}
	if in.Email == "" {
		v.Add("email", "is required")
	} else if !ValidEmail(in.Email) {
		v.Add("email", "is not a valid email address")
	}
	if in.Subject == "" {
		v.Add("subject", "is required")
	}
	if in.Message == "" {
		v.Add("message", "is required")
	}

	return v.AsError()
}

func ValidateNewGalleryImage(in CreateGalleryImageInput) error {
	var v ValidationError

	if in.Title == "" {
		v.Add("title", "is required")
	}
	if in.URL == "" {
		v.Add("url", "is required")
	}
	if !in.Category.Valid() {
		v.Add("category", "must be one of events, vehicles, landscapes, camp, action")
	}

	return v.AsError()
}
