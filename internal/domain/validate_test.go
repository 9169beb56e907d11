package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateEventInput(now time.Time) CreateEventInput {
	return CreateEventInput{
		Title:                "Desert Dunes Expedition",
		Description:          "Two days of dune driving in the high desert.",
		ShortDescription:     "Dune weekend",
		Date:                 now.Add(30 * 24 * time.Hour),
		Location:             Location{Address: "Glamis, CA"},
		Price:                250,
		MaxParticipants:      12,
		Difficulty:           DifficultyIntermediate,
		Duration:             "2 days",
		Status:               EventStatusDraft,
		RegistrationDeadline: now.Add(25 * 24 * time.Hour),
	}
}

func TestValidateNewEvent_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateNewEvent(validCreateEventInput(now), now))
}

func TestValidateNewEvent_CollectsAllViolations(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	in := validCreateEventInput(now)
	in.Title = ""
	in.Price = -1
	in.MaxParticipants = 0
	in.Difficulty = "ludicrous"

	err := ValidateNewEvent(in, now)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"title", "price", "max_participants", "difficulty"}, fields)
}

func TestValidateNewEvent_DateOrdering(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("past date", func(t *testing.T) {
		in := validCreateEventInput(now)
		in.Date = now.Add(-time.Hour)
		err := ValidateNewEvent(in, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date: must be in the future")
	})

	t.Run("deadline after date", func(t *testing.T) {
		in := validCreateEventInput(now)
		in.RegistrationDeadline = in.Date.Add(time.Hour)
		err := ValidateNewEvent(in, now)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registration_deadline")
	})

	t.Run("deadline equal to date rejected", func(t *testing.T) {
		in := validCreateEventInput(now)
		in.RegistrationDeadline = in.Date
		assert.Error(t, ValidateNewEvent(in, now))
	})
}

func TestValidateNewEvent_Status(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	in := validCreateEventInput(now)
	in.Status = EventStatusCompleted

	err := ValidateNewEvent(in, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestValidateNewEvent_PrimaryImages(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	in := validCreateEventInput(now)
	in.Images = []EventImage{
		{URL: "https://img.example.com/1.jpg", IsPrimary: true},
		{URL: "https://img.example.com/2.jpg", IsPrimary: true},
	}

	err := ValidateNewEvent(in, now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one image may be primary")

	in.Images[1].IsPrimary = false
	assert.NoError(t, ValidateNewEvent(in, now))
}

func validParticipantDetails() ParticipantDetails {
	return ParticipantDetails{
		Name:  "Alex Rivera",
		Email: "alex@example.com",
		Phone: "+15550001111",
		EmergencyContact: EmergencyContact{
			Name:         "Sam Rivera",
			Phone:        "+15550002222",
			Relationship: "spouse",
		},
		Experience: ExperienceIntermediate,
		Vehicle:    VehicleDetails{Make: "Toyota", Model: "4Runner", Year: 2019},
	}
}

func TestValidateParticipantDetails_Valid(t *testing.T) {
	assert.NoError(t, ValidateParticipantDetails(validParticipantDetails()))
}

func TestValidateParticipantDetails_CollectsAllViolations(t *testing.T) {
	d := ParticipantDetails{
		Email:   "not-an-email",
		Vehicle: VehicleDetails{Year: 1890},
	}

	err := ValidateParticipantDetails(d)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.GreaterOrEqual(t, len(vErr.Fields), 7)
}

func TestValidateParticipantDetails_VehicleYear(t *testing.T) {
	d := validParticipantDetails()

	d.Vehicle.Year = 1949
	assert.Error(t, ValidateParticipantDetails(d))

	d.Vehicle.Year = time.Now().Year() + 2
	assert.Error(t, ValidateParticipantDetails(d))

	d.Vehicle.Year = time.Now().Year() + 1
	assert.NoError(t, ValidateParticipantDetails(d))
}

func TestValidateNewContact(t *testing.T) {
	valid := CreateContactInput{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Group booking",
		Message: "Do you run private trips?",
	}
	assert.NoError(t, ValidateNewContact(valid))

	invalid := CreateContactInput{Email: "nope"}
	err := ValidateNewContact(invalid)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 4)
}

func TestValidateNewGalleryImage(t *testing.T) {
	valid := CreateGalleryImageInput{
		Title:    "Sunset climb",
		URL:      "https://img.example.com/sunset.jpg",
		Category: GalleryCategoryLandscapes,
	}
	assert.NoError(t, ValidateNewGalleryImage(valid))

	invalid := CreateGalleryImageInput{Category: "portraits"}
	err := ValidateNewGalleryImage(invalid)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 3)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.co"))
	assert.False(t, ValidEmail(""))
}
