package dto

import "github.com/trailcrew/offroad-backend/internal/domain"

// Field-level business validation lives in the domain layer so every
// violation can be reported at once; binding tags here only guard shape.

type LocationPayload struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

func (p LocationPayload) ToDomain() domain.Location {
	loc := domain.Location{Address: p.Address}
	if p.Lat != nil && p.Lng != nil {
		loc.Coordinates = &domain.Coordinates{Lat: *p.Lat, Lng: *p.Lng}
	}
	return loc
}

type EventImagePayload struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
}

func toDomainImages(imgs []EventImagePayload) []domain.EventImage {
	if imgs == nil {
		return nil
	}
	res := make([]domain.EventImage, len(imgs))
	for i, img := range imgs {
		res[i] = domain.EventImage{URL: img.URL, AltText: img.AltText, IsPrimary: img.IsPrimary}
	}
	return res
}

type CreateEventRequest struct {
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	ShortDescription     string              `json:"short_description"`
	Date                 string              `json:"date"`
	Location             LocationPayload     `json:"location"`
	Price                float64             `json:"price"`
	MaxParticipants      int                 `json:"max_participants"`
	Difficulty           string              `json:"difficulty"`
	Duration             string              `json:"duration"`
	Images               []EventImagePayload `json:"images"`
	Equipment            []string            `json:"equipment"`
	Requirements         []string            `json:"requirements"`
	Includes             []string            `json:"includes"`
	Status               string              `json:"status"`
	RegistrationDeadline string              `json:"registration_deadline"`
	Tags                 []string            `json:"tags"`
}

type UpdateEventRequest struct {
	Title                *string             `json:"title"`
	Description          *string             `json:"description"`
	ShortDescription     *string             `json:"short_description"`
	Date                 *string             `json:"date"`
	Location             *LocationPayload    `json:"location"`
	Price                *float64            `json:"price"`
	MaxParticipants      *int                `json:"max_participants"`
	Difficulty           *string             `json:"difficulty"`
	Duration             *string             `json:"duration"`
	Images               []EventImagePayload `json:"images"`
	Equipment            []string            `json:"equipment"`
	Requirements         []string            `json:"requirements"`
	Includes             []string            `json:"includes"`
	RegistrationDeadline *string             `json:"registration_deadline"`
	Tags                 []string            `json:"tags"`
}

type ChangeEventStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EmergencyContactPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type VehiclePayload struct {
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Modifications string `json:"modifications"`
}

type ParticipantDetailsPayload struct {
	Name              string                  `json:"name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	EmergencyContact  EmergencyContactPayload `json:"emergency_contact"`
	MedicalConditions string                  `json:"medical_conditions"`
	Experience        string                  `json:"experience"`
	Vehicle           VehiclePayload          `json:"vehicle"`
	Notes             string                  `json:"notes"`
}

func (p ParticipantDetailsPayload) ToDomain() domain.ParticipantDetails {
	return domain.ParticipantDetails{
		Name:  p.Name,
		Email: p.Email,
		Phone: p.Phone,
		EmergencyContact: domain.EmergencyContact{
			Name:         p.EmergencyContact.Name,
			Phone:        p.EmergencyContact.Phone,
			Relationship: p.EmergencyContact.Relationship,
		},
		MedicalConditions: p.MedicalConditions,
		Experience:        domain.ExperienceLevel(p.Experience),
		Vehicle: domain.VehicleDetails{
			Make:          p.Vehicle.Make,
			Model:         p.Vehicle.Model,
			Year:          p.Vehicle.Year,
			Modifications: p.Vehicle.Modifications,
		},
		Notes: p.Notes,
	}
}

type RegisterRequest struct {
	EventID            string                    `json:"event_id" binding:"required,uuid"`
	ParticipantDetails ParticipantDetailsPayload `json:"participant_details"`
	WaiverSigned       bool                      `json:"waiver_signed"`
}

type ChangeRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UpdateContactRequest struct {
	Status     *string `json:"status"`
	Priority   *string `json:"priority"`
	AdminNotes *string `json:"admin_notes"`
}

type CreateGalleryImageRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	AltText     string   `json:"alt_text"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	EventID     *string  `json:"event_id"`
	Featured    bool     `json:"featured"`
}

type UpdateGalleryImageRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	AltText     *string  `json:"alt_text"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	Featured    *bool    `json:"featured"`
}
