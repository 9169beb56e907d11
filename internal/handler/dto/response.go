package dto

import (
	"time"

	"github.com/trailcrew/offroad-backend/internal/domain"
)

type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

type EventResponse struct {
	ID                   string              `json:"id"`
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	ShortDescription     string              `json:"short_description"`
	Date                 string              `json:"date"`
	Location             domain.Location     `json:"location"`
	Price                float64             `json:"price"`
	MaxParticipants      int                 `json:"max_participants"`
	CurrentParticipants  int                 `json:"current_participants"`
	AvailableSpots       int                 `json:"available_spots"`
	IsFull               bool                `json:"is_full"`
	Difficulty           string              `json:"difficulty"`
	Duration             string              `json:"duration"`
	Images               []domain.EventImage `json:"images"`
	Equipment            []string            `json:"equipment"`
	Requirements         []string            `json:"requirements"`
	Includes             []string            `json:"includes"`
	Status               string              `json:"status"`
	RegistrationDeadline string              `json:"registration_deadline"`
	CreatedBy            string              `json:"created_by"`
	Tags                 []string            `json:"tags"`
	CreatedAt            string              `json:"created_at"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		ShortDescription:     e.ShortDescription,
		Date:                 e.Date.Format(time.RFC3339),
		Location:             e.Location,
		Price:                e.Price,
		MaxParticipants:      e.MaxParticipants,
		CurrentParticipants:  e.CurrentParticipants,
		AvailableSpots:       e.AvailableSpots(),
		IsFull:               e.IsFull(),
		Difficulty:           string(e.Difficulty),
		Duration:             e.Duration,
		Images:               e.Images,
		Equipment:            e.Equipment,
		Requirements:         e.Requirements,
		Includes:             e.Includes,
		Status:               string(e.Status),
		RegistrationDeadline: e.RegistrationDeadline.Format(time.RFC3339),
		CreatedBy:            e.CreatedBy,
		Tags:                 e.Tags,
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
	}
}

type RegistrationResponse struct {
	ID                 string                    `json:"id"`
	EventID            string                    `json:"event_id"`
	UserID             string                    `json:"user_id"`
	ParticipantDetails domain.ParticipantDetails `json:"participant_details"`
	RegistrationStatus string                    `json:"registration_status"`
	PaymentStatus      string                    `json:"payment_status"`
	PaymentAmount      float64                   `json:"payment_amount"`
	RegistrationDate   string                    `json:"registration_date"`
	PaymentDate        *string                   `json:"payment_date,omitempty"`
	WaiverSigned       bool                      `json:"waiver_signed"`
	AdminNotes         string                    `json:"admin_notes,omitempty"`
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:                 r.ID,
		EventID:            r.EventID,
		UserID:             r.UserID,
		ParticipantDetails: r.Details,
		RegistrationStatus: string(r.Status),
		PaymentStatus:      string(r.Payment),
		PaymentAmount:      r.PaymentAmount,
		RegistrationDate:   r.RegisteredAt.Format(time.RFC3339),
		WaiverSigned:       r.WaiverSigned,
		AdminNotes:         r.AdminNotes,
	}
	if r.PaymentDate != nil {
		s := r.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &s
	}
	return resp
}

type ContactResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone,omitempty"`
	Subject      string  `json:"subject"`
	Message      string  `json:"message"`
	Status       string  `json:"status"`
	Priority     string  `json:"priority"`
	AdminNotes   string  `json:"admin_notes,omitempty"`
	ResponseDate *string `json:"response_date,omitempty"`
	Notified     bool    `json:"notified"`
	NotifiedAt   *string `json:"notified_at,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func ToContactResponse(c *domain.Contact) ContactResponse {
	resp := ContactResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Subject:    c.Subject,
		Message:    c.Message,
		Status:     string(c.Status),
		Priority:   string(c.Priority),
		AdminNotes: c.AdminNotes,
		Notified:   c.Notified(),
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
	if c.ResponseDate != nil {
		s := c.ResponseDate.Format(time.RFC3339)
		resp.ResponseDate = &s
	}
	if c.NotifiedAt != nil {
		s := c.NotifiedAt.Format(time.RFC3339)
		resp.NotifiedAt = &s
	}
	return resp
}

type GalleryImageResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	AltText     string   `json:"alt_text,omitempty"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	EventID     *string  `json:"event_id,omitempty"`
	UploadedBy  string   `json:"uploaded_by"`
	IsActive    bool     `json:"is_active"`
	Views       int      `json:"views"`
	Likes       int      `json:"likes"`
	Featured    bool     `json:"featured"`
	CreatedAt   string   `json:"created_at"`
}

func ToGalleryImageResponse(img *domain.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		URL:         img.URL,
		AltText:     img.AltText,
		Category:    string(img.Category),
		Tags:        img.Tags,
		EventID:     img.EventID,
		UploadedBy:  img.UploadedBy,
		IsActive:    img.IsActive,
		Views:       img.Views,
		Likes:       img.Likes,
		Featured:    img.Featured,
		CreatedAt:   img.CreatedAt.Format(time.RFC3339),
	}
}
