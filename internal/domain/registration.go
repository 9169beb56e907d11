package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
	RegistrationStatusCompleted RegistrationStatus = "completed"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed,
		RegistrationStatusCancelled, RegistrationStatusCompleted:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type VehicleDetails struct {
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Modifications string `json:"modifications,omitempty"`
}

type ParticipantDetails struct {
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	EmergencyContact  EmergencyContact `json:"emergency_contact"`
	MedicalConditions string           `json:"medical_conditions,omitempty"`
	Experience        ExperienceLevel  `json:"experience"`
	Vehicle           VehicleDetails   `json:"vehicle"`
	Notes             string           `json:"notes,omitempty"`
}

type Registration struct {
	ID      string             `json:"id"`
	EventID string             `json:"event_id"`
	UserID  string             `json:"user_id"`
	Details ParticipantDetails `json:"participant_details"`
	Status  RegistrationStatus `json:"registration_status"`
	Payment PaymentStatus      `json:"payment_status"`

	// PaymentAmount snapshots the event price at registration time and does
	// not track later price edits.
	PaymentAmount float64    `json:"payment_amount"`
	RegisteredAt  time.Time  `json:"registration_date"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"`
	WaiverSigned  bool       `json:"waiver_signed"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type RegisterInput struct {
	EventID      string
	UserID       string
	Details      ParticipantDetails
	WaiverSigned bool
}

type RegistrationFilter struct {
	EventID string
	UserID  string
	Status  *RegistrationStatus
	Limit   int
	Offset  int
}
