package domain

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusActive    EventStatus = "active"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusDraft, EventStatusActive, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return true
	}
	return false
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Location struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type EventImage struct {
	URL       string `json:"url"`
	AltText   string `json:"alt_text,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

type Event struct {
	ID                   string       `json:"id"`
	Title                string       `json:"title"`
	Description          string       `json:"description"`
	ShortDescription     string       `json:"short_description"`
	Date                 time.Time    `json:"date"`
	Location             Location     `json:"location"`
	Price                float64      `json:"price"`
	MaxParticipants      int          `json:"max_participants"`
	CurrentParticipants  int          `json:"current_participants"`
	Difficulty           Difficulty   `json:"difficulty"`
	Duration             string       `json:"duration"`
	Images               []EventImage `json:"images"`
	Equipment            []string     `json:"equipment"`
	Requirements         []string     `json:"requirements"`
	Includes             []string     `json:"includes"`
	Status               EventStatus  `json:"status"`
	RegistrationDeadline time.Time    `json:"registration_deadline"`
	CreatedBy            string       `json:"created_by"`
	Tags                 []string     `json:"tags"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// IsFull and AvailableSpots are derived on every read, never stored.
func (e *Event) IsFull() bool {
	return e.CurrentParticipants >= e.MaxParticipants
}

func (e *Event) AvailableSpots() int {
	return e.MaxParticipants - e.CurrentParticipants
}

type CreateEventInput struct {
	Title                string
	Description          string
	ShortDescription     string
	Date                 time.Time
	Location             Location
	Price                float64
	MaxParticipants      int
	Difficulty           Difficulty
	Duration             string
	Images               []EventImage
	Equipment            []string
	Requirements         []string
	Includes             []string
	Status               EventStatus
	RegistrationDeadline time.Time
	Tags                 []string
}

// UpdateEventInput carries only the fields the caller wants to change.
type UpdateEventInput struct {
	Title                *string
	Description          *string
	ShortDescription     *string
	Date                 *time.Time
	Location             *Location
	Price                *float64
	MaxParticipants      *int
	Difficulty           *Difficulty
	Duration             *string
	Images               []EventImage
	Equipment            []string
	Requirements         []string
	Includes             []string
	RegistrationDeadline *time.Time
	Tags                 []string
}

type EventFilter struct {
	Status        *EventStatus
	Difficulty    *Difficulty
	Tag           string
	IncludeDrafts bool
	Limit         int
	Offset        int
}
