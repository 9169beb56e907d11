package domain

import "time"

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in-progress"
	ContactStatusResolved   ContactStatus = "resolved"
	ContactStatusClosed     ContactStatus = "closed"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusInProgress, ContactStatusResolved, ContactStatusClosed:
		return true
	}
	return false
}

type ContactPriority string

const (
	ContactPriorityLow    ContactPriority = "low"
	ContactPriorityMedium ContactPriority = "medium"
	ContactPriorityHigh   ContactPriority = "high"
	ContactPriorityUrgent ContactPriority = "urgent"
)

func (p ContactPriority) Valid() bool {
	switch p {
	case ContactPriorityLow, ContactPriorityMedium, ContactPriorityHigh, ContactPriorityUrgent:
		return true
	}
	return false
}

type Contact struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Subject      string          `json:"subject"`
	Message      string          `json:"message"`
	Status       ContactStatus   `json:"status"`
	Priority     ContactPriority `json:"priority"`
	AdminNotes   string          `json:"admin_notes,omitempty"`
	ResponseDate *time.Time      `json:"response_date,omitempty"`
	NotifiedAt   *time.Time      `json:"notified_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Notified reports whether the outbound admin notification went out.
func (c *Contact) Notified() bool { return c.NotifiedAt != nil }

type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type UpdateContactInput struct {
	Status     *ContactStatus
	Priority   *ContactPriority
	AdminNotes *string
}

type ContactFilter struct {
	Status   *ContactStatus
	Priority *ContactPriority
	Limit    int
	Offset   int
}
