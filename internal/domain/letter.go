package domain

import (
	"context"
	"errors"
	"time"
)

// LetterType is the discriminant of the letter tagged union
type LetterType string

const (
	LetterOffer       LetterType = "offer"
	LetterAppointment LetterType = "appointment"
)

// letterSubjects maps each variant to its email subject line
var letterSubjects = map[LetterType]string{
	LetterOffer:       "Offer Letter",
	LetterAppointment: "Appointment Letter",
}

// Valid reports whether the type is a known variant
func (t LetterType) Valid() bool {
	_, ok := letterSubjects[t]
	return ok
}

// Subject returns the email subject for the variant
func (t LetterType) Subject() string {
	return letterSubjects[t]
}

// OfferDetails are the offer-variant fields
type OfferDetails struct {
	Salary        string `json:"salary"`
	JoiningDate   string `json:"joiningDate"`
	OfferValidity string `json:"offerValidity,omitempty"`
}

// AppointmentDetails are the appointment-variant fields
type AppointmentDetails struct {
	AppointmentDate string `json:"appointmentDate"`
	ReportingTime   string `json:"reportingTime"`
	AdditionalNote  string `json:"additionalNote,omitempty"`
}

// Letter is an offer or appointment document attached to exactly one Person.
// The variant payload lives in the pointer matching Type; both may be nil for
// letters created unsent by the decision workflow.
type Letter struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient"`
	Type        LetterType `json:"letterType"`
	IsSent      bool       `json:"isSent"`
	FileURL     string     `json:"fileUrl,omitempty"`
	SentAt      *time.Time `json:"sentDate,omitempty"`
	Offer       *OfferDetails       `json:"offerDetails,omitempty"`
	Appointment *AppointmentDetails `json:"appointmentDetails,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ValidateDetails checks that the payload matching the discriminant is
// present and carries its required fields.
func (l *Letter) ValidateDetails() error {
	switch l.Type {
	case LetterOffer:
		if l.Offer == nil || l.Offer.Salary == "" || l.Offer.JoiningDate == "" {
			return errors.New("missing offer letter required fields")
		}
	case LetterAppointment:
		if l.Appointment == nil || l.Appointment.AppointmentDate == "" || l.Appointment.ReportingTime == "" {
			return errors.New("missing appointment letter required fields")
		}
	default:
		return errors.New("invalid letter type")
	}
	return nil
}

// LetterRepository defines data access for letters
type LetterRepository interface {
	Create(ctx context.Context, l *Letter) error
	GetByID(ctx context.Context, id string) (*Letter, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]Letter, error)
	Update(ctx context.Context, l *Letter) error
	// MarkAllUnsent re-opens every letter of a recipient for reissue
	MarkAllUnsent(ctx context.Context, recipientID string) error
	CountUnsent(ctx context.Context) (int64, error)
}

// LetterUsecase covers the letter issuance workflow and letter management
type LetterUsecase interface {
	// Issue uploads the generated file, finds or creates the letter of the
	// requested type, guards against double-dispatch, marks it sent and
	// emails it to the employee.
	Issue(ctx context.Context, employeeID string, letterType LetterType, filename string, data []byte) (*Letter, error)
	// PendingEmployees lists employees having at least one unsent letter,
	// with their letters filtered down to the unsent ones.
	PendingEmployees(ctx context.Context) ([]Person, error)
	// CreateSent records a typed letter with its variant details and marks it
	// sent immediately, attaching the reference to the employee.
	CreateSent(ctx context.Context, employeeID string, draft *Letter) (*Letter, error)
	// ListByEmployee returns all letters attached to an employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]Letter, error)
}
