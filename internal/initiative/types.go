package initiative

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid wraps every submission validation failure.
var ErrInvalid = errors.New("invalid submission")

// Submission is the "join the initiative" payload.
type Submission struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
	Role         string `json:"role,omitempty"`
	Message      string `json:"message,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:         strings.TrimSpace(s.Name),
		Email:        strings.TrimSpace(s.Email),
		Organization: strings.TrimSpace(s.Organization),
		Role:         strings.TrimSpace(s.Role),
		Message:      strings.TrimSpace(s.Message),
	}
}

// Validate checks the required fields.
func (s Submission) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if s.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if at := strings.Index(s.Email, "@"); at <= 0 || at == len(s.Email)-1 {
		return fmt.Errorf("%w: email %q is not an address", ErrInvalid, s.Email)
	}
	if len(s.Message) > 4000 {
		return fmt.Errorf("%w: message is longer than 4000 characters", ErrInvalid)
	}
	return nil
}

// Status is the outcome of relaying a submission.
type Status string

const (
	StatusRelayed  Status = "relayed"
	StatusRejected Status = "rejected"
	StatusFailed   Status = "failed"
)

// Record is a stored submission and its outcome.
type Record struct {
	ID             string
	Submission     Submission
	Status         Status
	UpstreamStatus int
	UpstreamBody   string
	CreatedAt      time.Time
}
