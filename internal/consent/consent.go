// Package consent models the three acknowledgements a visitor must give
// before a form is submitted on their behalf.
package consent

import (
	"errors"
	"net/http"
)

// ErrIncomplete is returned when a required consent is missing.
var ErrIncomplete = errors.New("all consents must be accepted")

// Form field names of the consent checkboxes.
const (
	FieldTerms      = "accept_terms"
	FieldPrivacy    = "accept_privacy"
	FieldTelehealth = "accept_telehealth"
)

// Form is the state of the consent checkboxes.
type Form struct {
	AcceptTerms      bool
	AcceptPrivacy    bool
	AcceptTelehealth bool
}

// Complete reports whether every consent was given.
func (f Form) Complete() bool {
	return f.AcceptTerms && f.AcceptPrivacy && f.AcceptTelehealth
}

// Require calls fn only when the form is complete.
func Require(f Form, fn func() error) error {
	if !f.Complete() {
		return ErrIncomplete
	}
	return fn()
}

// ParseForm reads the checkboxes from a submitted form. A box counts as
// checked when its field is present with any value other than "" or "off".
func ParseForm(r *http.Request) (Form, error) {
	if err := r.ParseForm(); err != nil {
		return Form{}, err
	}
	return Form{
		AcceptTerms:      checked(r, FieldTerms),
		AcceptPrivacy:    checked(r, FieldPrivacy),
		AcceptTelehealth: checked(r, FieldTelehealth),
	}, nil
}

func checked(r *http.Request, field string) bool {
	v := r.PostFormValue(field)
	return v != "" && v != "off"
}
