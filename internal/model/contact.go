package model

// ContactDetails holds the contact record for the person filing the return.
// Exactly one of the two shapes is set, depending on whether the return is
// filed by an individual or on behalf of a trust.
type ContactDetails struct {
	Individual *IndividualContact `json:"individual,omitempty"`
	Trust      *TrustContact      `json:"trust,omitempty"`
}

type IndividualContact struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

type TrustContact struct {
	TrustName     string `json:"trust_name"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Email returns the contact email of whichever shape is present.
func (c ContactDetails) Email() string {
	switch {
	case c.Individual != nil:
		return c.Individual.Email
	case c.Trust != nil:
		return c.Trust.Email
	}
	return ""
}

// EmailVerified reports whether the contact email has been verified.
func (c ContactDetails) EmailVerified() bool {
	switch {
	case c.Individual != nil:
		return c.Individual.EmailVerified
	case c.Trust != nil:
		return c.Trust.EmailVerified
	}
	return false
}

// Name returns the display name of whichever shape is present.
func (c ContactDetails) Name() string {
	switch {
	case c.Individual != nil:
		return c.Individual.FirstName + " " + c.Individual.LastName
	case c.Trust != nil:
		return c.Trust.TrustName
	}
	return ""
}

// WithVerifiedEmail returns a copy with the verified email set on whichever
// shape the current value holds. The other shape stays nil.
func (c ContactDetails) WithVerifiedEmail(email string) ContactDetails {
	switch {
	case c.Individual != nil:
		ind := *c.Individual
		ind.Email = email
		ind.EmailVerified = true
		return ContactDetails{Individual: &ind}
	case c.Trust != nil:
		tr := *c.Trust
		tr.Email = email
		tr.EmailVerified = true
		return ContactDetails{Trust: &tr}
	}
	return c
}
