package mutations

import (
	"strings"

	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
)

type startReturnProps struct {
	Contact model.ContactDetails `json:"contact_details"`
}

type StartReturnHandler struct{}

func (h *StartReturnHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var msgs []model.Message

	if state.Contact != nil {
		msgs = append(msgs, critical("RETURN_ALREADY_STARTED", "This return already has contact details"))
		return msgs
	}

	var props startReturnProps
	json.Unmarshal(req.Properties, &props)

	if (props.Contact.Individual == nil) == (props.Contact.Trust == nil) {
		msgs = append(msgs, critical("INVALID_CONTACT", "Exactly one of individual or trust contact details is required"))
		return msgs
	}

	if strings.TrimSpace(props.Contact.Email()) == "" {
		msgs = append(msgs, critical("MISSING_EMAIL", "A contact email address is required"))
		return msgs
	}

	if strings.TrimSpace(props.Contact.Name()) == "" {
		msgs = append(msgs, critical("MISSING_NAME", "A contact name is required"))
	}

	return msgs
}

func (h *StartReturnHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var props startReturnProps
	json.Unmarshal(req.Properties, &props)

	contact := props.Contact
	// Verification always goes through the email-verification flow.
	if contact.Individual != nil {
		contact.Individual.EmailVerified = false
	}
	if contact.Trust != nil {
		contact.Trust.EmailVerified = false
	}
	state.Contact = &contact

	return nil
}
