package mutations

import (
	"strings"

	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

type SavePropertyAddressHandler struct{}

func (h *SavePropertyAddressHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionPropertyAddress); msgs != nil {
		return msgs
	}

	var answers model.PropertyAddressAnswers
	json.Unmarshal(req.Properties, &answers)

	var msgs []model.Message

	if answers.Line1 != nil && strings.TrimSpace(*answers.Line1) == "" {
		msgs = append(msgs, critical("INVALID_ADDRESS_LINE", "Address line 1 must not be blank"))
		return msgs
	}

	if answers.Postcode != nil && strings.TrimSpace(*answers.Postcode) == "" {
		msgs = append(msgs, critical("INVALID_POSTCODE", "Postcode must not be blank"))
		return msgs
	}

	return msgs
}

func (h *SavePropertyAddressHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.PropertyAddressAnswers
	json.Unmarshal(req.Properties, &answers)

	state.PropertyAddress = &answers

	return nil
}
