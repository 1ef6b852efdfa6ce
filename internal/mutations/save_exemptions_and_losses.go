package mutations

import (
	"fmt"

	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

// maxAnnualExemptAmount is the statutory annual exempt amount ceiling for
// the tax years this service covers.
const maxAnnualExemptAmount = 12300

type SaveExemptionsAndLossesHandler struct{}

func (h *SaveExemptionsAndLossesHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionExemptionsAndLosses); msgs != nil {
		return msgs
	}

	var answers model.ExemptionsAndLossesAnswers
	json.Unmarshal(req.Properties, &answers)

	var msgs []model.Message

	for _, amount := range []struct {
		value *float64
		code  string
		text  string
	}{
		{answers.InYearLosses, "INVALID_IN_YEAR_LOSSES", "In-year losses must be non-negative"},
		{answers.PreviousYearsLosses, "INVALID_PREVIOUS_LOSSES", "Previous years' losses must be non-negative"},
		{answers.AnnualExemptAmount, "INVALID_EXEMPT_AMOUNT", "Annual exempt amount must be non-negative"},
	} {
		if isNegative(amount.value) {
			msgs = append(msgs, critical(amount.code, amount.text))
			return msgs
		}
	}

	if answers.AnnualExemptAmount != nil && *answers.AnnualExemptAmount > maxAnnualExemptAmount {
		msgs = append(msgs, warning("EXEMPTION_ABOVE_LIMIT",
			fmt.Sprintf("Annual exempt amount exceeds the statutory maximum of %d", maxAnnualExemptAmount)))
	}

	return msgs
}

func (h *SaveExemptionsAndLossesHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.ExemptionsAndLossesAnswers
	json.Unmarshal(req.Properties, &answers)

	state.ExemptionsAndLosses = &answers

	return nil
}
