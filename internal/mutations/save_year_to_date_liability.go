package mutations

import (
	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

type SaveYearToDateLiabilityHandler struct{}

func (h *SaveYearToDateLiabilityHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionYearToDateLiability); msgs != nil {
		return msgs
	}

	var answers model.YearToDateLiabilityAnswers
	json.Unmarshal(req.Properties, &answers)

	var msgs []model.Message

	// Taxable gain or loss may legitimately be negative; the rest may not.
	for _, amount := range []struct {
		value *float64
		code  string
		text  string
	}{
		{answers.EstimatedIncome, "INVALID_ESTIMATED_INCOME", "Estimated income must be non-negative"},
		{answers.PersonalAllowance, "INVALID_PERSONAL_ALLOWANCE", "Personal allowance must be non-negative"},
		{answers.TaxDue, "INVALID_TAX_DUE", "Tax due must be non-negative"},
	} {
		if isNegative(amount.value) {
			msgs = append(msgs, critical(amount.code, amount.text))
			return msgs
		}
	}

	if answers.TaxableGainOrLoss != nil && *answers.TaxableGainOrLoss < 0 &&
		answers.TaxDue != nil && *answers.TaxDue > 0 {
		msgs = append(msgs, warning("TAX_DUE_ON_LOSS", "Tax due is positive while the taxable position is a loss"))
	}

	return msgs
}

func (h *SaveYearToDateLiabilityHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.YearToDateLiabilityAnswers
	json.Unmarshal(req.Properties, &answers)

	state.YearToDateLiability = &answers

	return nil
}
