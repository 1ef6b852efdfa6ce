package mutations

import (
	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

// ValidAcquisitionMethods is the accepted set for how the property was acquired.
var ValidAcquisitionMethods = map[string]bool{
	"bought":    true,
	"inherited": true,
	"gifted":    true,
	"other":     true,
}

type SaveAcquisitionDetailsHandler struct{}

func (h *SaveAcquisitionDetailsHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionAcquisitionDetails); msgs != nil {
		return msgs
	}

	var answers model.AcquisitionDetailsAnswers
	json.Unmarshal(req.Properties, &answers)

	var msgs []model.Message

	if answers.AcquisitionMethod != nil && !ValidAcquisitionMethods[*answers.AcquisitionMethod] {
		msgs = append(msgs, critical("INVALID_ACQUISITION_METHOD", "Unknown acquisition method: "+*answers.AcquisitionMethod))
		return msgs
	}

	if answers.AcquisitionDate != nil {
		if _, ok := model.ParseDate(*answers.AcquisitionDate); !ok {
			msgs = append(msgs, critical("INVALID_ACQUISITION_DATE", "Acquisition date is not a valid date"))
			return msgs
		}
		if model.IsFutureDate(*answers.AcquisitionDate) {
			msgs = append(msgs, critical("ACQUISITION_DATE_IN_FUTURE", "Acquisition date must not be in the future"))
			return msgs
		}
		if state.Triage != nil && state.Triage.DisposalDate != nil && *answers.AcquisitionDate > *state.Triage.DisposalDate {
			msgs = append(msgs, warning("ACQUISITION_AFTER_DISPOSAL", "Acquisition date is after the disposal date"))
		}
	}

	for _, amount := range []struct {
		value *float64
		code  string
		text  string
	}{
		{answers.AcquisitionPrice, "INVALID_ACQUISITION_PRICE", "Acquisition price must be non-negative"},
		{answers.ImprovementCosts, "INVALID_IMPROVEMENT_COSTS", "Improvement costs must be non-negative"},
		{answers.AcquisitionFees, "INVALID_ACQUISITION_FEES", "Acquisition fees must be non-negative"},
	} {
		if isNegative(amount.value) {
			msgs = append(msgs, critical(amount.code, amount.text))
			return msgs
		}
	}

	return msgs
}

func (h *SaveAcquisitionDetailsHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.AcquisitionDetailsAnswers
	json.Unmarshal(req.Properties, &answers)

	state.AcquisitionDetails = &answers

	return nil
}
