package mutations

import (
	"strings"

	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

type SaveReliefDetailsHandler struct{}

func (h *SaveReliefDetailsHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionReliefDetails); msgs != nil {
		return msgs
	}

	var answers model.ReliefDetailsAnswers
	json.Unmarshal(req.Properties, &answers)

	var msgs []model.Message

	for _, amount := range []struct {
		value *float64
		code  string
		text  string
	}{
		{answers.PrivateResidentsRelief, "INVALID_PRR", "Private residence relief must be non-negative"},
		{answers.LettingsRelief, "INVALID_LETTINGS_RELIEF", "Lettings relief must be non-negative"},
		{answers.OtherReliefsAmount, "INVALID_OTHER_RELIEFS", "Other reliefs amount must be non-negative"},
	} {
		if isNegative(amount.value) {
			msgs = append(msgs, critical(amount.code, amount.text))
			return msgs
		}
	}

	if answers.OtherReliefsName != nil && strings.TrimSpace(*answers.OtherReliefsName) == "" {
		msgs = append(msgs, critical("INVALID_OTHER_RELIEFS_NAME", "Other reliefs name must not be blank"))
		return msgs
	}

	if (answers.OtherReliefsName == nil) != (answers.OtherReliefsAmount == nil) {
		msgs = append(msgs, warning("OTHER_RELIEFS_INCOMPLETE", "Other reliefs need both a name and an amount"))
	}

	return msgs
}

func (h *SaveReliefDetailsHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.ReliefDetailsAnswers
	json.Unmarshal(req.Properties, &answers)

	state.ReliefDetails = &answers

	return nil
}
