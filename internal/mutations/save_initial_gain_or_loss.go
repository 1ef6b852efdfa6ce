package mutations

import (
	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

type SaveInitialGainOrLossHandler struct{}

func (h *SaveInitialGainOrLossHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionInitialGainOrLoss); msgs != nil {
		return msgs
	}

	if !tasklist.InitialGainOrLossApplicable(state) {
		return []model.Message{critical("SECTION_NOT_APPLICABLE", "The initial gain or loss section does not apply to this return")}
	}

	return nil
}

func (h *SaveInitialGainOrLossHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.InitialGainOrLossAnswers
	json.Unmarshal(req.Properties, &answers)

	state.InitialGainOrLoss = &answers

	return nil
}
