package mutations

import (
	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

type SaveDisposalDetailsHandler struct{}

func (h *SaveDisposalDetailsHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	if msgs := requireCanStart(state, tasklist.SectionDisposalDetails); msgs != nil {
		return msgs
	}

	var answers model.DisposalDetailsAnswers
	json.Unmarshal(req.Properties, &answers)

	var msgs []model.Message

	if answers.ShareOfProperty != nil && (*answers.ShareOfProperty <= 0 || *answers.ShareOfProperty > 100) {
		msgs = append(msgs, critical("INVALID_SHARE", "Share of property must be greater than 0 and at most 100"))
		return msgs
	}

	if isNegative(answers.DisposalPrice) {
		msgs = append(msgs, critical("INVALID_DISPOSAL_PRICE", "Disposal price must be non-negative"))
		return msgs
	}

	if isNegative(answers.DisposalFees) {
		msgs = append(msgs, critical("INVALID_DISPOSAL_FEES", "Disposal fees must be non-negative"))
		return msgs
	}

	if answers.DisposalPrice != nil && answers.DisposalFees != nil && *answers.DisposalFees > *answers.DisposalPrice {
		msgs = append(msgs, warning("FEES_EXCEED_PRICE", "Disposal fees exceed the disposal price"))
	}

	return msgs
}

func (h *SaveDisposalDetailsHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.DisposalDetailsAnswers
	json.Unmarshal(req.Properties, &answers)

	state.DisposalDetails = &answers

	return nil
}
