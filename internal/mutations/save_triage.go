package mutations

import (
	json "github.com/goccy/go-json"

	"cgt-returns/internal/model"
)

// ValidUserTypes is the accepted set for the triage user-type question.
var ValidUserTypes = map[string]bool{
	"self":                    true,
	"agent":                   true,
	"trust":                   true,
	"personal-representative": true,
}

type SaveTriageHandler struct{}

func (h *SaveTriageHandler) Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var msgs []model.Message

	var answers model.TriageAnswers
	json.Unmarshal(req.Properties, &answers)

	if answers.IndividualUserType != nil && !ValidUserTypes[*answers.IndividualUserType] {
		msgs = append(msgs, critical("INVALID_USER_TYPE", "Unknown user type: "+*answers.IndividualUserType))
		return msgs
	}

	if answers.CountryOfResidence != nil && !isCountryCode(*answers.CountryOfResidence) {
		msgs = append(msgs, critical("INVALID_COUNTRY", "Country of residence must be a two-letter country code"))
		return msgs
	}

	if answers.AssetType != nil && !model.ValidAssetTypes[*answers.AssetType] {
		msgs = append(msgs, critical("INVALID_ASSET_TYPE", "Unknown asset type: "+string(*answers.AssetType)))
		return msgs
	}

	if answers.DisposalDate != nil {
		if _, ok := model.ParseDate(*answers.DisposalDate); !ok {
			msgs = append(msgs, critical("INVALID_DISPOSAL_DATE", "Disposal date is not a valid date"))
			return msgs
		}
		if model.IsFutureDate(*answers.DisposalDate) {
			msgs = append(msgs, critical("DISPOSAL_DATE_IN_FUTURE", "Disposal date must not be in the future"))
			return msgs
		}
	}

	if answers.CompletionDate != nil {
		if _, ok := model.ParseDate(*answers.CompletionDate); !ok {
			msgs = append(msgs, critical("INVALID_COMPLETION_DATE", "Completion date is not a valid date"))
			return msgs
		}
		if answers.DisposalDate != nil && *answers.CompletionDate < *answers.DisposalDate {
			msgs = append(msgs, warning("COMPLETION_BEFORE_DISPOSAL", "Completion date is before the disposal date"))
		}
	}

	return msgs
}

func (h *SaveTriageHandler) Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message {
	var answers model.TriageAnswers
	json.Unmarshal(req.Properties, &answers)

	// Upstream edits never clear downstream sections; their status reverts
	// to cannotStart through the task-list engine instead.
	state.Triage = &answers

	return nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	return s[0] >= 'A' && s[0] <= 'Z' && s[1] >= 'A' && s[1] <= 'Z'
}
