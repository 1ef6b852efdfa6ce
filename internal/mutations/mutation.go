package mutations

import (
	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

// Handler defines the contract for all draft-return mutations. Validate runs
// first and may veto the update with CRITICAL messages; Apply is only called
// when validation produced no criticals and must leave the snapshot in a
// state the task-list engine can render.
type Handler interface {
	Validate(state *model.DraftReturn, req *model.UpdateRequest) []model.Message
	Apply(state *model.DraftReturn, req *model.UpdateRequest) []model.Message
}

func critical(code, text string) model.Message {
	return model.Message{Level: model.LevelCritical, Code: code, Message: text}
}

func warning(code, text string) model.Message {
	return model.Message{Level: model.LevelWarning, Code: code, Message: text}
}

// requireCanStart gates every section save on its task-list prerequisites.
func requireCanStart(state *model.DraftReturn, sectionID string) []model.Message {
	if tasklist.CanStart(state, sectionID) {
		return nil
	}
	return []model.Message{critical("SECTION_CANNOT_START", "Prerequisites for section "+sectionID+" are not complete")}
}

func isNegative(v *float64) bool {
	return v != nil && *v < 0
}
