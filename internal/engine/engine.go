// Package engine applies one named mutation to a draft-return snapshot and
// assembles the update response: leveled messages, outcome, the rendered
// task list, and change patches.
package engine

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"cgt-returns/internal/jsonpatch"
	"cgt-returns/internal/model"
	"cgt-returns/internal/mutations"
	"cgt-returns/internal/tasklist"
)

var emptyPatch = json.RawMessage("[]")

// Process validates and applies req to draft in place. On FAILURE the
// snapshot is left untouched: Validate never mutates and Apply only runs
// when validation produced no CRITICAL messages.
func Process(draft *model.DraftReturn, req *model.UpdateRequest) *model.UpdateResponse {
	start := time.Now()

	var messages []model.Message
	outcome := model.OutcomeSuccess

	before := toGeneric(draft)

	handler, ok := mutations.Get(req.Name)
	if !ok {
		messages = append(messages, model.Message{
			Level:   model.LevelCritical,
			Code:    "UNKNOWN_MUTATION",
			Message: "Unknown mutation: " + req.Name,
		})
	} else {
		messages = append(messages, handler.Validate(draft, req)...)
	}

	hasCritical := false
	for i := range messages {
		messages[i].ID = i
		if messages[i].Level == model.LevelCritical {
			hasCritical = true
		}
	}

	if hasCritical {
		outcome = model.OutcomeFailure
	} else if handler != nil {
		applyMsgs := handler.Apply(draft, req)
		for _, m := range applyMsgs {
			m.ID = len(messages)
			messages = append(messages, m)
			if m.Level == model.LevelCritical {
				outcome = model.OutcomeFailure
			}
		}
	}

	resp := &model.UpdateResponse{
		Messages:    messages,
		DraftReturn: draft,
		TaskList:    tasklist.Compute(draft),
	}
	if resp.Messages == nil {
		resp.Messages = []model.Message{}
	}

	if outcome == model.OutcomeSuccess {
		fwd, bwd := jsonpatch.DiffBoth(before, toGeneric(draft), "")
		resp.Changes = marshalOps(fwd)
		resp.Revert = marshalOps(bwd)
	}

	updateID := req.UpdateID
	if updateID == "" {
		updateID = uuid.New().String()
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()
	resp.Metadata = model.UpdateMetadata{
		UpdateID:    updateID,
		ReturnID:    draft.ReturnID,
		StartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CompletedAt: now.Format(time.RFC3339),
		DurationMs:  elapsed.Milliseconds(),
		Outcome:     outcome,
	}

	return resp
}

// toGeneric round-trips the snapshot through JSON so patch computation sees
// exactly what the wire format holds.
func toGeneric(d *model.DraftReturn) any {
	b, _ := json.Marshal(d)
	var v any
	_ = json.Unmarshal(b, &v)
	return v
}

func marshalOps(ops []jsonpatch.Op) json.RawMessage {
	if len(ops) == 0 {
		return emptyPatch
	}
	b, _ := json.Marshal(ops)
	return b
}
