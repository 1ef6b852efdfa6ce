// Package tasklist derives the task-list view of a draft return. Compute is
// a pure function of the snapshot: status is recomputed on every call and
// never cached or stored alongside the answers.
package tasklist

import "cgt-returns/internal/model"

// Compute renders the ordered task list for a snapshot. Inapplicable
// conditional sections are omitted entirely. Total over every DraftReturn,
// including the all-absent one.
func Compute(d *model.DraftReturn) []model.RenderedSection {
	out := make([]model.RenderedSection, 0, len(descriptors))
	for _, desc := range descriptors {
		if desc.Applicable != nil && !desc.Applicable(d) {
			continue
		}

		row := model.RenderedSection{ID: desc.ID, LabelKey: desc.LabelKey}
		if !desc.Prerequisite(d) {
			// Stored answers, complete or not, never override an unmet
			// prerequisite. They resurface once the chain is complete again.
			row.Status = model.StatusCannotStart
			out = append(out, row)
			continue
		}

		switch desc.Answers(d) {
		case model.SectionAbsent:
			row.Status = model.StatusToDo
		case model.SectionComplete:
			row.Status = model.StatusComplete
		default:
			row.Status = model.StatusInProgress
		}
		// cannotStart rows carry no link; everything else is navigable.
		row.Link = desc.Link
		out = append(out, row)
	}
	return out
}
