package model

// TaskListStatus is the display status of one task-list section. The values
// form no ordering: cannotStart and toDo both mean "not begun" and differ
// only in whether prerequisites are satisfied.
type TaskListStatus string

const (
	StatusCannotStart TaskListStatus = "cannotStart"
	StatusToDo        TaskListStatus = "toDo"
	StatusInProgress  TaskListStatus = "inProgress"
	StatusComplete    TaskListStatus = "complete"
)

// RenderedSection is one row of the task list as the presentation layer
// consumes it. Link is empty exactly when Status is cannotStart; such rows
// render as inert text rather than hyperlinks.
type RenderedSection struct {
	ID       string         `json:"id"`
	LabelKey string         `json:"label_key"`
	Link     string         `json:"link,omitempty"`
	Status   TaskListStatus `json:"status"`
}
