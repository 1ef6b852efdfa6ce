package model

// Message is one leveled validation or processing message attached to an
// update response. Codes are stable identifiers for callers; Message text is
// informational only.
type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
)
