// Package iv routes identity-verification failure reasons reported by the
// upstream IV service to the journey pages that explain them.
package iv

// FailureReason is a normalized IV failure outcome.
type FailureReason string

const (
	ReasonIncomplete           FailureReason = "incomplete"
	ReasonFailedMatching       FailureReason = "failed-matching"
	ReasonFailedIV             FailureReason = "failed-iv"
	ReasonInsufficientEvidence FailureReason = "insufficient-evidence"
	ReasonLockedOut            FailureReason = "locked-out"
	ReasonUserAborted          FailureReason = "user-aborted"
	ReasonTimeout              FailureReason = "timeout"
	ReasonTechnicalIssue       FailureReason = "technical-issue"
	ReasonPreconditionFailed   FailureReason = "precondition-failed"
)

var known = map[string]FailureReason{
	"Incomplete":           ReasonIncomplete,
	"FailedMatching":       ReasonFailedMatching,
	"FailedIV":             ReasonFailedIV,
	"InsufficientEvidence": ReasonInsufficientEvidence,
	"LockedOut":            ReasonLockedOut,
	"UserAborted":          ReasonUserAborted,
	"Timeout":              ReasonTimeout,
	"TechnicalIssue":       ReasonTechnicalIssue,
	"PreconditionFailed":   ReasonPreconditionFailed,
}

var routes = map[FailureReason]string{
	ReasonIncomplete:           "/iv/get-access",
	ReasonFailedMatching:       "/iv/failed-matching",
	ReasonFailedIV:             "/iv/failed",
	ReasonInsufficientEvidence: "/iv/insufficient-evidence",
	ReasonLockedOut:            "/iv/locked-out",
	ReasonUserAborted:          "/iv/aborted",
	ReasonTimeout:              "/iv/timed-out",
	ReasonTechnicalIssue:       "/iv/technical-issue",
	ReasonPreconditionFailed:   "/iv/precondition-failed",
}

// ParseFailureReason maps an upstream reason string to a FailureReason.
// Unrecognized values map to technical-issue so new upstream codes degrade
// to a generic page instead of an error.
func ParseFailureReason(s string) FailureReason {
	if r, ok := known[s]; ok {
		return r
	}
	return ReasonTechnicalIssue
}

// RouteFor returns the journey path for a failure reason.
func RouteFor(r FailureReason) string {
	if path, ok := routes[r]; ok {
		return path
	}
	return routes[ReasonTechnicalIssue]
}
