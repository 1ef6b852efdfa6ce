package iv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFailureReason_Known(t *testing.T) {
	tests := []struct {
		upstream string
		want     FailureReason
	}{
		{"Incomplete", ReasonIncomplete},
		{"FailedMatching", ReasonFailedMatching},
		{"FailedIV", ReasonFailedIV},
		{"InsufficientEvidence", ReasonInsufficientEvidence},
		{"LockedOut", ReasonLockedOut},
		{"UserAborted", ReasonUserAborted},
		{"Timeout", ReasonTimeout},
		{"TechnicalIssue", ReasonTechnicalIssue},
		{"PreconditionFailed", ReasonPreconditionFailed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFailureReason(tt.upstream), tt.upstream)
	}
}

func TestParseFailureReason_UnknownDefaultsToTechnicalIssue(t *testing.T) {
	for _, s := range []string{"", "SomethingNew", "failediv", " FailedIV"} {
		assert.Equal(t, ReasonTechnicalIssue, ParseFailureReason(s), s)
	}
}

func TestRouteFor(t *testing.T) {
	assert.Equal(t, "/iv/locked-out", RouteFor(ReasonLockedOut))
	assert.Equal(t, "/iv/technical-issue", RouteFor(ReasonTechnicalIssue))
	// Even a reason value minted outside this package routes somewhere.
	assert.Equal(t, "/iv/technical-issue", RouteFor(FailureReason("mystery")))
}
