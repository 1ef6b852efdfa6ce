package engine

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgt-returns/internal/model"
	"cgt-returns/internal/tasklist"
)

func startReq() *model.UpdateRequest {
	return &model.UpdateRequest{
		UpdateID: "u-start",
		Name:     "start_return",
		Properties: json.RawMessage(`{"contact_details":{
			"individual":{"first_name":"Jane","last_name":"Doe","email":"jane@example.com"}}}`),
	}
}

func TestProcess_StartReturn(t *testing.T) {
	draft := &model.DraftReturn{ReturnID: "r-1"}
	resp := Process(draft, startReq())

	assert.Equal(t, model.OutcomeSuccess, resp.Metadata.Outcome)
	assert.Equal(t, "u-start", resp.Metadata.UpdateID)
	assert.Equal(t, "r-1", resp.Metadata.ReturnID)
	assert.Empty(t, resp.Messages)

	require.NotNil(t, draft.Contact)
	assert.Equal(t, "jane@example.com", draft.Contact.Email())

	require.NotEmpty(t, resp.TaskList)
	assert.Equal(t, tasklist.SectionTriage, resp.TaskList[0].ID)
	assert.Equal(t, model.StatusToDo, resp.TaskList[0].Status)

	// The contact-details change shows up in the patch, and the revert
	// patch undoes it.
	assert.Contains(t, string(resp.Changes), "/contact_details")
	assert.Contains(t, string(resp.Revert), "/contact_details")
}

func TestProcess_UnknownMutation(t *testing.T) {
	draft := &model.DraftReturn{ReturnID: "r-1"}
	resp := Process(draft, &model.UpdateRequest{Name: "summon_refund"})

	assert.Equal(t, model.OutcomeFailure, resp.Metadata.Outcome)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "UNKNOWN_MUTATION", resp.Messages[0].Code)
	assert.Equal(t, model.LevelCritical, resp.Messages[0].Level)
	assert.Empty(t, resp.Changes)
	assert.Nil(t, draft.Contact)
}

func TestProcess_ValidationFailureLeavesDraftUntouched(t *testing.T) {
	draft := &model.DraftReturn{ReturnID: "r-1"}
	Process(draft, startReq())

	resp := Process(draft, &model.UpdateRequest{
		Name:       "save_triage",
		Properties: json.RawMessage(`{"country_of_residence":"gbr"}`),
	})

	assert.Equal(t, model.OutcomeFailure, resp.Metadata.Outcome)
	assert.Contains(t, resp.Messages[0].Code, "INVALID_COUNTRY")
	assert.Nil(t, draft.Triage)
	assert.Empty(t, resp.Changes)
}

func TestProcess_PrerequisiteGate(t *testing.T) {
	draft := &model.DraftReturn{ReturnID: "r-1"}
	Process(draft, startReq())

	resp := Process(draft, &model.UpdateRequest{
		Name:       "save_relief_details",
		Properties: json.RawMessage(`{"private_residents_relief":0}`),
	})

	assert.Equal(t, model.OutcomeFailure, resp.Metadata.Outcome)
	assert.Equal(t, "SECTION_CANNOT_START", resp.Messages[0].Code)
	assert.Nil(t, draft.ReliefDetails)
}

func TestProcess_WarningsDoNotFail(t *testing.T) {
	draft := &model.DraftReturn{ReturnID: "r-1"}
	Process(draft, startReq())

	resp := Process(draft, &model.UpdateRequest{
		Name:       "save_triage",
		Properties: json.RawMessage(`{"disposal_date":"2021-05-01","completion_date":"2021-04-01"}`),
	})

	assert.Equal(t, model.OutcomeSuccess, resp.Metadata.Outcome)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, model.LevelWarning, resp.Messages[0].Level)
	require.NotNil(t, draft.Triage)
	assert.Contains(t, string(resp.Changes), "/triage")
}

func TestProcess_Deterministic(t *testing.T) {
	a := &model.DraftReturn{ReturnID: "r-1"}
	b := &model.DraftReturn{ReturnID: "r-1"}

	ra := Process(a, startReq())
	rb := Process(b, startReq())

	assert.Equal(t, a, b)
	assert.Equal(t, ra.TaskList, rb.TaskList)
	assert.Equal(t, ra.Changes, rb.Changes)
}

func TestProcess_MessageIDsSequential(t *testing.T) {
	draft := &model.DraftReturn{ReturnID: "r-1"}
	Process(draft, startReq())
	Process(draft, &model.UpdateRequest{
		Name: "save_triage",
		Properties: json.RawMessage(`{"individual_user_type":"self","country_of_residence":"GB",
			"asset_type":"residential","disposal_date":"2021-05-01","completion_date":"2021-05-20"}`),
	})

	resp := Process(draft, &model.UpdateRequest{
		Name:       "save_property_address",
		Properties: json.RawMessage(`{"line1":"  "}`),
	})

	for i, m := range resp.Messages {
		assert.Equal(t, i, m.ID)
	}
	assert.Equal(t, model.OutcomeFailure, resp.Metadata.Outcome)
}
