package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableStringStates(t *testing.T) {
	type payload struct {
		Notes NullableString `json:"notes"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Notes.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &null))
	assert.True(t, null.Notes.Set)
	assert.Nil(t, null.Notes.Value)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"notes":"call back tomorrow"}`), &set))
	assert.True(t, set.Notes.Set)
	require.NotNil(t, set.Notes.Value)
	assert.Equal(t, "call back tomorrow", *set.Notes.Value)
}

func TestNullableInt64States(t *testing.T) {
	type payload struct {
		AssignedToID NullableInt64 `json:"assignedToId"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.AssignedToID.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"assignedToId":null}`), &null))
	assert.True(t, null.AssignedToID.Set)
	assert.Nil(t, null.AssignedToID.Value)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"assignedToId":42}`), &set))
	assert.True(t, set.AssignedToID.Set)
	require.NotNil(t, set.AssignedToID.Value)
	assert.EqualValues(t, 42, *set.AssignedToID.Value)
}

func TestNullableStringSliceStates(t *testing.T) {
	type payload struct {
		Tags NullableStringSlice `json:"requirementTags"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Tags.Set)

	// explicit null means "clear the list"
	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"requirementTags":null}`), &null))
	assert.True(t, null.Tags.Set)
	assert.Empty(t, null.Tags.Value)

	var set payload
	require.NoError(t, json.Unmarshal([]byte(`{"requirementTags":["Ring","Gold"]}`), &set))
	assert.True(t, set.Tags.Set)
	assert.Equal(t, []string{"Ring", "Gold"}, set.Tags.Value)
}

func TestUpdateInteractionRequestMixedFields(t *testing.T) {
	body := `{"status":"completed","notes":null,"requirementTags":["Repair"]}`

	var req UpdateInteractionRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.Status)
	assert.Equal(t, "completed", *req.Status)
	assert.True(t, req.Notes.Set)
	assert.Nil(t, req.Notes.Value)
	assert.True(t, req.RequirementTags.Set)
	assert.Equal(t, []string{"Repair"}, req.RequirementTags.Value)
	assert.False(t, req.CustomerName.Set)
	assert.False(t, req.AssignedToID.Set)
	assert.Nil(t, req.Type)
	assert.Nil(t, req.Requirement)
}
