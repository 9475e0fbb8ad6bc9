package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalTriState(t *testing.T) {
	type body struct {
		Description Optional[string]    `json:"description"`
		DueDate     Optional[time.Time] `json:"due_date"`
	}

	// absent: zero value, not set
	var absent body
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Description.Set)
	assert.False(t, absent.DueDate.Set)

	// explicit null: set but not valid
	var null body
	require.NoError(t, json.Unmarshal([]byte(`{"description": null}`), &null))
	assert.True(t, null.Description.Set)
	assert.False(t, null.Description.Valid)
	assert.Nil(t, null.Description.Ptr())

	// explicit value
	var val body
	require.NoError(t, json.Unmarshal([]byte(`{"description": "notes"}`), &val))
	assert.True(t, val.Description.Set)
	assert.True(t, val.Description.Valid)
	require.NotNil(t, val.Description.Ptr())
	assert.Equal(t, "notes", *val.Description.Ptr())
}

func TestTaskUpdateEmpty(t *testing.T) {
	assert.True(t, TaskUpdate{}.Empty())

	title := "x"
	assert.False(t, TaskUpdate{Title: &title}.Empty())

	var upd TaskUpdate
	require.NoError(t, json.Unmarshal([]byte(`null`), &upd.Description))
	assert.False(t, upd.Empty())
}
