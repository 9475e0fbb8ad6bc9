package memory

import (
	"context"
	"encoding/json"
	"testing"

	"taskboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkTask(t *testing.T, r *TaskRepository, userID int64, title string, priority domain.Priority) *domain.Task {
	t.Helper()
	task := &domain.Task{UserID: userID, Title: title, Priority: priority}
	require.NoError(t, r.Create(context.Background(), task))
	return task
}

func TestListFilters(t *testing.T) {
	r := NewTaskRepository()
	ctx := context.Background()

	high := mkTask(t, r, 1, "Write code", domain.PriorityHigh)
	mkTask(t, r, 1, "Buy milk", domain.PriorityLow)
	done := mkTask(t, r, 1, "Review code", domain.PriorityHigh)

	completed := true
	_, err := r.Update(ctx, done.ID, 1, domain.TaskUpdate{Completed: &completed})
	require.NoError(t, err)

	// completed=false AND priority=high
	notDone := false
	prio := domain.PriorityHigh
	got, err := r.List(ctx, 1, domain.TaskFilter{Completed: &notDone, Priority: &prio})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, high.ID, got[0].ID)

	// case-insensitive title search
	got, err = r.List(ctx, 1, domain.TaskFilter{Search: "CODE"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// no filters returns everything, in insertion order
	got, err = r.List(ctx, 1, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{got[0].ID, got[1].ID, got[2].ID}, []int64{1, 2, 3})
}

func TestListOwnerScoped(t *testing.T) {
	r := NewTaskRepository()
	ctx := context.Background()

	mkTask(t, r, 1, "mine", domain.PriorityMedium)
	mkTask(t, r, 2, "theirs", domain.PriorityMedium)

	got, err := r.List(ctx, 1, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mine", got[0].Title)
}

func TestPartialUpdate(t *testing.T) {
	r := NewTaskRepository()
	ctx := context.Background()

	desc := "the details"
	task := &domain.Task{UserID: 1, Title: "Write spec", Description: &desc, Priority: domain.PriorityHigh}
	require.NoError(t, r.Create(ctx, task))
	before := task.UpdatedAt

	completed := true
	got, err := r.Update(ctx, task.ID, 1, domain.TaskUpdate{Completed: &completed})
	require.NoError(t, err)

	// only completed changed; everything else retained
	assert.True(t, got.Completed)
	assert.Equal(t, "Write spec", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "the details", *got.Description)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Nil(t, got.DueDate)
	assert.False(t, got.UpdatedAt.Before(before))
}

func TestUpdateExplicitNullDescription(t *testing.T) {
	r := NewTaskRepository()
	ctx := context.Background()

	desc := "to be cleared"
	task := &domain.Task{UserID: 1, Title: "t", Description: &desc, Priority: domain.PriorityMedium}
	require.NoError(t, r.Create(ctx, task))

	var upd domain.TaskUpdate
	require.NoError(t, json.Unmarshal([]byte(`null`), &upd.Description))

	got, err := r.Update(ctx, task.ID, 1, upd)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestUpdateForeignTask(t *testing.T) {
	r := NewTaskRepository()
	ctx := context.Background()

	task := mkTask(t, r, 2, "theirs", domain.PriorityMedium)

	completed := true
	_, err := r.Update(ctx, task.ID, 1, domain.TaskUpdate{Completed: &completed})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// the owner's task is untouched
	got, err := r.List(ctx, 2, domain.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].Completed)
}

func TestDelete(t *testing.T) {
	r := NewTaskRepository()
	ctx := context.Background()

	task := mkTask(t, r, 1, "mine", domain.PriorityMedium)

	// foreign owner: reported as false, task survives
	deleted, err := r.Delete(ctx, task.ID, 2)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = r.Delete(ctx, task.ID, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	// second delete of the same id is not an error
	deleted, err = r.Delete(ctx, task.ID, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
