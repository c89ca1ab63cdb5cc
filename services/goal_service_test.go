package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGoal_ParsesTargetDate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "planner")

	goal, err := CreateGoal(user.ID, GoalInput{
		Name:        "10k steps",
		TargetValue: 10000,
		GoalType:    "steps",
		TargetDate:  "2026-12-31",
	})
	require.NoError(t, err)
	require.NotNil(t, goal.TargetDate)
	assert.Equal(t, "2026-12-31", goal.TargetDate.Format("2006-01-02"))

	_, err = CreateGoal(user.ID, GoalInput{Name: "bad", TargetDate: "31/12/2026"})
	assert.ErrorContains(t, err, "invalid target date")
}

func TestListGoals_SplitsActiveAndCompleted(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "splitter")

	g1, err := CreateGoal(user.ID, GoalInput{Name: "active one", TargetValue: 5})
	require.NoError(t, err)
	g2, err := CreateGoal(user.ID, GoalInput{Name: "done one", TargetValue: 5})
	require.NoError(t, err)

	achieved := true
	_, err = UpdateGoal(user.ID, g2.ID, GoalUpdate{IsAchieved: &achieved})
	require.NoError(t, err)

	active, completed, err := ListGoals(user.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, g1.ID, active[0].ID)
	assert.Equal(t, g2.ID, completed[0].ID)
}

func TestUpdateGoal_PartialUpdate(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "updater")

	goal, err := CreateGoal(user.ID, GoalInput{Name: "hydrate", TargetValue: 3})
	require.NoError(t, err)

	current := 1.5
	updated, err := UpdateGoal(user.ID, goal.ID, GoalUpdate{CurrentValue: &current})
	require.NoError(t, err)
	assert.Equal(t, 1.5, updated.CurrentValue)
	assert.False(t, updated.IsAchieved)
}

func TestUpdateGoal_NotFound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "loner")
	other := createTestUser(t, "neighbor")

	goal, err := CreateGoal(other.ID, GoalInput{Name: "theirs", TargetValue: 1})
	require.NoError(t, err)

	achieved := true
	_, err = UpdateGoal(user.ID, goal.ID, GoalUpdate{IsAchieved: &achieved})
	assert.ErrorIs(t, err, ErrGoalNotFound)
}

func TestDeleteGoal(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "deleter")

	goal, err := CreateGoal(user.ID, GoalInput{Name: "temp", TargetValue: 1})
	require.NoError(t, err)

	require.NoError(t, DeleteGoal(user.ID, goal.ID))
	assert.ErrorIs(t, DeleteGoal(user.ID, goal.ID), ErrGoalNotFound)
}
