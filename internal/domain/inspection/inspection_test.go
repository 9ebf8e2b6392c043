package inspection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduled(t *testing.T) *Inspection {
	t.Helper()
	i, err := NewInspection(uuid.New(), uuid.New(), ScheduleParams{
		PropertyID:    uuid.New(),
		Type:          TypeMoveIn,
		ScheduledDate: time.Now().Add(48 * time.Hour),
		InspectorName: " Sam ",
	})
	require.NoError(t, err)
	return i
}

func sampleItems() []Item {
	return []Item{
		{Area: "Kitchen", Item: "Sink", Condition: ConditionGood},
		{Area: "Bedroom", Item: "Window", Condition: ConditionDamaged, Notes: " cracked "},
	}
}

func TestNewInspection(t *testing.T) {
	t.Run("schedules", func(t *testing.T) {
		i := newScheduled(t)
		assert.Equal(t, StatusScheduled, i.Status)
		assert.Equal(t, "Sam", i.InspectorName)
		assert.Empty(t, i.Items)
		require.Len(t, i.GetDomainEvents(), 1)
	})

	t.Run("validates", func(t *testing.T) {
		_, err := NewInspection(uuid.New(), uuid.New(), ScheduleParams{Type: TypeRoutine, ScheduledDate: time.Now()})
		assert.Error(t, err)
		_, err = NewInspection(uuid.New(), uuid.New(), ScheduleParams{PropertyID: uuid.New(), Type: "drive_by", ScheduledDate: time.Now()})
		assert.Error(t, err)
		_, err = NewInspection(uuid.New(), uuid.New(), ScheduleParams{PropertyID: uuid.New(), Type: TypeRoutine})
		assert.Error(t, err)
	})
}

func TestInspectionLifecycle(t *testing.T) {
	t.Run("full flow", func(t *testing.T) {
		i := newScheduled(t)
		newDate := time.Now().Add(72 * time.Hour)
		require.NoError(t, i.Reschedule(newDate))
		assert.Equal(t, newDate, i.ScheduledDate)

		assert.Error(t, i.RecordItems(sampleItems()), "not started")
		require.NoError(t, i.Start())
		assert.Error(t, i.Reschedule(newDate))
		assert.Error(t, i.Complete(ConditionGood, ""), "no items yet")

		require.NoError(t, i.RecordItems(sampleItems()))
		require.Len(t, i.Items, 2)
		assert.Equal(t, 1, i.Items[1].SortOrder)
		assert.Equal(t, "cracked", i.Items[1].Notes)
		assert.NotEqual(t, uuid.Nil, i.Items[0].ID)
		assert.Equal(t, 1, i.IssueCount())

		assert.Error(t, i.Complete("pristine", ""))
		require.NoError(t, i.Complete(ConditionFair, "minor wear"))
		assert.Equal(t, StatusCompleted, i.Status)
		assert.Equal(t, "minor wear", i.Notes)
		assert.NotNil(t, i.CompletedAt)

		assert.Error(t, i.Cancel())
		assert.Error(t, i.AssignInspector(nil, "x"))
	})

	t.Run("record items validates each", func(t *testing.T) {
		i := newScheduled(t)
		require.NoError(t, i.Start())
		assert.Error(t, i.RecordItems([]Item{{Area: "", Item: "Sink", Condition: ConditionGood}}))
		assert.Error(t, i.RecordItems([]Item{{Area: "Kitchen", Item: "Sink", Condition: "meh"}}))
		require.NoError(t, i.RecordItems(nil))
		assert.Empty(t, i.Items)
	})

	t.Run("cancel scheduled", func(t *testing.T) {
		i := newScheduled(t)
		require.NoError(t, i.Cancel())
		assert.Error(t, i.Start())
	})
}

func TestIsUpcoming(t *testing.T) {
	now := time.Now()
	i := newScheduled(t)
	assert.True(t, i.IsUpcoming(now, 14*24*time.Hour))
	assert.False(t, i.IsUpcoming(now, time.Hour))
	require.NoError(t, i.Cancel())
	assert.False(t, i.IsUpcoming(now, 14*24*time.Hour))
}
