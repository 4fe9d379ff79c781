package reminders

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, duration int) models.Reminder {
	return models.Reminder{
		ID:            id,
		Name:          "Med " + id,
		Dosage:        "10mg",
		ScheduledTime: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		Duration:      duration,
	}
}

func ids(items []models.Reminder) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}
	return out
}

func seeded(t *testing.T, records ...models.Reminder) *List {
	t.Helper()
	l := NewList()
	require.NoError(t, l.ReplaceAll(records))
	return l
}

func TestReplaceAll_KeepsBackendOrder(t *testing.T) {
	l := seeded(t, rec("3", 1), rec("1", 1), rec("2", 1))
	assert.Equal(t, []string{"3", "1", "2"}, ids(l.Items()))

	require.NoError(t, l.ReplaceAll([]models.Reminder{rec("9", 1)}))
	assert.Equal(t, []string{"9"}, ids(l.Items()))
	_, ok := l.Get("3")
	assert.False(t, ok)
}

func TestReplaceAll_DuplicateLeavesStateUntouched(t *testing.T) {
	l := seeded(t, rec("a", 1))

	err := l.ReplaceAll([]models.Reminder{rec("x", 1), rec("x", 2)})
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, []string{"a"}, ids(l.Items()))
}

func TestInsert_AppendsWithoutDisturbingOthers(t *testing.T) {
	l := seeded(t, rec("1", 1), rec("2", 1))
	before := l.Items()

	require.NoError(t, l.Insert(rec("r9", 7)))

	after := l.Items()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, "r9", after[len(after)-1].ID)
}

func TestInsert_DuplicateIsRejected(t *testing.T) {
	l := seeded(t, rec("1", 1))

	err := l.Insert(rec("1", 5))
	require.ErrorIs(t, err, ErrDuplicateID)

	got, _ := l.Get("1")
	assert.Equal(t, 1, got.Duration)
	assert.Equal(t, 1, l.Len())
}

func TestReplaceOne_UpdatesInPlace(t *testing.T) {
	l := seeded(t, rec("0", 1), rec("1", 3), rec("2", 1))

	updated := rec("1", 5)
	require.NoError(t, l.ReplaceOne("1", updated))

	items := l.Items()
	assert.Equal(t, []string{"0", "1", "2"}, ids(items))
	assert.Equal(t, 5, items[1].Duration)
	assert.Equal(t, rec("0", 1), items[0])
	assert.Equal(t, rec("2", 1), items[2])
}

func TestReplaceOne_Scenario(t *testing.T) {
	a := rec("1", 3)
	l := seeded(t, a)

	echoed := a
	echoed.Duration = 5
	require.NoError(t, l.ReplaceOne("1", echoed))

	assert.Equal(t, []models.Reminder{echoed}, l.Items())
}

func TestReplaceOne_Missing(t *testing.T) {
	l := seeded(t, rec("1", 1))
	require.ErrorIs(t, l.ReplaceOne("404", rec("404", 1)), ErrNotFound)
	assert.Equal(t, []string{"1"}, ids(l.Items()))
}

func TestReplaceOne_ChangedIDMustStayUnique(t *testing.T) {
	l := seeded(t, rec("1", 1), rec("2", 1))
	require.ErrorIs(t, l.ReplaceOne("1", rec("2", 9)), ErrDuplicateID)

	require.NoError(t, l.ReplaceOne("1", rec("1b", 9)))
	_, ok := l.Get("1")
	assert.False(t, ok)
	got, ok := l.Get("1b")
	require.True(t, ok)
	assert.Equal(t, 9, got.Duration)
}

func TestRemoveOne(t *testing.T) {
	l := seeded(t, rec("a", 1), rec("b", 1), rec("c", 1), rec("d", 1))

	require.NoError(t, l.RemoveOne("b"))
	assert.Equal(t, []string{"a", "c", "d"}, ids(l.Items()))
	assert.Equal(t, 3, l.Len())

	// Index must stay consistent after the shift.
	require.NoError(t, l.ReplaceOne("d", rec("d", 42)))
	got, _ := l.Get("d")
	assert.Equal(t, 42, got.Duration)

	require.ErrorIs(t, l.RemoveOne("b"), ErrNotFound)
	assert.Equal(t, 3, l.Len())
}

func TestItems_ReturnsCopy(t *testing.T) {
	l := seeded(t, rec("a", 1))
	items := l.Items()
	items[0].Name = "mutated"

	got, _ := l.Get("a")
	assert.Equal(t, "Med a", got.Name)
}

func TestClear(t *testing.T) {
	l := seeded(t, rec("a", 1))
	l.Clear()
	assert.Equal(t, 0, l.Len())
	require.NoError(t, l.Insert(rec("a", 1)))
}

func TestConcurrentMutations(t *testing.T) {
	l := NewList()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("id-%d", i)
			if err := l.Insert(rec(id, 1)); err != nil {
				t.Errorf("insert %s: %v", id, err)
				return
			}
			if i%2 == 0 {
				if err := l.RemoveOne(id); err != nil {
					t.Errorf("remove %s: %v", id, err)
				}
			} else if err := l.ReplaceOne(id, rec(id, 2)); err != nil {
				t.Errorf("replace %s: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 25, l.Len())
	for _, r := range l.Items() {
		got, ok := l.Get(r.ID)
		require.True(t, ok)
		assert.Equal(t, 2, got.Duration)
	}
}
