// Package reminders holds the in-memory, ordered list of reminder records
// shown by the client.
//
// The list is mutated only after the matching backend call has succeeded.
// Identities come from the backend and are unique; a duplicate or missing
// identity is reported as ErrDuplicateID or ErrNotFound and indicates a bug
// in the caller rather than a user error.
//
// List is safe for concurrent use. Overlapping calls are applied
// independently by identity in the order they complete.
package reminders

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
)

var (
	ErrDuplicateID = errors.New("duplicate reminder id")
	ErrNotFound    = errors.New("reminder not found")
)

type List struct {
	mu    sync.RWMutex
	items []models.Reminder
	index map[string]int
}

func NewList() *List {
	return &List{index: make(map[string]int)}
}

// ReplaceAll discards the current contents and stores records in the given
// order. The list is left untouched if records contain a duplicate ID.
func (l *List) ReplaceAll(records []models.Reminder) error {
	index := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := index[r.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		index[r.ID] = i
	}

	items := make([]models.Reminder, len(records))
	copy(items, records)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = items
	l.index = index
	return nil
}

// Insert appends a newly created record.
func (l *List) Insert(r models.Reminder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[r.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
	}
	l.index[r.ID] = len(l.items)
	l.items = append(l.items, r)
	return nil
}

// ReplaceOne swaps the record stored under id for r, keeping its position.
func (l *List) ReplaceOne(id string, r models.Reminder) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if r.ID != id {
		if _, taken := l.index[r.ID]; taken {
			return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		delete(l.index, id)
		l.index[r.ID] = i
	}
	l.items[i] = r
	return nil
}

// RemoveOne deletes the record stored under id.
func (l *List) RemoveOne(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.index, id)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j].ID] = j
	}
	return nil
}

// Get returns the record stored under id.
func (l *List) Get(id string) (models.Reminder, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return models.Reminder{}, false
	}
	return l.items[i], true
}

// Items returns a copy of the records in display order.
func (l *List) Items() []models.Reminder {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Reminder, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Clear empties the list, e.g. on logout.
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.index = make(map[string]int)
}
