// Package edit tracks the single reminder being edited and its scratch copy.
//
// A Session is either idle or editing exactly one record. Starting an edit
// while another one is open discards the open scratch without saving.
package edit

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/datetime"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
)

// Field names accepted by Set.
const (
	FieldName     = "name"
	FieldDosage   = "dosage"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldDuration = "duration"
	FieldNotes    = "notes"
)

// Scratch is the editable copy of one reminder. Date and Time hold the
// record's schedule split in the session's location; Duration is kept as
// typed text until the scratch is saved.
type Scratch struct {
	ID       string
	Name     string
	Dosage   string
	Date     string
	Time     string
	Duration string
	Notes    string
}

// Patch validates the scratch and converts it into a full update request.
func (s Scratch) Patch(loc *time.Location) (models.ReminderPatch, error) {
	duration, err := models.ParseDuration(s.Duration)
	if err != nil {
		return models.ReminderPatch{}, err
	}

	in := models.ReminderInput{
		Name:     s.Name,
		Dosage:   s.Dosage,
		Date:     s.Date,
		Time:     s.Time,
		Duration: duration,
		Notes:    s.Notes,
	}
	p, err := in.Payload(loc)
	if err != nil {
		return models.ReminderPatch{}, err
	}

	return models.ReminderPatch{
		Name:          &p.Name,
		Dosage:        &p.Dosage,
		ScheduledTime: &p.ScheduledTime,
		Duration:      &p.Duration,
		Notes:         &p.Notes,
	}, nil
}

type Session struct {
	mu      sync.Mutex
	loc     *time.Location
	scratch *Scratch
}

// NewSession returns an idle session that splits schedules in loc.
func NewSession(loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{loc: loc}
}

// Location is the zone used to split and recombine schedules.
func (s *Session) Location() *time.Location {
	return s.loc
}

// Start opens r for editing. It returns the ID of the record whose scratch
// was discarded, or "" if the session was idle or already on r.
func (s *Session) Start(r models.Reminder) (discarded string) {
	date, clock := datetime.Split(r.ScheduledTime, s.loc)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scratch != nil && s.scratch.ID != r.ID {
		discarded = s.scratch.ID
	}
	s.scratch = &Scratch{
		ID:       r.ID,
		Name:     r.Name,
		Dosage:   r.Dosage,
		Date:     date,
		Time:     clock,
		Duration: strconv.Itoa(r.Duration),
		Notes:    r.Notes,
	}
	return discarded
}

// Set changes one scratch field.
func (s *Session) Set(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scratch == nil {
		return ErrNotEditing
	}

	switch strings.ToLower(field) {
	case FieldName:
		s.scratch.Name = value
	case FieldDosage:
		s.scratch.Dosage = value
	case FieldDate:
		s.scratch.Date = value
	case FieldTime:
		s.scratch.Time = value
	case FieldDuration:
		s.scratch.Duration = value
	case FieldNotes:
		s.scratch.Notes = value
	default:
		return fmt.Errorf("%w: unknown field %q", models.ErrValidation, field)
	}
	return nil
}

// Cancel discards the scratch. It is a no-op when idle.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scratch = nil
}

// Finish closes the session after id was saved. If the user has meanwhile
// switched to another record, that edit stays open.
func (s *Session) Finish(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scratch != nil && s.scratch.ID == id {
		s.scratch = nil
	}
}

// Editing returns the ID of the record being edited.
func (s *Session) Editing() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scratch == nil {
		return "", false
	}
	return s.scratch.ID, true
}

// Scratch returns a copy of the current scratch.
func (s *Session) Scratch() (Scratch, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scratch == nil {
		return Scratch{}, false
	}
	return *s.scratch, true
}
