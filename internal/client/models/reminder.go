// Package models defines client-side data models used by the medreminder CLI.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/datetime"
)

// ErrValidation marks input rejected before it is sent to the backend.
var ErrValidation = errors.New("validation error")

// Reminder is one medicine-dose reminder as stored by the backend.
type Reminder struct {
	// ID is assigned by the backend on creation and never changes.
	ID string `json:"_id"`

	Name   string `json:"name"`
	Dosage string `json:"dosage"`

	// ScheduledTime is the absolute time of the first dose.
	ScheduledTime time.Time `json:"scheduledTime"`

	// Duration is the number of days the reminder repeats.
	Duration int `json:"duration"`

	Notes string `json:"notes,omitempty"`
}

// ReminderInput is a new reminder as entered by the user, with the schedule
// split into a calendar date and a wall-clock time.
type ReminderInput struct {
	Name     string
	Dosage   string
	Date     string
	Time     string
	Duration int
	Notes    string
}

// ReminderPayload is the create request body.
type ReminderPayload struct {
	Name          string `json:"name"`
	Dosage        string `json:"dosage"`
	ScheduledTime string `json:"scheduledTime"`
	Duration      int    `json:"duration"`
	Notes         string `json:"notes"`
}

// ReminderPatch is the update request body. Nil fields are left unchanged
// by the backend.
type ReminderPatch struct {
	Name          *string `json:"name,omitempty"`
	Dosage        *string `json:"dosage,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`
	Duration      *int    `json:"duration,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ReminderPatch) IsEmpty() bool {
	return p.Name == nil && p.Dosage == nil && p.ScheduledTime == nil && p.Duration == nil && p.Notes == nil
}

// Validate checks the required fields of a new reminder.
func (in ReminderInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Dosage) == "" {
		missing = append(missing, "dosage")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Time) == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrValidation, strings.Join(missing, ", "))
	}
	if in.Duration < 1 {
		return fmt.Errorf("%w: duration must be at least 1 day", ErrValidation)
	}
	return nil
}

// Payload validates the input and combines its date and time in loc.
func (in ReminderInput) Payload(loc *time.Location) (ReminderPayload, error) {
	if err := in.Validate(); err != nil {
		return ReminderPayload{}, err
	}
	ts, err := datetime.CombineString(strings.TrimSpace(in.Date), strings.TrimSpace(in.Time), loc)
	if err != nil {
		return ReminderPayload{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return ReminderPayload{
		Name:          strings.TrimSpace(in.Name),
		Dosage:        strings.TrimSpace(in.Dosage),
		ScheduledTime: ts,
		Duration:      in.Duration,
		Notes:         in.Notes,
	}, nil
}

// ParseDuration converts a duration typed by the user into days.
func ParseDuration(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q is not a number", ErrValidation, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: duration must be at least 1 day", ErrValidation)
	}
	return n, nil
}
