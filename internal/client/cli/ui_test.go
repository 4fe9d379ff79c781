package cli

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/edit"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/stretchr/testify/assert"
)

var plus2 = time.FixedZone("plus-2", 2*3600)

func TestFormatter_Plain(t *testing.T) {
	f := NewFormatter(false, plus2)

	assert.Equal(t, "✅ done", f.Success("done"))
	assert.Equal(t, "❌ failed", f.Error("failed"))
	assert.Equal(t, "info", f.Info("info"))
}

func TestFormatter_Reminders(t *testing.T) {
	f := NewFormatter(false, plus2)

	assert.Contains(t, f.Reminders(nil), "No reminders yet")

	out := f.Reminders([]models.Reminder{
		{ID: "r1", Name: "Aspirin", Dosage: "100mg", ScheduledTime: time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC), Duration: 1},
		{ID: "r2", Name: "Vitamin D", Dosage: "1 tab", ScheduledTime: time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), Duration: 30, Notes: "after lunch"},
	})

	assert.Contains(t, out, "Reminders (2)")
	assert.Contains(t, out, " 1. Aspirin 100mg, 2024-05-01 08:00, 1 day id=r1")
	assert.Contains(t, out, " 2. Vitamin D 1 tab, 2025-01-01 01:00, 30 days id=r2")
	assert.Contains(t, out, "    after lunch")
}

func TestFormatter_Scratch(t *testing.T) {
	f := NewFormatter(false, plus2)

	out := f.Scratch(edit.Scratch{ID: "r1", Name: "Aspirin", Date: "2024-05-01", Time: "08:00", Duration: "7"})
	assert.Contains(t, out, "Editing r1")
	assert.Contains(t, out, "time:     08:00")
	assert.Contains(t, out, "duration: 7")
}

func TestFormatter_ColoredKeepsText(t *testing.T) {
	f := NewFormatter(true, plus2)

	assert.Contains(t, f.Success("done"), "done")
	assert.Contains(t, f.Scratch(edit.Scratch{ID: "r1"}), "Editing r1")
}
