package edit

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plus2 = time.FixedZone("plus-2", 2*3600)

func sample(id string) models.Reminder {
	return models.Reminder{
		ID:            id,
		Name:          "Aspirin",
		Dosage:        "100mg",
		ScheduledTime: time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC),
		Duration:      7,
		Notes:         "with water",
	}
}

func TestNewSession_IsIdle(t *testing.T) {
	s := NewSession(plus2)
	_, editing := s.Editing()
	assert.False(t, editing)
	_, ok := s.Scratch()
	assert.False(t, ok)
	assert.Equal(t, plus2, s.Location())
}

func TestStart_PopulatesScratchWithSplitSchedule(t *testing.T) {
	s := NewSession(plus2)

	discarded := s.Start(sample("r1"))
	assert.Empty(t, discarded)

	sc, ok := s.Scratch()
	require.True(t, ok)
	assert.Equal(t, Scratch{
		ID:       "r1",
		Name:     "Aspirin",
		Dosage:   "100mg",
		Date:     "2024-05-01",
		Time:     "08:00",
		Duration: "7",
		Notes:    "with water",
	}, sc)

	id, editing := s.Editing()
	assert.True(t, editing)
	assert.Equal(t, "r1", id)
}

func TestStart_SwitchDiscardsPreviousScratch(t *testing.T) {
	s := NewSession(plus2)
	s.Start(sample("r1"))
	require.NoError(t, s.Set(FieldName, "changed"))

	discarded := s.Start(sample("r2"))
	assert.Equal(t, "r1", discarded)

	sc, _ := s.Scratch()
	assert.Equal(t, "r2", sc.ID)
	assert.Equal(t, "Aspirin", sc.Name)

	// Restarting the same record is not a switch.
	assert.Empty(t, s.Start(sample("r2")))
}

func TestSet(t *testing.T) {
	s := NewSession(plus2)
	require.ErrorIs(t, s.Set(FieldName, "x"), ErrNotEditing)

	s.Start(sample("r1"))
	require.NoError(t, s.Set("Name", "Ibuprofen"))
	require.NoError(t, s.Set(FieldDosage, "200mg"))
	require.NoError(t, s.Set(FieldDate, "2024-06-02"))
	require.NoError(t, s.Set(FieldTime, "21:30"))
	require.NoError(t, s.Set(FieldDuration, "3"))
	require.NoError(t, s.Set(FieldNotes, ""))
	require.ErrorIs(t, s.Set("colour", "red"), models.ErrValidation)

	sc, _ := s.Scratch()
	assert.Equal(t, Scratch{ID: "r1", Name: "Ibuprofen", Dosage: "200mg", Date: "2024-06-02", Time: "21:30", Duration: "3"}, sc)
}

func TestCancel(t *testing.T) {
	s := NewSession(plus2)
	s.Cancel()

	s.Start(sample("r1"))
	s.Cancel()
	_, editing := s.Editing()
	assert.False(t, editing)
}

func TestFinish_OnlyClosesMatchingRecord(t *testing.T) {
	s := NewSession(plus2)
	s.Start(sample("r1"))
	s.Start(sample("r2"))

	s.Finish("r1")
	id, editing := s.Editing()
	require.True(t, editing)
	assert.Equal(t, "r2", id)

	s.Finish("r2")
	_, editing = s.Editing()
	assert.False(t, editing)
}

func TestScratch_Patch(t *testing.T) {
	s := NewSession(plus2)
	s.Start(sample("r1"))
	require.NoError(t, s.Set(FieldDuration, "5"))

	sc, _ := s.Scratch()
	p, err := sc.Patch(s.Location())
	require.NoError(t, err)

	require.NotNil(t, p.ScheduledTime)
	assert.Equal(t, "2024-05-01T06:00:00Z", *p.ScheduledTime)
	assert.Equal(t, 5, *p.Duration)
	assert.Equal(t, "Aspirin", *p.Name)
	assert.Equal(t, "100mg", *p.Dosage)
	assert.Equal(t, "with water", *p.Notes)
}

func TestScratch_Patch_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
	}{
		{"duration text", FieldDuration, "a week"},
		{"duration zero", FieldDuration, "0"},
		{"bad time", FieldTime, "25:00"},
		{"bad date", FieldDate, "2024-02-30"},
		{"empty name", FieldName, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(plus2)
			s.Start(sample("r1"))
			require.NoError(t, s.Set(tt.field, tt.value))
			sc, _ := s.Scratch()
			_, err := sc.Patch(s.Location())
			require.ErrorIs(t, err, models.ErrValidation)
		})
	}
}
