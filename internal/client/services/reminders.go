package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/medreminder/internal/client/client"
	"github.com/dmitrijs2005/medreminder/internal/client/edit"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/dmitrijs2005/medreminder/internal/client/reminders"
	"github.com/dmitrijs2005/medreminder/internal/logging"
)

// ReminderService drives the reminder workflow. Every mutation of the local
// list happens only after the backend confirmed the call; on failure the list
// and the edit session are left as they were.
type ReminderService interface {
	Load(ctx context.Context) error
	Items() []models.Reminder

	Create(ctx context.Context, in models.ReminderInput) (models.Reminder, error)
	Update(ctx context.Context, id string, p models.ReminderPatch) (models.Reminder, error)
	// Delete removes id after confirm returned true. Unknown ids and declined
	// (or missing) confirmations never reach the backend.
	Delete(ctx context.Context, id string, confirm func() bool) (deleted bool, err error)

	StartEdit(id string) (discarded string, err error)
	SetEditField(field, value string) error
	CancelEdit()
	Editing() (edit.Scratch, bool)
	SaveEdit(ctx context.Context) (models.Reminder, error)
}

type reminderService struct {
	client client.Client
	list   *reminders.List
	edit   *edit.Session
	log    logging.Logger
}

// NewReminderService constructs a ReminderService. Schedules are split and
// combined in the edit session's location.
func NewReminderService(c client.Client, list *reminders.List, ed *edit.Session, log logging.Logger) ReminderService {
	if log == nil {
		log = logging.Discard()
	}
	return &reminderService{client: c, list: list, edit: ed, log: log.With("service", "reminders")}
}

// Load fetches all reminders and replaces the local list.
func (s *reminderService) Load(ctx context.Context) error {
	items, err := s.client.List(ctx)
	if err != nil {
		s.log.Warn(ctx, "list failed", "err", err)
		return fmt.Errorf("list error: %w", err)
	}
	if err := s.list.ReplaceAll(items); err != nil {
		s.invariant(ctx, "list", "", err)
		return fmt.Errorf("list error: %w", err)
	}
	s.log.Debug(ctx, "reminders loaded", "count", len(items))
	return nil
}

func (s *reminderService) Items() []models.Reminder {
	return s.list.Items()
}

// Create validates in, sends it and appends the stored record.
func (s *reminderService) Create(ctx context.Context, in models.ReminderInput) (models.Reminder, error) {
	p, err := in.Payload(s.edit.Location())
	if err != nil {
		return models.Reminder{}, err
	}

	r, err := s.client.Create(ctx, p)
	if err != nil {
		s.log.Warn(ctx, "create failed", "name", p.Name, "err", err)
		return models.Reminder{}, fmt.Errorf("create error: %w", err)
	}

	if err := s.list.Insert(r); err != nil {
		s.invariant(ctx, "create", r.ID, err)
		return models.Reminder{}, fmt.Errorf("create error: %w", err)
	}
	s.log.Info(ctx, "reminder created", "id", r.ID)
	return r, nil
}

// Update sends p for a known record and replaces it with the echoed one.
func (s *reminderService) Update(ctx context.Context, id string, p models.ReminderPatch) (models.Reminder, error) {
	if _, ok := s.list.Get(id); !ok {
		return models.Reminder{}, fmt.Errorf("%w: %s", reminders.ErrNotFound, id)
	}
	if p.IsEmpty() {
		return models.Reminder{}, fmt.Errorf("%w: nothing to update", models.ErrValidation)
	}
	return s.update(ctx, id, p)
}

func (s *reminderService) update(ctx context.Context, id string, p models.ReminderPatch) (models.Reminder, error) {
	r, err := s.client.Update(ctx, id, p)
	if err != nil {
		s.log.Warn(ctx, "update failed", "id", id, "err", err)
		return models.Reminder{}, fmt.Errorf("update error: %w", err)
	}

	if err := s.list.ReplaceOne(id, r); err != nil {
		s.invariant(ctx, "update", id, err)
		return models.Reminder{}, fmt.Errorf("update error: %w", err)
	}
	s.log.Info(ctx, "reminder updated", "id", id)
	return r, nil
}

func (s *reminderService) Delete(ctx context.Context, id string, confirm func() bool) (bool, error) {
	if _, ok := s.list.Get(id); !ok {
		return false, fmt.Errorf("%w: %s", reminders.ErrNotFound, id)
	}
	if confirm == nil || !confirm() {
		return false, nil
	}

	if err := s.client.Delete(ctx, id); err != nil {
		s.log.Warn(ctx, "delete failed", "id", id, "err", err)
		return false, fmt.Errorf("delete error: %w", err)
	}

	// A record deleted while open in the editor cannot be saved any more.
	s.edit.Finish(id)

	if err := s.list.RemoveOne(id); err != nil {
		s.invariant(ctx, "delete", id, err)
		return true, fmt.Errorf("delete error: %w", err)
	}
	s.log.Info(ctx, "reminder deleted", "id", id)
	return true, nil
}

// StartEdit opens the local record id in the edit session. It returns the ID
// whose unsaved scratch was discarded by the switch, if any.
func (s *reminderService) StartEdit(id string) (string, error) {
	r, ok := s.list.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", reminders.ErrNotFound, id)
	}
	return s.edit.Start(r), nil
}

func (s *reminderService) SetEditField(field, value string) error {
	return s.edit.Set(field, value)
}

func (s *reminderService) CancelEdit() {
	s.edit.Cancel()
}

func (s *reminderService) Editing() (edit.Scratch, bool) {
	return s.edit.Scratch()
}

// SaveEdit sends the whole scratch as an update. On failure the session stays
// open with the scratch intact so the user can correct it and retry.
func (s *reminderService) SaveEdit(ctx context.Context) (models.Reminder, error) {
	sc, ok := s.edit.Scratch()
	if !ok {
		return models.Reminder{}, edit.ErrNotEditing
	}

	p, err := sc.Patch(s.edit.Location())
	if err != nil {
		return models.Reminder{}, err
	}

	r, err := s.update(ctx, sc.ID, p)
	if err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			s.edit.Finish(sc.ID)
		}
		return models.Reminder{}, err
	}

	s.edit.Finish(sc.ID)
	return r, nil
}

// invariant logs a list-state violation. These only happen when the backend
// and the local list disagree about identities.
func (s *reminderService) invariant(ctx context.Context, op, id string, err error) {
	s.log.Error(ctx, "reminder list invariant violated", "op", op, "id", id, "err", err)
}
