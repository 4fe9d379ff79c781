package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/medreminder/internal/client/datetime"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/dmitrijs2005/medreminder/internal/client/services"
)

const deletePrompt = "Are you sure you want to delete this reminder? (y/N)"

var errUsage = errors.New("usage")

// List fetches the reminders and prints them. On failure the previously
// loaded list is shown below the error.
func (a *App) List(ctx context.Context) error {
	err := a.reminderService.Load(ctx)
	if err != nil {
		_ = a.fail(err, services.MsgLoadFailed)
		if len(a.reminderService.Items()) == 0 {
			return err
		}
	}
	a.println(a.ui.Reminders(a.reminderService.Items()))
	return err
}

// Add prompts for a new reminder. Date and time default to today and the
// next full hour.
func (a *App) Add(ctx context.Context) error {
	next := time.Now().Add(time.Hour).Truncate(time.Hour)
	defDate, defTime := datetime.Split(next, time.Local)

	var in models.ReminderInput
	var err error

	if in.Name, err = GetSimpleText(a.reader, "Medicine name", a.out); err != nil {
		return err
	}
	if in.Dosage, err = GetSimpleText(a.reader, "Dosage (e.g. 500mg)", a.out); err != nil {
		return err
	}
	if in.Date, err = a.withDefault("Date (YYYY-MM-DD)", defDate); err != nil {
		return err
	}
	if in.Time, err = a.withDefault("Time (HH:MM)", defTime); err != nil {
		return err
	}
	duration, err := a.withDefault("Duration in days", "1")
	if err != nil {
		return err
	}
	if in.Notes, err = GetSimpleText(a.reader, "Notes (optional)", a.out); err != nil {
		return err
	}

	if in.Duration, err = models.ParseDuration(duration); err != nil {
		return a.fail(err, services.MsgAddFailed)
	}

	r, err := a.reminderService.Create(ctx, in)
	if err != nil {
		return a.fail(err, services.MsgAddFailed)
	}
	a.println(a.ui.Success("Medicine reminder added! (" + r.Name + ", " + a.ui.When(r.ScheduledTime) + ")"))
	return nil
}

func (a *App) withDefault(prompt, def string) (string, error) {
	v, err := GetSimpleText(a.reader, prompt+" ["+def+"]", a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return def, nil
	}
	return v, nil
}

// Edit opens a reminder for editing and shows its fields.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "edit <#|id>")
	if err != nil {
		return err
	}

	discarded, err := a.reminderService.StartEdit(id)
	if err != nil {
		return a.fail(err, "Failed to start editing")
	}
	if discarded != "" {
		a.println(a.ui.Info("Discarded unsaved changes to " + discarded))
	}

	sc, _ := a.reminderService.Editing()
	a.println(a.ui.Scratch(sc))
	a.println(a.ui.Dim("Use 'set <field> <value>', then 'save' or 'cancel'."))
	return nil
}

// Set changes one field of the open edit. The value is the rest of the line;
// an empty value clears the field.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(a.ui.Info("Usage: set <name|dosage|date|time|duration|notes> <value>"))
		return errUsage
	}

	if err := a.reminderService.SetEditField(args[0], strings.Join(args[1:], " ")); err != nil {
		return a.fail(err, "Failed to change field")
	}

	sc, _ := a.reminderService.Editing()
	a.println(a.ui.Scratch(sc))
	return nil
}

// Save sends the open edit. On failure the edit stays open.
func (a *App) Save(ctx context.Context) error {
	r, err := a.reminderService.SaveEdit(ctx)
	if err != nil {
		return a.fail(err, services.MsgUpdateFailed)
	}
	a.println(a.ui.Success("Reminder updated! (" + r.Name + ", " + a.ui.When(r.ScheduledTime) + ")"))
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	if _, ok := a.reminderService.Editing(); !ok {
		a.println(a.ui.Info("Nothing is being edited."))
		return nil
	}
	a.reminderService.CancelEdit()
	a.println(a.ui.Info("Changes discarded."))
	return nil
}

// Delete asks for confirmation and deletes a reminder.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.resolveID(args, "delete <#|id>")
	if err != nil {
		return err
	}

	var confirmErr error
	deleted, err := a.reminderService.Delete(ctx, id, func() bool {
		ok, err := Confirm(a.reader, deletePrompt, a.out)
		confirmErr = err
		return ok
	})
	if confirmErr != nil {
		return confirmErr
	}
	if err != nil {
		return a.fail(err, services.MsgDeleteFailed)
	}
	if !deleted {
		a.println(a.ui.Info("Not deleted."))
		return nil
	}
	a.println(a.ui.Success("Reminder deleted!"))
	return nil
}

// resolveID accepts either a record ID or a 1-based position in the list.
// An exact ID match wins over a position.
func (a *App) resolveID(args []string, usage string) (string, error) {
	if len(args) == 0 {
		a.println(a.ui.Info("Usage: " + usage))
		return "", errUsage
	}
	ref := args[0]

	items := a.reminderService.Items()
	for _, r := range items {
		if r.ID == ref {
			return ref, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(items) {
		return items[n-1].ID, nil
	}
	return ref, nil
}
