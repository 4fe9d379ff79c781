package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/medreminder/internal/client/client"
	"github.com/dmitrijs2005/medreminder/internal/client/datetime"
	"github.com/dmitrijs2005/medreminder/internal/client/edit"
	"github.com/dmitrijs2005/medreminder/internal/client/models"
	"github.com/dmitrijs2005/medreminder/internal/client/reminders"
)

// Fallback messages shown when the backend gives no reason.
const (
	MsgLoginFailed    = "Login failed"
	MsgRegisterFailed = "Registration failed"
	MsgLoadFailed     = "Failed to load reminders"
	MsgAddFailed      = "Failed to add reminder"
	MsgUpdateFailed   = "Failed to update reminder"
	MsgDeleteFailed   = "Failed to delete reminder"
)

// Message turns err into a single line for the user. A backend-supplied
// reason is preferred; fallback is used for rejections without one.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, client.ErrNotAuthenticated):
		return "No token found, please login again."
	case errors.Is(err, client.ErrUnauthorized):
		if reason := client.Reason(err); reason != "" {
			return reason
		}
		return "Session is no longer valid, please login again."
	case errors.Is(err, client.ErrUnavailable):
		return "Server error: backend is unreachable, try again later."
	case errors.Is(err, context.DeadlineExceeded):
		return "Server error: request timed out."
	case errors.Is(err, context.Canceled):
		return "Cancelled."
	case errors.Is(err, edit.ErrNotEditing):
		return "Nothing is being edited."
	case errors.Is(err, reminders.ErrDuplicateID):
		return fallback + " (internal error, see log)"
	case errors.Is(err, reminders.ErrNotFound):
		return "Reminder not found."
	case errors.Is(err, models.ErrValidation), errors.Is(err, datetime.ErrMalformed):
		return "Invalid input: " + detail(err)
	}

	if reason := client.Reason(err); reason != "" {
		return reason
	}
	return fallback
}

// detail strips the sentinel prefixes from a validation error.
func detail(err error) string {
	msg := err.Error()
	for _, prefix := range []string{models.ErrValidation.Error() + ": ", datetime.ErrMalformed.Error() + ": "} {
		msg = strings.ReplaceAll(msg, prefix, "")
	}
	return msg
}
