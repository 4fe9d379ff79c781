package edit

import "errors"

// ErrNotEditing is returned by operations that need an open edit.
var ErrNotEditing = errors.New("no reminder is being edited")
