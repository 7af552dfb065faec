package export

import "errors"

var (
	// ErrEmptyDataset: export requested with nothing to export. Mapped to
	// "No data to export" / 404, never an empty document.
	ErrEmptyDataset = errors.New("No data to export")

	// ErrUnknownUser: the token verified but the account no longer exists.
	ErrUnknownUser = errors.New("Unknown user")
)
