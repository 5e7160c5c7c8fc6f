package attendance

import "errors"

var (
	ErrMissingHeader = errors.New("attendance file has no header row")
	ErrEmptySource   = errors.New("attendance file has no data rows")
)
