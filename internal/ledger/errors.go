package ledger

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateName     = errors.New("name already exists")
	ErrMonthLocked       = errors.New("month is locked")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidKind       = errors.New("invalid transaction kind")
	ErrProtectedCategory = errors.New("category cannot be deleted")
	ErrEmptyName         = errors.New("name is required")
)
