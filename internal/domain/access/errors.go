package access

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrNotOwnRecord            = errors.New("record belongs to another staff member")
	ErrStatusOnlyEdit          = errors.New("only the status field may be updated")
	ErrUnknownRole             = errors.New("unknown role")
	ErrUnknownModule           = errors.New("unknown module")
	ErrUnknownAction           = errors.New("unknown action")
	ErrActorMissing            = errors.New("no authenticated staff member")
)
