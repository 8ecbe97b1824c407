package util

import "errors"

var (
	ErrClassNotFound      = errors.New("class not found")
	ErrProgressNotFound   = errors.New("progress record not found")
	ErrDuplicateProgress  = errors.New("progress record already exists for this student and module")
	ErrDuplicateJoinCode  = errors.New("join code already in use in this school")
	ErrInvalidScore       = errors.New("score must be between 0 and 100")
	ErrUnknownModule      = errors.New("module is not part of the curriculum")
	ErrEmptyClassName     = errors.New("class name must not be empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
