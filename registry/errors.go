package registry

import "errors"

var (
	ErrDuplicateGroup = errors.New("group already exists")
	ErrGroupNotFound  = errors.New("group not found")
)
