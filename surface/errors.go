package surface

import "errors"

var (
	ErrEmptyContainer = errors.New("surface: container has no visible area")
)
