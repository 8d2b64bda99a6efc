package entity

import "errors"

// ErrNotFound indicates that a requested blog is not in the canonical list.
var ErrNotFound = errors.New("blog not found")
