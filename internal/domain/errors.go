package domain

import "errors"

var (
	ErrFileNotFound = errors.New("lead file not found")
	ErrNotFound     = errors.New("not found")
)
