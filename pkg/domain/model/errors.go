package model

import "errors"

// Sentinel errors for the domain model
var (
	ErrEmptyDescription = errors.New("clinical description is empty")
)
