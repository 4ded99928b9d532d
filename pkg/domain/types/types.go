package types

import (
	"strconv"

	"github.com/google/uuid"
)

// UserID represents an Overseerr user identifier
type UserID int

// String returns the string representation
func (id UserID) String() string {
	return strconv.Itoa(int(id))
}

// Int returns the int representation
func (id UserID) Int() int {
	return int(id)
}

// RunID identifies a single synchronization run in logs and notifications
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}
