package utils

import (
	"github.com/google/uuid"
)

// RunIDPrefix starts every run identifier
const RunIDPrefix = "run-"

// NewRunID returns an identifier for one run of the lesson runner. IDs are
// UUIDv7, so they sort by creation time.
func NewRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		id = uuid.New()
	}
	return RunIDPrefix + id.String()
}
