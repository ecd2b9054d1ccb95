package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates a model-unique identifier in the "id-<32 hex>" form
// used by .archimate documents.
func NewID() string {
	return "id-" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
