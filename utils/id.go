package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a fresh uuid string, used as the primary key for
// every persisted record.
func GenerateID() string {
	return uuid.New().String()
}
