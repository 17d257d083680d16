package engine

import uuid "github.com/satori/go.uuid"

// NewID constructs a game ID
func NewID() string {
	return uuid.NewV4().String()
}
