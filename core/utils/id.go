package utils

import (
	"meeting-scheduler-api/core/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateRequestID returns a short opaque ID for request correlation.
func GenerateRequestID() string {
	id, err := gonanoid.Generate(idAlphabet, constants.RequestIDLength)
	if err != nil {
		return ""
	}
	return id
}
