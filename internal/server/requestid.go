package server

import (
	"fmt"

	nanoid "github.com/matoous/go-nanoid/v2"
)

// requestIDAlphabet defines the character set of generated request ids.
const requestIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const requestIDLength = 12

const requestIDPrefix = "req-"

// newRequestID returns a short URL-safe id for a request.
func newRequestID() (string, error) {
	id, err := nanoid.Generate(requestIDAlphabet, requestIDLength)
	if err != nil {
		return "", fmt.Errorf("request id: %w", err)
	}
	return requestIDPrefix + id, nil
}
