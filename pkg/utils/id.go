package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateReference returns a short alphanumeric reference, used to
// acknowledge recorded sales in API responses and logs.
func GenerateReference() (string, error) {
	return gonanoid.Generate(characters, 8)
}
