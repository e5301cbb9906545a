package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const KeySize = 21

// RandomKey returns a random object key segment of KeySize characters.
func RandomKey() string {
	return gonanoid.MustGenerate(keyAlphabet, KeySize)
}
