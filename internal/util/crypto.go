package util

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const exportIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func GenerateNChar(n int) (string, error) {
	id, err := gonanoid.New(n)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GenerateExportID returns a lowercase id that is safe to use as an object key segment.
func GenerateExportID() (string, error) {
	return gonanoid.Generate(exportIDAlphabet, 16)
}
