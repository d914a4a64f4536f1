// Package textsource loads practice text from files.
package textsource

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the text file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

// ErrEmptyPath is returned when no text file was configured.
var ErrEmptyPath = errors.New("text path is empty")

// Load reads the file at path as UTF-8 text.
func Load(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return string(data), nil
}

// LoadNormalized reads the file at path and applies Normalize.
func LoadNormalized(path string) (string, error) {
	text, err := Load(path)
	if err != nil {
		return "", err
	}
	return Normalize(text), nil
}
