// Package placeholder scans text for delimited template placeholders such as {{name}}.
package placeholder

import (
	"errors"
	"fmt"
)

// Default delimiters.
const (
	DefaultOpen  = "{{"
	DefaultClose = "}}"
)

// ErrInvalidConfiguration is returned when a delimiter pair cannot be used.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Delimiters is the opening and closing marker pair around a placeholder.
type Delimiters struct {
	Open  string `yaml:"open" toml:"open"`
	Close string `yaml:"close" toml:"close"`
}

// DefaultDelimiters returns the {{ }} pair.
func DefaultDelimiters() Delimiters {
	return Delimiters{Open: DefaultOpen, Close: DefaultClose}
}

// Validate reports ErrInvalidConfiguration if either delimiter is empty.
func (d Delimiters) Validate() error {
	if d.Open == "" {
		return fmt.Errorf("%w: opening delimiter is empty", ErrInvalidConfiguration)
	}
	if d.Close == "" {
		return fmt.Errorf("%w: closing delimiter is empty", ErrInvalidConfiguration)
	}
	return nil
}

// OrDefault fills empty fields with the default delimiters.
func (d Delimiters) OrDefault() Delimiters {
	if d.Open == "" {
		d.Open = DefaultOpen
	}
	if d.Close == "" {
		d.Close = DefaultClose
	}
	return d
}

// Wrap returns inner surrounded by the delimiters.
func (d Delimiters) Wrap(inner string) string {
	return d.Open + inner + d.Close
}

func (d Delimiters) String() string {
	return d.Open + "…" + d.Close
}
