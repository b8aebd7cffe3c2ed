package bqpost

import (
	"fmt"
	"strings"
)

// TOCMode selects how the table of contents is located.
type TOCMode string

// Table of contents modes.
const (
	// TOCModeDOM queries div#toc.toc in the parsed document.
	TOCModeDOM TOCMode = "dom"

	// TOCModeMarker searches for the literal opening and closing markup.
	TOCModeMarker TOCMode = "marker"
)

// ParseTOCMode parses a mode name (case-insensitive). Empty means TOCModeDOM.
func ParseTOCMode(s string) (TOCMode, error) {
	switch TOCMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", TOCModeDOM:
		return TOCModeDOM, nil
	case TOCModeMarker:
		return TOCModeMarker, nil
	}
	return "", fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidTOCMode, s, TOCModeDOM, TOCModeMarker)
}

func (m TOCMode) valid() bool {
	return m == TOCModeDOM || m == TOCModeMarker
}
