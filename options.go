package bqpost

import (
	"log/slog"

	"github.com/alnah/go-bqpost/internal/fileutil"
)

// Option configures a Processor.
type Option func(*Processor)

// SidecarWriter writes the table of contents file. It must create or
// truncate the file at path.
type SidecarWriter func(path, content string) error

// defaultSidecarWriter writes with truncate-or-create semantics.
var defaultSidecarWriter SidecarWriter = fileutil.WriteFile

// WithLogger sets the logger for sidecar and step diagnostics.
// Panics if l is nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bqpost: WithLogger logger must not be nil")
	}
	return func(p *Processor) {
		p.logger = l
	}
}

// WithTOCMode selects how the table of contents is located.
// Panics on an unknown mode; use ParseTOCMode for user input.
func WithTOCMode(m TOCMode) Option {
	if !m.valid() {
		panic("bqpost: WithTOCMode unknown mode " + string(m))
	}
	return func(p *Processor) {
		p.tocMode = m
	}
}

// WithSidecarWriter replaces the function that writes the table of contents file.
// Panics if w is nil.
func WithSidecarWriter(w SidecarWriter) Option {
	if w == nil {
		panic("bqpost: WithSidecarWriter writer must not be nil")
	}
	return func(p *Processor) {
		p.writeSidecar = w
	}
}
