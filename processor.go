package bqpost

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/alnah/go-bqpost/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TOCExtractor  = (*pipeline.DOMTOCExtractor)(nil)
	_ pipeline.TOCExtractor  = (*pipeline.MarkerTOCExtractor)(nil)
	_ pipeline.DOMFixer      = (*pipeline.AsciidocFixup)(nil)
	_ pipeline.AssetInjector = (*pipeline.AssetInjection)(nil)
	_ pipeline.AssetReader   = (Document)(nil)
	_ Postprocessor          = (*Processor)(nil)
)

// Postprocessor transforms the rendered HTML of one document.
type Postprocessor interface {
	Process(ctx context.Context, doc Document, content string) (string, error)
}

// Processor runs the post-processing steps.
// Create with NewProcessor. A Processor is safe for concurrent use.
type Processor struct {
	logger       *slog.Logger
	tocMode      TOCMode
	writeSidecar SidecarWriter
	tocExtractor pipeline.TOCExtractor
	fixer        pipeline.DOMFixer
	injector     pipeline.AssetInjector
}

// NewProcessor creates a Processor with default configuration.
// Use options to customize behavior (e.g., WithTOCMode, WithLogger).
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		logger:       slog.Default(),
		tocMode:      TOCModeDOM,
		writeSidecar: defaultSidecarWriter,
		fixer:        &pipeline.AsciidocFixup{},
		injector:     &pipeline.AssetInjection{},
	}

	for _, opt := range opts {
		opt(p)
	}

	// Tests may inject their own extractor.
	if p.tocExtractor == nil {
		if p.tocMode == TOCModeMarker {
			p.tocExtractor = &pipeline.MarkerTOCExtractor{}
		} else {
			p.tocExtractor = &pipeline.DOMTOCExtractor{}
		}
	}

	return p
}

// TOCMode reports the configured table of contents mode.
func (p *Processor) TOCMode() TOCMode {
	return p.tocMode
}

// Process runs all steps over content and returns the transformed HTML.
// The table of contents, when present, is written beside the output as a side
// effect; a failed write is logged and ignored. Header and footer asset
// errors are returned. Recovers from internal panics.
func (p *Processor) Process(ctx context.Context, doc Document, content string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if doc == nil {
		return "", ErrNilDocument
	}

	// Extract the table of contents into its sidecar file
	toc, err := p.tocExtractor.ExtractTOC(ctx, content)
	if err != nil {
		return "", fmt.Errorf("extracting table of contents: %w", err)
	}
	if toc.Found {
		p.writeTOC(doc.Options(), toc.Fragment)
	} else {
		p.logger.Debug("no table of contents found")
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Rewrite icons and code classes, drop the preamble
	out, err := p.fixer.FixupDOM(ctx, toc.Content)
	if err != nil {
		return "", fmt.Errorf("fixing up document: %w", err)
	}

	out, err = p.injector.InjectHeader(ctx, out, doc.Attribute(HeaderAttribute, ""), doc)
	if err != nil {
		return "", err
	}

	out, err = p.injector.InjectFooter(ctx, out, doc.Attribute(FooterAttribute, ""), doc)
	if err != nil {
		return "", err
	}

	return out, nil
}

// writeTOC writes fragment to <destinationDir>/<docname>.toc.html.
// Failures are logged, never returned.
func (p *Processor) writeTOC(opts Options, fragment string) {
	docname := opts.Docname()
	if opts.DestinationDir == "" || docname == "" {
		p.logger.Error("cannot write table of contents",
			"destination_dir", opts.DestinationDir,
			"docname", docname,
			"error", "destination directory and docname are required")
		return
	}

	path := SidecarPath(opts.DestinationDir, docname)
	if err := p.writeSidecar(path, fragment); err != nil {
		p.logger.Error("cannot write table of contents", "path", path, "error", err)
		return
	}
	p.logger.Debug("wrote table of contents", "path", path)
}

// SidecarPath returns the table of contents file path for a document.
func SidecarPath(destinationDir, docname string) string {
	return filepath.Join(destinationDir, docname+TOCFileSuffix)
}
