// Package bqpost post-processes rendered documentation HTML for a Bootstrap
// and Font Awesome site.
//
// # Quick Start
//
// Describe the document, then run the processor over its rendered HTML:
//
//	doc, err := bqpost.NewFileDocument(bqpost.DocumentConfig{
//	    DestinationDir: "build/site",
//	    Name:           "guide",
//	    Attributes:     map[string]string{"bq-header": "front-matter"},
//	    AssetDirs:      []string{"docs/_assets"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := bqpost.NewProcessor().Process(ctx, doc, renderedHTML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Processing Steps
//
// Each call runs these steps in order:
//
//  1. Table of contents extraction: the div#toc block is cut out, its lists
//     get class "nav" and its links "nav-link", and it is written to
//     <destinationDir>/<docname>.toc.html
//  2. DOM fixup: admonition icon classes become Font Awesome classes, code
//     languages in data-lang are copied into the class list, and the
//     div#preamble wrapper is removed
//  3. Header injection from the bq-header attribute ("front-matter" prepends
//     an empty YAML front matter block)
//  4. Footer injection from the bq-footer attribute
//
// A failed sidecar write is logged and does not stop the call. A header or
// footer asset that cannot be read fails the whole call.
//
// # Table of Contents Modes
//
// TOCModeDOM (the default) finds the table of contents with a selector query.
// TOCModeMarker searches for the literal markup Asciidoctor emits and keeps
// the surrounding bytes exactly as they were:
//
//	proc := bqpost.NewProcessor(bqpost.WithTOCMode(bqpost.TOCModeMarker))
//
// # Custom Documents
//
// Hosts with their own attribute and asset handling implement Document
// directly instead of using FileDocument.
package bqpost
