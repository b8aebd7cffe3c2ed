// Package pipeline implements the four rewrite steps applied to a rendered
// document's HTML:
//   - table of contents extraction and restyling (TOCExtractor)
//   - DOM fixups: admonition icons, code language classes, preamble removal (DOMFixer)
//   - header injection, including the empty front matter stub (AssetInjection)
//   - footer injection (AssetInjection)
//
// Each step takes the previous step's output. Writing the extracted table of
// contents to disk, and deciding what to do when that fails, is left to the
// caller: the steps here never touch the filesystem.
package pipeline
