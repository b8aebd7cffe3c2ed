package pipeline

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// IconReplacement maps an admonition icon class to its icon-font class.
type IconReplacement struct {
	From string
	To   string
}

// iconReplacements is applied in this order. Warning and caution share a glyph.
var iconReplacements = []IconReplacement{
	{From: "icon-tip", To: "fa-lightbulb-o"},
	{From: "icon-note", To: "fa-info-circle"},
	{From: "icon-important", To: "fa-exclamation-circle"},
	{From: "icon-warning", To: "fa-exclamation-triangle"},
	{From: "icon-caution", To: "fa-exclamation-triangle"},
}

// Classes, attributes and selectors used by the DOM fixup.
const (
	IconSizeClass    = "fa-2x"
	CodeLangAttr     = "data-lang"
	PreambleSelector = "div#preamble"
)

// IconReplacements returns a copy of the icon class table.
func IconReplacements() []IconReplacement {
	out := make([]IconReplacement, len(iconReplacements))
	copy(out, iconReplacements)
	return out
}

// DOMFixer defines the contract for the structural cleanup step.
type DOMFixer interface {
	FixupDOM(ctx context.Context, content string) (string, error)
}

// AsciidocFixup rewrites Asciidoctor HTML for a Font Awesome / Bootstrap site.
type AsciidocFixup struct{}

// FixupDOM swaps icon classes, copies code languages into classes, and
// drops the preamble wrapper. Only the body contents are returned, so a full
// document loses its doctype and head. Running it on its own output changes
// nothing.
func (f *AsciidocFixup) FixupDOM(ctx context.Context, content string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	parsed, err := parseHTML(content)
	if err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}
	doc := parsed.selection()

	for _, r := range iconReplacements {
		icons := doc.Find("." + r.From).
			RemoveClass(r.From).
			AddClass(r.To, IconSizeClass)
		normalizeClasses(icons)
	}

	doc.Find("code").Each(func(_ int, code *goquery.Selection) {
		if lang := code.AttrOr(CodeLangAttr, ""); lang != "" {
			normalizeClasses(code.AddClass(lang))
		}
	})

	doc.Find(PreambleSelector).Remove()

	out, err := parsed.renderBody()
	if err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return out, nil
}

// Compile-time interface check.
var _ DOMFixer = (*AsciidocFixup)(nil)
