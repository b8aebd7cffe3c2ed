package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Markers and classes for table of contents handling.
const (
	TOCStartMarker = `<div id="toc" class="toc">`
	TOCEndMarker   = "</ul>\n</div>"
	TOCSelector    = "div#toc.toc"
	NavListClass   = "nav"
	NavLinkClass   = "nav-link"
)

// TOCResult holds the outcome of a table of contents extraction.
// When Found is false, Content is the input unchanged and Fragment is empty.
type TOCResult struct {
	Content  string // document with the TOC removed
	Fragment string // restyled TOC, ready for the sidecar file
	Found    bool
}

// TOCExtractor defines the contract for pulling the TOC out of a document.
type TOCExtractor interface {
	ExtractTOC(ctx context.Context, content string) (TOCResult, error)
}

// MarkerTOCExtractor finds the TOC by literal marker search.
// Its output matches the historical byte layout, including the removal of
// the line break that follows the closing marker.
type MarkerTOCExtractor struct{}

// ExtractTOC cuts the span from TOCStartMarker through the first TOCEndMarker
// after it, plus one trailing '\n' when present. A missing start or end
// marker leaves the content untouched.
func (m *MarkerTOCExtractor) ExtractTOC(ctx context.Context, content string) (TOCResult, error) {
	if ctx.Err() != nil {
		return TOCResult{}, ctx.Err()
	}

	unchanged := TOCResult{Content: content}

	start := strings.Index(content, TOCStartMarker)
	if start == -1 {
		return unchanged, nil
	}

	rel := strings.Index(content[start:], TOCEndMarker)
	if rel == -1 {
		return unchanged, nil
	}

	end := start + rel + len(TOCEndMarker)
	if end < len(content) && content[end] == '\n' {
		end++
	}

	fragment, err := restyleTOCFragment(content[start:end])
	if err != nil {
		return TOCResult{}, err
	}

	return TOCResult{
		Content:  content[:start] + content[end:],
		Fragment: fragment,
		Found:    true,
	}, nil
}

// restyleTOCFragment parses span on its own and adds the navigation classes.
func restyleTOCFragment(span string) (string, error) {
	parsed, err := parseHTML(span)
	if err != nil {
		return "", fmt.Errorf("parsing table of contents: %w", err)
	}

	addNavClasses(parsed.selection().Selection)

	return parsed.render()
}

// DOMTOCExtractor finds the TOC with a structural query on div#toc.toc, so
// whitespace or nesting changes in the generator do not break extraction.
type DOMTOCExtractor struct{}

// ExtractTOC detaches the first div#toc.toc element. Content without one is
// returned byte-for-byte, without a parse and render round trip.
func (d *DOMTOCExtractor) ExtractTOC(ctx context.Context, content string) (TOCResult, error) {
	if ctx.Err() != nil {
		return TOCResult{}, ctx.Err()
	}

	unchanged := TOCResult{Content: content}

	if !strings.Contains(content, "toc") {
		return unchanged, nil
	}

	parsed, err := parseHTML(content)
	if err != nil {
		return TOCResult{}, fmt.Errorf("parsing document: %w", err)
	}

	toc := parsed.selection().Find(TOCSelector).First()
	if toc.Length() == 0 {
		return unchanged, nil
	}

	addNavClasses(toc)

	fragment, err := goquery.OuterHtml(toc)
	if err != nil {
		return TOCResult{}, fmt.Errorf("rendering table of contents: %w", err)
	}

	toc.Remove()

	rest, err := parsed.render()
	if err != nil {
		return TOCResult{}, fmt.Errorf("rendering document: %w", err)
	}

	return TOCResult{Content: rest, Fragment: fragment, Found: true}, nil
}

func addNavClasses(s *goquery.Selection) {
	normalizeClasses(s.Find("ul").AddClass(NavListClass))
	normalizeClasses(s.Find("a").AddClass(NavLinkClass))
}

// Compile-time interface checks.
var (
	_ TOCExtractor = (*MarkerTOCExtractor)(nil)
	_ TOCExtractor = (*DOMTOCExtractor)(nil)
)
