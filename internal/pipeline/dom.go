package pipeline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parsedHTML is a parsed document or fragment ready for goquery selections.
type parsedHTML struct {
	root       *html.Node
	isFragment bool
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Fragments are parsed in a <body> context and hung under a synthetic
// document node so that rendering does not add <html><body> wrappers.
func parseHTML(content string) (*parsedHTML, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		if err != nil {
			return nil, err
		}
		return &parsedHTML{root: doc}, nil
	}

	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return &parsedHTML{root: container, isFragment: true}, nil
}

// selection wraps the parsed tree for CSS selector queries.
func (p *parsedHTML) selection() *goquery.Document {
	return goquery.NewDocumentFromNode(p.root)
}

// render serializes the tree. Fragments render their top-level nodes only.
func (p *parsedHTML) render() (string, error) {
	if p.isFragment {
		return renderChildren(p.root)
	}

	var buf strings.Builder
	if err := html.Render(&buf, p.root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderBody serializes the children of <body> only. Full documents lose
// their doctype, <html> and <head>.
func (p *parsedHTML) renderBody() (string, error) {
	if p.isFragment {
		return renderChildren(p.root)
	}

	body := findElement(p.root, atom.Body)
	if body == nil {
		return "", nil
	}
	return renderChildren(body)
}

func renderChildren(n *html.Node) (string, error) {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// findElement returns the first element of type a in document order.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// normalizeClasses rewrites each class attribute in s as single-space
// separated names.
func normalizeClasses(s *goquery.Selection) {
	s.Each(func(_ int, el *goquery.Selection) {
		if v, ok := el.Attr("class"); ok {
			el.SetAttr("class", strings.Join(strings.Fields(v), " "))
		}
	})
}
