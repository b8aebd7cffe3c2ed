package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// asciidocTOC is the shape Asciidoctor emits for a two-level outline.
const asciidocTOC = `<div id="toc" class="toc">
<div id="toctitle">Table of Contents</div>
<ul class="sectlevel1">
<li><a href="#_install">Install</a>
<ul class="sectlevel2">
<li><a href="#_linux">Linux</a></li>
</ul>
</li>
<li><a href="#_usage">Usage</a></li>
</ul>
</div>
`

// classesOf parses markup and returns the class list of every element
// matching selector, in document order.
func classesOf(t *testing.T, markup, selector string) [][]string {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parsing %q: %v", markup, err)
	}

	var out [][]string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.Fields(s.AttrOr("class", "")))
	})
	return out
}

func hasClass(classes []string, want string) bool {
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}

// fakeReader serves assets from a map and records calls.
type fakeReader struct {
	assets map[string]string
	calls  []string
}

var errFakeNotFound = errors.New("asset not found")

func (f *fakeReader) ReadAsset(name string, params map[string]string) (string, error) {
	f.calls = append(f.calls, name)
	if params != nil {
		return "", errors.New("unexpected substitution params")
	}
	content, ok := f.assets[name]
	if !ok {
		return "", errFakeNotFound
	}
	return content, nil
}
