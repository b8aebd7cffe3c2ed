package assets

import (
	"errors"
	"testing"
)

func TestCleanAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain file", "_footer.html", "_footer.html", false},
		{"nested file", "partials/header.html", "partials/header.html", false},
		{"redundant segments", "./partials//header.html", "partials/header.html", false},
		{"inner parent stays inside", "partials/../footer.html", "footer.html", false},
		{"backslash separator", `partials\header.html`, "partials/header.html", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
		{"absolute unix", "/etc/passwd", "", true},
		{"absolute windows", `C:\header.html`, "", true},
		{"parent escape", "../header.html", "", true},
		{"deep parent escape", "a/../../header.html", "", true},
		{"dot only", ".", "", true},
		{"nul byte", "head\x00er.html", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := CleanAssetName(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("CleanAssetName(%q) error = %v, want ErrInvalidAssetName", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CleanAssetName(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("CleanAssetName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSubstitute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		params map[string]string
		want   string
	}{
		{"nil params", "<p>{version}</p>", nil, "<p>{version}</p>"},
		{"single reference", "<p>{version}</p>", map[string]string{"version": "3.0"}, "<p>3.0</p>"},
		{"repeated reference", "{a}-{a}", map[string]string{"a": "x"}, "x-x"},
		{"unknown reference kept", "{a} {b}", map[string]string{"a": "x"}, "x {b}"},
		{"no braces", "plain", map[string]string{"a": "x"}, "plain"},
	}

	for _, tt := range tests {
		if got := Substitute(tt.text, tt.params); got != tt.want {
			t.Errorf("%s: Substitute() = %q, want %q", tt.name, got, tt.want)
		}
	}
}
