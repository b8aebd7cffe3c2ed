package pipeline

import (
	"context"
	"errors"
	"fmt"
)

// Attribute names and the front matter sentinel.
const (
	HeaderAttribute     = "bq-header"
	FooterAttribute     = "bq-footer"
	FrontMatterSentinel = "front-matter"
	EmptyFrontMatter    = "---\n---\n\n"
)

// Sentinel errors for asset injection.
var (
	ErrHeaderAsset = errors.New("reading header asset failed")
	ErrFooterAsset = errors.New("reading footer asset failed")
)

// AssetReader resolves a named asset to its text.
type AssetReader interface {
	ReadAsset(name string, params map[string]string) (string, error)
}

// AssetInjector defines the contract for header and footer injection.
type AssetInjector interface {
	InjectHeader(ctx context.Context, content, header string, reader AssetReader) (string, error)
	InjectFooter(ctx context.Context, content, footer string, reader AssetReader) (string, error)
}

// AssetInjection prepends and appends named assets.
type AssetInjection struct{}

// InjectHeader prepends the asset named by header.
// An empty value is a no-op; the "front-matter" sentinel prepends
// EmptyFrontMatter without consulting reader. Any other value, blank ones
// included, is passed to reader unchanged.
func (a *AssetInjection) InjectHeader(ctx context.Context, content, header string, reader AssetReader) (string, error) {
	if header == "" {
		return content, nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if header == FrontMatterSentinel {
		return EmptyFrontMatter + content, nil
	}

	text, err := readAsset(reader, header)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrHeaderAsset, header, err)
	}
	return text + content, nil
}

// InjectFooter appends the asset named by footer.
// An empty value is a no-op; any other value is passed to reader unchanged.
func (a *AssetInjection) InjectFooter(ctx context.Context, content, footer string, reader AssetReader) (string, error) {
	if footer == "" {
		return content, nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	text, err := readAsset(reader, footer)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrFooterAsset, footer, err)
	}
	return content + text, nil
}

var errNoAssetReader = errors.New("no asset reader")

func readAsset(reader AssetReader, name string) (string, error) {
	if reader == nil {
		return "", errNoAssetReader
	}
	return reader.ReadAsset(name, nil)
}

// Compile-time interface check.
var _ AssetInjector = (*AssetInjection)(nil)
