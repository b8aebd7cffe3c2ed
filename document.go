package bqpost

import (
	"fmt"
	"io/fs"
	"maps"

	"github.com/alnah/go-bqpost/internal/assets"
	"github.com/alnah/go-bqpost/internal/pipeline"
)

// Attribute names read by the processor.
const (
	DocnameAttribute = "docname"
	HeaderAttribute  = pipeline.HeaderAttribute
	FooterAttribute  = pipeline.FooterAttribute
)

// TOCFileSuffix is appended to the document name to form the sidecar file name.
const TOCFileSuffix = ".toc.html"

// Options are the processing options a host exposes for one document.
type Options struct {
	DestinationDir string
	Attributes     map[string]string // holds "docname"
}

// Docname returns the document name from the attributes, or "".
func (o Options) Docname() string {
	return o.Attributes[DocnameAttribute]
}

// Document is the host's view of the document being processed.
type Document interface {
	// Options returns the destination directory and the attribute map.
	Options() Options

	// Attribute returns the document attribute name, or fallback when unset.
	Attribute(name, fallback string) string

	// ReadAsset returns the text of a named asset with {key} references
	// replaced from params (nil means no substitution).
	// Returns an error wrapping ErrAssetNotFound if the asset does not exist.
	ReadAsset(name string, params map[string]string) (string, error)
}

// DocumentConfig describes a FileDocument.
type DocumentConfig struct {
	DestinationDir string
	Name           string // document name, overrides Attributes["docname"]
	Attributes     map[string]string
	AssetDirs      []string // searched in order
	AssetFS        fs.FS    // searched after AssetDirs, may be nil
}

// FileDocument is a Document backed by the local filesystem.
type FileDocument struct {
	destDir  string
	attrs    map[string]string
	resolver *assets.AssetResolver
}

// NewFileDocument creates a FileDocument.
// Returns ErrInvalidAssetPath if an asset directory is not a readable directory.
func NewFileDocument(cfg DocumentConfig) (*FileDocument, error) {
	attrs := make(map[string]string, len(cfg.Attributes)+1)
	maps.Copy(attrs, cfg.Attributes)
	if cfg.Name != "" {
		attrs[DocnameAttribute] = cfg.Name
	}

	var extra []assets.AssetLoader
	if cfg.AssetFS != nil {
		extra = append(extra, assets.NewFSLoader(cfg.AssetFS, "embedded assets"))
	}

	resolver, err := assets.NewAssetResolver(cfg.AssetDirs, extra...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
	}

	return &FileDocument{
		destDir:  cfg.DestinationDir,
		attrs:    attrs,
		resolver: resolver,
	}, nil
}

// Options returns a copy of the document options.
func (d *FileDocument) Options() Options {
	return Options{
		DestinationDir: d.destDir,
		Attributes:     maps.Clone(d.attrs),
	}
}

// Attribute returns the attribute value, or fallback when it is not set.
// An attribute set to "" is returned as "".
func (d *FileDocument) Attribute(name, fallback string) string {
	if v, ok := d.attrs[name]; ok {
		return v
	}
	return fallback
}

// ReadAsset resolves name through the asset directories and substitutes params.
func (d *FileDocument) ReadAsset(name string, params map[string]string) (string, error) {
	content, err := d.resolver.LoadAsset(name)
	if err != nil {
		return "", err
	}
	return assets.Substitute(content, params), nil
}

// AssetLocations lists the searched asset locations in order.
func (d *FileDocument) AssetLocations() []string {
	return d.resolver.Locations()
}

// Compile-time interface check.
var _ Document = (*FileDocument)(nil)
