package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// FSLoader loads assets from an fs.FS, typically an embed.FS bundled with
// the site theme.
type FSLoader struct {
	fsys fs.FS
	name string
}

// NewFSLoader creates an FSLoader. label is only used in error hints.
func NewFSLoader(fsys fs.FS, label string) *FSLoader {
	if label == "" {
		label = "fs.FS"
	}
	return &FSLoader{fsys: fsys, name: label}
}

// LoadAsset reads name from the underlying filesystem.
func (l *FSLoader) LoadAsset(name string) (string, error) {
	cleaned, err := CleanAssetName(name)
	if err != nil {
		return "", err
	}

	content, err := fs.ReadFile(l.fsys, cleaned)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q in %s", ErrAssetNotFound, name, l.name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return string(content), nil
}

// Location returns the label given at construction.
func (l *FSLoader) Location() string {
	return l.name
}

// Compile-time interface check.
var _ AssetLoader = (*FSLoader)(nil)
