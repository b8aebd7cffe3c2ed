package assets

import (
	"errors"
	"fmt"
	"strings"
)

// AssetResolver searches an ordered list of loaders.
// The first loader that has the asset wins.
type AssetResolver struct {
	loaders []AssetLoader
}

// NewAssetResolver creates a resolver over dirs, in order, followed by any
// extra loaders. Empty dir entries are skipped.
// Returns error if a non-empty dir is invalid.
func NewAssetResolver(dirs []string, extra ...AssetLoader) (*AssetResolver, error) {
	r := &AssetResolver{}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		fsLoader, err := NewFilesystemLoader(dir)
		if err != nil {
			return nil, err
		}
		r.loaders = append(r.loaders, fsLoader)
	}

	for _, l := range extra {
		if l != nil {
			r.loaders = append(r.loaders, l)
		}
	}

	return r, nil
}

// LoadAsset asks each loader in order.
// Only "not found" moves the search on; validation and I/O errors are returned.
func (r *AssetResolver) LoadAsset(name string) (string, error) {
	if _, err := CleanAssetName(name); err != nil {
		return "", err
	}

	for _, l := range r.loaders {
		content, err := l.LoadAsset(name)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrAssetNotFound) {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %q (searched %s)", ErrAssetNotFound, name, r.Location())
}

// Location lists the searched locations, comma-separated.
func (r *AssetResolver) Location() string {
	if len(r.loaders) == 0 {
		return "no asset locations"
	}
	return strings.Join(r.Locations(), ", ")
}

// Locations returns each loader's location in search order.
func (r *AssetResolver) Locations() []string {
	locs := make([]string, len(r.loaders))
	for i, l := range r.loaders {
		locs[i] = l.Location()
	}
	return locs
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
