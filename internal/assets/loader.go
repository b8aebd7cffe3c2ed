package assets

// AssetLoader defines the contract for loading a named text asset.
// Implementations may load from disk, an embedded filesystem, a database, etc.
type AssetLoader interface {
	// LoadAsset returns the content of the named asset.
	// Returns ErrAssetNotFound if the asset doesn't exist.
	// Returns ErrInvalidAssetName if the name is not a safe relative path.
	LoadAsset(name string) (string, error)

	// Location describes where the loader looks, for error hints.
	Location() string
}
