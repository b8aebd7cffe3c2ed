// Package assets resolves the header and footer snippets a document names
// in its bq-header and bq-footer attributes.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── FilesystemLoader  - loads from a directory on disk
//	    ├── FSLoader          - loads from any fs.FS (embed.FS, fstest.MapFS)
//	    └── AssetResolver     - ordered search path over several loaders
//
// AssetResolver is what a document uses. It asks each loader in turn and
// moves on only when the asset is not found there; validation and I/O
// errors stop the search.
//
// # Names
//
// Asset names are slash-separated paths relative to a loader root, such as
// "_footer.html" or "partials/header.html". Absolute names and names that
// climb out of the root are rejected.
//
// # Security
//
// FilesystemLoader resolves symlinks and verifies paths stay within its root.
package assets
