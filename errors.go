package bqpost

import (
	"errors"

	"github.com/alnah/go-bqpost/internal/assets"
	"github.com/alnah/go-bqpost/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNilDocument      = errors.New("document cannot be nil")
	ErrInvalidTOCMode   = errors.New("invalid TOC mode")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Asset errors. Header and footer failures wrap the reader's error.
	ErrAssetNotFound = assets.ErrAssetNotFound
	ErrHeaderAsset   = pipeline.ErrHeaderAsset
	ErrFooterAsset   = pipeline.ErrFooterAsset
)
