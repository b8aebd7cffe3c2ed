package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/alnah/go-bqpost"
	"github.com/alnah/go-bqpost/internal/config"
	"github.com/alnah/go-bqpost/internal/fileutil"
	"github.com/alnah/go-bqpost/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
// configName is the --config value, used to list searched locations.
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(configSearchPaths(configName))
	case errors.Is(err, bqpost.ErrHeaderAsset):
		return hints.ForAssetNotFound(bqpost.HeaderAttribute)
	case errors.Is(err, bqpost.ErrFooterAsset):
		return hints.ForAssetNotFound(bqpost.FooterAttribute)
	case errors.Is(err, ErrCreateDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, bqpost.ErrInvalidTOCMode):
		return hints.ForInvalidTOCMode(config.TOCModes)
	}
	return ""
}

// configSearchPaths mirrors the locations config.LoadConfig tries for a name.
func configSearchPaths(name string) []string {
	if name == "" || fileutil.IsFilePath(name) {
		return nil
	}
	paths := []string{name + ".yaml", name + ".yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "go-bqpost", name+".yaml"))
	}
	return paths
}
