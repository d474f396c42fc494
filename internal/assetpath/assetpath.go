// Package assetpath resolves the relative file paths inside a scene fragment
// (mesh and texture assets) against the filesystem. Paths are relative to the
// fragment's own directory, the convention the format uses; MJSCENE_ASSET_DIR
// overrides the root for relocated asset trees.
package assetpath

import (
	"os"
	"path/filepath"
)

// EnvAssetDir is the environment variable that overrides the asset root.
const EnvAssetDir = "MJSCENE_ASSET_DIR"

// Resolve returns the filesystem path for an asset file referenced by the
// fragment at modelPath. Absolute references are returned as-is.
func Resolve(modelPath, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	root := os.Getenv(EnvAssetDir)
	if root == "" {
		root = filepath.Dir(modelPath)
	}
	return filepath.Clean(filepath.Join(root, file))
}

// Exists reports whether the resolved path names an existing regular file.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
