package deploy

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

const manifestName = ".sync-manifest.json"

// manifest maps asset-relative paths to their blake2b-256 checksums at
// the time of the last completed sync.
type manifest map[string]string

func loadManifest(dir string) (manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return manifest{}, nil
		}
		return nil, err
	}
	m := manifest{}
	if err := json.Unmarshal(data, &m); err != nil {
		// A corrupt manifest just means a full re-copy.
		return manifest{}, nil
	}
	return m, nil
}

func (m manifest) save(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, manifestName), data, 0o644)
}

// checksumFile returns the hex blake2b-256 digest of a file.
func checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
