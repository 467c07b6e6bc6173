// Package deploy provisions the shared-asset and user-data directories
// the backend reads from. Provisioning runs off the key-event path and
// only publishes a completion signal; until it finishes the router
// treats the session as pass-through.
package deploy

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const copyConcurrency = 4

// Provisioner copies bundled assets into the shared data directory and
// guarantees the user data directory exists before a session starts.
type Provisioner struct {
	sourceDir string
	sharedDir string
	userDir   string
	log       zerolog.Logger

	mu      sync.Mutex
	running bool
}

// New creates a provisioner. sourceDir holds the bundled assets;
// sharedDir and userDir are the locations handed to the backend.
func New(sourceDir, sharedDir, userDir string, log zerolog.Logger) *Provisioner {
	return &Provisioner{
		sourceDir: sourceDir,
		sharedDir: sharedDir,
		userDir:   userDir,
		log:       log.With().Str("component", "deploy").Logger(),
	}
}

// EnsureLayout creates the shared and user directories.
func (p *Provisioner) EnsureLayout() error {
	for _, dir := range []string{p.sharedDir, p.userDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Sync copies changed bundled assets into the shared directory,
// comparing blake2b checksums against the last sync manifest. With
// fullCheck every file is re-copied regardless of the manifest.
func (p *Provisioner) Sync(ctx context.Context, fullCheck bool) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return fmt.Errorf("deploy: sync already running")
	}
	p.running = true
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
	}()

	if err := p.EnsureLayout(); err != nil {
		return err
	}
	if p.sourceDir == "" {
		return nil
	}

	old, err := loadManifest(p.sharedDir)
	if err != nil {
		return fmt.Errorf("failed to load sync manifest: %w", err)
	}

	var (
		manifestMu sync.Mutex
		next       = manifest{}
		copied     int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(copyConcurrency)

	walkErr := filepath.WalkDir(p.sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rel, err := filepath.Rel(p.sourceDir, path)
		if err != nil {
			return err
		}
		g.Go(func() error {
			sum, err := checksumFile(path)
			if err != nil {
				return err
			}
			manifestMu.Lock()
			next[rel] = sum
			unchanged := !fullCheck && old[rel] == sum
			manifestMu.Unlock()
			if unchanged {
				return nil
			}
			if err := copyFile(path, filepath.Join(p.sharedDir, rel)); err != nil {
				return err
			}
			manifestMu.Lock()
			copied++
			manifestMu.Unlock()
			return nil
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("asset sync failed: %w", err)
	}
	if walkErr != nil {
		return fmt.Errorf("asset walk failed: %w", walkErr)
	}

	if err := next.save(p.sharedDir); err != nil {
		return fmt.Errorf("failed to save sync manifest: %w", err)
	}
	p.log.Info().Int("copied", copied).Int("total", len(next)).Bool("full_check", fullCheck).Msg("asset sync complete")
	return nil
}

// SyncAsync runs Sync on a background goroutine and publishes the
// result on the returned channel. It never holds any lock needed by
// the key-event path.
func (p *Provisioner) SyncAsync(ctx context.Context, fullCheck bool) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- p.Sync(ctx, fullCheck)
		close(done)
	}()
	return done
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
