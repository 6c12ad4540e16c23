package assess

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// DefaultScanPatterns matches every Go source file under the scan root.
var DefaultScanPatterns = []string{"**/*.go"}

// skipDirs are directory names never descended into during discovery.
var skipDirs = map[string]bool{
	".git":   true,
	"vendor": true,
}

// Inventory maps file paths (relative to the scan root) to the mutant assets
// they declare. Files without assets are omitted.
type Inventory map[string][]Asset

// CountAssets returns the total number of discovered assets.
func (inv Inventory) CountAssets() int {
	count := 0
	for _, assets := range inv {
		count += len(assets)
	}
	return count
}

// Paths returns the inventory's file paths in sorted order.
func (inv Inventory) Paths() []string {
	paths := make([]string, 0, len(inv))
	for path := range inv {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// ScanDir walks root for Go files matching the doublestar patterns and
// parses them in parallel with at most workers goroutines (GOMAXPROCS when
// workers is zero or negative). Patterns default to DefaultScanPatterns.
func ScanDir(ctx context.Context, root string, patterns []string, workers int) (Inventory, error) {
	if len(patterns) == 0 {
		patterns = DefaultScanPatterns
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	files, err := discoverFiles(ctx, root, patterns)
	if err != nil {
		return nil, err
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	inventory := make(Inventory)

	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			assets, err := ScanFile(gCtx, filepath.Join(root, file))
			if err != nil {
				return err
			}
			if len(assets) == 0 {
				return nil
			}

			mu.Lock()
			inventory[file] = assets
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return inventory, nil
}

func discoverFiles(ctx context.Context, root string, patterns []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			return fmt.Errorf("access %s: %w", path, walkErr)
		}

		if d.IsDir() {
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("compute relative path for %s: %w", path, err)
		}
		relPath = filepath.ToSlash(relPath)

		if matchesAnyPattern(relPath, patterns) {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func matchesAnyPattern(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
