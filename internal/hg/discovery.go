package hg

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/brennie/mizuno/internal/errors"
)

// Config holds configuration for hg discovery.
type Config struct {
	// HgPath is an explicit binary path that skips PATH search.
	// If empty, discovery searches PATH and common locations.
	HgPath string

	// Logger is an optional logger for discovery operations.
	// If nil, a no-op logger is used.
	Logger *slog.Logger
}

// Discoverer locates the hg binary.
type Discoverer interface {
	// Discover locates the hg binary.
	// Returns the path to the binary or an HgNotFoundError.
	Discover() (string, error)
}

// discoverer implements the Discoverer interface.
type discoverer struct {
	cfg *Config
	log *slog.Logger
}

// Compile-time verification that discoverer implements Discoverer.
var _ Discoverer = (*discoverer)(nil)

// NewDiscoverer creates a new hg discoverer with the given configuration.
func NewDiscoverer(cfg *Config) Discoverer {
	if cfg == nil {
		cfg = &Config{}
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &discoverer{
		cfg: cfg,
		log: log,
	}
}

// Discover locates the hg binary.
func (d *discoverer) Discover() (string, error) {
	// If an explicit path was provided, use it and only it.
	if d.cfg.HgPath != "" {
		d.log.Debug("Using explicit hg path", "hg_path", d.cfg.HgPath)

		if _, err := os.Stat(d.cfg.HgPath); err == nil {
			return d.cfg.HgPath, nil
		}

		d.log.Debug("Explicit hg path not found", "hg_path", d.cfg.HgPath)

		return "", &errors.HgNotFoundError{SearchedPaths: []string{d.cfg.HgPath}}
	}

	searchedPaths := make([]string, 0, 4)

	d.log.Debug("Searching for 'hg' in PATH")

	if path, err := exec.LookPath("hg"); err == nil {
		d.log.Debug("Found 'hg' in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	commonPaths := []string{
		"/usr/local/bin/hg",
		"/usr/bin/hg",
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin/hg"))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)
		d.log.Debug("Checking common path", "path", path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found hg at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("hg not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.HgNotFoundError{SearchedPaths: searchedPaths}
}
