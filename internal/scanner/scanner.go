package scanner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/idomanteu/claude-code-launcher/internal/model"
)

var (
	// ErrDirectoryUnreadable is returned when the projects root cannot be listed.
	ErrDirectoryUnreadable = errors.New("directory unreadable")
	// ErrNoProjects is returned when the root lists fine but holds no visible subdirectories.
	ErrNoProjects = errors.New("no directories found")
)

// Scan lists the immediate, non-hidden subdirectories of root, newest first.
func Scan(root string, logger *slog.Logger) ([]model.Project, error) {
	if logger == nil {
		logger = slog.Default()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryUnreadable, root, err)
	}

	entries, err := os.ReadDir(absRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnreadable, err)
	}

	var projects []model.Project
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		path := filepath.Join(absRoot, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			// Removed or locked between ReadDir and Stat
			logger.Debug("skipping directory", "path", path, "error", err)
			continue
		}

		projects = append(projects, model.Project{
			Name:       entry.Name(),
			Path:       path,
			ModifiedAt: info.ModTime(),
		})
	}

	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	sortByRecency(projects)
	logger.Debug("scanned projects", "root", absRoot, "count", len(projects))

	return projects, nil
}

// sortByRecency orders newest first; equal mtimes fall back to name order.
func sortByRecency(projects []model.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if !a.ModifiedAt.Equal(b.ModifiedAt) {
			return a.ModifiedAt.After(b.ModifiedAt)
		}
		return a.Name < b.Name
	})
}
