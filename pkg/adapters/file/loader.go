package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/fable/pkg/domain"
)

// Extensions recognised as story documents when listing.
var Extensions = []string{".yaml", ".yml"}

// Loader implements ports.StoryLoader using the local filesystem.
// Story names are paths relative to Root.
type Loader struct {
	Root string
}

// NewLoader creates a Loader rooted at root.
// If root is empty, it defaults to "assets".
func NewLoader(root string) *Loader {
	if root == "" {
		root = "assets"
	}
	return &Loader{Root: root}
}

// Path resolves a story name against the loader root.
func (l *Loader) Path(name string) string {
	return filepath.Join(l.Root, filepath.FromSlash(name))
}

// ReadStory reads the whole document in one shot.
func (l *Loader) ReadStory(ctx context.Context, name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: story name cannot be empty", domain.ErrIO)
	}

	path := l.Path(name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrIO, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read story file: %v", domain.ErrIO, err)
	}
	return data, nil
}

// ListStories walks Root and returns every YAML document as a slash-separated relative name.
func (l *Loader) ListStories(ctx context.Context) ([]string, error) {
	var names []string
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !isStoryFile(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(l.Root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list stories: %v", domain.ErrIO, err)
	}
	sort.Strings(names)
	return names, nil
}

func isStoryFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
