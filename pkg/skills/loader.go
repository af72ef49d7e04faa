package skills

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/skillhouse/skillet/pkg/logger"
)

// SearchRoot pairs a skills directory with the provenance tier assigned to
// every skill discovered under it.
type SearchRoot struct {
	Path     string
	Location Location
}

// Loader walks a fixed, ordered set of search roots and feeds the skills it
// finds into a registry.
type Loader struct {
	roots    []SearchRoot
	registry *Registry
}

// LoaderOption is a function that configures a Loader
type LoaderOption func(*Loader) error

// WithProjectRoot derives the default search roots relative to the given
// project directory instead of the current working directory.
func WithProjectRoot(projectRoot string) LoaderOption {
	return func(l *Loader) error {
		roots, err := defaultSearchRoots(projectRoot)
		if err != nil {
			return err
		}
		l.roots = roots
		return nil
	}
}

// WithSearchRoots replaces the search root table entirely.
func WithSearchRoots(roots ...SearchRoot) LoaderOption {
	return func(l *Loader) error {
		if len(roots) == 0 {
			return errors.New("at least one search root must be specified")
		}
		l.roots = roots
		return nil
	}
}

// WithAdditionalSearchRoots appends extra roots after the current table,
// starting from the defaults when none have been set yet. An empty dirs
// list is a no-op.
func WithAdditionalSearchRoots(roots ...SearchRoot) LoaderOption {
	return func(l *Loader) error {
		if len(roots) == 0 {
			return nil
		}

		if len(l.roots) == 0 {
			if err := WithProjectRoot(".")(l); err != nil {
				return errors.Wrap(err, "failed to initialize with default search roots")
			}
		}

		l.roots = append(l.roots, roots...)
		return nil
	}
}

// WithRegistry directs the loader at a scoped registry instead of the
// process-wide default.
func WithRegistry(registry *Registry) LoaderOption {
	return func(l *Loader) error {
		if registry == nil {
			return errors.New("registry must not be nil")
		}
		l.registry = registry
		return nil
	}
}

// NewLoader creates a loader. Without options it targets the default search
// roots under the current directory and the shared default registry.
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	l := &Loader{}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	if len(l.roots) == 0 {
		if err := WithProjectRoot(".")(l); err != nil {
			return nil, err
		}
	}
	if l.registry == nil {
		l.registry = Default()
	}

	return l, nil
}

// defaultSearchRoots returns the fixed root table. Both the .claude and
// .skillet naming conventions are honored, project tier before user tier
// within each convention. Order only affects catalog enumeration; the
// project-over-user rule makes the final registry state order-independent.
func defaultSearchRoots(projectRoot string) ([]SearchRoot, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user home directory")
	}

	return []SearchRoot{
		{Path: filepath.Join(projectRoot, ".claude", "skills"), Location: LocationProject},
		{Path: filepath.Join(homeDir, ".claude", "skills"), Location: LocationUser},
		{Path: filepath.Join(projectRoot, ".skillet", "skills"), Location: LocationProject},
		{Path: filepath.Join(homeDir, ".skillet", "skills"), Location: LocationUser},
	}, nil
}

// SearchRoots returns a copy of the loader's root table in enumeration order.
func (l *Loader) SearchRoots() []SearchRoot {
	out := make([]SearchRoot, len(l.roots))
	copy(out, l.roots)
	return out
}

// Discover returns the paths of every SKILL.md under root, at any depth,
// each reported once in lexicographic order so repeated runs against an
// unchanged tree are identical. A missing or unreadable root yields nil.
func (l *Loader) Discover(root string) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/"+SkillFileName)
	if err != nil {
		return nil
	}
	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(match)))
	}
	return paths
}

// LoadAll runs a full load pass: every discovered document is read, parsed
// and registered under its root's location. Unreadable files and documents
// missing required fields are skipped; no failure aborts the pass. Returns
// the populated registry.
func (l *Loader) LoadAll(ctx context.Context) *Registry {
	log := logger.G(ctx)

	for _, root := range l.roots {
		for _, docPath := range l.Discover(root.Path) {
			raw, err := os.ReadFile(docPath)
			if err != nil {
				log.WithError(err).WithField("path", docPath).Debug("Skipping unreadable skill document")
				continue
			}

			header, body := ParseFrontmatter(string(raw))
			skill := FromDocument(docPath, header, body, root.Location)
			if skill == nil {
				log.WithField("path", docPath).Debug("Skipping skill document without name or description")
				continue
			}

			if !l.registry.Register(skill) {
				log.WithFields(map[string]interface{}{
					"skill":    skill.Name,
					"location": skill.Location,
				}).Debug("Skill already registered at equal or higher priority")
			}
		}
	}

	return l.registry
}
