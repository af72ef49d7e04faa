package skills

import "strings"

const (
	catalogOpenTag  = "<available_skills>"
	catalogCloseTag = "</available_skills>"

	// DefaultCatalogBudget is the character budget applied to catalog
	// generation when the caller does not supply one.
	DefaultCatalogBudget = 10000
)

// Registry is a priority-aware, deduplicating store of skills keyed by name.
// It provides no internal locking; callers that load concurrently must
// serialize access themselves.
type Registry struct {
	entries map[string]*Skill
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*Skill),
	}
}

// Register stores a skill and reports whether it was accepted. Project skills
// always win over user skills with the same name, independent of call order:
// a new name is inserted, a project skill replaces a stored user skill in
// place, and everything else is rejected leaving the store unchanged.
func (r *Registry) Register(skill *Skill) bool {
	if skill == nil {
		return false
	}

	existing, ok := r.entries[skill.Name]
	if !ok {
		r.entries[skill.Name] = skill
		r.order = append(r.order, skill.Name)
		return true
	}

	if existing.Location == LocationUser && skill.Location == LocationProject {
		// Override keeps the original enumeration position.
		r.entries[skill.Name] = skill
		return true
	}

	return false
}

// Get returns the skill stored under name, or nil when absent.
func (r *Registry) Get(name string) *Skill {
	return r.entries[name]
}

// Exists reports whether a skill is stored under name.
func (r *Registry) Exists(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Len returns the number of stored skills.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ListAll returns all stored skills in registration order. Overrides do not
// change a skill's position, only its content.
func (r *Registry) ListAll() []*Skill {
	out := make([]*Skill, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// GenerateCatalog renders the budget-bounded skill catalog used for
// discovery prompts. Skills are emitted in ListAll order as whole ToXML
// fragments; once the next fragment would push the fragment total past
// charBudget, generation stops rather than truncating mid-fragment. The
// container tags are always emitted so the output stays well-formed, and
// they are excluded from the budget accounting: total length is bounded by
// charBudget plus the fixed wrapper overhead.
func (r *Registry) GenerateCatalog(charBudget int) string {
	var sb strings.Builder
	sb.WriteString(catalogOpenTag)
	sb.WriteString("\n")

	used := 0
	for _, skill := range r.ListAll() {
		fragment := skill.ToXML() + "\n"
		if used+len(fragment) > charBudget {
			break
		}
		sb.WriteString(fragment)
		used += len(fragment)
	}

	sb.WriteString(catalogCloseTag)
	return sb.String()
}

// defaultRegistry is the process-scoped instance populated by LoadAll when
// no scoped registry is supplied.
var defaultRegistry = NewRegistry()

// Default returns the shared registry instance.
func Default() *Registry {
	return defaultRegistry
}

// ResetDefault replaces the shared registry with an empty one. Intended for
// test isolation and explicit reloads, not normal operation.
func ResetDefault() {
	defaultRegistry = NewRegistry()
}
