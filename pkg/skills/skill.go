// Package skills provides an agentic skills system where the model can
// autonomously invoke specialized capabilities based on task context.
// Skills are packaged as directories containing a SKILL.md file with
// YAML frontmatter describing the skill's purpose and instructions.
// Project-level skills take priority over user-level skills of the same
// name regardless of load order.
package skills

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Location identifies the provenance tier a skill was discovered under.
type Location string

const (
	// LocationProject marks skills found under the project root. They
	// override user skills of the same name.
	LocationProject Location = "project"
	// LocationUser marks skills found under the user's home directory.
	LocationUser Location = "user"
)

// Skill represents a discovered skill. Immutable once constructed.
type Skill struct {
	Name         string         // Unique name from frontmatter
	Description  string         // Brief description for model decision-making
	Content      string         // Body of SKILL.md, frontmatter stripped
	Path         string         // Directory containing the SKILL.md file
	Location     Location       // Provenance tier
	AllowedTools []string       // Optional tool allowlist from frontmatter
	License      string         // Optional, passed through uninterpreted
	Metadata     map[string]any // Optional, passed through uninterpreted
}

// FromDocument builds a Skill from a parsed skill document. It returns nil
// when the header lacks a non-empty name or description; an incomplete
// document is skipped, never an error.
func FromDocument(docPath string, header map[string]any, body string, location Location) *Skill {
	name, _ := header["name"].(string)
	description, _ := header["description"].(string)
	if name == "" || description == "" {
		return nil
	}

	skill := &Skill{
		Name:         name,
		Description:  description,
		Content:      strings.Trim(body, "\n"),
		Path:         filepath.Dir(docPath),
		Location:     location,
		AllowedTools: coerceStringList(header["allowed-tools"]),
	}

	if license, ok := header["license"].(string); ok {
		skill.License = license
	}
	if metadata, ok := header["metadata"].(map[string]any); ok {
		skill.Metadata = metadata
	}

	return skill
}

// coerceStringList accepts either a YAML list of strings or a bare scalar,
// which is treated as a single-element list. Non-string items are dropped.
func coerceStringList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []any:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	default:
		return nil
	}
}

// ToXML renders the skill as a compact catalog fragment containing its
// name, description and location but no content.
func (s *Skill) ToXML() string {
	var sb strings.Builder
	sb.WriteString("<skill>\n")
	fmt.Fprintf(&sb, "<name>%s</name>\n", s.Name)
	fmt.Fprintf(&sb, "<description>%s</description>\n", s.Description)
	fmt.Fprintf(&sb, "<location>%s</location>\n", s.Location)
	sb.WriteString("</skill>")
	return sb.String()
}

// Prompt renders the full instructional block handed to the model when the
// skill is selected: a loading header, the base directory for resolving
// relative references inside the instructions, then the raw content.
func (s *Skill) Prompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Loading: %s\n", s.Name)
	fmt.Fprintf(&sb, "Base directory: %s\n", s.Path)
	sb.WriteString("\n")
	sb.WriteString(s.Content)
	return sb.String()
}

// CommandPrompt renders the expanded prompt used when the skill is invoked
// as a slash command.
func (s *Skill) CommandPrompt() string {
	header := fmt.Sprintf("<command-message>The %q skill is loading</command-message>", s.Name)
	return header + "\n\n" + s.Prompt()
}
