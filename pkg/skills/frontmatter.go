package skills

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

// SkillFileName is the reserved filename that marks a directory as a skill.
const SkillFileName = "SKILL.md"

// ParseFrontmatter splits a skill document into its YAML frontmatter header
// and body. The header is present only when the document opens with a `---`
// line that is closed by a second `---` line; everything after the closing
// line is the body. Any failure (no delimiter, unclosed block, invalid YAML)
// degrades to an empty header with the full input as body. The function never
// returns an error.
func ParseFrontmatter(raw string) (map[string]any, string) {
	if !hasFrontmatterDelimiter(raw) {
		return map[string]any{}, raw
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert([]byte(raw), &buf, parser.WithContext(pctx)); err != nil {
		return map[string]any{}, raw
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return map[string]any{}, raw
	}

	return normalizeMap(metaData), extractBody(raw)
}

// hasFrontmatterDelimiter reports whether the document opens with a
// delimiter line that is closed by a second one later on. An unclosed block
// is not a header: goldmark-meta would happily decode the unterminated YAML
// at EOF, so the closing line must be verified before converting.
func hasFrontmatterDelimiter(raw string) bool {
	lines := strings.Split(raw, "\n")
	if !isDelimiterLine(lines[0]) {
		return false
	}
	for i := 1; i < len(lines); i++ {
		if isDelimiterLine(lines[i]) {
			return true
		}
	}
	return false
}

// isDelimiterLine matches the frontmatter marker the same way goldmark-meta
// does: a line of three or more dashes, ignoring surrounding whitespace.
func isDelimiterLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	return strings.Count(trimmed, "-") == len(trimmed)
}

// extractBody returns everything after the closing frontmatter delimiter,
// or the full input when the block is never closed.
func extractBody(raw string) string {
	lines := strings.Split(raw, "\n")

	frontmatterEnd := -1
	for i := 1; i < len(lines); i++ {
		if isDelimiterLine(lines[i]) {
			frontmatterEnd = i
			break
		}
	}

	if frontmatterEnd == -1 {
		return raw
	}

	return strings.Join(lines[frontmatterEnd+1:], "\n")
}

// normalizeMap converts the yaml.v2 shapes produced by goldmark-meta
// (map[interface{}]interface{} for nested mappings) into plain
// map[string]any values so downstream consumers never see interface keys.
func normalizeMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				continue
			}
			m[key] = normalizeValue(item)
		}
		return m
	case map[string]any:
		return normalizeMap(val)
	case []any:
		items := make([]any, 0, len(val))
		for _, item := range val {
			items = append(items, normalizeValue(item))
		}
		return items
	default:
		return v
	}
}
