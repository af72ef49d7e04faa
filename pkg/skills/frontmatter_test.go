package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontmatter(t *testing.T) {
	raw := `---
name: test-skill
description: A test skill for testing purposes
---

# Test Skill Instructions

This is the skill content.
`

	header, body := ParseFrontmatter(raw)

	assert.Equal(t, "test-skill", header["name"])
	assert.Equal(t, "A test skill for testing purposes", header["description"])
	assert.Contains(t, body, "# Test Skill Instructions")
	assert.NotContains(t, body, "name: test-skill")
}

func TestParseFrontmatterOptionalFields(t *testing.T) {
	raw := `---
name: advanced-skill
description: An advanced skill
license: MIT
allowed-tools:
  - Bash
  - Read
metadata:
  author: test
  version: "1.0"
---

Instructions here.
`

	header, body := ParseFrontmatter(raw)

	assert.Equal(t, "advanced-skill", header["name"])
	assert.Equal(t, "MIT", header["license"])
	assert.Equal(t, []any{"Bash", "Read"}, header["allowed-tools"])

	metadata, ok := header["metadata"].(map[string]any)
	require.True(t, ok, "nested mappings should be normalized to map[string]any")
	assert.Equal(t, "test", metadata["author"])
	assert.Equal(t, "1.0", metadata["version"])

	assert.Contains(t, body, "Instructions here.")
}

func TestParseFrontmatterNoFrontmatter(t *testing.T) {
	raw := "# Just regular markdown\n\nNo frontmatter here."

	header, body := ParseFrontmatter(raw)

	assert.Empty(t, header)
	assert.Equal(t, raw, body)
}

func TestParseFrontmatterUnclosedBlock(t *testing.T) {
	// The YAML is well-formed at EOF, so only the missing closing
	// delimiter disqualifies it as a header.
	raw := `---
name: broken-skill
description: The closing delimiter never arrives
`

	header, body := ParseFrontmatter(raw)

	assert.Empty(t, header)
	assert.Equal(t, raw, body)

	skill := FromDocument("/tmp/broken-skill/SKILL.md", header, body, LocationProject)
	assert.Nil(t, skill)
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	raw := `---
name: [unterminated
description: "mismatched
---

Body text.
`

	header, body := ParseFrontmatter(raw)

	assert.Empty(t, header)
	assert.Equal(t, raw, body, "decode failures return the entire input as body")
}

func TestParseFrontmatterEmptyInput(t *testing.T) {
	header, body := ParseFrontmatter("")

	assert.Empty(t, header)
	assert.Empty(t, body)
}
