package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var output, errorOutput bytes.Buffer
	return NewWithOptions(&output, &errorOutput, ColorNever), &output, &errorOutput
}

func TestNew(t *testing.T) {
	p := New()

	assert.NotNil(t, p)
	assert.Equal(t, os.Stdout, p.output)
	assert.Equal(t, os.Stderr, p.errorOutput)
	assert.False(t, p.quiet)
}

func TestError(t *testing.T) {
	p, output, errorOutput := newTestPresenter()

	p.Error(errors.New("boom"), "Failed to load skills")

	assert.Empty(t, output.String())
	assert.Contains(t, errorOutput.String(), "[ERROR] Failed to load skills: boom")
}

func TestErrorNil(t *testing.T) {
	p, _, errorOutput := newTestPresenter()

	p.Error(nil, "should not appear")

	assert.Empty(t, errorOutput.String())
}

func TestErrorWithoutContext(t *testing.T) {
	p, _, errorOutput := newTestPresenter()

	p.Error(errors.New("boom"), "")

	assert.Contains(t, errorOutput.String(), "[ERROR] boom")
	assert.NotContains(t, errorOutput.String(), ": boom")
}

func TestMessages(t *testing.T) {
	p, output, _ := newTestPresenter()

	p.Success("installed")
	p.Warning("already exists")
	p.Info("3 skills loaded")
	p.Section("Skills")

	got := output.String()
	assert.Contains(t, got, "✓ installed")
	assert.Contains(t, got, "⚠ already exists")
	assert.Contains(t, got, "3 skills loaded")
	assert.Contains(t, got, "Skills\n------")
}

func TestQuietMode(t *testing.T) {
	p, output, errorOutput := newTestPresenter()
	p.SetQuiet(true)

	assert.True(t, p.IsQuiet())

	p.Success("hidden")
	p.Warning("hidden")
	p.Info("hidden")
	p.Section("hidden")
	p.Separator()

	assert.Empty(t, output.String())

	// Errors are never suppressed.
	p.Error(errors.New("boom"), "still visible")
	assert.Contains(t, errorOutput.String(), "still visible")
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name         string
		noColor      string
		skilletColor string
		expected     ColorMode
	}{
		{"default", "", "", ColorAuto},
		{"NO_COLOR set", "1", "", ColorNever},
		{"always", "", "always", ColorAlways},
		{"force", "", "force", ColorAlways},
		{"never", "", "never", ColorNever},
		{"off", "", "off", ColorNever},
		{"NO_COLOR wins", "1", "always", ColorNever},
		{"unknown value", "", "sometimes", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("SKILLET_COLOR", tt.skilletColor)
			if tt.noColor == "" {
				os.Unsetenv("NO_COLOR")
			}
			if tt.skilletColor == "" {
				os.Unsetenv("SKILLET_COLOR")
			}

			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}
