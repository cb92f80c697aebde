package clipboard_test

import (
	"os/exec"
	"testing"

	"github.com/miraflynn/textcompare/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBCopy_Copy(t *testing.T) {
	t.Parallel()

	// Skip if pbcopy is not available (non-macOS systems)
	if _, err := exec.LookPath("pbcopy"); err != nil {
		t.Skip("pbcopy not available, skipping clipboard test")
	}

	cb := clipboard.NewPBCopy()
	testContent := "<pre><span>test clipboard content</span></pre>"

	err := cb.Copy(testContent)
	require.NoError(t, err)

	// Verify by reading back with pbpaste
	if _, err := exec.LookPath("pbpaste"); err != nil {
		t.Skip("pbpaste not available, cannot verify clipboard content")
	}

	out, err := exec.Command("pbpaste").Output()
	require.NoError(t, err)
	assert.Equal(t, testContent, string(out))
}

func TestCommand_Copy_MissingBinary(t *testing.T) {
	t.Parallel()

	cb := &clipboard.Command{Name: "textcompare-no-such-clipboard-binary"}

	err := cb.Copy("content")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "textcompare-no-such-clipboard-binary")
}

func TestCommand_Copy_PipesStdin(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// A command that fails unless stdin carries the expected content.
	cb := &clipboard.Command{Name: "sh", Args: []string{"-c", `test "$(cat)" = "copied text"`}}

	assert.NoError(t, cb.Copy("copied text"))
	assert.Error(t, cb.Copy("other text"))
}
