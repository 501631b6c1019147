package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Success(t *testing.T) {
	tmpDir := t.TempDir()
	scriptPath := filepath.Join(tmpDir, "demo.yaml")
	script := `
name: demo
steps:
  - set_grade:
      name: John
      value: 3.25
  - query_letter:
      name: John
`
	require := func(err error) {
		if err != nil {
			t.Fatalf("setup failed: %v", err)
		}
	}
	require(os.WriteFile(scriptPath, []byte(script), 0o600))

	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"delta", "run", scriptPath}

	exit := run()
	assert.Equal(t, 0, exit)
}

func TestRun_VersionExitsZero(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()
	os.Args = []string{"delta", "version"}

	exit := run()
	assert.Equal(t, 0, exit)
}
