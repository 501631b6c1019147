package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/delta/internal/adapters/config"
)

const sampleScript = `
name: demo
steps:
  - set_grade:
      name: John
      value: 3.25
  - query_letter:
      name: John
  - delete_grade:
      name: John
  - query_letter:
      name: John
`

func TestLoad_ParsesScenarioScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0o600))

	script, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", script.Name)
	require.Len(t, script.Steps, 4)
	assert.Equal(t, "John", script.Steps[0].SetGrade.Name)
	assert.Equal(t, 3.25, script.Steps[0].SetGrade.Value)
	assert.Equal(t, "John", script.Steps[1].QueryLetter.Name)
	assert.Equal(t, "John", script.Steps[2].DeleteGrade.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFileScenarioLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleScript), 0o600))

	var loader config.FileScenarioLoader
	script, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", script.Name)
}
