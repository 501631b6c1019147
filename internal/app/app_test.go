package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/delta/internal/adapters/config"
	"go.trai.ch/delta/internal/adapters/logger"
	"go.trai.ch/delta/internal/app"
)

const script = `
name: demo
steps:
  - set_grade:
      name: John
      value: 3.25
  - query_letter:
      name: John
`

func TestApp_Run(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	a := app.New(config.FileScenarioLoader{}, logger.New())
	grade, err := a.Run(path)
	require.NoError(t, err)

	v, err := grade.QueryLetter("John")
	require.NoError(t, err)
	assert.Equal(t, "B", v)
}

func TestApp_Run_MissingFile(t *testing.T) {
	a := app.New(config.FileScenarioLoader{}, logger.New())
	_, err := a.Run(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewComponents(t *testing.T) {
	a := app.New(config.FileScenarioLoader{}, logger.New())
	c := app.NewComponents(a, logger.New())
	assert.NotNil(t, c.App)
	assert.NotNil(t, c.Logger)
}
