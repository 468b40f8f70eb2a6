package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestValidateSeed(t *testing.T) {
	out, err := run(t, "validate")
	require.Error(t, err)
	assert.Equal(t, "4 of 4 rows are invalid", err.Error())

	assert.Equal(t, "ROW  MESSAGE\n"+
		"1    Dynamic Value 2: must be between 0 and 9999.9\n"+
		"2    Dynamic Value 2: must be between 0 and 9999.9\n"+
		"3    Dynamic Value 2: must be between 0 and 9999.9\n"+
		"4    Dynamic Value 2: must be between 0 and 9999.9\n", out)
}

func TestValidateRowsFile(t *testing.T) {
	rows := writeFile(t, "rows.yaml", `
- {id: 1, targetId: 1, name: a, dynamicValue: "100", dynamicValue2: "1"}
- {id: 2, targetId: 3, name: b, dynamicValue: "text", dynamicValue2: "２"}
`)

	_, err := run(t, "validate", rows)
	require.Error(t, err)

	out, err := run(t, "validate", "--fold-width", rows)
	require.NoError(t, err)
	assert.Equal(t, "all 2 rows are valid\n", out)

	_, err = run(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateJapanese(t *testing.T) {
	cfg := writeFile(t, "dynsheet.yaml", "language: ja\n")

	out, err := run(t, "--config", cfg, "validate")
	require.Error(t, err)
	assert.Contains(t, out, "動的型値2: 0〜9999.9の範囲で入力してください")

	out, err = run(t, "--config", cfg, "--lang", "en", "validate")
	require.Error(t, err)
	assert.Contains(t, out, "must be between 0 and 9999.9")
}

func TestCells(t *testing.T) {
	out, err := run(t, "cells")
	require.NoError(t, err)

	assert.Equal(t, "ROW  TARGET  ID  Name  Target ID  Dynamic Value  Dynamic Value 2\n"+
		"1    1       rw  rw    rw         rw             rw\n"+
		"2    2       rw  rw    rw         rw             rw\n"+
		"3    3       ro  rw    rw         rw             rw\n"+
		"4    4       ro  rw    rw         rw             rw\n", out)
}

func TestRegistry(t *testing.T) {
	t.Run("lint", func(t *testing.T) {
		out, err := run(t, "registry")
		require.NoError(t, err)
		assert.Contains(t, out, "info: [target 3] id: [required_readonly]")
		assert.Contains(t, out, "4 targets, 0 errors, 0 warnings, 2 infos\n")
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "registry", "--yaml")
		require.NoError(t, err)
		assert.Contains(t, out, "targetId: 4")

		path := writeFile(t, "columns.yaml", out)
		out, err = run(t, "--registry", path, "registry")
		require.NoError(t, err)
		assert.Contains(t, out, "4 targets")
	})

	t.Run("dump", func(t *testing.T) {
		out, err := run(t, "registry", "--dump")
		require.NoError(t, err)
		assert.Contains(t, out, "Columns: ([]registry.Column)")
	})

	t.Run("bad table", func(t *testing.T) {
		path := writeFile(t, "columns.yaml", "targets:\n  - targetId: 1\n    columns:\n      - {key: nmae, type: string}\n")

		_, err := run(t, "--registry", path, "registry")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown_key")
	})
}
