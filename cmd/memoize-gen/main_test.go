package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLExpr(t *testing.T) {
	assert.Equal(t, "", ttlExpr(""))
	assert.Equal(t, "90000000000", ttlExpr("90s"))
	assert.Equal(t, "5400000000000", ttlExpr("1h30m"))
	// Not a duration string: passed through as a Go expression.
	assert.Equal(t, "5 * time.Minute", ttlExpr("5 * time.Minute"))
}

const sampleManifest = `package: demo
functions:
  - name: add
    params:
      - name: a
        type: int
      - name: b
        type: int
    returns: int
    body: |
      return a + b
  - name: lookup
    params:
      - name: key
        type: string
    returns: string
    body: |
      return key
    cache:
      capacity: 64
      ttl: 90s
      shared: true
`

func TestExecuteWritesGeneratedFile(t *testing.T) {
	dir := t.TempDir()
	manifestPath = filepath.Join(dir, "memoize.yaml")
	outPath = filepath.Join(dir, "memoized_gen.go")
	pkgOverride = ""
	extended = true
	require.NoError(t, os.WriteFile(manifestPath, []byte(sampleManifest), 0o644))

	require.NoError(t, execute(rootCmd, nil))

	src, err := os.ReadFile(outPath)
	require.NoError(t, err)
	text := string(src)
	assert.Contains(t, text, "package demo")
	assert.Contains(t, text, "func memoized_original_add(a int, b int) int")
	assert.Contains(t, text, "MEMOIZED_MAPPING_LOOKUP")
	assert.Contains(t, text, "time.Duration(90000000000)")
}

func TestExecuteRejectsGatedOptionsWithoutExtended(t *testing.T) {
	dir := t.TempDir()
	manifestPath = filepath.Join(dir, "memoize.yaml")
	outPath = filepath.Join(dir, "memoized_gen.go")
	pkgOverride = ""
	extended = false
	require.NoError(t, os.WriteFile(manifestPath, []byte(sampleManifest), 0o644))

	err := execute(rootCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup")

	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "no output on failure")
}
