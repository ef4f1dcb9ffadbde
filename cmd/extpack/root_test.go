package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `{
	"name": "hello-world",
	"publisher": "acme",
	"version": "1.2.3",
	"description": "Greets the world",
	"engines": {"vscode": "^1.80.0"}
}`

func writeExtension(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"package.json": testManifest,
		"README.md":    "# Hello\n",
		"main.js":      "exports.activate = () => {};\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}
	return dir
}

func TestPackageCmd(t *testing.T) {
	dir := writeExtension(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"package", dir})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "hello-world-1.2.3.vsix"))
	assert.NoError(t, err)
}

func TestPackageCmdOutputFlag(t *testing.T) {
	dir := writeExtension(t)
	outPath := filepath.Join(t.TempDir(), "custom.vsix")

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"package", dir, "-o", outPath})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(outPath)
	assert.NoError(t, err)
}

func TestPackageCmdMissingManifest(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"package", t.TempDir()})
	assert.Error(t, rootCmd.Execute())
}

func TestLsCmd(t *testing.T) {
	dir := writeExtension(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"ls", dir})
	assert.NoError(t, rootCmd.Execute())
}

func TestShowCmd(t *testing.T) {
	dir := writeExtension(t)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"show", dir})
	assert.NoError(t, rootCmd.Execute())
}

func TestShowCmdNoReadme(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(testManifest), 0644))

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"show", dir})
	assert.Error(t, rootCmd.Execute())
}

func TestGenConfigCmdWrite(t *testing.T) {
	dir := t.TempDir()

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"gen-config", dir, "-w"})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(dir, "extpack.toml"))
	assert.NoError(t, err)
}

func TestNoSubcommand(t *testing.T) {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{})
	assert.Error(t, rootCmd.Execute())
}
