package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/lzwcodec"
	"github.com/dargueta/lzwcodec/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expandSample = "TOBEORNOTTOBEORTOBEORNOT"

func writeTextContainer(t *testing.T, text string) (string, []byte) {
	compressed, _, err := codec.EncodeText([]byte(text))
	require.NoError(t, err)

	artifactPath := filepath.Join(t.TempDir(), "sample.bin")
	require.NoError(t, os.WriteFile(artifactPath, compressed, 0o644))
	return artifactPath, compressed
}

func TestExpand__FileToStdout(t *testing.T) {
	artifactPath, _ := writeTextContainer(t, expandSample)

	var stdout bytes.Buffer
	app := newApp()
	app.Writer = &stdout

	err := app.Run([]string{"lzwcodec", "expand", artifactPath})
	require.NoError(t, err)
	assert.Equal(t, expandSample, stdout.String())
}

func TestExpand__StdinToFile(t *testing.T) {
	_, compressed := writeTextContainer(t, expandSample)
	outputPath := filepath.Join(t.TempDir(), "expanded.txt")

	var stdout bytes.Buffer
	app := newApp()
	app.Reader = bytes.NewReader(compressed)
	app.Writer = &stdout

	err := app.Run([]string{"lzwcodec", "expand", "--output", outputPath, "-"})
	require.NoError(t, err)

	written, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, expandSample, string(written))
	assert.Empty(t, stdout.String(), "nothing should go to stdout when --output is set")
}

func TestExpand__EmptyContainer(t *testing.T) {
	var stdout bytes.Buffer
	app := newApp()
	app.Reader = bytes.NewReader([]byte{0, 8})
	app.Writer = &stdout

	err := app.Run([]string{"lzwcodec", "expand"})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
}

func TestExpand__MalformedContainer(t *testing.T) {
	app := newApp()
	app.Reader = bytes.NewReader([]byte{0})
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"lzwcodec", "expand"})
	assert.ErrorIs(t, err, lzwcodec.ErrMalformedStream)
}

func TestExpand__TooManyArguments(t *testing.T) {
	app := newApp()
	app.Writer = &bytes.Buffer{}

	err := app.Run([]string{"lzwcodec", "expand", "a.bin", "b.bin"})
	assert.Error(t, err)
}
