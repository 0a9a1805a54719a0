package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trivertex/grid"
)

func TestRun_ImageBlockSetsGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.tv")
	src := "image 1 { green }\nlink 0 1\nlink 1 3\nlink 3 0\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	var out strings.Builder
	require.NoError(t, run(4, 10, 0, "red,blue", path, &out))
	assert.Contains(t, out.String(), "+{0,1,3}:green")
}

func TestRun_MissingFile(t *testing.T) {
	var out strings.Builder
	err := run(4, 100, 0, "", filepath.Join(t.TempDir(), "nope"), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestPalette(t *testing.T) {
	assert.Equal(t, []grid.Color{"red", "green"}, palette(" red, ,green "))
	assert.Nil(t, palette(""))
}

func TestInitLogging_RegistersCommandLineFlags(t *testing.T) {
	require.NoError(t, initLogging())

	v := flag.Lookup("v")
	require.NotNil(t, v, "-v must be settable from the command line")
	assert.Equal(t, "2", v.Value.String())
	require.NotNil(t, flag.Lookup("logtostderr"))

	require.NoError(t, flag.Set("v", "4"))
	assert.Equal(t, "4", flag.Lookup("v").Value.String())
}
