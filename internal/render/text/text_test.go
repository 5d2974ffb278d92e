package text

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/sightline/internal/core/raster"
	"chosenoffset.com/sightline/internal/core/sight"
	"chosenoffset.com/sightline/internal/world/layout"
)

func TestDumpSmallGrid(t *testing.T) {
	g, err := layout.Parse([]string{"10", "*#"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, g, ", "))

	assert.Equal(t, "1, 0, \n2, 1, \n", buf.String())
}

func TestDumpSweptDefault(t *testing.T) {
	g := layout.Default()
	sight.Sweep(g, raster.Point{X: 2, Y: 2})

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, g, ","))

	want := "" +
		"1,1,1,1,1,1,1,1,\n" +
		"1,2,2,2,2,2,2,1,\n" +
		"1,2,2,2,2,2,2,1,\n" +
		"1,2,2,1,1,1,1,1,\n" +
		"1,2,2,2,0,0,0,1,\n" +
		"1,2,2,2,0,0,0,1,\n" +
		"1,2,2,2,2,0,0,1,\n" +
		"1,1,1,1,1,1,1,1,\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDumpReportsWriteError(t *testing.T) {
	g := layout.Default()
	err := Dump(failingWriter{}, g, ", ")
	assert.EqualError(t, err, "disk full")
}
