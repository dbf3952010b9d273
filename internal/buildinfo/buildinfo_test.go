package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "1.2.3"

	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Equal(t, "EasyPost CLI v1.2.3\n", buf.String())
}

func TestPrintBuildData(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)
	out := buf.String()
	assert.Contains(t, out, "Build version: "+Version)
	assert.Contains(t, out, "Build commit: ")
	assert.Contains(t, out, "Build date: ")
}
