package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"srr-reader/srr/srrtest"
)

func writeSRR(t *testing.T, dir string, name string, bs []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func TestStartInspecting(t *testing.T) {
	dir := t.TempDir()
	good := writeSRR(t, dir, "good.srr", srrtest.Concat(
		srrtest.FileHeader("ReScene .NET 1.2"),
		srrtest.StoredFile("release.nfo", []byte("nfo")),
		srrtest.RarFile("release.rar"),
	))
	broken := writeSRR(t, dir, "broken.srr", []byte{0x69, 0x69})
	missing := filepath.Join(dir, "missing.srr")

	out := bytes.Buffer{}
	logs := bytes.Buffer{}
	failures := StartInspecting(&out, zerolog.New(&logs), []string{broken, good, missing}, false)

	assert.Equal(t, 2, failures)
	assert.Equal(
		t,
		good+": application \"ReScene .NET 1.2\", 2 blocks\n"+
			"  @25 StoredFile release.nfo (3 bytes)\n"+
			"  @52 RarFile release.rar\n",
		out.String(),
	)
	assert.Contains(t, logs.String(), "incoherent file size")
	assert.Contains(t, logs.String(), "file not found")
}

func TestStartInspecting_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeSRR(t, dir, "good.srr", srrtest.Concat(
		srrtest.FileHeader("x"),
		srrtest.RarFile("a.rar"),
	))

	out := bytes.Buffer{}
	failures := StartInspecting(&out, zerolog.Nop(), []string{path}, true)
	assert.Equal(t, 0, failures)

	decoded := make([]map[string]any, 0)
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "x", decoded[0]["application_name"])
	assert.Equal(t, path, decoded[0]["path"])
	assert.Len(t, decoded[0]["blocks"], 1)
}
