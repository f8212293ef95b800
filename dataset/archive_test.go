package dataset

import (
	"archive/zip"
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildZip(t *testing.T, dir string, entries map[string]string) string {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := writer.Create(name)
		assert.Nil(t, err)
		_, err = f.Write([]byte(content))
		assert.Nil(t, err)
	}
	assert.Nil(t, writer.Close())

	path := filepath.Join(dir, "archive.zip")
	assert.Nil(t, ioutil.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestUnzip(t *testing.T) {
	base, err := ioutil.TempDir("", "archive")
	assert.Nil(t, err)
	defer os.RemoveAll(base)

	archivePath := buildZip(t, base, map[string]string{
		"xray_001.jpg":          "xray bytes",
		"nested/intraoral.png":  "intraoral bytes",
		"nested/deep/notes.txt": "notes",
	})

	destDir := filepath.Join(base, "out")
	assert.Nil(t, Unzip(archivePath, destDir))

	got, err := ioutil.ReadFile(filepath.Join(destDir, "xray_001.jpg"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("xray bytes"), got)

	got, err = ioutil.ReadFile(filepath.Join(destDir, "nested", "intraoral.png"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("intraoral bytes"), got)
}

func TestUnzipRejectsPathTraversal(t *testing.T) {
	base, err := ioutil.TempDir("", "archive")
	assert.Nil(t, err)
	defer os.RemoveAll(base)

	archivePath := buildZip(t, base, map[string]string{
		"../evil.txt": "escape attempt",
	})

	destDir := filepath.Join(base, "out")
	assert.NotNil(t, Unzip(archivePath, destDir))
	assert.NoFileExists(t, filepath.Join(base, "evil.txt"))
}

func TestUnzipMissingArchive(t *testing.T) {
	assert.NotNil(t, Unzip("no-such-archive.zip", "unused"))
}
