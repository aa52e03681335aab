// path: uploads/saver_test.go
package uploads

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// pngBytes is a minimal payload http.DetectContentType reports as image/png.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("proof", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["proof"][0]
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestSaveStoresImage(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1<<20)
	require.NoError(t, err)

	name, err := s.Save(fileHeader(t, "proof.PNG", pngBytes))
	require.NoError(t, err)
	assert.NotEqual(t, "proof.PNG", name)
	assert.Equal(t, ".png", filepath.Ext(name))

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, raw)
}

func TestSaveUniqueNames(t *testing.T) {
	s, err := New(t.TempDir(), 1<<20)
	require.NoError(t, err)

	a, err := s.Save(fileHeader(t, "proof.png", pngBytes))
	require.NoError(t, err)
	b, err := s.Save(fileHeader(t, "proof.png", pngBytes))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveRejectsMissingFile(t *testing.T) {
	s, err := New(t.TempDir(), 1<<20)
	require.NoError(t, err)

	_, err = s.Save(nil)
	assert.ErrorIs(t, err, models.ErrNoFile)
}

func TestSaveRejectsOversize(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 32)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "proof.png", pngBytes))
	assert.ErrorIs(t, err, models.ErrTooLarge)
	assert.Empty(t, dirEntries(t, dir), "no file may be left behind")
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1<<20)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "proof.txt", pngBytes))
	assert.ErrorIs(t, err, models.ErrFileType)
	assert.Empty(t, dirEntries(t, dir))
}

func TestSaveRejectsNonImageContent(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, 1<<20)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "proof.png", []byte("just some text pretending to be a picture")))
	assert.ErrorIs(t, err, models.ErrFileType)
	assert.Empty(t, dirEntries(t, dir))
}
