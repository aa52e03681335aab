// path: uploads/saver.go
package uploads

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// DefaultMaxBytes is the proof size ceiling when none is configured.
const DefaultMaxBytes = 10 << 20 // 10 MiB

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Saver persists proof uploads into Dir under generated names. The
// client-supplied filename only ever contributes its extension; it is
// never used in path construction.
type Saver struct {
	Dir      string
	MaxBytes int64
}

// New creates the upload directory if needed.
func New(dir string, maxBytes int64) (*Saver, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Saver{Dir: dir, MaxBytes: maxBytes}, nil
}

// Save persists one uploaded file and returns its stored name. On any
// failure no new file is left in Dir: the content is written to a temp
// file first and only renamed into place once fully copied.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", models.ErrNoFile
	}
	if fh.Size > s.MaxBytes {
		return "", models.ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if len(ext) > 8 {
		ext = ext[:8]
	}
	if !imageExts[ext] {
		return "", models.ErrFileType
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff the leading bytes: the extension alone is client-controlled.
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", models.ErrFileType
	}

	tmp, err := os.CreateTemp(s.Dir, ".upload-*")
	if err != nil {
		return "", err
	}
	discard := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	if _, err := tmp.Write(head[:n]); err != nil {
		return discard(err)
	}
	remaining := s.MaxBytes - int64(n)
	copied, err := io.Copy(tmp, io.LimitReader(src, remaining+1))
	if err != nil {
		return discard(err)
	}
	if copied > remaining {
		return discard(models.ErrTooLarge)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	name := uuid.NewString() + ext
	if err := os.Rename(tmp.Name(), filepath.Join(s.Dir, name)); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return name, nil
}
