package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/sbilibin2017/blog-platform/internal/logger"
)

// FileStore writes uploaded files into a web-servable directory and
// returns the URL path they can be fetched from.
type FileStore struct {
	dir    string // filesystem directory uploads are written to
	prefix string // URL prefix the directory is served under
}

func NewFileStore(dir, prefix string) *FileStore {
	return &FileStore{
		dir:    dir,
		prefix: prefix,
	}
}

// Save writes the uploaded file under a timestamp-prefixed name and
// returns its URL path. Two uploads with the same original name in the
// same millisecond overwrite each other; the window is accepted.
func (s *FileStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	dst := filepath.Join(s.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		logger.Log.Errorw("failed to create upload file", "path", dst, "error", err)
		return "", err
	}
	defer out.Close()

	written, err := io.Copy(out, file)

	logger.Log.Infow("upload stored",
		"path", dst,
		"size", written,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return path.Join(s.prefix, name), nil
}
