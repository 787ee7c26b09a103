package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUploadRequest builds a multipart request carrying one file field.
func newUploadRequest(t *testing.T, field, filename, contents string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(contents))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/posts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile(field)
	require.NoError(t, err)
	return file, header
}

func TestFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "/uploads")

	file, header := newUploadRequest(t, "image", "cat.png", "fake png bytes")
	defer file.Close()

	url, err := store.Save(file, header)
	assert.NoError(t, err)

	// URL is /uploads/<unix-milli>-<original name>
	assert.Regexp(t, regexp.MustCompile(`^/uploads/\d+-cat\.png$`), url)

	// The file exists on disk under the generated name with the same bytes
	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))
}

func TestFileStore_SaveStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "/uploads")

	file, header := newUploadRequest(t, "image", "../../etc/passwd", "oops")
	defer file.Close()

	url, err := store.Save(file, header)
	assert.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^/uploads/\d+-passwd$`), url)

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStore_SaveMissingDir(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "missing"), "/uploads")

	file, header := newUploadRequest(t, "image", "cat.png", "data")
	defer file.Close()

	_, err := store.Save(file, header)
	assert.Error(t, err)
}
