package wordpress

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
)

// MaxUploadSize is the ceiling for a single uploaded file (50 MiB).
const MaxUploadSize = 50 * 1024 * 1024

// FilePayload is a validated, fully-read file ready for a multipart upload.
// It lives only for the duration of one upload call.
type FilePayload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ReadUploadFile validates a local file path and reads the file into memory.
// The gate short-circuits on the first failure: the path must be absolute,
// must reference an existing regular file, the file must be non-empty and at
// most MaxUploadSize. The content type is guessed from the extension and
// defaults to application/octet-stream. uploadDir only shapes the
// file-not-found advice; it is not a security control.
func ReadUploadFile(path, uploadDir string) (*FilePayload, error) {
	if !filepath.IsAbs(path) {
		return nil, &ValidationError{
			Message: fmt.Sprintf("file_path must be an absolute path, got %q", path),
		}
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		if uploadDir == "" {
			uploadDir = DefaultUploadDir
		}
		return nil, &ValidationError{
			Message: fmt.Sprintf(
				"File not found: %s. When running in a container, place files in a mounted directory (e.g. %s) and use that path.",
				path, uploadDir+"/"),
		}
	}

	if info.Size() == 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("File is empty: %s", path)}
	}

	if info.Size() > MaxUploadSize {
		return nil, &ValidationError{
			Message: fmt.Sprintf("File too large: %d bytes (max: %d bytes)", info.Size(), MaxUploadSize),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Deliberately generic; raw OS error text is not echoed.
		return nil, &ValidationError{Message: fmt.Sprintf("Cannot read file: %s", path)}
	}

	return &FilePayload{
		Data:        data,
		Filename:    filepath.Base(path),
		ContentType: guessContentType(path),
	}, nil
}

// guessContentType resolves a content type from the filename extension,
// falling back to the generic binary type.
func guessContentType(path string) string {
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		return "application/octet-stream"
	}
	// Strip parameters such as "; charset=utf-8".
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	return contentType
}

// createFilePart adds the file part to a multipart body with the payload's
// content type. The standard CreateFormFile helper hardcodes
// application/octet-stream, so the part headers are built directly.
func createFilePart(w *multipart.Writer, file *FilePayload) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Filename))
	h.Set("Content-Type", file.ContentType)
	return w.CreatePart(h)
}
