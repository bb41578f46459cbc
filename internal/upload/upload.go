package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTooLarge: the uploaded file exceeds the configured size cap.
	ErrTooLarge = errors.New("uploaded file is too large")

	// ErrBadType: the file is not a jpeg or png image.
	ErrBadType = errors.New("only jpeg and png images are accepted")
)

var allowedExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

var allowedContentTypes = map[string]bool{"image/jpeg": true, "image/png": true}

// Store saves uploaded images under a single directory and hands back the
// public path they are served from.
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Save validates and writes one uploaded image. The type check runs on both
// the file extension and the sniffed content, so renaming a file does not
// get it past the filter. Returns the URL path under /uploads/.
func (s *Store) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrBadType
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if !allowedContentTypes[http.DetectContentType(head[:n])] {
		return "", ErrBadType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	if written > s.maxSize {
		_ = os.Remove(dst.Name())
		return "", ErrTooLarge
	}

	return "/uploads/" + name, nil
}

// Dir is the directory uploads are written to, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}
