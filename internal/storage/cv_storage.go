package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

var (
	ErrEmptyFile       = errors.New("storage: empty file")
	ErrFileTooLarge    = errors.New("storage: file too large")
	ErrUnsupportedType = errors.New("storage: unsupported file type")
	ErrExtensionType   = errors.New("storage: extension does not match content")
)

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Разрешённые типы резюме
var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	mimeDOCX:          true,
	"image/jpeg":      true,
	"image/png":       true,
}

// CVStorage принимает резюме, проверяет их размер и реальный тип и
// отбрасывает содержимое. Сохраняются только метаданные.
type CVStorage struct {
	maxUploadBytes int64
}

// NewCVStorage создаёт хранилище с лимитом размера в мегабайтах.
func NewCVStorage(maxUploadMB int64) *CVStorage {
	return &CVStorage{maxUploadBytes: maxUploadMB * 1024 * 1024}
}

// MaxBytes returns the upload size limit.
func (s *CVStorage) MaxBytes() int64 {
	return s.maxUploadBytes
}

// Save читает файл целиком (не более лимита + 1 байт), определяет тип по
// содержимому и возвращает метаданные. Содержимое не сохраняется.
// DOCX распознаётся только по записям zip-архива, поэтому тип определяется
// по всему файлу, а не по первым байтам.
func (s *CVStorage) Save(ctx context.Context, originalName string, r io.Reader) (*models.CVFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	limitedReader := &io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	data, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("storage: ошибка чтения файла: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	written := int64(len(data))
	if written > s.maxUploadBytes {
		return nil, fmt.Errorf("%w: лимит %d байт", ErrFileTooLarge, s.maxUploadBytes)
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown || !allowedMimeTypes[kind.MIME.Value] {
		return nil, ErrUnsupportedType
	}

	safeName := sanitizeFilename(originalName)
	ext := strings.ToLower(filepath.Ext(safeName))
	if !extensionMatches(ext, kind.Extension) {
		return nil, fmt.Errorf("%w: %s vs .%s", ErrExtensionType, ext, kind.Extension)
	}

	return &models.CVFile{
		FileName: safeName,
		FileType: kind.MIME.Value,
		FileSize: written,
	}, nil
}

// .jpg и .jpeg - это одно и то же
func extensionMatches(ext, detected string) bool {
	ext = strings.TrimPrefix(ext, ".")
	if ext == detected {
		return true
	}
	return (ext == "jpg" && detected == "jpeg") || (ext == "jpeg" && detected == "jpg")
}

// sanitizeFilename удаляет потенциально опасные символы.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == "/" {
		name = "cv"
	}
	return name
}
