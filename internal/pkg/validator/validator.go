package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
)

var (
	audioExtensions = map[string]struct{}{
		".wav": {}, ".mp3": {}, ".m4a": {}, ".flac": {}, ".ogg": {}, ".webm": {},
	}
	imageExtensions = map[string]struct{}{
		".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {},
	}
)

// Validator checks uploaded files and request payloads against configured limits.
type Validator struct {
	cfg config.FileUploadConfig
}

func NewFileValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAudioFile checks size and extension of an uploaded audio file.
func (v *Validator) ValidateAudioFile(filename string, size int64) error {
	if size == 0 {
		return fmt.Errorf("%w: empty audio file", entity.ErrInvalidFile)
	}
	if size > v.cfg.MaxAudioFileSize {
		return fmt.Errorf("%w: audio file exceeds %d bytes", entity.ErrFileTooLarge, v.cfg.MaxAudioFileSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := audioExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s", entity.ErrInvalidExtension, ext)
	}
	return nil
}

// ValidateImageFile checks size and extension of an uploaded image file.
func (v *Validator) ValidateImageFile(filename string, size int64) error {
	if size == 0 {
		return fmt.Errorf("%w: empty image file", entity.ErrInvalidFile)
	}
	if size > v.cfg.MaxImageFileSize {
		return fmt.Errorf("%w: image file exceeds %d bytes", entity.ErrFileTooLarge, v.cfg.MaxImageFileSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s", entity.ErrInvalidExtension, ext)
	}
	return nil
}
