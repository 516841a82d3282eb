package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlevkov/contentproc/internal/config"
	"github.com/mlevkov/contentproc/internal/entity"
)

func newTestValidator() *Validator {
	return NewFileValidator(config.FileUploadConfig{
		MaxAudioFileSize: 1 << 20,
		MaxImageFileSize: 1 << 20,
	})
}

func TestValidateAudioFile(t *testing.T) {
	v := newTestValidator()

	require.NoError(t, v.ValidateAudioFile("meeting.mp3", 1024))
	require.NoError(t, v.ValidateAudioFile("MEETING.WAV", 1024))

	err := v.ValidateAudioFile("meeting.mp3", 0)
	require.ErrorIs(t, err, entity.ErrInvalidFile)

	err = v.ValidateAudioFile("meeting.mp3", 2<<20)
	require.ErrorIs(t, err, entity.ErrFileTooLarge)

	err = v.ValidateAudioFile("meeting.txt", 1024)
	require.ErrorIs(t, err, entity.ErrInvalidExtension)
}

func TestValidateImageFile(t *testing.T) {
	v := newTestValidator()

	require.NoError(t, v.ValidateImageFile("photo.png", 1024))
	require.NoError(t, v.ValidateImageFile("photo.JPEG", 1024))

	err := v.ValidateImageFile("photo.bmp", 1024)
	require.ErrorIs(t, err, entity.ErrInvalidExtension)

	err = v.ValidateImageFile("photo.png", 2<<20)
	require.ErrorIs(t, err, entity.ErrFileTooLarge)
}

func TestValidateStoreWebpage(t *testing.T) {
	v := newTestValidator()

	valid := &entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com", Content: "text",
	}
	require.NoError(t, v.ValidateStoreWebpage(valid))

	// Fetch allows omitting both content and title.
	fetchOnly := &entity.StoreWebpageRequest{
		URL: "https://example.com", Fetch: true,
	}
	require.NoError(t, v.ValidateStoreWebpage(fetchOnly))

	err := v.ValidateStoreWebpage(&entity.StoreWebpageRequest{URL: "https://example.com", Content: "x"})
	require.ErrorIs(t, err, entity.ErrMissingField)

	err = v.ValidateStoreWebpage(&entity.StoreWebpageRequest{Title: "Page", Content: "x"})
	require.ErrorIs(t, err, entity.ErrMissingField)

	err = v.ValidateStoreWebpage(&entity.StoreWebpageRequest{Title: "Page", URL: "https://example.com"})
	require.ErrorIs(t, err, entity.ErrMissingField)

	err = v.ValidateStoreWebpage(&entity.StoreWebpageRequest{
		Title: "Page", URL: "https://example.com", Content: "x", ChunkSize: 100, ChunkOverlap: 100,
	})
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestValidateAsk(t *testing.T) {
	v := newTestValidator()

	require.NoError(t, v.ValidateAsk(&entity.AskRequest{SessionID: "abc", Question: "why?"}))

	err := v.ValidateAsk(&entity.AskRequest{Question: "why?"})
	require.ErrorIs(t, err, entity.ErrMissingField)

	err = v.ValidateAsk(&entity.AskRequest{SessionID: "abc"})
	require.ErrorIs(t, err, entity.ErrMissingField)

	err = v.ValidateAsk(&entity.AskRequest{SessionID: "abc", Question: "why?", TopK: -1})
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}
