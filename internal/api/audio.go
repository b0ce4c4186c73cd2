package api

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/cifra/internal/storage"
)

const maxUploadBytes = 50 << 20 // 50 MB

// AudioHandler serves and accepts hymn recordings.
type AudioHandler struct {
	store storage.AudioStore
}

// NewAudioHandler creates a handler over the library's audio directory.
func NewAudioHandler(store storage.AudioStore) *AudioHandler {
	return &AudioHandler{store: store}
}

// List handles GET /audio.
//
//	@Summary		List stored hymn recordings
//	@Tags			audio
//	@Produce		json
//	@Success		200	{object}	AudioListResponse
//	@Security		BearerAuth
//	@Router			/audio [get]
func (h *AudioHandler) List(w http.ResponseWriter, _ *http.Request) {
	files, err := h.store.ListAudio()
	if err != nil {
		writeError(w, "list audio", err)
		return
	}
	writeJSON(w, http.StatusOK, AudioListResponse{Files: files})
}

// Serve handles GET /audio/{name}. Range requests are honoured.
//
//	@Summary		Stream a hymn recording
//	@Tags			audio
//	@Produce		octet-stream
//	@Param			name	path	string	true	"Recording file name"
//	@Success		200
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/audio/{name} [get]
func (h *AudioHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f, info, err := h.store.OpenAudio(name)
	switch {
	case errors.Is(err, storage.ErrAudioName):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	case errors.Is(err, fs.ErrNotExist):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	case err != nil:
		writeError(w, "open audio", err)
		return
	}
	defer f.Close()
	http.ServeContent(w, r, info.Name, info.UpdatedAt, f)
}

// Upload handles POST /audio (multipart/form-data, field "file").
//
//	@Summary		Upload a hymn recording
//	@Tags			audio
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Recording (.mp3, .m4a, .ogg, .wav)"
//	@Success		201		{object}	AudioUploadResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/audio [post]
func (h *AudioHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	saved, err := h.store.SaveAudio(header.Filename, file)
	if errors.Is(err, storage.ErrAudioName) {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	if err != nil {
		slog.Error("save audio failed", slog.String("name", header.Filename), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("failed to write file"))
		return
	}

	writeJSON(w, http.StatusCreated, AudioUploadResponse{
		Filename: saved.Name,
		Size:     saved.Size,
		URL:      "/audio/" + saved.Name,
	})
}
