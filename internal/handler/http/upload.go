package http

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/utils"
	"github.com/Madelineqt/clontagram-servidor/internal/validators"
	"github.com/Madelineqt/clontagram-servidor/models"
	"github.com/go-chi/chi/v5"
)

// upload stores a raw image payload and responds with the URL the image is
// reachable at, for use in a subsequent post creation.
//
// The body is read at most one byte past the size limit; anything larger is
// rejected without buffering the rest of the payload.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, validators.MaxImageBytes+1))
	if err != nil {
		log.Error().Err(err).Msg("failed to read upload body")

		// Only a tripped size limit means the image was too large; any other
		// read failure is a broken request, not an oversized one.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, validators.ErrImageTooLarge)
			return
		}
		writeError(w, r, ErrUnreadableRequestBody)
		return
	}

	url, err := h.services.PostService.SaveImage(ctx, r.Header.Get("Content-Type"), body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{URL: url}, http.StatusCreated)
}

// serveImage streams a previously uploaded image back to the client. The
// Content-Type is derived from the stored name's extension.
func (h *Handler) serveImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name := chi.URLParam(r, "name")

	image, err := h.services.PostService.OpenImage(ctx, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer image.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(name)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, image); err != nil {
		log.Err(err).Str("name", name).Msg("failed to stream image to client")
	}
}
