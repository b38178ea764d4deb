package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Madelineqt/clontagram-servidor/internal/config"
	"github.com/Madelineqt/clontagram-servidor/internal/logger"
)

// imageFileStorage is the local-filesystem implementation of [ImageStorage].
// Uploaded images are written as plain files under a configured directory
// and served back by storage name. Storage names are produced by the upload
// path from a random unique token plus a validated extension, so the
// directory is flat and writes never contend on the same name.
type imageFileStorage struct {
	dir           string
	publicBaseURL string
	logger        *logger.Logger
}

// NewImageFileStorage constructs an [ImageStorage] rooted at cfg.Dir.
// The directory is created on first use if it does not exist.
func NewImageFileStorage(cfg config.Images, logger *logger.Logger) (ImageStorage, error) {
	if cfg.Dir == "" {
		return nil, errors.New("image storage directory is not configured")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image storage directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.Dir).Msg("creating image file storage")

	return &imageFileStorage{
		dir:           cfg.Dir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// SaveImage writes data to a file named name under the storage directory and
// returns the public URL the image is reachable at.
//
// The write is a single os.WriteFile call; there is no retry at this layer.
// Failures are wrapped in [ErrImageNotSaved].
func (s *imageFileStorage) SaveImage(ctx context.Context, name string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).Str("func", "imageFileStorage.SaveImage").Str("name", name).Msg("failed to write image file")
		return "", fmt.Errorf("%w: %w", ErrImageNotSaved, err)
	}

	return s.publicBaseURL + "/" + name, nil
}

// OpenImage opens the stored image with the given name for reading.
// A missing file yields [ErrImageNotFound].
func (s *imageFileStorage) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	log := logger.FromContext(ctx)

	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrImageNotFound
		}
		log.Err(err).Str("func", "imageFileStorage.OpenImage").Str("name", name).Msg("failed to open image file")
		return nil, err
	}

	return file, nil
}

// resolve joins name onto the storage directory and rejects names that
// would escape it (path separators, "..").
func (s *imageFileStorage) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: invalid image name %q", ErrImageNotFound, name)
	}

	return filepath.Join(s.dir, name), nil
}
