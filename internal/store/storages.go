package store

import (
	"context"

	"github.com/Madelineqt/clontagram-servidor/internal/config"
	"github.com/Madelineqt/clontagram-servidor/internal/logger"
)

// Storages aggregates every persistence backend the application uses:
// relational repositories for posts and users plus the image file store.
type Storages struct {
	PostRepository PostRepository
	UserRepository UserRepository
	ImageStorage   ImageStorage

	db *DB
}

// NewStorages connects to PostgreSQL, runs pending migrations, and wires up
// all repositories and the image storage backend.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	imageStorage, err := NewImageFileStorage(cfg.Images, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		PostRepository: NewPostRepository(db, logger),
		UserRepository: NewUserRepository(db, logger),
		ImageStorage:   imageStorage,
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
