package blobstore

import (
	"context"
	"fmt"

	"github.com/barinistanbul/storefront/config"
	"github.com/barinistanbul/storefront/database"
	"go.uber.org/zap"
)

// Backend is an opened document store. Images is nil when the backend cannot serve uploads.
type Backend struct {
	Store  Store
	Images ImageUploader
	close  func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects the backend named by cfg.Blob.Driver. Database backends cannot hold images;
// they upload to R2 instead when an R2 bucket is configured.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Backend, error) {
	log = log.With(zap.String("blob_driver", cfg.Blob.Driver))

	b, err := open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if b.Images == nil && cfg.R2.Bucket != "" {
		r2, err := NewR2Store(ctx, cfg.R2, log)
		if err != nil {
			log.Warn("image uploads disabled", zap.Error(err))
		} else {
			b.Images = r2
		}
	}
	return b, nil
}

func open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Backend, error) {
	switch cfg.Blob.Driver {
	case "memory":
		m := NewMemoryStore("")
		return &Backend{Store: m, Images: m}, nil

	case "r2", "s3":
		r2, err := NewR2Store(ctx, cfg.R2, log)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: r2, Images: r2}, nil

	case "gcs":
		g, err := NewGCSStore(ctx, cfg.GCS, log)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: g, Images: g, close: g.Close}, nil

	case "mongo":
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		m := NewMongoStore(database.OpenCollection(client, cfg.Mongo), log)
		if err := m.EnsureIndexes(ctx); err != nil {
			log.Warn("could not create document index", zap.Error(err))
		}
		return &Backend{Store: m, close: func() error { return client.Disconnect(context.Background()) }}, nil

	case "postgres":
		db, err := database.OpenPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		p := NewPostgresStore(db, log)
		if err := p.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Backend{Store: p, close: db.Close}, nil
	}

	return nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
}
