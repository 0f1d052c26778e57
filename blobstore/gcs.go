package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/barinistanbul/storefront/config"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const gcsPublicDomain = "https://storage.googleapis.com"

// GCSStore keeps documents and images in a Google Cloud Storage bucket.
type GCSStore struct {
	client *storage.Client
	bucket string
	log    *zap.Logger
}

var (
	_ Store         = (*GCSStore)(nil)
	_ ImageUploader = (*GCSStore)(nil)
)

// NewGCSStore uses the service account key at cfg.CredentialsFile, or application default
// credentials when it is empty.
func NewGCSStore(ctx context.Context, cfg config.GCSConfig, log *zap.Logger) (*GCSStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithAuthCredentialsFile(option.ServiceAccount, cfg.CredentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &GCSStore{client: client, bucket: cfg.Bucket, log: log}, nil
}

func (g *GCSStore) objects(ctx context.Context, prefix string) ([]string, error) {
	names := make([]string, 0, 1)
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

func (g *GCSStore) Get(ctx context.Context, name string) ([]byte, error) {
	names, err := g.objects(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNotFound
	}

	latest := names[len(names)-1]
	rc, err := g.client.Bucket(g.bucket).Object(latest).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", latest, err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", latest, err)
	}
	return body, nil
}

func (g *GCSStore) Put(ctx context.Context, name string, body []byte) error {
	names, err := g.objects(ctx, name)
	if err != nil {
		return err
	}
	for _, obj := range names {
		err := g.client.Bucket(g.bucket).Object(obj).Delete(ctx)
		if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
			return fmt.Errorf("delete %s: %w", obj, err)
		}
	}

	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "application/json"
	w.CacheControl = "no-cache"
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upload close: %w", err)
	}
	g.log.Debug("document stored", zap.String("name", name), zap.Int("bytes", len(body)))
	return nil
}

func (g *GCSStore) PutImage(ctx context.Context, name string, body []byte, contentType string) (string, error) {
	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("upload close: %w", err)
	}
	return publicURL(gcsPublicDomain, g.bucket, name), nil
}

func (g *GCSStore) Close() error {
	return g.client.Close()
}
