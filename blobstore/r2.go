package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	storefrontconfig "github.com/barinistanbul/storefront/config"
	"go.uber.org/zap"
)

type s3API interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Store keeps documents and images in a Cloudflare R2 (or any S3 compatible) bucket.
type R2Store struct {
	s3           s3API
	bucket       string
	publicDomain string
	log          *zap.Logger
}

var (
	_ Store         = (*R2Store)(nil)
	_ ImageUploader = (*R2Store)(nil)
)

func NewR2Store(ctx context.Context, cfg storefrontconfig.R2Config, log *zap.Logger) (*R2Store, error) {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" || cfg.Endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true // required for R2
	})

	return newR2Store(client, cfg.Bucket, cfg.PublicDomain, log), nil
}

func newR2Store(client s3API, bucket, publicDomain string, log *zap.Logger) *R2Store {
	return &R2Store{s3: client, bucket: bucket, publicDomain: publicDomain, log: log}
}

// keys lists every object whose key starts with prefix, in listing order.
func (r *R2Store) keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0, 1)
	p := s3.NewListObjectsV2Paginator(r.s3, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}

func (r *R2Store) Get(ctx context.Context, name string) ([]byte, error) {
	keys, err := r.keys(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, ErrNotFound
	}

	latest := keys[len(keys)-1]
	out, err := r.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(latest),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", latest, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", latest, err)
	}
	return body, nil
}

func (r *R2Store) Put(ctx context.Context, name string, body []byte) error {
	keys, err := r.keys(ctx, name)
	if err != nil {
		return err
	}
	for _, key := range keys {
		_, err := r.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}

	_, err = r.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(r.bucket),
		Key:          aws.String(name),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String("application/json"),
		CacheControl: aws.String("no-cache"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", name, err)
	}
	r.log.Debug("document stored", zap.String("name", name), zap.Int("bytes", len(body)), zap.Int("replaced", len(keys)))
	return nil
}

func (r *R2Store) PutImage(ctx context.Context, name string, body []byte, contentType string) (string, error) {
	_, err := r.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return publicURL(r.publicDomain, r.bucket, name), nil
}
