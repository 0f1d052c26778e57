// Package blobstore keeps named JSON documents and uploaded images in a remote store.
//
// Every backend keeps at most one live version of a document: Put removes whatever is stored
// under the name before writing. If a store still returns several versions (a Put that failed
// half way), Get takes the last one in the backend's listing order.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("blobstore: document not found")

type Store interface {
	// Get returns the body of the latest version stored under name, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put replaces every version stored under name with body.
	Put(ctx context.Context, name string, body []byte) error
}

// ImageUploader stores a public image and returns the URL it can be fetched from.
type ImageUploader interface {
	PutImage(ctx context.Context, name string, body []byte, contentType string) (string, error)
}

// ImageObjectName builds a unique object name under images/ keeping the given extension.
func ImageObjectName(now time.Time, ext string) string {
	ext = strings.ToLower(ext)
	if ext == "" {
		ext = ".bin"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("images/%d-%s%s", now.UnixMilli(), uuid.New().String(), ext)
}

func publicURL(domain, bucket, objectName string) string {
	domain = strings.TrimRight(domain, "/")
	if bucket == "" {
		return fmt.Sprintf("%s/%s", domain, objectName)
	}
	return fmt.Sprintf("%s/%s/%s", domain, bucket, objectName)
}
