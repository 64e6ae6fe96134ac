// Package blobstore reads and writes the extractor's output documents. Local
// paths go to the file system; locations of the form s3://bucket/key go to an
// S3-compatible object store.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotExist is returned by Get when the named document does not exist.
var ErrNotExist = errors.New("document does not exist")

// Store is a flat namespace of documents.
type Store interface {
	// Get returns the document's content, or an error wrapping ErrNotExist.
	Get(ctx context.Context, name string) ([]byte, error)
	// Put replaces the document. Readers never observe a partial write.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes the document. Deleting a missing document is not an
	// error.
	Delete(ctx context.Context, name string) error
}

// Location is a parsed output location.
type Location struct {
	// Bucket is empty for local paths.
	Bucket string
	// Name is the file path or object key.
	Name string
}

// IsRemote reports whether the location lives in object storage.
func (l Location) IsRemote() bool {
	return l.Bucket != ""
}

func (l Location) String() string {
	if l.IsRemote() {
		return "s3://" + l.Bucket + "/" + l.Name
	}
	return l.Name
}

const s3Scheme = "s3://"

// ParseLocation splits an output location into bucket and name.
func ParseLocation(s string) (Location, error) {
	if !strings.HasPrefix(s, s3Scheme) {
		if s == "" {
			return Location{}, errors.New("empty location")
		}
		return Location{Name: s}, nil
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(s, s3Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return Location{}, fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", s)
	}
	return Location{Bucket: bucket, Name: key}, nil
}

// Open returns the store serving loc. S3 settings are only consulted for
// remote locations; the bucket always comes from the location itself.
func Open(loc Location, s3 S3Config) (Store, error) {
	if !loc.IsRemote() {
		return FileStore{}, nil
	}
	s3.Bucket = loc.Bucket
	return NewS3Store(s3)
}
