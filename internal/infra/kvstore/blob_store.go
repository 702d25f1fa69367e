// Package kvstore provides persistent key/value store backends.
package kvstore

import (
	"context"

	"gwdining/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // registers the file:// scheme
	"gocloud.dev/gcerrors"
)

// blobStore keeps each key as a small text blob in a gocloud bucket. The
// default URL is a local directory (file://): one value per key, rewritten
// in full on every write.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the bucket at bucketURL (e.g. "file:///var/lib/gwdining?create_dir=true").
func NewBlobStore(ctx context.Context, bucketURL string) (repository.KVStore, func() error, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, bucket.Close, nil
}

// Get returns the stored value and whether the key was present.
func (s *blobStore) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "read key %s", key)
	}

	return string(data), true, nil
}

// Set stores the value under key, replacing any previous value.
func (s *blobStore) Set(ctx context.Context, key, value string) error {
	if err := s.bucket.WriteAll(ctx, key, []byte(value), nil); err != nil {
		return errors.Wrapf(err, "write key %s", key)
	}

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete key %s", key)
	}

	return nil
}
