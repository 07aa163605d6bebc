// Package storage persists rendered documents and uploaded images in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"dnotes/config"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"
	"dnotes/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selected by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params holds dependencies for the artifact store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket        *blob.Bucket
	prefix        string
	publicBaseURL string
}

// NewArtifactStore opens the configured bucket and closes it on shutdown.
func NewArtifactStore(params Params) (service.ArtifactStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactBucketURL(cfg.BucketURL))
	}

	params.Logger.Info("Artifact store opened", slog.String("bucket", redactBucketURL(cfg.BucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, cfg.Prefix, cfg.PublicBaseURL), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, prefix, publicBaseURL string) service.ArtifactStore {
	return &blobStore{
		bucket:        bucket,
		prefix:        strings.Trim(prefix, "/"),
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStore) objectKey(key string) (string, error) {
	key = strings.TrimLeft(key, "/")
	if key == "" {
		return "", errors.New("artifact key must not be empty")
	}
	if s.prefix != "" {
		key = path.Join(s.prefix, key)
	}

	return key, nil
}

// Put writes the artifact and returns its public URL, or its object key when no public base URL is configured.
func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	key, err := s.objectKey(key)
	if err != nil {
		return "", err
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"sha256": util.Checksum(data)},
	}); err != nil {
		return "", errors.Wrapf(err, "failed to write artifact %s", key)
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	key, err := s.objectKey(key)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete artifact %s", key)
	}

	return nil
}

func redactBucketURL(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}

	return raw
}
