package storage

import (
	"context"
	"testing"

	"dnotes/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_Put(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "/notes/", "")

	location, err := store.Put(ctx, "7/42.pdf", []byte("%PDF-1.3"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "notes/7/42.pdf", location)

	data, err := bucket.ReadAll(ctx, "notes/7/42.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), data)

	attrs, err := bucket.Attributes(ctx, "notes/7/42.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", attrs.ContentType)
	assert.Equal(t, util.Checksum([]byte("%PDF-1.3")), attrs.Metadata["sha256"])
}

func TestBlobStore_PutWithPublicBaseURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "", "https://cdn.example.com/")

	location, err := store.Put(context.Background(), "images/7.png", []byte{0x89}, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/7.png", location)
}

func TestBlobStore_PutRejectsEmptyKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	_, err := NewBlobStore(bucket, "", "").Put(context.Background(), "/", nil, "")
	assert.Error(t, err)
}

func TestBlobStore_PutOnClosedBucket(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.Close())

	_, err := NewBlobStore(bucket, "", "").Put(context.Background(), "a.pdf", []byte("x"), "application/pdf")
	assert.Error(t, err)
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStore(bucket, "images", "")

	_, err := store.Put(ctx, "7/me.png", []byte{0x89}, "image/png")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "7/me.png"))
	exists, err := bucket.Exists(ctx, "images/7/me.png")
	require.NoError(t, err)
	assert.False(t, exists)

	// already gone
	assert.NoError(t, store.Delete(ctx, "7/me.png"))
	assert.Error(t, store.Delete(ctx, ""))
}

func TestRedactBucketURL(t *testing.T) {
	assert.Equal(t, "s3://bucket", redactBucketURL("s3://bucket?region=eu-west-1&awssdk=v2"))
	assert.Equal(t, "mem://", redactBucketURL("mem://"))
}
