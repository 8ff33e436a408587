package storage_test

import (
	"context"
	"errors"
	"testing"

	"charge-finder/core/storage"
	"charge-finder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "b", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(false, nil)
		m.On("MakeBucket", ctx, "b", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "b", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("check fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(false, errors.New("denied"))

		assert.ErrorContains(t, storage.EnsureBucket(ctx, m, "b", ""), "denied")
	})
}

func TestListPrefix(t *testing.T) {
	ctx := context.Background()
	opts := minio.ListObjectsOptions{Prefix: "snapshots/", Recursive: true}

	t.Run("sorted", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("ListObjects", ctx, "b", opts).Return(mocks.Objects(
			minio.ObjectInfo{Key: "snapshots/b.json"},
			minio.ObjectInfo{Key: "snapshots/a.json"},
		))

		objs, err := storage.ListPrefix(ctx, m, "b", "snapshots/")
		require.NoError(t, err)
		require.Len(t, objs, 2)
		assert.Equal(t, "snapshots/a.json", objs[0].Key)
	})

	t.Run("entry error", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("ListObjects", ctx, "b", opts).Return(mocks.Objects(
			minio.ObjectInfo{Err: errors.New("access denied")},
		))

		_, err := storage.ListPrefix(ctx, m, "b", "snapshots/")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestRemoveKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("all removed", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("RemoveObjects", ctx, "b", []string{"x", "y"}, minio.RemoveObjectsOptions{}).Return(nil)

		n, err := storage.RemoveKeys(ctx, m, "b", []string{"x", "y"})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("partial failure", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("RemoveObjects", ctx, "b", []string{"x", "y"}, minio.RemoveObjectsOptions{}).
			Return(mocks.RemoveErrors(minio.RemoveObjectError{ObjectName: "y", Err: errors.New("locked")}))

		n, err := storage.RemoveKeys(ctx, m, "b", []string{"x", "y"})
		assert.ErrorContains(t, err, "remove y: locked")
		assert.Equal(t, 1, n)
	})

	t.Run("nothing to do", func(t *testing.T) {
		n, err := storage.RemoveKeys(ctx, new(mocks.Client), "b", nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
