package checks

import (
	"context"
	"errors"
	"testing"
	"time"

	"charge-finder/core/database"
	"charge-finder/core/reconcile"
	"charge-finder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckStructure(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(false, nil)

		report, err := CheckStructure(ctx, client, "b")
		require.NoError(t, err)
		assert.False(t, report.OK())
		assert.Equal(t, []string{"snapshots"}, report.Missing)
	})

	t.Run("folder missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(true, nil)
		client.On("ListObjects", ctx, "b", mock.Anything).Return(mocks.Objects())

		report, err := CheckStructure(ctx, client, "b")
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.Equal(t, []string{"snapshots"}, report.Missing)
	})

	t.Run("complete", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(true, nil)
		client.On("ListObjects", ctx, "b", mock.Anything).Return(mocks.Objects(minio.ObjectInfo{Key: "snapshots/"}))

		report, err := CheckStructure(ctx, client, "b")
		require.NoError(t, err)
		assert.True(t, report.OK())
	})

	t.Run("storage error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "b").Return(false, errors.New("connection refused"))

		_, err := CheckStructure(ctx, client, "b")
		assert.ErrorContains(t, err, "connection refused")
	})
}

func TestFixStructure(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("BucketExists", ctx, "b").Return(false, nil)
	client.On("MakeBucket", ctx, "b", mock.Anything).Return(nil)
	client.On("PutObject", ctx, "b", "snapshots/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	require.NoError(t, FixStructure(ctx, client, "b", "", zap.NewNop(), []string{"snapshots"}))
	client.AssertExpectations(t)
}

type searchRow struct {
	ID        uint
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

func (searchRow) TableName() string { return "searches" }

func TestCheckSchema(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSchema(db, &searchRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.False(t, report.Tables["searches"].Exists)

	require.NoError(t, db.Exec("CREATE TABLE searches (id INTEGER PRIMARY KEY, latitude REAL)").Error)
	report, err = CheckSchema(db, &searchRow{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.ElementsMatch(t, []string{"longitude", "created_at"}, report.Tables["searches"].MissingColumns)

	require.NoError(t, db.AutoMigrate(&searchRow{}))
	report, err = CheckSchema(db, &searchRow{})
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["searches"].Status)
	assert.Equal(t, "sqlite", report.Driver)
}

func TestCheckSchema_NilDB(t *testing.T) {
	_, err := CheckSchema(nil)
	assert.Error(t, err)
}

type fakeProvider struct {
	name string
	recs []reconcile.RawRecord
	err  error
}

func (f fakeProvider) Name() string { return f.name }

func (f fakeProvider) FetchNearby(context.Context, float64, float64, int, int) ([]reconcile.RawRecord, error) {
	return f.recs, f.err
}

func TestCheckProviders(t *testing.T) {
	statuses := CheckProviders(context.Background(), 52.5, 13.4,
		Probe{Role: "primary", Provider: fakeProvider{name: "reg", recs: []reconcile.RawRecord{{NativeID: "1"}}}},
		Probe{Role: "enrichment", Provider: fakeProvider{name: "dir", err: errors.New("quota exceeded")}},
	)

	require.Len(t, statuses, 2)
	assert.Equal(t, "ok", statuses[0].Status)
	assert.Equal(t, 1, statuses[0].Results)
	assert.Equal(t, "primary", statuses[0].Role)
	assert.Equal(t, "error", statuses[1].Status)
	assert.Equal(t, "quota exceeded", statuses[1].Error)
}
