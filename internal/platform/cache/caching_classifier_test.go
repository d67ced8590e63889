package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbin/internal/feature/classification/domain/entity"
)

// mockClassifier はテスト用のClassifierモック実装です。
type mockClassifier struct {
	classifyFn func(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error)
	calls      int
}

// Classify はモックのClassify関数を呼び出します。
func (m *mockClassifier) Classify(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
	m.calls++
	if m.classifyFn != nil {
		return m.classifyFn(ctx, upload)
	}
	return nil, nil
}

var testUpload = entity.Upload{Filename: "bottle.png", ContentType: "image/png", Data: []byte("fake-png")}

func plasticResult() *entity.ClassificationResult {
	return &entity.ClassificationResult{
		Predictions: []entity.CategoryPrediction{
			{ID: 0, Name: "Plastic", Type: entity.NonBiodegradable, Probability: 85.5},
		},
		TopPrediction: entity.CategoryPrediction{ID: 0, Name: "Plastic", Type: entity.NonBiodegradable, Probability: 85.5},
		Disposal:      &entity.DisposalGuide{Category: "Recyclable Plastic", Instructions: []string{"Rinse"}},
	}
}

// TestNewCachingClassifier_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingClassifier_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 10 * time.Minute, "classify"},
		{"negative ttl uses default", -time.Minute, "", 10 * time.Minute, "classify"},
		{"custom values preserved", time.Hour, "custom", time.Hour, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewCachingClassifier(nil, tt.ttl, &mockClassifier{}, tt.namespace)

			assert.Equal(t, tt.expectedTTL, c.ttl)
			assert.Equal(t, tt.expectedNamespace, c.namespace)
		})
	}
}

// TestCachingClassifier_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingClassifier_NilRedis(t *testing.T) {
	t.Parallel()

	inner := &mockClassifier{classifyFn: func(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
		return plasticResult(), nil
	}}
	c := NewCachingClassifier(nil, time.Minute, inner, "")

	got, err := c.Classify(context.Background(), testUpload)
	require.NoError(t, err)
	assert.Equal(t, "Plastic", got.TopPrediction.Name)
	assert.Equal(t, 1, inner.calls)
}

// TestCachingClassifier_CacheHit はキャッシュヒット時に内部Classifierを呼ばないことを検証します。
func TestCachingClassifier_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockClassifier{}
	c := NewCachingClassifier(rdb, time.Minute, inner, "classify")

	b, err := json.Marshal(plasticResult())
	require.NoError(t, err)
	mock.ExpectGet(c.cacheKey(testUpload.Data)).SetVal(string(b))

	got, err := c.Classify(context.Background(), testUpload)
	require.NoError(t, err)
	assert.Equal(t, plasticResult(), got)
	assert.Zero(t, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingClassifier_CacheMiss はキャッシュミス時に内部Classifierの結果を保存することを検証します。
func TestCachingClassifier_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockClassifier{classifyFn: func(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
		return plasticResult(), nil
	}}
	c := NewCachingClassifier(rdb, time.Minute, inner, "classify")
	key := c.cacheKey(testUpload.Data)

	b, err := json.Marshal(plasticResult())
	require.NoError(t, err)
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, b, time.Minute).SetVal("OK")

	got, err := c.Classify(context.Background(), testUpload)
	require.NoError(t, err)
	assert.Equal(t, "Plastic", got.TopPrediction.Name)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingClassifier_CorruptedEntry は壊れたキャッシュを削除して内部Classifierにフォールバックすることを検証します。
func TestCachingClassifier_CorruptedEntry(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockClassifier{classifyFn: func(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
		return plasticResult(), nil
	}}
	c := NewCachingClassifier(rdb, time.Minute, inner, "classify")
	key := c.cacheKey(testUpload.Data)

	b, err := json.Marshal(plasticResult())
	require.NoError(t, err)
	mock.ExpectGet(key).SetVal("{not json")
	mock.ExpectDel(key).SetVal(1)
	mock.ExpectSet(key, b, time.Minute).SetVal("OK")

	_, err = c.Classify(context.Background(), testUpload)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingClassifier_RedisError はRedis障害時もリクエストが失敗しないことを検証します。
func TestCachingClassifier_RedisError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	inner := &mockClassifier{classifyFn: func(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
		return plasticResult(), nil
	}}
	c := NewCachingClassifier(rdb, time.Minute, inner, "classify")
	key := c.cacheKey(testUpload.Data)

	b, err := json.Marshal(plasticResult())
	require.NoError(t, err)
	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	mock.ExpectSet(key, b, time.Minute).SetErr(errors.New("connection refused"))

	got, err := c.Classify(context.Background(), testUpload)
	require.NoError(t, err)
	assert.Equal(t, "Plastic", got.TopPrediction.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCachingClassifier_NotCached はエラーと空の結果をキャッシュしないことを検証します。
func TestCachingClassifier_NotCached(t *testing.T) {
	t.Parallel()

	errBackend := errors.New("predict http 500")

	tests := []struct {
		name    string
		result  *entity.ClassificationResult
		err     error
		wantErr error
	}{
		{name: "backend error", err: errBackend, wantErr: errBackend},
		{name: "empty predictions", result: &entity.ClassificationResult{}},
		{name: "nil result", result: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rdb, mock := redismock.NewClientMock()
			defer func() { _ = rdb.Close() }()

			inner := &mockClassifier{classifyFn: func(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
				return tt.result, tt.err
			}}
			c := NewCachingClassifier(rdb, time.Minute, inner, "classify")
			mock.ExpectGet(c.cacheKey(testUpload.Data)).RedisNil()

			got, err := c.Classify(context.Background(), testUpload)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.result, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCachingClassifier_CacheKey(t *testing.T) {
	t.Parallel()

	c := NewCachingClassifier(nil, 0, &mockClassifier{}, "classify")

	k1 := c.cacheKey([]byte("a"))
	assert.Equal(t, k1, c.cacheKey([]byte("a")))
	assert.NotEqual(t, k1, c.cacheKey([]byte("b")))
	assert.Equal(t, "classify:ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb", k1)
}
