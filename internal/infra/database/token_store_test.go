package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

func exerciseStore(t *testing.T, store tokenStore) {
	t.Helper()
	ctx := context.Background()

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "missing key reads as empty")

	require.NoError(t, store.Set(ctx, "first"))
	require.NoError(t, store.Set(ctx, "second"))

	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, store.Delete(ctx))
	require.NoError(t, store.Delete(ctx), "delete is idempotent")

	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestMemoryTokenStore(t *testing.T) {
	exerciseStore(t, NewMemoryTokenStore())
}

func TestBoltTokenStore(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenBoltTokenStore(dir)
	require.NoError(t, err)
	exerciseStore(t, store)

	require.NoError(t, store.Set(context.Background(), "survives"))
	require.NoError(t, store.Close())

	reopened, err := OpenBoltTokenStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "survives", token)
}

func TestRedisTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)

	store := NewRedisTokenStore(RedisConfig{Address: mr.Addr()})
	defer store.Close()

	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)

	require.NoError(t, store.Set(context.Background(), "abc"))
	got, err := mr.Get("farmareach:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Zero(t, mr.TTL("farmareach:auth_token"))
}

func TestTokenRepositoryGetMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM client_kv").
		WithArgs(TokenKey).
		WillReturnError(sql.ErrNoRows)

	token, err := NewTokenRepository(db).Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTokenRepository(db)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS client_kv").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO client_kv").
		WithArgs(TokenKey, "tok").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT value FROM client_kv").
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("tok"))
	mock.ExpectExec("DELETE FROM client_kv").
		WithArgs(TokenKey).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ctx := context.Background()
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.Set(ctx, "tok"))

	token, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	require.NoError(t, repo.Delete(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepositoryWrapsErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT value FROM client_kv").WillReturnError(boom)

	_, err = NewTokenRepository(db).Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
