package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/client/repositories/state"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

// ---- helpers ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE local_state (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func insertState(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO local_state(key,value) VALUES(?,?)`, k, v)
	require.NoError(t, err)
}

func getState(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM local_state WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

// ---- fake client ----

// fakeClient implements api.Client for unit tests. Return values and
// errors are preset per method; Last* fields record arguments and the
// *Calls counters record how many times a method ran.
type fakeClient struct {
	RegisterRet *models.User
	RegisterErr error

	LoginRet *models.User
	LoginErr error

	CurrentUserRet   *models.User
	CurrentUserErr   error
	CurrentUserCalls int
	LastToken        string

	UpdateUserRet *models.User
	UpdateUserErr error

	ListRet   []*models.Article
	ListTotal int
	ListErr   error
	LastLimit int
	LastOff   int

	GetRet *models.Article
	GetErr error

	CreateRet  *models.Article
	CreateErr  error
	LastCreate api.ArticleDraft

	UpdateRet  *models.Article
	UpdateErr  error
	LastUpdate api.ArticleDraft

	DeleteErr error

	FavoriteRet     *models.Article
	FavoriteErr     error
	FavoriteCalls   int
	FavoriteHook    func()
	UnfavoriteRet   *models.Article
	UnfavoriteErr   error
	UnfavoriteCalls int
	LastSlug        string
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	f.CurrentUserCalls++
	f.LastToken = token
	return f.CurrentUserRet, f.CurrentUserErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, token string, update api.UserUpdate) (*models.User, error) {
	f.LastToken = token
	return f.UpdateUserRet, f.UpdateUserErr
}

func (f *fakeClient) ListArticles(ctx context.Context, token string, limit, offset int) ([]*models.Article, int, error) {
	f.LastToken = token
	f.LastLimit = limit
	f.LastOff = offset
	return f.ListRet, f.ListTotal, f.ListErr
}

func (f *fakeClient) GetArticle(ctx context.Context, token, slug string) (*models.Article, error) {
	f.LastToken = token
	f.LastSlug = slug
	return f.GetRet, f.GetErr
}

func (f *fakeClient) CreateArticle(ctx context.Context, token string, draft api.ArticleDraft) (*models.Article, error) {
	f.LastToken = token
	f.LastCreate = draft
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateArticle(ctx context.Context, token, slug string, draft api.ArticleDraft) (*models.Article, error) {
	f.LastToken = token
	f.LastSlug = slug
	f.LastUpdate = draft
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteArticle(ctx context.Context, token, slug string) error {
	f.LastToken = token
	f.LastSlug = slug
	return f.DeleteErr
}

func (f *fakeClient) Favorite(ctx context.Context, token, slug string) (*models.Article, error) {
	f.FavoriteCalls++
	f.LastToken = token
	f.LastSlug = slug
	if f.FavoriteHook != nil {
		f.FavoriteHook()
	}
	return f.FavoriteRet, f.FavoriteErr
}

func (f *fakeClient) Unfavorite(ctx context.Context, token, slug string) (*models.Article, error) {
	f.UnfavoriteCalls++
	f.LastToken = token
	f.LastSlug = slug
	return f.UnfavoriteRet, f.UnfavoriteErr
}

var _ api.Client = (*fakeClient)(nil)

func newStateRepo(t *testing.T) (*sql.DB, state.Repository) {
	t.Helper()
	db := setupDB(t)
	return db, state.NewSQLiteRepository(db)
}
