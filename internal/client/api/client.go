// Package api is the thin gateway to the remote blog platform REST API.
// Every call is a single attempt: no retries, no backoff; failures are
// reported as *Error (non-2xx) or wrap ErrUnavailable (transport).
package api

import (
	"context"

	"github.com/dmitrijs2005/blogctl/internal/client/models"
)

// Client is the platform API surface consumed by the client services.
// A non-empty token is attached as a bearer-style credential; calls that
// accept a token work anonymously when it is empty.
type Client interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
	UpdateUser(ctx context.Context, token string, update UserUpdate) (*models.User, error)

	ListArticles(ctx context.Context, token string, limit, offset int) ([]*models.Article, int, error)
	GetArticle(ctx context.Context, token, slug string) (*models.Article, error)
	CreateArticle(ctx context.Context, token string, draft ArticleDraft) (*models.Article, error)
	UpdateArticle(ctx context.Context, token, slug string, draft ArticleDraft) (*models.Article, error)
	DeleteArticle(ctx context.Context, token, slug string) error

	Favorite(ctx context.Context, token, slug string) (*models.Article, error)
	Unfavorite(ctx context.Context, token, slug string) (*models.Article, error)
}

// ArticleDraft is the payload for article create/update calls.
type ArticleDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

// UserUpdate carries the settings-form fields; zero-valued fields are
// omitted from the request so the server keeps their current values.
type UserUpdate struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
}
