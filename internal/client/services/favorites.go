package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/client/repositories/state"
	"github.com/dmitrijs2005/blogctl/internal/common"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

const favoriteStatePrefix = "favorites:"

// FavoriteService flips an article's favorited flag against the server.
// The local flip is committed only after the server confirms the
// mutation; while a request for a slug is in flight, further toggles for
// that slug are refused with common.ErrToggleInFlight. Toggles for
// different slugs are independent.
type FavoriteService struct {
	client  api.Client
	session *SessionService
	states  state.Repository
	log     logging.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewFavoriteService(client api.Client, session *SessionService, states state.Repository, log logging.Logger) *FavoriteService {
	return &FavoriteService{
		client:  client,
		session: session,
		states:  states,
		log:     log.With("component", "favorites"),
		pending: make(map[string]struct{}),
	}
}

// Toggle adds or removes the favorite on article and commits the result
// into article itself: Favorited flipped, FavoritesCount adjusted by one
// (never below zero). On any error article is left untouched.
//
// Preconditions: a credential must be present (common.ErrAuthRequired
// otherwise, without contacting the server) and no other toggle for the
// same slug may be running (common.ErrToggleInFlight).
func (f *FavoriteService) Toggle(ctx context.Context, article *models.Article) error {
	token := f.session.Token()
	if token == "" {
		return common.ErrAuthRequired
	}

	if !f.begin(article.Slug) {
		return common.ErrToggleInFlight
	}
	defer f.end(article.Slug)

	var err error
	if article.Favorited {
		_, err = f.client.Unfavorite(ctx, token, article.Slug)
	} else {
		_, err = f.client.Favorite(ctx, token, article.Slug)
	}
	if err != nil {
		f.log.Warn(ctx, "favorite toggle failed", "slug", article.Slug, "error", err)
		return err
	}

	if article.Favorited {
		article.Favorited = false
		if article.FavoritesCount > 0 {
			article.FavoritesCount--
		}
	} else {
		article.Favorited = true
		article.FavoritesCount++
	}

	f.rememberOverride(ctx, article.Slug, article.Favorited)
	return nil
}

func (f *FavoriteService) begin(slug string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pending[slug]; ok {
		return false
	}
	f.pending[slug] = struct{}{}
	return true
}

func (f *FavoriteService) end(slug string) {
	f.mu.Lock()
	delete(f.pending, slug)
	f.mu.Unlock()
}

// rememberOverride persists the confirmed state so a freshly fetched
// list page can show it even when the list call itself was anonymous.
// Persistence failure only degrades the list display, so it is logged
// and swallowed.
func (f *FavoriteService) rememberOverride(ctx context.Context, slug string, favorited bool) {
	v := []byte("0")
	if favorited {
		v = []byte("1")
	}
	if err := f.states.Set(ctx, favoriteStatePrefix+slug, v); err != nil {
		f.log.Warn(ctx, "could not persist favorite override", "slug", slug, "error", err)
	}
}

// ApplyOverrides overlays persisted per-slug favorite state onto freshly
// fetched summaries. Counts are not adjusted: the server count already
// includes every confirmed mutation.
func (f *FavoriteService) ApplyOverrides(ctx context.Context, articles []*models.Article) error {
	all, err := f.states.List(ctx)
	if err != nil {
		return err
	}
	for _, a := range articles {
		v, ok := all[favoriteStatePrefix+a.Slug]
		if !ok {
			continue
		}
		a.Favorited = string(v) == "1"
	}
	return nil
}
