package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/client/repositories/state"
	"github.com/dmitrijs2005/blogctl/internal/common"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

const pageStateKey = "articles:page"

// ArticleService wraps article reads and writes: paginated listing with
// a durably remembered page number, fetch by slug, and draft-backed
// create/update plus delete.
type ArticleService struct {
	client    api.Client
	session   *SessionService
	favorites *FavoriteService
	drafts    *DraftService
	states    state.Repository
	log       logging.Logger
	pageSize  int
}

func NewArticleService(client api.Client, session *SessionService, favorites *FavoriteService,
	drafts *DraftService, states state.Repository, log logging.Logger, pageSize int) *ArticleService {
	return &ArticleService{
		client:    client,
		session:   session,
		favorites: favorites,
		drafts:    drafts,
		states:    states,
		log:       log.With("component", "articles"),
		pageSize:  pageSize,
	}
}

// ArticlePage is one page of article summaries.
type ArticlePage struct {
	Articles []*models.Article
	Total    int
	Page     int
	PageSize int
}

// ListPage fetches one page of summaries (1-based page number), applies
// local favorite overrides to them and remembers the page durably so
// the next start resumes where the user left off. Failures of the two
// local writes only degrade convenience and are logged, not returned.
func (s *ArticleService) ListPage(ctx context.Context, page int) (*ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.pageSize

	articles, total, err := s.client.ListArticles(ctx, s.session.Token(), s.pageSize, offset)
	if err != nil {
		return nil, err
	}

	if err := s.favorites.ApplyOverrides(ctx, articles); err != nil {
		s.log.Warn(ctx, "could not apply favorite overrides", "error", err)
	}
	if err := s.states.Set(ctx, pageStateKey, []byte(strconv.Itoa(page))); err != nil {
		s.log.Warn(ctx, "could not remember list page", "error", err)
	}

	return &ArticlePage{Articles: articles, Total: total, Page: page, PageSize: s.pageSize}, nil
}

// LastPage returns the remembered page number, defaulting to 1.
func (s *ArticleService) LastPage(ctx context.Context) int {
	v, err := s.states.Get(ctx, pageStateKey)
	if err != nil || len(v) == 0 {
		return 1
	}
	page, err := strconv.Atoi(string(v))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Get fetches one article by slug. The token is attached when present so
// the server reports the caller's favorited flag.
func (s *ArticleService) Get(ctx context.Context, slug string) (*models.Article, error) {
	return s.client.GetArticle(ctx, s.session.Token(), slug)
}

// Create submits draft as a new article and purges the stored draft on
// success. On failure the stored draft is retained, so nothing the user
// typed is lost.
func (s *ArticleService) Create(ctx context.Context, draft *models.Draft) (*models.Article, error) {
	return s.submit(ctx, FormNew, draft, func(ctx context.Context, token string, payload api.ArticleDraft) (*models.Article, error) {
		return s.client.CreateArticle(ctx, token, payload)
	})
}

// Update submits draft as the new content of slug and purges the stored
// draft on success, retaining it on failure.
func (s *ArticleService) Update(ctx context.Context, slug string, draft *models.Draft) (*models.Article, error) {
	return s.submit(ctx, FormEdit(slug), draft, func(ctx context.Context, token string, payload api.ArticleDraft) (*models.Article, error) {
		return s.client.UpdateArticle(ctx, token, slug, payload)
	})
}

func (s *ArticleService) submit(ctx context.Context, form Form, draft *models.Draft,
	call func(ctx context.Context, token string, payload api.ArticleDraft) (*models.Article, error)) (*models.Article, error) {

	token := s.session.Token()
	if token == "" {
		return nil, common.ErrAuthRequired
	}

	article, err := call(ctx, token, api.ArticleDraft{
		Title:       draft.Title,
		Description: draft.Description,
		Body:        draft.Body,
		TagList:     draft.SubmittedTags(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Clear(ctx, form); err != nil {
		s.log.Warn(ctx, "could not clear draft", "form", string(form), "error", err)
	}
	return article, nil
}

// Delete removes the article with slug. Only works with a credential;
// the server enforces authorship.
func (s *ArticleService) Delete(ctx context.Context, slug string) error {
	token := s.session.Token()
	if token == "" {
		return common.ErrAuthRequired
	}
	return s.client.DeleteArticle(ctx, token, slug)
}
