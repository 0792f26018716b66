package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/common"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

// HTTPClient is the production Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// do performs a single request attempt. A non-empty token is attached as
// "Authorization: Token <jwt>". On 2xx the body is decoded into out (when
// out is non-nil); otherwise the body is parsed for a field-error map and
// an *Error is returned.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)
		return &Error{Status: resp.StatusCode, Fields: decodeFieldErrors(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeFieldErrors parses the platform's error body, {"errors": {...}}.
// Values are usually string arrays but single strings occur too; anything
// unparsable is skipped.
func decodeFieldErrors(r io.Reader) map[string][]string {
	var body struct {
		Errors map[string]json.RawMessage `json:"errors"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || len(body.Errors) == 0 {
		return nil
	}

	fields := make(map[string][]string, len(body.Errors))
	for k, raw := range body.Errors {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			fields[k] = list
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			fields[k] = []string{single}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

type userEnvelope struct {
	User *models.User `json:"user"`
}

type articleEnvelope struct {
	Article *models.Article `json:"article"`
}

type articlesEnvelope struct {
	Articles      []*models.Article `json:"articles"`
	ArticlesCount int               `json:"articlesCount"`
}

func articlePath(slug string) string {
	return "/articles/" + url.PathEscape(slug)
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	req := map[string]any{"user": map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}}

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/users", "", req, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := map[string]any{"user": map[string]string{
		"email":    email,
		"password": password,
	}}

	var env userEnvelope
	if err := c.do(ctx, http.MethodPost, "/users/login", "", req, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/user", token, nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, token string, update UserUpdate) (*models.User, error) {
	req := map[string]any{"user": update}

	var env userEnvelope
	if err := c.do(ctx, http.MethodPut, "/user", token, req, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) ListArticles(ctx context.Context, token string, limit, offset int) ([]*models.Article, int, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var env articlesEnvelope
	if err := c.do(ctx, http.MethodGet, "/articles?"+q.Encode(), token, nil, &env); err != nil {
		return nil, 0, err
	}
	return env.Articles, env.ArticlesCount, nil
}

func (c *HTTPClient) GetArticle(ctx context.Context, token, slug string) (*models.Article, error) {
	var env articleEnvelope
	if err := c.do(ctx, http.MethodGet, articlePath(slug), token, nil, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}

func (c *HTTPClient) CreateArticle(ctx context.Context, token string, draft ArticleDraft) (*models.Article, error) {
	req := map[string]any{"article": draft}

	var env articleEnvelope
	if err := c.do(ctx, http.MethodPost, "/articles", token, req, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, token, slug string, draft ArticleDraft) (*models.Article, error) {
	req := map[string]any{"article": draft}

	var env articleEnvelope
	if err := c.do(ctx, http.MethodPut, articlePath(slug), token, req, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, token, slug string) error {
	return c.do(ctx, http.MethodDelete, articlePath(slug), token, nil, nil)
}

func (c *HTTPClient) Favorite(ctx context.Context, token, slug string) (*models.Article, error) {
	var env articleEnvelope
	if err := c.do(ctx, http.MethodPost, articlePath(slug)+"/favorite", token, nil, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}

func (c *HTTPClient) Unfavorite(ctx context.Context, token, slug string) (*models.Article, error) {
	var env articleEnvelope
	if err := c.do(ctx, http.MethodDelete, articlePath(slug)+"/favorite", token, nil, &env); err != nil {
		return nil, err
	}
	return env.Article, nil
}
