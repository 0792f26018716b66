package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogctl/internal/client/models"
)

func TestArticleHTML_RendersMarkdownBody(t *testing.T) {
	article := &models.Article{
		Title:       "Hello",
		Description: "A greeting",
		Body:        "# Heading\n\nSome *emphasis* here.",
		TagList:     []string{"go"},
		CreatedAt:   time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Author:      models.Author{Username: "alice"},
	}

	out, err := ArticleHTML(article)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<title>Hello</title>")
	assert.Contains(t, html, "<h1>Hello</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "March 5, 2024")
	assert.Contains(t, html, "#go")
}

func TestArticleHTML_StripsScriptTags(t *testing.T) {
	article := &models.Article{
		Title: "Sneaky",
		Body:  "hello\n\n<script>alert(1)</script>",
	}

	out, err := ArticleHTML(article)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}
