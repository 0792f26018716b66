// Package render converts article markdown bodies into sanitized HTML
// for the export command.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/dmitrijs2005/blogctl/internal/client/models"
)

// htmlSanitizer allows the safe HTML tag subset for user-generated content.
var htmlSanitizer = bluemonday.UGCPolicy()

var pageTemplate = template.Must(template.New("article").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<article>
<h1>{{.Title}}</h1>
<p><em>{{.Description}}</em></p>
<p>{{.Author}} &middot; {{.CreatedAt}}</p>
{{if .Tags}}<p>{{range .Tags}}<span>#{{.}}</span> {{end}}</p>{{end}}
{{.Body}}
</article>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Author      string
	CreatedAt   string
	Tags        []string
	Body        template.HTML
}

// ArticleHTML renders article as a standalone HTML page: a small
// metadata header plus the markdown body converted with goldmark and
// passed through the sanitizer.
func ArticleHTML(article *models.Article) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(article.Body), &body); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	safe := htmlSanitizer.SanitizeBytes(body.Bytes())

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, pageData{
		Title:       article.Title,
		Description: article.Description,
		Author:      article.Author.Username,
		CreatedAt:   article.CreatedAt.Format("January 2, 2006"),
		Tags:        article.TagList,
		Body:        template.HTML(safe), //nolint:gosec // sanitized above
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return out.Bytes(), nil
}
