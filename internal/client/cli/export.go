package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/blogctl/internal/client/render"
	"github.com/dmitrijs2005/blogctl/internal/filex"
)

const exportDirName = "exports"

// Export fetches an article, renders its Markdown body to sanitized
// HTML and writes the result to exports/<slug>.html under the current
// directory.
func (a *App) Export(ctx context.Context, args []string) error {
	slug, err := a.slugArg(args)
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, slug)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	page, err := render.ArticleHTML(article)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	dir, err := filex.EnsureSubDir(exportDirName)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	path := filepath.Join(dir, article.Slug+".html")
	if err := os.WriteFile(path, page, 0o644); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Saved %s\n", path)
	return nil
}
