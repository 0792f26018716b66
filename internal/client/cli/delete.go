package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/blogctl/internal/common"
)

// DeleteArticle removes an article after an explicit confirmation.
func (a *App) DeleteArticle(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in to delete articles")
		return common.ErrAuthRequired
	}

	slug, err := a.slugArg(args)
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %s? (y/N)", slug), a.out)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.articles.Delete(ctx, slug); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Deleted %s\n", slug)
	return nil
}
