package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogctl/internal/common"
)

// Favorite toggles the favorite flag on an article. The new state is
// only shown after the server confirmed it; a toggle already running
// for the same article is refused rather than queued.
func (a *App) Favorite(ctx context.Context, args []string) error {
	slug, err := a.slugArg(args)
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, slug)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	if err := a.favorites.Toggle(ctx, article); err != nil {
		switch {
		case errors.Is(err, common.ErrAuthRequired):
			fmt.Fprintln(a.out, "Sign in to favorite articles")
		case errors.Is(err, common.ErrToggleInFlight):
			fmt.Fprintln(a.out, "A toggle for this article is still in flight, try again")
		default:
			fmt.Fprintln(a.out, "Error:", err.Error())
		}
		return err
	}

	verb := "Unfavorited"
	if article.Favorited {
		verb = "Favorited"
	}
	fmt.Fprintf(a.out, "%s %s (%d likes)\n", verb, article.Slug, article.FavoritesCount)
	return nil
}
