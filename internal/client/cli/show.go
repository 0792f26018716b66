package cli

import (
	"context"
	"fmt"
	"strings"
)

// slugArg takes the article slug from args, prompting for it when the
// command was invoked without one.
func (a *App) slugArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	slug, err := getSimpleText(a.reader, "Enter article slug", a.out)
	if err != nil {
		return "", err
	}
	if slug == "" {
		fmt.Fprintln(a.out, "A slug is required")
		return "", fmt.Errorf("empty slug")
	}
	return slug, nil
}

// Show fetches a single article and prints it in full.
func (a *App) Show(ctx context.Context, args []string) error {
	slug, err := a.slugArg(args)
	if err != nil {
		return err
	}

	article, err := a.articles.Get(ctx, slug)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	mark := ""
	if article.Favorited {
		mark = " *"
	}

	fmt.Fprintf(a.out, "%s%s\n", article.Title, mark)
	fmt.Fprintf(a.out, "by %s, %s, %d likes\n",
		article.Author.Username, article.CreatedAt.Format("January 2, 2006"), article.FavoritesCount)
	if len(article.TagList) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(article.TagList, ", "))
	}
	if article.Description != "" {
		fmt.Fprintln(a.out, article.Description)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, article.Body)
	return nil
}
