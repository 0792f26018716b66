package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// List shows one page of article summaries. Without arguments it
// reopens the page the user viewed last; "next", "prev" or an explicit
// page number move around. The viewed page is remembered durably.
func (a *App) List(ctx context.Context, args []string) error {
	page := a.articles.LastPage(ctx)

	if len(args) > 0 {
		switch args[0] {
		case "next":
			page++
		case "prev":
			page--
		default:
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintln(a.out, "Usage: list [next|prev|<page>]")
				return nil
			}
			page = n
		}
	}

	result, err := a.articles.ListPage(ctx, page)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}

	for _, art := range result.Articles {
		mark := " "
		if art.Favorited {
			mark = "*"
		}
		title := art.Title
		if strings.TrimSpace(title) == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(a.out, "%s %4d  %-45s %s\n", mark, art.FavoritesCount, title, art.Slug)
	}

	lastPage := 1
	if result.Total > 0 {
		lastPage = (result.Total + result.PageSize - 1) / result.PageSize
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d articles)\n", result.Page, lastPage, result.Total)
	return nil
}
