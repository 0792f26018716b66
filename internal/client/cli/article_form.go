package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/client/services"
	"github.com/dmitrijs2005/blogctl/internal/common"
)

// NewArticle walks the user through composing an article. Every field
// is persisted as it is entered, so an interrupted session restores the
// draft the next time the command runs. The draft is purged only after
// the server accepted the article.
func (a *App) NewArticle(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in to publish articles")
		return common.ErrAuthRequired
	}

	form := services.FormNew

	draft, found, err := a.drafts.Load(ctx, form)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}
	if found {
		fmt.Fprintln(a.out, "Restored an unsaved draft")
	}

	if err := a.fillDraft(ctx, form, draft); err != nil {
		return err
	}

	article, err := a.articles.Create(ctx, draft)
	if err != nil {
		printRequestError(a.out, err)
		fmt.Fprintln(a.out, "The draft is kept; run 'new' again to continue")
		return err
	}

	fmt.Fprintf(a.out, "Published %s\n", article.Slug)
	return nil
}

// EditArticle edits an existing article. An unsaved draft for this
// particular article takes precedence over the server copy; otherwise
// the form is seeded from the fetched article.
func (a *App) EditArticle(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in to edit articles")
		return common.ErrAuthRequired
	}

	slug, err := a.slugArg(args)
	if err != nil {
		return err
	}

	form := services.FormEdit(slug)

	draft, found, err := a.drafts.Load(ctx, form)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
		return err
	}
	if found {
		fmt.Fprintln(a.out, "Restored an unsaved draft")
	} else {
		article, err := a.articles.Get(ctx, slug)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
			return err
		}
		draft, err = a.drafts.Seed(ctx, form, article)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
			return err
		}
	}

	if err := a.fillDraft(ctx, form, draft); err != nil {
		return err
	}

	article, err := a.articles.Update(ctx, slug, draft)
	if err != nil {
		printRequestError(a.out, err)
		fmt.Fprintln(a.out, "The draft is kept; run 'edit' again to continue")
		return err
	}

	fmt.Fprintf(a.out, "Updated %s\n", article.Slug)
	return nil
}

// fillDraft prompts for each form field. An empty answer keeps the
// current value; a new one is written to the durable draft immediately.
func (a *App) fillDraft(ctx context.Context, form services.Form, draft *models.Draft) error {
	title, err := getSimpleText(a.reader, promptWithCurrent("Title", draft.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" && title != draft.Title {
		draft.Title = title
		if err := a.drafts.SetTitle(ctx, form, title); err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
			return err
		}
	}

	description, err := getSimpleText(a.reader, promptWithCurrent("Short description", draft.Description), a.out)
	if err != nil {
		return err
	}
	if description != "" && description != draft.Description {
		draft.Description = description
		if err := a.drafts.SetDescription(ctx, form, description); err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
			return err
		}
	}

	if draft.Body != "" {
		fmt.Fprintln(a.out, "Current text:")
		fmt.Fprintln(a.out, draft.Body)
	}
	body, err := GetMultiline(a.reader, "Text (markdown, empty to keep current)", a.out)
	if err != nil {
		return err
	}
	if body != "" && body != draft.Body {
		draft.Body = body
		if err := a.drafts.SetBody(ctx, form, body); err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
			return err
		}
	}

	return a.editTags(ctx, form, draft)
}

func promptWithCurrent(name, current string) string {
	if current == "" {
		return name
	}
	return fmt.Sprintf("%s [%s]", name, current)
}

// editTags runs a small sub-loop over the draft's tag slots. The last
// remaining slot cannot be deleted, matching the form layout where one
// input is always present.
func (a *App) editTags(ctx context.Context, form services.Form, draft *models.Draft) error {
	for {
		fmt.Fprintln(a.out, "Tags:")
		for i, tag := range draft.Tags {
			fmt.Fprintf(a.out, "  %d: %q\n", i, tag)
		}

		line, err := getSimpleText(a.reader, "add <tag> | set <n> <tag> | del <n> | done", a.out)
		if err != nil {
			return err
		}

		parts := strings.SplitN(line, " ", 3)
		switch parts[0] {
		case "", "done":
			return nil

		case "add":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: add <tag>")
				continue
			}
			if err := a.drafts.AppendTag(ctx, form, draft, strings.Join(parts[1:], " ")); err != nil {
				fmt.Fprintln(a.out, "Error:", err.Error())
			}

		case "set":
			if len(parts) < 3 {
				fmt.Fprintln(a.out, "Usage: set <n> <tag>")
				continue
			}
			idx, convErr := strconv.Atoi(parts[1])
			if convErr != nil {
				fmt.Fprintln(a.out, "Usage: set <n> <tag>")
				continue
			}
			if err := a.drafts.UpdateTagAt(ctx, form, draft, idx, parts[2]); err != nil {
				fmt.Fprintln(a.out, "Error:", err.Error())
			}

		case "del":
			if len(parts) < 2 {
				fmt.Fprintln(a.out, "Usage: del <n>")
				continue
			}
			idx, convErr := strconv.Atoi(parts[1])
			if convErr != nil {
				fmt.Fprintln(a.out, "Usage: del <n>")
				continue
			}
			if err := a.drafts.RemoveTagAt(ctx, form, draft, idx); err != nil {
				if errors.Is(err, common.ErrLastTagSlot) {
					fmt.Fprintln(a.out, "The last tag slot cannot be removed; use 'set 0' to clear it")
				} else {
					fmt.Fprintln(a.out, "Error:", err.Error())
				}
			}

		default:
			fmt.Fprintln(a.out, "Unknown tag command:", parts[0])
		}
	}
}
