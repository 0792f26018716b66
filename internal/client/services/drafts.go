package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/blogctl/internal/client/models"
	"github.com/dmitrijs2005/blogctl/internal/client/repositories/state"
	"github.com/dmitrijs2005/blogctl/internal/common"
	"github.com/dmitrijs2005/blogctl/internal/dbx"
	"github.com/dmitrijs2005/blogctl/internal/logging"
)

// Form identifies which authoring form a draft belongs to, so a draft
// for a new article never leaks into the edit form of an existing one.
type Form string

// FormNew is the create-article form.
const FormNew Form = "new"

// FormEdit returns the form key for editing the article with slug.
func FormEdit(slug string) Form {
	return Form("edit:" + slug)
}

const draftStatePrefix = "draft:"

// DraftService mirrors in-progress article form fields into the durable
// state store, so a restart does not lose unsaved work. Every field
// write goes straight to storage; the in-memory Draft is the read-back
// view the form operates on.
type DraftService struct {
	db  *sql.DB
	log logging.Logger
}

func NewDraftService(db *sql.DB, log logging.Logger) *DraftService {
	return &DraftService{db: db, log: log.With("component", "drafts")}
}

func (d *DraftService) repo() state.Repository {
	return state.NewSQLiteRepository(d.db)
}

func (d *DraftService) key(form Form, field string) string {
	return draftStatePrefix + string(form) + ":" + field
}

// Load reads the persisted draft for form. found is false when no field
// of this draft was ever written; the caller then falls back to
// server-fetched content (edit mode) or an empty draft (create mode).
func (d *DraftService) Load(ctx context.Context, form Form) (*models.Draft, bool, error) {
	r := d.repo()
	draft := models.NewDraft()
	found := false

	read := func(field string) (string, error) {
		v, err := r.Get(ctx, d.key(form, field))
		if err != nil {
			return "", err
		}
		if v == nil {
			return "", nil
		}
		found = true
		return string(v), nil
	}

	var err error
	if draft.Title, err = read("title"); err != nil {
		return nil, false, err
	}
	if draft.Description, err = read("description"); err != nil {
		return nil, false, err
	}
	if draft.Body, err = read("body"); err != nil {
		return nil, false, err
	}

	rawTags, err := r.Get(ctx, d.key(form, "tags"))
	if err != nil {
		return nil, false, err
	}
	if rawTags != nil {
		found = true
		var tags []string
		if err := json.Unmarshal(rawTags, &tags); err != nil {
			return nil, false, fmt.Errorf("decode draft tags: %w", err)
		}
		if len(tags) > 0 {
			draft.Tags = tags
		}
	}

	return draft, found, nil
}

// SetTitle persists a title change.
func (d *DraftService) SetTitle(ctx context.Context, form Form, value string) error {
	return d.repo().Set(ctx, d.key(form, "title"), []byte(value))
}

// SetDescription persists a description change.
func (d *DraftService) SetDescription(ctx context.Context, form Form, value string) error {
	return d.repo().Set(ctx, d.key(form, "description"), []byte(value))
}

// SetBody persists a body change.
func (d *DraftService) SetBody(ctx context.Context, form Form, value string) error {
	return d.repo().Set(ctx, d.key(form, "body"), []byte(value))
}

func (d *DraftService) saveTags(ctx context.Context, r state.Repository, form Form, tags []string) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("encode draft tags: %w", err)
	}
	return r.Set(ctx, d.key(form, "tags"), data)
}

// AppendTag adds a tag slot and persists the whole ordered list as a unit.
func (d *DraftService) AppendTag(ctx context.Context, form Form, draft *models.Draft, value string) error {
	draft.Tags = append(draft.Tags, value)
	return d.saveTags(ctx, d.repo(), form, draft.Tags)
}

// UpdateTagAt replaces the slot at index and persists the list.
func (d *DraftService) UpdateTagAt(ctx context.Context, form Form, draft *models.Draft, index int, value string) error {
	if index < 0 || index >= len(draft.Tags) {
		return fmt.Errorf("tag index %d out of range", index)
	}
	draft.Tags[index] = value
	return d.saveTags(ctx, d.repo(), form, draft.Tags)
}

// RemoveTagAt removes the slot at index and persists the list. Removing
// the only remaining slot is refused with common.ErrLastTagSlot: the
// form always keeps at least one input slot.
func (d *DraftService) RemoveTagAt(ctx context.Context, form Form, draft *models.Draft, index int) error {
	if len(draft.Tags) <= 1 {
		return common.ErrLastTagSlot
	}
	if index < 0 || index >= len(draft.Tags) {
		return fmt.Errorf("tag index %d out of range", index)
	}
	draft.Tags = append(draft.Tags[:index], draft.Tags[index+1:]...)
	return d.saveTags(ctx, d.repo(), form, draft.Tags)
}

// Seed stores server-fetched article content as the draft baseline, in
// a single transaction. Used when an edit form opens and no draft for
// the slug exists yet.
func (d *DraftService) Seed(ctx context.Context, form Form, article *models.Article) (*models.Draft, error) {
	draft := &models.Draft{
		Title:       article.Title,
		Description: article.Description,
		Body:        article.Body,
		Tags:        append([]string(nil), article.TagList...),
	}
	if len(draft.Tags) == 0 {
		draft.Tags = []string{""}
	}

	err := dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := state.NewSQLiteRepository(tx)
		if err := r.Set(ctx, d.key(form, "title"), []byte(draft.Title)); err != nil {
			return err
		}
		if err := r.Set(ctx, d.key(form, "description"), []byte(draft.Description)); err != nil {
			return err
		}
		if err := r.Set(ctx, d.key(form, "body"), []byte(draft.Body)); err != nil {
			return err
		}
		return d.saveTags(ctx, r, form, draft.Tags)
	})
	if err != nil {
		return nil, err
	}
	return draft, nil
}

// Clear purges every stored field of the form's draft as a unit. Called
// after a successful submission; on a failed submission nothing is
// cleared, so the user's input survives.
func (d *DraftService) Clear(ctx context.Context, form Form) error {
	return d.repo().DeletePrefix(ctx, draftStatePrefix+string(form)+":")
}
