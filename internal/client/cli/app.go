package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/blogctl/internal/client/api"
	"github.com/dmitrijs2005/blogctl/internal/client/config"
	"github.com/dmitrijs2005/blogctl/internal/client/repositories/state"
	"github.com/dmitrijs2005/blogctl/internal/client/services"
	"github.com/dmitrijs2005/blogctl/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the services together and owns the terminal I/O.
type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB

	api       api.Client
	session   *services.SessionService
	favorites *services.FavoriteService
	drafts    *services.DraftService
	articles  *services.ArticleService

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := state.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	states := state.NewSQLiteRepository(db)
	client := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, log)

	session := services.NewSessionService(client, states, log)
	favorites := services.NewFavoriteService(client, session, states, log)
	drafts := services.NewDraftService(db, log)
	articles := services.NewArticleService(client, session, favorites, drafts, states, log, cfg.PageSize)

	return &App{
		config:    cfg,
		log:       log,
		db:        db,
		api:       client,
		session:   session,
		favorites: favorites,
		drafts:    drafts,
		articles:  articles,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores the persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	if err := a.session.Initialize(ctx); err != nil {
		return err
	}

	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}
