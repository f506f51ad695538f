package application

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rasporedApp/api"
	"rasporedApp/config"
	"rasporedApp/database"
	"rasporedApp/logger"
)

type Application struct {
	Server *api.Server
	DB     *sqlx.DB
	logger *logger.Logger
}

func New() *Application {
	return &Application{}
}

func (app *Application) Configure(cfg *config.Config, logger *logger.Logger) error {
	app.logger = logger

	db, err := database.Open(&cfg.Database)
	if err != nil {
		return err
	}
	app.DB = db

	app.Server = api.NewServer(cfg, logger, db)

	return nil
}

func (app *Application) Run(ctx context.Context) error {
	defer app.DB.Close()
	return app.Server.Start(ctx)
}
