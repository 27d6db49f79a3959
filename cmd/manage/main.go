package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/sbilibin2017/teaflask/internal/logger"
	"github.com/sbilibin2017/teaflask/internal/middlewares"
	"github.com/sbilibin2017/teaflask/internal/migrations"
	"github.com/sbilibin2017/teaflask/internal/repositories"
	"github.com/sbilibin2017/teaflask/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "manage",
		Usage: "teaflask maintenance commands",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.env",
				Usage:   "path to configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "log level",
			},
		},
		Before: func(c *cli.Context) error {
			_ = godotenv.Load(c.String("config"))
			return logger.Initialize(c.String("log-level"), true)
		},
		After: func(c *cli.Context) error {
			logger.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending migrations",
				Action: withDB(migrate),
			},
			{
				Name:   "rollback",
				Usage:  "roll back the latest migration",
				Action: withDB(rollback),
			},
			{
				Name:   "seed-roles",
				Usage:  "create or refresh the seed roles",
				Action: withDB(seedRoles),
			},
			{
				Name:  "deploy",
				Usage: "migrate the database and seed the roles",
				Action: withDB(func(ctx context.Context, db *sqlx.DB) error {
					if err := migrate(ctx, db); err != nil {
						return err
					}
					return seedRoles(ctx, db)
				}),
			},
		},
	}
}

// withDB opens the configured database for the duration of an action.
func withDB(action func(ctx context.Context, db *sqlx.DB) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		db, err := sqlx.ConnectContext(c.Context, "pgx", dsn())
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		return action(c.Context, db)
	}
}

// dsn builds the PostgreSQL connection string from the environment.
func dsn() string {
	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		getEnv("POSTGRES_PORT", "5432"),
		getEnv("POSTGRES_DB", "teaflask"),
	)
}

func migrate(ctx context.Context, db *sqlx.DB) error {
	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Log.Info("database is up to date")
	return nil
}

func rollback(ctx context.Context, db *sqlx.DB) error {
	if err := migrations.Down(ctx, db.DB); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	logger.Log.Info("rolled back the latest migration")
	return nil
}

func seedRoles(ctx context.Context, db *sqlx.DB) error {
	roles := repositories.NewRoleRepository(db, middlewares.GetTxFromContext)
	brewers := repositories.NewBrewerRepository(db, middlewares.GetTxFromContext)
	return services.NewRoleService(roles, brewers).Seed(ctx)
}
