package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/trent-alex/trucking-ROL/internal/adapters/repositories"
	"github.com/trent-alex/trucking-ROL/internal/platform/db"
)

// dbtool manages the Postgres trip-history store used by shared
// deployments (the server itself runs on SQLite by default).
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	app := &cli.App{
		Name:  "dbtool",
		Usage: "Manage the Postgres trip-history store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Postgres connection string",
				EnvVars: []string{"DATABASE_URL"},
			},
		},
		Commands: []*cli.Command{
			initCommand(),
			listCommand(),
			deleteCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the saved_routes schema if it does not exist",
		Action: func(c *cli.Context) error {
			conn, err := openFromFlags(c)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := repositories.InitSchema(conn); err != nil {
				return fmt.Errorf("schema initialization failed: %w", err)
			}
			log.Println("Schema ready.")
			return nil
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print saved routes, newest first",
		Action: func(c *cli.Context) error {
			conn, err := openFromFlags(c)
			if err != nil {
				return err
			}
			defer conn.Close()

			repo := repositories.NewSQLTripRepository(conn)
			routes, err := repo.ListRecent(c.Context)
			if err != nil {
				return err
			}

			if len(routes) == 0 {
				fmt.Println("No saved routes.")
				return nil
			}
			for _, r := range routes {
				fmt.Printf("%s  %s -> %s  %.1f mi  $%.2f  saved=%s\n",
					r.ID, r.Origin, r.Destination, r.DistanceMiles, r.TotalCost,
					r.SavedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete one saved route by id",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Saved route id (uuid)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			id, err := uuid.Parse(c.String("id"))
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", c.String("id"), err)
			}

			conn, err := openFromFlags(c)
			if err != nil {
				return err
			}
			defer conn.Close()

			repo := repositories.NewSQLTripRepository(conn)
			if err := repo.Delete(c.Context, id); err != nil {
				return err
			}
			log.Printf("Deleted route id=%s", id)
			return nil
		},
	}
}

func openFromFlags(c *cli.Context) (*sql.DB, error) {
	databaseURL := c.String("database-url")
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	return db.Open(databaseURL)
}
