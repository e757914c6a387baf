package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/finvoice/backend/internal/infrastructure/config"
	"github.com/finvoice/backend/internal/infrastructure/logger"
	"github.com/finvoice/backend/internal/infrastructure/migration"
)

const usage = `Usage: migrate <command> [arguments]

Commands:
  up                  Apply all pending migrations
  down                Roll back all migrations
  steps <n>           Apply n migrations (negative = roll back)
  goto <version>      Migrate to a specific version
  version             Print the current migration version
  force <version>     Set the version without running migrations
  create <name>       Create a new migration file pair
  list                List available migrations
`

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "migrations", "migrations directory")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(args, migrationsDir, cfg, log); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
}

func run(args []string, migrationsDir string, cfg *config.Config, log *zap.Logger) error {
	command := args[0]

	// create and list work without a database connection
	switch command {
	case "create":
		if len(args) < 2 {
			return fmt.Errorf("create requires a migration name")
		}
		mf, err := migration.CreateMigration(migrationsDir, args[1], args[1])
		if err != nil {
			return err
		}
		log.Info("migration files created",
			zap.String("up", mf.UpPath),
			zap.String("down", mf.DownPath))
		return nil
	case "list":
		migrations, err := migration.ListMigrations(migrationsDir)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			fmt.Println(m)
		}
		return nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	migrator, err := migration.New(db, migrationsDir, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warn("migrator close failed", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "steps":
		if len(args) < 2 {
			return fmt.Errorf("steps requires a count")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid step count %q", args[1])
		}
		return migrator.Steps(n)
	case "goto":
		if len(args) < 2 {
			return fmt.Errorf("goto requires a version")
		}
		v, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return migrator.GoTo(uint(v))
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version: %d dirty: %v\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return fmt.Errorf("force requires a version")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[1])
		}
		return migrator.Force(v)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
