// Command viewer prints a room's persisted history as a table.
// It reads the same environment as the server and opens Badger in
// read-only mode, so it can run next to a live process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"framed-chat/domain"
	"framed-chat/repositories"
)

type Config struct {
	PGHost         string `env:"PGHOST"`
	PGUser         string `env:"PGUSER"`
	PGPassword     string `env:"PGPASSWORD"`
	PGDatabase     string `env:"PGDATABASE"`
	PGPort         int    `env:"PGPORT,default=5432"`
	BadgerFilepath string `env:"BADGER_FILEPATH,default=./data/chat"`
}

func main() {
	room := flag.String("room", "", "room identifier to inspect")
	flag.Parse()
	if *room == "" {
		log.Fatal("missing -room flag")
	}

	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	store, cleanup, err := openStore(logger, config)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer cleanup()

	messages, err := store.History(context.Background(), *room)
	if err != nil {
		log.Fatalf("Failed to fetch history: %v", err)
	}
	if len(messages) == 0 {
		fmt.Printf("No messages for room %q\n", *room)
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Role", "Player", "Content"})
	table.SetAutoWrapText(false)
	for _, m := range messages {
		table.Append([]string{
			m.At.Format("2006-01-02 15:04:05"),
			colorRole(m.Role),
			m.ParticipantID,
			m.Content,
		})
	}
	table.Render()
}

func colorRole(role domain.Role) string {
	switch role {
	case domain.RoleAssistant:
		return color.Cyan.Sprint(role)
	case domain.RoleSystem:
		return color.Yellow.Sprint(role)
	default:
		return color.Green.Sprint(role)
	}
}

func openStore(logger *slog.Logger, config Config) (repositories.IMessageStore, func(), error) {
	if config.PGHost != "" {
		store, err := repositories.NewPostgresStore(logger, repositories.PostgresParams{
			Host:     config.PGHost,
			User:     config.PGUser,
			Password: config.PGPassword,
			Database: config.PGDatabase,
			Port:     config.PGPort,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}

	// BypassLockGuard allows opening while the server holds the lock.
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewBadgerStore(db, logger), func() { _ = db.Close() }, nil
}
