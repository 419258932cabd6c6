package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kiwari-pos/barista/internal/auth"
	"github.com/kiwari-pos/barista/internal/config"
	"github.com/kiwari-pos/barista/internal/enum"
	"github.com/kiwari-pos/barista/internal/logging"
)

func main() {
	cfg, err := config.Load()
	logger := logging.NewWithWriter(os.Stderr, "console", "info")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	if err := run(os.Args[1:], cfg.JWTSecret, os.Getenv, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("issue token")
	}
}

// run parses flags, falls back to TOKEN_* environment variables and writes
// a signed terminal token to out.
func run(args []string, secret string, getenv func(string) string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	terminal := fs.String("terminal", "", "Terminal UUID (random when empty)")
	board := fs.String("board", "", "Price board the terminal publishes to")
	role := fs.String("role", "", "TERMINAL or MANAGER")
	ttl := fs.Duration("ttl", 0, "Token lifetime (default 12h)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Fall back to environment variables
	if *terminal == "" {
		*terminal = getenv("TOKEN_TERMINAL_ID")
	}
	if *board == "" {
		*board = getenv("TOKEN_BOARD")
	}
	if *role == "" {
		*role = getenv("TOKEN_ROLE")
	}
	if *ttl == 0 {
		if v := getenv("TOKEN_TTL"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("parse TOKEN_TTL: %w", err)
			}
			*ttl = d
		}
	}

	// Fall back to defaults
	if *role == "" {
		*role = enum.RoleTerminal
	}
	if *ttl == 0 {
		*ttl = auth.DefaultTTL
	}

	if *role != enum.RoleTerminal && *role != enum.RoleManager {
		return fmt.Errorf("unknown role %q", *role)
	}
	if secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if *board == "" && *role == enum.RoleTerminal {
		return fmt.Errorf("-board is required for %s tokens", enum.RoleTerminal)
	}

	terminalID := uuid.New()
	if *terminal != "" {
		id, err := uuid.Parse(*terminal)
		if err != nil {
			return fmt.Errorf("parse terminal id: %w", err)
		}
		terminalID = id
	}

	token, err := auth.GenerateToken(secret, terminalID, *board, *role, *ttl)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
