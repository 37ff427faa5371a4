// sessionctl is a demo client for sessionkit: it signs in against a
// configured login endpoint, inspects the current session, and signs out.
// The token is kept in Redis so a session survives between invocations for
// as long as the store TTL allows.
//
// Configuration comes from the environment (or a .env file):
//
//	AUTH_LOGIN_URL       login endpoint (required)
//	SESSION_STORAGE_KEY  storage entry name (default: session-jwt)
//	REDIS_URL            redis connection string
//
// Usage:
//
//	sessionctl login -u jane -p s3cret
//	sessionctl whoami
//	sessionctl logout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/authclient"
	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/jwt"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
)

func main() {
	log := logger.New(logger.WithDevelopment("sessionctl"), logger.WithOutput(os.Stderr))

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: sessionctl <login|whoami|logout> [flags]")
		os.Exit(2)
	}

	ctx := context.Background()

	if err := run(ctx, log, os.Args[1], os.Args[2:]); err != nil {
		log.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, command string, args []string) error {
	var storeCfg sessionstore.RedisConfig
	if err := config.Load(&storeCfg); err != nil {
		return err
	}

	var sessionCfg session.Config
	if err := config.Load(&sessionCfg); err != nil {
		return err
	}

	store, err := sessionstore.NewRedisStoreFromConfig(ctx, storeCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch command {
	case "login":
		return login(ctx, log, sessionCfg, store, args)
	case "whoami":
		return whoami(ctx, log, sessionCfg, store)
	case "logout":
		return logout(ctx, log, sessionCfg, store)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func login(ctx context.Context, log *slog.Logger, cfg session.Config, store sessionstore.Store, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var authCfg authclient.Config
	if err := config.Load(&authCfg); err != nil {
		return err
	}

	client, err := authclient.NewFromConfig(authCfg)
	if err != nil {
		return err
	}

	mgr := session.NewFromConfig(cfg,
		session.WithStore(store),
		session.WithTransport(client),
	)

	claims, err := mgr.Create(ctx, authclient.Credentials{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	attrs := []any{subjectAttr(claims)}
	if exp, ok := claims.ExpiresAt(); ok {
		attrs = append(attrs, slog.Time("expires_at", exp))
	}
	log.Info("signed in", attrs...)
	return nil
}

func whoami(ctx context.Context, log *slog.Logger, cfg session.Config, store sessionstore.Store) error {
	mgr := session.NewFromConfig(cfg, session.WithStore(store))

	claims, err := mgr.Load(ctx)
	switch {
	case errors.Is(err, session.ErrNoTokenFound):
		fmt.Println("no active session")
		return nil
	case errors.Is(err, session.ErrInvalidToken):
		fmt.Println("session token is invalid or expired; run `sessionctl logout` to discard it")
		return nil
	case err != nil:
		return err
	}

	log.Debug("session loaded", slog.Int("claims", len(claims)))

	if sub, ok := claims.Subject(); ok {
		fmt.Printf("signed in as %s\n", sub)
	} else {
		fmt.Println("signed in (token carries no sub claim)")
	}
	if exp, ok := claims.ExpiresAt(); ok {
		fmt.Printf("session expires %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

func logout(ctx context.Context, log *slog.Logger, cfg session.Config, store sessionstore.Store) error {
	mgr := session.NewFromConfig(cfg, session.WithStore(store))

	if err := mgr.Destroy(ctx); err != nil {
		return err
	}

	log.Info("signed out")
	return nil
}

func subjectAttr(claims jwt.Claims) slog.Attr {
	sub, _ := claims.Subject()
	return slog.String("sub", sub)
}
