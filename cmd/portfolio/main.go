package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/jatinnirwann/portfolio/internal/adapter/driven/filestore"
	githubadapter "github.com/jatinnirwann/portfolio/internal/adapter/driven/github"
	smtpadapter "github.com/jatinnirwann/portfolio/internal/adapter/driven/smtp"
	httphandler "github.com/jatinnirwann/portfolio/internal/adapter/driving/http"
	webhandler "github.com/jatinnirwann/portfolio/internal/adapter/driving/web"
	"github.com/jatinnirwann/portfolio/internal/application"
	"github.com/jatinnirwann/portfolio/internal/config"
	"github.com/jatinnirwann/portfolio/internal/domain/port/driven"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	root := newRootCommand(version, func(token string) driven.GitHubClient {
		return githubadapter.NewClient(token)
	})
	if err := root.Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// app holds the wired application for one command invocation.
type app struct {
	cfg        *config.Config
	ghClient   driven.GitHubClient
	exclusions *filestore.ExclusionList
	repoSvc    *application.RepoService
	contactSvc *application.ContactService
}

// newApp wires driven adapters into the application services.
func newApp(cfg *config.Config, ghClient driven.GitHubClient) *app {
	cache := filestore.NewRepoCache(cfg.CacheFile)
	exclusions := filestore.NewExclusionList(cfg.ExclusionFile)

	classifier := application.NewStatusClassifier(ghClient)
	aggregator := application.NewAggregator(ghClient, exclusions, classifier)
	repoSvc := application.NewRepoService(cache, exclusions, aggregator, cfg.GitHubUsername)

	// A nil Mailer puts the contact relay in log-only mode.
	var mailer driven.Mailer
	if cfg.HasMailCredentials() {
		mailer = smtpadapter.NewMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
		slog.Info("smtp mailer configured", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
	} else {
		slog.Warn("smtp credentials not set, contact messages will be logged", "path", cfg.MessageLogFile)
	}
	contactSvc := application.NewContactService(mailer, filestore.NewMessageLog(cfg.MessageLogFile), cfg.SMTP.Recipient, cfg.OwnerName)

	return &app{
		cfg:        cfg,
		ghClient:   ghClient,
		exclusions: exclusions,
		repoSvc:    repoSvc,
		contactSvc: contactSvc,
	}
}

// newRootCommand builds the CLI. newGitHubClient is called once per command
// that talks to GitHub.
func newRootCommand(version string, newGitHubClient func(token string) driven.GitHubClient) *cobra.Command {
	var a *app

	setup := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		slog.SetDefault(cfg.NewLogger(cmd.ErrOrStderr()))
		a = newApp(cfg, newGitHubClient(cfg.GitHubToken))
		return nil
	}

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the portfolio HTTP server",
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}

	refreshCmd := &cobra.Command{
		Use:     "refresh",
		Short:   "Re-aggregate repositories from GitHub and overwrite the cache",
		PreRunE: setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, err := a.repoSvc.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %d repositories into %s\n", len(repos), a.cfg.CacheFile)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the current version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s\n", version)
			return nil
		},
	}

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio backend: GitHub project listing and contact relay",
		// Running without a subcommand serves.
		PreRunE: serveCmd.PreRunE,
		RunE:    serveCmd.RunE,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(serveCmd, refreshCmd, versionCmd)
	return rootCmd
}

// serve runs the HTTP server until ctx is cancelled, then drains it.
func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"github_username", cfg.GitHubUsername,
		"cache_file", cfg.CacheFile,
		"static_dir", cfg.StaticDir,
		"github_token_set", cfg.GitHubToken != "",
	)
	a.logStartupState(ctx)

	apiHandler := httphandler.NewHandler(a.repoSvc, a.contactSvc, slog.Default())
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	webHandler := webhandler.NewHandler(a.repoSvc, a.ghClient, cfg.StaticDir, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// A cold listing classifies every repository sequentially.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// logStartupState reports whether a cache file exists and which repositories
// are excluded.
func (a *app) logStartupState(ctx context.Context) {
	if _, err := os.Stat(a.cfg.CacheFile); err != nil {
		slog.Info("cache file not found, will fetch from github on first request", "path", a.cfg.CacheFile)
	} else {
		slog.Info("cache file found, will use cached repositories", "path", a.cfg.CacheFile)
	}

	excluded := a.exclusions.Load(ctx)
	if len(excluded) == 0 {
		slog.Info("no repositories will be excluded")
		return
	}
	names := make([]string, 0, len(excluded))
	for name := range excluded {
		names = append(names, name)
	}
	slices.Sort(names)
	slog.Info("excluding repositories", "count", len(names), "names", names)
}
