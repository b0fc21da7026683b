// Command budget-compass is the terminal client for the Budget Compass
// backend.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/ami-friedman/budget-compass/internal/api"
	"github.com/ami-friedman/budget-compass/internal/auth"
	"github.com/ami-friedman/budget-compass/internal/config"
	"github.com/ami-friedman/budget-compass/internal/metrics"
	"github.com/ami-friedman/budget-compass/internal/store"
	"github.com/ami-friedman/budget-compass/internal/tui"
	"github.com/ami-friedman/budget-compass/pkg/logging"
)

func main() {
	var (
		apiURL      = pflag.String("api-url", "", "backend base URL (overrides API_URL)")
		verifyToken = pflag.String("token", "", "one-time login token from the magic-link email")
		logout      = pflag.Bool("logout", false, "clear the stored session token and exit")
		logLevel    = pflag.String("log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
		metricsAddr = pflag.String("metrics-addr", "", "serve Prometheus metrics on this address (overrides METRICS_ADDR)")
		envFile     = pflag.String("env-file", "", "load environment from this file before reading config")
	)
	pflag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fmt.Fprintf(os.Stderr, "load env file: %v\n", err)
			os.Exit(1)
		}
	} else {
		godotenv.Load() // best-effort .env
	}

	cfg := config.Load()
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	if err := run(cfg, *verifyToken, *logout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, verifyToken string, logout bool) error {
	tokens, err := auth.NewTokenFile(cfg.TokenFile)
	if err != nil {
		return err
	}
	if logout {
		tokens.Clear()
		fmt.Println("Logged out.")
		return nil
	}

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr)
	}

	client := api.New(cfg.APIURL,
		api.WithHTTPClient(metrics.InstrumentedClient(&http.Client{Timeout: cfg.HTTPTimeout})),
	)

	session := auth.NewSession(client, tokens)
	client.SetTokenSource(session)

	budgets := store.NewBudgetStore(client)
	categories := store.NewCategoryStore(client)
	items := store.NewBudgetItemStore(client)
	transactions := store.NewTransactionStore(client, store.Funded(items))
	views := &store.Views{
		Budgets:      budgets,
		Categories:   categories,
		Items:        items,
		Transactions: transactions,
	}

	// Revalidate any persisted token before the UI decides which screen to
	// open on. Failure just lands on the login screen.
	if verifyToken == "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
		session.Resume(ctx)
		cancel()
	}

	app := tui.New(tui.Stores{
		Budgets:      budgets,
		Categories:   categories,
		Items:        items,
		Transactions: transactions,
		Views:        views,
		Session:      session,
	}, verifyToken)

	_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
	return err
}
