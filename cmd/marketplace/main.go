package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Abdurahmanit/marketplace-cli/internal/adapter/cli"
	"github.com/Abdurahmanit/marketplace-cli/internal/adapter/repository/memory"
	"github.com/Abdurahmanit/marketplace-cli/internal/config"
	"github.com/Abdurahmanit/marketplace-cli/internal/marketplace/usecase"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/logger"
	"github.com/Abdurahmanit/marketplace-cli/internal/platform/metrics"
)

const serviceName = "marketplace"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marketplace",
		Short: "Command-driven marketplace ledger",
		Long: "Reads line-oriented marketplace commands from stdin and prints one result line per command.\n" +
			"Commands: REGISTER, CREATE_LISTING, GET_LISTING, DELETE_LISTING, GET_CATEGORY, GET_TOP_CATEGORY.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	appLogger := logger.New(logger.DefaultConfig())
	defer appLogger.Sync() //nolint:errcheck // stderr sync failure is harmless at exit

	appLogger.Info("Application starting", zap.String("service_name", serviceName))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Failed to load configuration", zap.Error(err))
		return err
	}
	appLogger.Info("Configuration loaded",
		zap.Int64("listing_id_start", cfg.ListingIDStart),
		zap.Bool("metrics_enabled", cfg.MetricsPort != ""))

	metricsManager := metrics.NewManager(serviceName)
	metricsManager.StartServer(cfg.MetricsPort, appLogger)

	// One store backs all three repository interfaces for the process lifetime.
	store := memory.NewStore(cfg.ListingIDStart)

	userUC := usecase.NewUserUsecase(store, appLogger)
	listingUC := usecase.NewListingUsecase(store, store, store, appLogger)
	categoryUC := usecase.NewCategoryUsecase(store, store, appLogger)

	handler := cli.NewHandler(userUC, listingUC, categoryUC, appLogger)
	dispatcher := cli.NewDispatcher(handler, appLogger, metricsManager)

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	repl := cli.NewREPL(cli.NewParser(), dispatcher, appLogger, cfg.Prompt, interactive, os.Stdin, os.Stdout)

	if err := repl.Run(ctx); err != nil {
		return err
	}
	appLogger.Info("Application stopped")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
