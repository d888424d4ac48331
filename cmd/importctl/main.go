package main

import (
	"context"
	"fmt"
	"os"

	catalogapp "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	"github.com/mohammadpnp/creations-admin/internal/bootstrap"
	"github.com/mohammadpnp/creations-admin/internal/config"
	"github.com/mohammadpnp/creations-admin/internal/logging"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(connect).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(connect connectFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "importctl",
		Short:         "Operator tooling for catalog imports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newProductsCmd(connect))
	return root
}

// connect wires the import pipeline to the configured database and revalidator.
func connect(ctx context.Context) (importEnv, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return importEnv{}, func() {}, err
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return importEnv{}, func() {}, err
	}

	pool, err := bootstrap.OpenPool(ctx, cfg)
	if err != nil {
		_ = logger.Sync()
		return importEnv{}, func() {}, err
	}

	revalidator, closeRevalidator, err := bootstrap.NewRevalidator(ctx, cfg, logger)
	if err != nil {
		pool.Close()
		_ = logger.Sync()
		return importEnv{}, func() {}, err
	}

	env := importEnv{
		importer:     bootstrap.NewProductImporter(cfg, pool, revalidator, logger),
		maxFileBytes: cfg.ImportMaxFileBytes,
	}
	return env, func() {
		closeRevalidator()
		pool.Close()
		_ = logger.Sync()
	}, nil
}

type importEnv struct {
	importer     catalogapp.ImportProductsFromCSV
	maxFileBytes int64
}

type connectFunc func(ctx context.Context) (importEnv, func(), error)
