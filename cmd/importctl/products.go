package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	catalogapp "github.com/mohammadpnp/creations-admin/internal/application/catalog"
	"github.com/mohammadpnp/creations-admin/internal/domain/account"
	"github.com/mohammadpnp/creations-admin/internal/domain/catalog"
	"github.com/mohammadpnp/creations-admin/internal/infrastructure/file"
	"github.com/spf13/cobra"
)

var errImportFailed = errors.New("import did not store any products")

type productsOptions struct {
	file    string
	baseDir string
}

func newProductsCmd(connect connectFunc) *cobra.Command {
	var opts productsOptions

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Import products from a CSV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			env, closeEnv, err := connect(ctx)
			if err != nil {
				return err
			}
			defer closeEnv()

			source := file.NewLocalSource(opts.baseDir, env.maxFileBytes)
			data, err := source.ReadAll(ctx, opts.file)
			if err != nil {
				return err
			}

			summary, importErr := env.importer.Execute(ctx, account.System(), catalogapp.ImportProductsFromCSVInput{
				Filename: filepath.Base(opts.file),
				Data:     data,
			})
			if summary.Outcome != "" {
				if err := printSummary(cmd, summary); err != nil {
					return err
				}
			}
			if importErr != nil {
				return importErr
			}
			if !summary.Succeeded() {
				return errImportFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "CSV file to import (required)")
	cmd.Flags().StringVar(&opts.baseDir, "base-dir", ".", "Directory relative --file paths are resolved against")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func printSummary(cmd *cobra.Command, summary catalog.ImportSummary) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
