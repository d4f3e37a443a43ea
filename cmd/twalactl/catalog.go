package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"twala_backend/internal/app/di"
	assetadapters "twala_backend/internal/feature/assets/adapters"
	"twala_backend/internal/feature/assets/domain/entity"
	"twala_backend/internal/feature/assets/transport/http/dto"
	"twala_backend/internal/feature/assets/usecase"
	platformdb "twala_backend/internal/platform/db"
)

func newCatalogCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Short:   "Inspect and seed the asset catalog",
		GroupID: "data",
	}
	cmd.AddCommand(newCatalogListCmd(c), newCatalogSearchCmd(c), newCatalogSeedCmd(c))
	return cmd
}

func newCatalogListCmd(c *cli) *cobra.Command {
	var sector string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the embedded catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := staticUsecase()
			if err != nil {
				return err
			}
			var assets []entity.Asset
			if sector != "" {
				assets, err = uc.BySector(cmd.Context(), sector)
			} else {
				assets, err = uc.Search(cmd.Context(), "")
			}
			if err != nil {
				return err
			}
			return printAssets(cmd.OutOrStdout(), assets, c.jsonOutput)
		},
	}
	cmd.Flags().StringVar(&sector, "sector", "", "only assets of this sector")
	return cmd
}

func newCatalogSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the embedded catalog by ticker, name or sector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := staticUsecase()
			if err != nil {
				return err
			}
			assets, err := uc.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printAssets(cmd.OutOrStdout(), assets, c.jsonOutput)
		},
	}
}

func newCatalogSeedCmd(c *cli) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert the embedded catalog into the assets table",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := platformdb.Open(di.DBConfig(c.cfg))
			if err != nil {
				return err
			}
			if migrate || c.cfg.RunMigrations {
				if err := platformdb.Migrate(db); err != nil {
					return err
				}
			}
			n, err := seedCatalog(cmd.Context(), assetadapters.NewAssetRepository(db))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d assets\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations first")
	return cmd
}

// assetUpserter is the write side of the table-backed catalog.
type assetUpserter interface {
	Upsert(ctx context.Context, assets []entity.Asset) error
}

func seedCatalog(ctx context.Context, dst assetUpserter) (int, error) {
	catalog, err := assetadapters.NewStaticCatalog()
	if err != nil {
		return 0, err
	}
	assets, err := catalog.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := dst.Upsert(ctx, assets); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(assets), nil
}

func staticUsecase() (*usecase.AssetUsecase, error) {
	catalog, err := assetadapters.NewStaticCatalog()
	if err != nil {
		return nil, err
	}
	return usecase.NewAssetUsecase(catalog), nil
}

func printAssets(w io.Writer, assets []entity.Asset, asJSON bool) error {
	items := dto.FromEntities(assets)
	if asJSON {
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICKER\tNAME\tSECTOR\tPRICE\tCHANGE%")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", a.Ticker, a.Name, a.Sector, a.PriceDisplay, a.ChangePercent.StringFixed(2))
	}
	return tw.Flush()
}
