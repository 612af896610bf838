package converter

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	onepuxdomain "github.com/sleroq/onepux-to-csv/internal/domain/onepux"
	"github.com/sleroq/onepux-to-csv/internal/infra/csvout"
	"github.com/sleroq/onepux-to-csv/internal/infra/onepuxzip"
	"github.com/sleroq/onepux-to-csv/internal/logger"
)

type Converter struct {
	InputPath string
	// OutputPath defaults to InputPath with its extension replaced by .csv.
	OutputPath      string
	IncludeArchived bool
	// Workers bounds parallel row building; values below 1 mean one worker.
	Workers int
	// Progress receives the progress bar; nil disables it.
	Progress io.Writer
	Logger   *logger.Logger
}

type Stats struct {
	Accounts int
	Vaults   int
	Items    int
	Rows     int
	Archived int
	Output   string
}

func DefaultOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
}

// Run converts the input archive and writes the CSV. Nothing is written
// unless the whole export was read and converted.
func (c Converter) Run(ctx context.Context) (Stats, error) {
	if strings.TrimSpace(c.InputPath) == "" {
		return Stats{}, fmt.Errorf("input path is required")
	}
	output := c.OutputPath
	if output == "" {
		output = DefaultOutputPath(c.InputPath)
	}
	log := c.logger()

	export, err := onepuxzip.ReadExport(c.InputPath)
	if err != nil {
		return Stats{}, err
	}

	rows, stats, err := c.Convert(ctx, export)
	if err != nil {
		return Stats{}, err
	}

	if err := csvout.WriteFile(output, rows); err != nil {
		return Stats{}, err
	}
	stats.Output = output
	log.Info().Int("rows", stats.Rows).Str("output", output).Msg("csv written")
	return stats, nil
}

// Convert builds one row per included item. Rows come back in export
// traversal order regardless of how many workers built them.
func (c Converter) Convert(ctx context.Context, export onepuxdomain.Export) ([]onepuxdomain.Row, Stats, error) {
	log := c.logger()
	stats := Stats{
		Accounts: len(export.Accounts),
		Vaults:   export.VaultCount(),
	}

	items := make([]onepuxdomain.Item, 0, export.ItemCount())
	included := 0
	export.Walk(func(ref onepuxdomain.ItemRef, account onepuxdomain.Account, vault onepuxdomain.Vault, it onepuxdomain.Item) {
		if ref.Item == 0 {
			included = 0
		}
		stats.Items++
		if onepuxdomain.Include(it, c.IncludeArchived) {
			items = append(items, it)
			included++
		} else {
			stats.Archived++
			log.Debug().Str("item", it.UUID).Str("title", it.Overview.Title).Msg("archived item skipped")
		}
		if ref.Item == len(vault.Items)-1 {
			log.Debug().
				Str("account", account.Attrs.AccountName).
				Str("email", account.Attrs.Email).
				Str("vault", vault.Attrs.Name).
				Str("vault_uuid", vault.Attrs.UUID).
				Int("items", len(vault.Items)).
				Int("included", included).
				Msg("vault scanned")
		}
	})
	if stats.Archived > 0 {
		log.Info().Int("archived", stats.Archived).Msg("skipped archived items")
	}

	bar := newItemProgress(c.Progress, len(items))

	rows := make([]onepuxdomain.Row, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))
	for i, it := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = onepuxdomain.BuildRow(it)
			bar.itemDone()
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		bar.abort()
		return nil, Stats{}, fmt.Errorf("convert items: %w", err)
	}
	bar.finish()

	stats.Rows = len(rows)
	return rows, stats, nil
}

func (c Converter) logger() *logger.Logger {
	if c.Logger == nil {
		return logger.Nop()
	}
	return c.Logger
}
