package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/theplant/customquery"
	"github.com/theplant/customquery/filter"
	"github.com/theplant/customquery/gormcustom"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print the SQL fragments of a custom field search",
		Long: `Reads a JSON filter document and prints the select list, the joins, the
where clause and the description of each OR-ed grouping.

  customquery build --catalog catalog.yaml --filter search.json
  echo '{"custom_42": {"eq": "Bob"}}' | customquery build --dsn ... --filter -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP("filter", "f", "", `JSON filter document, "-" reads stdin`)
	flags.IntSlice("fields", nil, "custom field ids selected without filtering")
	flags.Bool("contact-search", false, "report the custom fields pane as open")
	flags.StringSlice("location", nil, "scope an address field, <field id>=<type>:<type id>")
	flags.String("host-table", "civicrm_contact", "table the host alias stands for")
	flags.String("host-alias", customquery.DefaultHostAlias, "alias of the contact table")
	flags.String("limits", "default", "complexity limits, default, strict, relaxed or none")
	flags.Bool("sql", false, "also print the complete statement")
	return cmd
}

func runBuild(ctx context.Context, in io.Reader, out io.Writer, cfg *Config) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	limits, err := cfg.complexityLimits()
	if err != nil {
		return err
	}
	locations, err := cfg.locations()
	if err != nil {
		return err
	}

	terms, err := readTerms(in, cfg, limits)
	if err != nil {
		return err
	}
	logger.Debug("parsed filter", zap.Int("terms", len(terms)), zap.Int64s("fields", lo.Map(terms, func(t customquery.Term, _ int) int64 {
		return t.FieldID
	})))

	env, err := openEnv(cfg, logger)
	if err != nil {
		return err
	}

	b, err := customquery.Load(ctx, env.source, terms,
		customquery.WithDialect(env.dialect),
		customquery.WithContactSearch(cfg.ContactSearch),
		customquery.WithLocations(locations),
		customquery.WithHostAlias(cfg.HostAlias),
		customquery.WithComplexityLimits(limits),
	)
	if err != nil {
		return err
	}
	logger.Debug("loaded catalog", zap.Int("fields", b.Catalog().Len()))

	res, err := b.Query(ctx)
	if err != nil {
		return err
	}

	p := newPrinter(out)
	p.section("SELECT", res.SelectList())
	p.section("FROM", res.From())
	p.section("WHERE", res.Where)
	for _, g := range res.Groupings() {
		p.list(fmt.Sprintf("GROUPING %d", g), res.Qill[g])
	}
	if len(res.Report.OpenPanes) > 0 {
		p.list("PANES", res.Report.OpenPanes)
	}

	if cfg.SQL {
		host := cfg.HostTable + " AS " + cfg.HostAlias
		sql := env.db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			return tx.Table(host).Scopes(gormcustom.Scope(res)).Find(&[]map[string]any{})
		})
		p.section("STATEMENT", sql)
	}
	return nil
}

func readTerms(in io.Reader, cfg *Config, limits *customquery.ComplexityLimits) ([]customquery.Term, error) {
	var data []byte
	switch cfg.Filter {
	case "":
	case "-":
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, errors.Wrap(err, "read filter from stdin")
		}
		data = b
	default:
		b, err := os.ReadFile(cfg.Filter)
		if err != nil {
			return nil, errors.Wrapf(err, "read filter %s", cfg.Filter)
		}
		data = b
	}

	terms, err := filter.Parse(data, filter.WithComplexityLimits(limits))
	if err != nil {
		return nil, errors.Wrap(err, "parse filter")
	}
	fields := lo.Map(cfg.Fields, func(id int64, _ int) customquery.Term {
		return customquery.Term{FieldID: id}
	})
	return append(fields, terms...), nil
}
