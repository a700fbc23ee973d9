package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/theplant/customquery/catalog"
)

func newFieldsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields [id...]",
		Short: "Show the resolved metadata of custom fields",
		Long: `Loads custom fields the way a search does and prints their column, host
table and number of cached options. Without ids every field of a YAML
catalog is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return runFields(cmd.Context(), cmd.OutOrStdout(), cfg, ids)
		},
	}
	return cmd
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		var id int64
		if _, err := fmt.Sscan(arg, &id); err != nil {
			return nil, errors.Errorf("invalid field id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runFields(ctx context.Context, out io.Writer, cfg *Config, ids []int64) error {
	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	env, err := openEnv(cfg, logger)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		static, ok := env.source.(*catalog.Static)
		if !ok {
			return errors.New("field ids are required when reading from the database")
		}
		ids = lo.Map(static.FieldRows, func(r *catalog.FieldRow, _ int) int64 { return r.ID })
	}

	cat, err := catalog.Load(ctx, env.source, ids)
	if err != nil {
		return err
	}

	p := newPrinter(out)
	p.heading.Fprintf(out, "%s of %s fields\n", humanize.Comma(int64(cat.Len())), humanize.Comma(int64(len(lo.Uniq(ids)))))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tTYPE\tHTML\tCOLUMN\tHOST\tOPTIONS")
	for _, id := range cat.IDs() {
		spec, _ := cat.Field(id)
		host := spec.Extends
		if host == "" {
			host = "-"
		}
		options := "-"
		if o := cat.Options(id); o != nil && len(o.Values) > 0 {
			options = humanize.Comma(int64(len(o.Values)))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			spec.ID, spec.Label, spec.DataType, spec.HTMLType, spec.Column(), host, options)
	}
	return errors.Wrap(tw.Flush(), "write fields")
}
