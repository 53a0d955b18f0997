package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontolabel/export"
)

func exportCmd(configPath, logLevel *string) *cobra.Command {
	var format string
	var labelsOnly bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export catalog triples as RDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			catalog, _, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			triples := catalog.Triples()
			if labelsOnly {
				triples = export.LabelTriples(triples)
			}

			out, err := export.Export(triples, export.Format(format))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatNTriples), "Output format (turtle, ntriples)")
	cmd.Flags().BoolVar(&labelsOnly, "labels-only", false, "Export only label-predicate triples")
	return cmd
}
