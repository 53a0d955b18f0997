package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontolabel/config"
	"github.com/c360studio/ontolabel/label"
	labelapi "github.com/c360studio/ontolabel/processor/label-api"
	"github.com/c360studio/ontolabel/override"
)

// loadCatalog builds the catalog and override store from configuration.
func loadCatalog(cfg *config.Config) (*labelapi.Catalog, *override.Store, error) {
	catalog := labelapi.NewCatalog()
	if cfg.Catalog.TriplesPath != "" {
		if err := catalog.LoadTriplesFile(cfg.Catalog.TriplesPath); err != nil {
			return nil, nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	var overrides *override.Store
	if cfg.Labels.OverridesPath != "" {
		var err error
		overrides, err = override.NewStore(cfg.Labels.OverridesPath, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("load overrides: %w", err)
		}
	}
	return catalog, overrides, nil
}

func resolveCmd(configPath, logLevel *string) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "resolve IRI",
		Short: "Resolve the display label for an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}

			catalog, overrides, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			iri := args[0]
			entity, ok := catalog.Entity(iri)
			if !ok {
				entity = label.Entity{ID: iri}
			}
			if overrides != nil {
				entity = overrides.Apply(entity)
			}

			if lang == "" {
				lang = cfg.Labels.DefaultLanguage
			}
			display, tier := label.ResolveTier(entity, lang)
			fmt.Printf("%s\t(%s)\n", display, tier)
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Preferred language code (default: configured language)")
	return cmd
}

func languagesCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List languages available in the catalog",
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

			codes := label.AvailableLanguages(catalog.Entities())
			if len(codes) == 0 {
				fmt.Println("No tagged labels in catalog")
				return nil
			}
			for _, code := range codes {
				fmt.Printf("%s\t%s\n", code, label.DisplayName(code))
			}
			return nil
		},
	}
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format TOKEN...",
		Short: "Format machine tokens as display strings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, token := range args {
				fmt.Println(label.FormatFallback(token))
			}
			return nil
		},
	}
}
