package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/rpupo63/portfolio-showcase/catalog"
	"github.com/rpupo63/portfolio-showcase/config"
	"github.com/rpupo63/portfolio-showcase/database"
	"github.com/rpupo63/portfolio-showcase/errs"
	"github.com/rpupo63/portfolio-showcase/linkify"
)

type loadedCatalog struct {
	Catalog *catalog.Catalog
	Site    catalog.Site
	closers []func() error
}

func (l loadedCatalog) Close() {
	for _, c := range l.closers {
		if err := c(); err != nil {
			log.Warn().Err(err).Msg("error releasing catalog source")
		}
	}
}

// loadCatalog reads the catalog once from the configured source. Nothing is
// written back.
func loadCatalog(ctx context.Context, settings config.Settings) (loadedCatalog, error) {
	var (
		loaded loadedCatalog
		src    catalog.Source
	)

	switch settings.CatalogSource {
	case config.CatalogFile:
		src = catalog.FileSource{Path: settings.CatalogPath}
	case config.CatalogPostgres:
		db, err := database.Open(ctx, database.Options{
			DSN:        settings.DatabaseDSN,
			ReplicaDSN: settings.DatabaseReplicaDSN,
		})
		if err != nil {
			return loadedCatalog{}, err
		}
		loaded.closers = append(loaded.closers, func() error { return database.Close(db) })
		src = database.NewCatalogSource(database.New(db).ProjectRepo())
	default:
		src = catalog.EmbeddedSource{}
	}

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		loaded.Close()
		if errs.IsDatabaseConnectionError(err) {
			log.Error().Msg("catalog database unreachable, check DATABASE_DSN or use CATALOG_SOURCE=embedded")
		}
		return loadedCatalog{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	site, err := catalog.LoadSite(settings.SitePath)
	if err != nil {
		loaded.Close()
		return loadedCatalog{}, fmt.Errorf("failed to load site profile: %w", err)
	}

	loaded.Catalog = cat
	loaded.Site = site
	log.Info().Int("projects", cat.Len()).Strs("ids", cat.IDs()).Str("owner", site.Owner).Msg("catalog loaded")
	return loaded, nil
}

func checkCatalog(ctx context.Context, cmd *cli.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	loaded, err := loadCatalog(ctx, settings)
	if err != nil {
		return err
	}
	defer loaded.Close()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tIMAGES\tTAGS\tLINKS")
	for _, p := range loaded.Catalog.All() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", p.ID, p.Title, p.ImageCount(), len(p.Tags), len(linkify.Links(p.Body())))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d projects OK for %s\n", loaded.Catalog.Len(), loaded.Site.Owner)
	return nil
}
