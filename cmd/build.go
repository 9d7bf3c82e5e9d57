package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grit-analytics/opportunity-map/internal/artifact"
	"github.com/grit-analytics/opportunity-map/internal/catalog"
	"github.com/grit-analytics/opportunity-map/internal/pipeline"
	"github.com/grit-analytics/opportunity-map/internal/source"
)

var (
	buildProfile   string
	buildShapefile string
	buildOut       string
	buildCounty    string
	buildTitle     string
	buildOverrides string
	buildDryRun    bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the interactive opportunity map artifact",
	Long:  "Reads the opportunity profile and tract boundaries, computes thresholds, resolves districts, and writes a self-contained HTML map.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("component", "build"))

		profilePath := firstNonEmpty(buildProfile, cfg.Profile.Path)
		shapefilePath := firstNonEmpty(buildShapefile, cfg.Shapefile.Path)
		if profilePath == "" || shapefilePath == "" {
			return eris.New("build: --profile and --shapefile are required (or set profile.path and shapefile.path in config)")
		}
		outPath := firstNonEmpty(buildOut, cfg.Artifact.OutPath)
		county := firstNonEmpty(buildCounty, cfg.Shapefile.CountyFIPS)
		title := firstNonEmpty(buildTitle, cfg.Artifact.Title)

		cat := catalog.Default()
		if overrides := firstNonEmpty(buildOverrides, cfg.Catalog.OverridePath); overrides != "" {
			var err error
			cat, err = cat.ApplyOverrides(overrides)
			if err != nil {
				return err
			}
		}

		st, err := initStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		run, err := st.CreateRun(ctx, profilePath, shapefilePath)
		if err != nil {
			return err
		}
		log.Info("run started", zap.String("run_id", run.ID))

		result, err := executeBuild(cmd, profilePath, shapefilePath, county, title, outPath, cat)
		if err != nil {
			if ferr := st.FailRun(ctx, run.ID, err); ferr != nil {
				log.Warn("record run failure", zap.Error(ferr))
			}
			return err
		}

		recordedOut := outPath
		if buildDryRun {
			recordedOut = ""
		}
		if err := st.CompleteRun(ctx, run.ID, recordedOut, len(result.Records), result.Dropped); err != nil {
			return err
		}

		log.Info("run complete",
			zap.String("run_id", run.ID),
			zap.Int("areas", len(result.Records)),
			zap.Int("dropped_rows", result.Dropped),
			zap.Bool("dry_run", buildDryRun),
		)
		return nil
	},
}

// executeBuild loads both inputs concurrently, runs the pipeline, and emits
// the artifact unless --dry-run is set.
func executeBuild(cmd *cobra.Command, profilePath, shapefilePath, county, title, outPath string, cat *catalog.Catalog) (*pipeline.Result, error) {
	var (
		profile *source.Profile
		geoms   map[string]*geom.MultiPolygon
	)

	g, gctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		profile, err = source.ReadProfile(gctx, profilePath, cat)
		return err
	})
	g.Go(func() error {
		var err error
		geoms, err = source.LoadTracts(shapefilePath, county)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := pipeline.Run(profile.Rows, profile.Columns, geoms, cat)
	if err != nil {
		return nil, err
	}

	if buildDryRun {
		return result, nil
	}

	payload, err := artifact.BuildPayload(title, result)
	if err != nil {
		return nil, err
	}
	if err := artifact.WriteHTML(outPath, payload); err != nil {
		return nil, err
	}
	return result, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	buildCmd.Flags().StringVar(&buildProfile, "profile", "", "path to the opportunity profile (.csv or .xlsx)")
	buildCmd.Flags().StringVar(&buildShapefile, "shapefile", "", "path to the tract boundary shapefile")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "output path for the HTML artifact")
	buildCmd.Flags().StringVar(&buildCounty, "county", "", "county FIPS filter (default from config)")
	buildCmd.Flags().StringVar(&buildTitle, "title", "", "artifact title")
	buildCmd.Flags().StringVar(&buildOverrides, "catalog-overrides", "", "path to a YAML indicator override file")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "run the pipeline without writing the artifact")
	rootCmd.AddCommand(buildCmd)
}
