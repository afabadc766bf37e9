package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/interleave"
	"github.com/tsawler/interleave/extract"
	"github.com/tsawler/interleave/match"
	"github.com/tsawler/interleave/render"
	"github.com/tsawler/interleave/segment"
)

type rootOptions struct {
	output string
	title  string

	lang1 string
	lang2 string

	mode      string
	imageMode string
	noImages  bool

	noDetect     bool
	startMarker1 string
	startMarker2 string
	endMarker1   string
	endMarker2   string

	maxDrift  float64
	tolerance int

	profile   string
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "interleave FILE1 FILE2",
		Short: "Build a bilingual side-by-side edition from two source files",
		Long: `Interleave aligns two renditions of the same work (text, EPUB, or PDF)
and writes a single HTML page with the languages side by side.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, opts, args[0], args[1])
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&opts.output, "output", "o", "bilingual.html", "Output HTML path")
	fl.StringVar(&opts.title, "title", "", "Page title (defaults to \"Bilingual Edition\")")
	fl.StringVar(&opts.lang1, "lang1", "en", "Language tag for the first file")
	fl.StringVar(&opts.lang2, "lang2", "zh", "Language tag for the second file")
	fl.StringVar(&opts.mode, "mode", "sentence", "Alignment granularity: sentence or paragraph")
	fl.StringVar(&opts.imageMode, "image-mode", "position", "Image matching: inline, position, page, or proximity")
	fl.BoolVar(&opts.noImages, "no-images", false, "Skip image extraction and matching")
	fl.BoolVar(&opts.noDetect, "no-detect", false, "Treat the whole text as main matter")
	fl.StringVar(&opts.startMarker1, "start-marker1", "", "Explicit start-of-main marker for the first file")
	fl.StringVar(&opts.startMarker2, "start-marker2", "", "Explicit start-of-main marker for the second file")
	fl.StringVar(&opts.endMarker1, "end-marker1", "", "Explicit back-matter marker for the first file")
	fl.StringVar(&opts.endMarker2, "end-marker2", "", "Explicit back-matter marker for the second file")
	fl.Float64Var(&opts.maxDrift, "max-drift", match.DefaultMaxDrift, "Page-mode drift cap as a fraction of document length")
	fl.IntVar(&opts.tolerance, "tolerance", 0, "Proximity-mode block-index window")
	fl.StringVar(&opts.profile, "profile", "", "TOML profile with reusable settings")
	fl.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, or error")
	fl.StringVar(&opts.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(newInspectCommand())

	return cmd
}

// applyProfile fills in options from a profile, keeping any value the
// user set explicitly on the command line.
func applyProfile(cmd *cobra.Command, opts *rootOptions, p *Profile) {
	changed := cmd.Flags().Changed

	setString := func(flag string, dst *string, val string) {
		if val != "" && !changed(flag) {
			*dst = val
		}
	}
	setString("lang1", &opts.lang1, p.Lang1)
	setString("lang2", &opts.lang2, p.Lang2)
	setString("mode", &opts.mode, p.Mode)
	setString("image-mode", &opts.imageMode, p.ImageMode)
	setString("title", &opts.title, p.Title)
	setString("output", &opts.output, p.Output)
	setString("start-marker1", &opts.startMarker1, p.StartMarker1)
	setString("start-marker2", &opts.startMarker2, p.StartMarker2)
	setString("end-marker1", &opts.endMarker1, p.EndMarker1)
	setString("end-marker2", &opts.endMarker2, p.EndMarker2)

	if p.NoImages && !changed("no-images") {
		opts.noImages = true
	}
	if p.DetectStructure != nil && !changed("no-detect") {
		opts.noDetect = !*p.DetectStructure
	}
	if p.MaxDrift != nil && !changed("max-drift") {
		opts.maxDrift = *p.MaxDrift
	}
	if p.Tolerance != nil && !changed("tolerance") {
		opts.tolerance = *p.Tolerance
	}
}

func runAlign(cmd *cobra.Command, opts *rootOptions, path1, path2 string) error {
	logger, err := newLogger(opts.logLevel, opts.logFormat)
	if err != nil {
		return err
	}

	if opts.profile != "" {
		profile, err := loadProfile(opts.profile)
		if err != nil {
			return err
		}
		applyProfile(cmd, opts, profile)
	}

	mode, err := segment.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	imageMode, err := match.ParseMode(opts.imageMode)
	if err != nil {
		return err
	}

	doc1, err := extract.File(path1, opts.lang1)
	if err != nil {
		return err
	}
	logger.Info("extracted", "path", path1, "lang", doc1.Lang,
		"chars", len(doc1.FullText), "images", len(doc1.Images))

	doc2, err := extract.File(path2, opts.lang2)
	if err != nil {
		return err
	}
	logger.Info("extracted", "path", path2, "lang", doc2.Lang,
		"chars", len(doc2.FullText), "images", len(doc2.Images))

	pipeline := interleave.New(doc1, doc2).
		AlignmentMode(mode).
		ImageMatchMode(imageMode).
		MaxImageDrift(opts.maxDrift).
		ProximityTolerance(opts.tolerance)
	if opts.noDetect {
		pipeline = pipeline.NoStructureDetection()
	}
	if opts.noImages {
		pipeline = pipeline.NoImages()
	}
	if opts.startMarker1 != "" || opts.startMarker2 != "" {
		pipeline = pipeline.StartMarkers(opts.startMarker1, opts.startMarker2)
	}
	if opts.endMarker1 != "" || opts.endMarker2 != "" {
		pipeline = pipeline.EndMarkers(opts.endMarker1, opts.endMarker2)
	}

	doc, warnings, err := pipeline.Build()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn(w.Message, "code", w.Code.String())
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := render.NewHTML(opts.title).Render(doc, out); err != nil {
		return err
	}

	stats := doc.Summary()
	logger.Info("wrote bilingual edition", "path", opts.output,
		"blocks", stats.MainBlocks, "complete", stats.CompleteBlocks,
		"matched_images", stats.MatchedImages, "unmatched_images", stats.UnmatchedImages)
	return nil
}
