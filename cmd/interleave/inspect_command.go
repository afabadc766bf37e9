package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/interleave/extract"
	"github.com/tsawler/interleave/structure"
)

// newInspectCommand reports what boundary detection sees in a single
// file: the chapter inventory and the chosen front/main/back split.
// Useful for choosing explicit markers when detection guesses wrong.
func newInspectCommand() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show detected document structure for one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := extract.File(args[0], lang)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:     %s\n", args[0])
			fmt.Fprintf(out, "Language: %s\n", doc.Lang)
			fmt.Fprintf(out, "Text:     %d chars\n", len(doc.FullText))
			fmt.Fprintf(out, "Images:   %d\n", len(doc.Images))

			split := structure.Split(doc.FullText, structure.SplitConfig{
				Lang:            doc.Lang,
				DetectStructure: true,
			})
			fmt.Fprintf(out, "Front:    %d chars\n", len(split.Front))
			fmt.Fprintf(out, "Main:     %d chars\n", len(split.Main))
			fmt.Fprintf(out, "Back:     %d chars\n", len(split.Back))

			chapters := structure.Chapters(doc.FullText, doc.Lang)
			if len(chapters) == 0 {
				fmt.Fprintln(out, "No chapter markers detected.")
				return nil
			}

			fmt.Fprintf(out, "\nChapters (%d):\n", len(chapters))
			tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
			for _, ch := range chapters {
				fmt.Fprintf(tw, "  %d\t%s\n", ch.Pos, ch.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Language tag for the file")

	return cmd
}
