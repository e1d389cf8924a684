package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mleader/pkg/document"
	"github.com/matzehuels/mleader/pkg/mleader"
	"github.com/matzehuels/mleader/pkg/pipeline"
)

func (c *CLI) duplicateCommand() *cobra.Command {
	var (
		leader int
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "duplicate <file>",
		Short: "Copy one leader root into a new leader",
		Long: `Duplicate deep-copies the root with the given leader index, gives the copy
the next free index and writes the document with the copy appended. Line
types and arrowheads stay shared with the original.`,
		Example: `  mleader duplicate detail.json --leader 0 -o detail-2.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			src, err := pipeline.SourceFromFile(args[0])
			if err != nil {
				return err
			}
			f := src.Format
			if to != "" || output != "" {
				if f, err = outputFormat(to, output); err != nil {
					return err
				}
			}

			runner, ch, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer ch.Close()

			loaded, err := runner.Load(ctx, src)
			if err != nil {
				return err
			}
			dup, err := pipeline.Duplicate(loaded.Roots, leader)
			if err != nil {
				return err
			}
			c.Logger.Info("duplicated leader", "from", leader, "to", dup.LeaderIndex, "lines", len(dup.Lines))

			doc := loaded.Document
			doc.Roots = append(doc.Roots, document.FromRoots([]*mleader.LeaderRoot{dup})...)
			data, err := runner.Encode(ctx, doc, f)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := c.Out.Write(data)
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}
			printSuccess(c.Out, "Duplicated leader %d as leader %d", leader, dup.LeaderIndex)
			printDetail(c.Out, "%s", plural(len(dup.Lines), "line"))
			printFile(c.Out, output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&leader, "leader", "l", 0, "leader index of the root to copy")
	cmd.Flags().StringVarP(&to, "to", "t", "", "output format (default: same as input)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	_ = cmd.MarkFlagRequired("leader")
	return cmd
}
