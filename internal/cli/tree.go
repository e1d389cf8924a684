package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	mlerrors "github.com/matzehuels/mleader/pkg/errors"
	"github.com/matzehuels/mleader/pkg/render/treeviz"
)

func (c *CLI) treeCommand() *cobra.Command {
	var (
		output string
		opts   treeviz.Options
	)

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Diagram the ownership structure of a document",
		Long: `Tree draws roots, their lines and break pairs, with shared line types and
arrowhead blocks as separate nodes. Output is Graphviz DOT, or SVG when
--output ends in .svg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svg := false
			switch ext := strings.ToLower(filepath.Ext(output)); ext {
			case "", ".dot", ".gv":
			case ".svg":
				svg = true
			default:
				return mlerrors.New(mlerrors.ErrCodeUnsupported, "unsupported diagram format %q (want .dot or .svg)", ext)
			}

			loaded, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data := []byte(treeviz.ToDOT(loaded.Roots, opts))
			if svg {
				if data, err = treeviz.RenderSVG(string(data)); err != nil {
					return mlerrors.Wrap(mlerrors.ErrCodeInternal, err, "render svg")
				}
			}

			if output == "" {
				_, err := c.Out.Write(data)
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}
			printSuccess(c.Out, "Rendered %s", loaded.Document.Name)
			printFile(c.Out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, .dot or .svg (default DOT on stdout)")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "include coordinates and style values in labels")
	cmd.Flags().BoolVar(&opts.HideRecords, "hide-records", false, "omit shared line type and block nodes")
	return cmd
}
