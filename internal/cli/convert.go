package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mleader/pkg/document"
	mlerrors "github.com/matzehuels/mleader/pkg/errors"
	"github.com/matzehuels/mleader/pkg/pipeline"
)

func (c *CLI) convertCommand() *cobra.Command {
	var to, output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a document between DXF, JSON and YAML",
		Long: `Convert decodes a document and writes it in another format. The target
format comes from --to, or from the extension of --output.`,
		Example: `  mleader convert detail.dxf --to json
  mleader convert detail.json -o detail.dxf --catalog drawing.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat(to, output)
			if err != nil {
				return err
			}
			src, err := pipeline.SourceFromFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, ch, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer ch.Close()

			prog := newProgress(c.Logger)
			data, hit, err := runner.Convert(ctx, src, f)
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
			prog.done(fmt.Sprintf("Converted %s to %s", src.Name, f))
			printSuccess(c.Out, "Converted %s", args[0])
			printFile(c.Out, output)
			if hit {
				printDetail(c.Out, "%s", iconCached)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "target format: json, yaml or dxf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// outputFormat picks the format from an explicit name or the output path.
func outputFormat(name, output string) (document.Format, error) {
	if name != "" {
		f, err := document.ParseFormat(name)
		if err != nil {
			return "", mlerrors.Wrap(mlerrors.ErrCodeUnsupported, err, "invalid --to %q", name)
		}
		return f, nil
	}
	if output == "" {
		return "", mlerrors.New(mlerrors.ErrCodeInvalidInput, "one of --to or --output is required")
	}
	f, err := document.DetectFormat(output)
	if err != nil {
		return "", mlerrors.Wrap(mlerrors.ErrCodeUnsupported, err, "cannot infer format of %s", output)
	}
	return f, nil
}

func writeOutput(path string, data []byte) error {
	if err := mlerrors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return pipeline.Classify(err, "write %s", path)
	}
	return nil
}
