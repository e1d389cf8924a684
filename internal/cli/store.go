package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mleader/pkg/document"
	mlerrors "github.com/matzehuels/mleader/pkg/errors"
	"github.com/matzehuels/mleader/pkg/pipeline"
	"github.com/matzehuels/mleader/pkg/store"
)

// storeCommand creates the document store command.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Keep documents in a local directory or MongoDB",
		Long: `Store saves decoded documents under a generated ID. The backend is a
directory of JSON files by default, or MongoDB with --store mongo.`,
	}

	pf := cmd.PersistentFlags()
	pf.String("store", "", "store backend: file or mongo")
	pf.String("store-dir", "", "directory of the file store")
	pf.String("mongo-uri", "", "MongoDB connection string")

	cmd.AddCommand(c.storePushCommand())
	cmd.AddCommand(c.storeGetCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeDeleteCommand())
	return cmd
}

// withStore opens the store behind a spinner and runs fn against it.
func (c *CLI) withStore(ctx context.Context, msg string, fn func(store.Store) error) error {
	spin := newSpinner(ctx, c.spinnerOut(), msg)
	spin.Start()
	s, err := c.newStore(ctx)
	if err != nil {
		spin.Stop()
		return err
	}
	defer s.Close()

	err = fn(s)
	spin.Stop()
	if err != nil {
		return pipeline.Classify(err, "%s", msg)
	}
	return nil
}

// spinnerOut keeps the spinner off Out so piped output stays clean.
func (c *CLI) spinnerOut() io.Writer {
	if c.SpinnerOut != nil {
		return c.SpinnerOut
	}
	return io.Discard
}

func (c *CLI) storePushCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Store a document and print its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if name != "" {
				if err := mlerrors.ValidateDocumentName(name); err != nil {
					return err
				}
			}
			loaded, err := c.load(ctx, args[0])
			if err != nil {
				return err
			}

			doc := loaded.Document
			if name != "" {
				doc.Name = name
			}
			// DXF carries no ID; the one made up while decoding may come
			// from the cache, so never reuse it.
			if f, _ := document.DetectFormat(args[0]); doc.ID == "" || f == document.FormatDXF {
				doc.ID = uuid.NewString()
			}
			if doc.CreatedAt.IsZero() {
				doc.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
			}

			prog := newProgress(c.Logger)
			if err := c.withStore(ctx, "Storing document", func(s store.Store) error {
				return s.Put(ctx, doc)
			}); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Stored %s", doc.Name))
			printSuccess(c.Out, "Stored %s", StyleValue.Render(doc.Name))
			printKeyValue(c.Out, "ID", doc.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "document name (default: file name)")
	return cmd
}

func (c *CLI) storeGetCommand() *cobra.Command {
	var to, output string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Write a stored document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			f := document.FormatJSON
			if to != "" || output != "" {
				var err error
				if f, err = outputFormat(to, output); err != nil {
					return err
				}
			}

			var doc document.Document
			if err := c.withStore(ctx, "Loading document", func(s store.Store) error {
				var err error
				doc, err = s.Get(ctx, args[0])
				return err
			}); err != nil {
				return err
			}

			runner, ch, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer ch.Close()
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
			printSuccess(c.Out, "Wrote %s", doc.Name)
			printFile(c.Out, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "output format (default json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func (c *CLI) storeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored documents, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var summaries []store.Summary
			if err := c.withStore(ctx, "Listing documents", func(s store.Store) error {
				var err error
				summaries, err = s.List(ctx)
				return err
			}); err != nil {
				return err
			}
			if len(summaries) == 0 {
				printInfo(c.Out, "No stored documents")
				return nil
			}
			renderSummaries(c.Out, summaries)
			return nil
		},
	}
}

func renderSummaries(w io.Writer, summaries []store.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Created", "Roots", "Lines"})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.ID, s.Name, s.CreatedAt.Local().Format("2006-01-02 15:04"), s.Roots, s.Lines})
	}
	t.Render()
}

func (c *CLI) storeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.withStore(ctx, "Deleting document", func(s store.Store) error {
				return s.Delete(ctx, args[0])
			}); err != nil {
				return err
			}
			printSuccess(c.Out, "Deleted %s", args[0])
			return nil
		},
	}
}
