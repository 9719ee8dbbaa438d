package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/scriptdex"
)

func (a *app) listCmd() *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every example, optionally only those with a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				out, err := b.Listing(ctx, tag)
				if err != nil {
					return err
				}
				return a.printReport(out)
			})
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only list examples carrying this exact tag")
	return cmd
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <example>",
		Short: "Show an example's documentation, metadata, scripts and files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				out, err := b.Render(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printReport(out)
			})
		},
	}
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find examples whose documentation or scripts contain a keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				out, err := b.Search(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printReport(out)
			})
		},
	}
}

func (a *app) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <example>",
		Short: "Summarize the imports, functions and concepts of an example's script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				out, err := b.Analyze(ctx, args[0])
				if err != nil {
					return err
				}
				return a.printReport(out)
			})
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Diff the files and imports of two examples",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				out, err := b.Compare(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				return a.printReport(out)
			})
		},
	}
}

func (a *app) resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the raw script, documentation and metadata files of every example",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				rs, err := b.EnumerateResources(ctx)
				if err != nil {
					return err
				}
				a.printResources(rs)
				return nil
			})
		},
	}
}

func (a *app) readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <example> <kind>",
		Short: "Print one raw resource: script, documentation (readme) or metadata (meta)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, b backend) error {
				text, err := b.ReadResource(ctx, args[0], scriptdex.ResourceKind(args[1]))
				if err != nil {
					return err
				}
				a.printRaw(text)
				return nil
			})
		},
	}
}

func (a *app) printResources(rs []scriptdex.Resource) {
	raw := a.v.GetBool(keyRaw)
	for _, r := range rs {
		if raw {
			fmt.Fprintf(a.out, "%s\t%s\t%s\n", r.URI, r.MIMEType, r.Description)
			continue
		}
		fmt.Fprintf(a.out, "%s  %s\n", TitleStyle.Render(r.URI), SubtitleStyle.Render(r.MIMEType+", "+r.Description))
	}
}

func (a *app) printRaw(text string) {
	fmt.Fprint(a.out, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(a.out)
	}
}
