package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/manuelmeister/goldmark-attributes/annotation"
)

var renderCmd = &cobra.Command{
	Use:   "render [file...]",
	Short: "Render Markdown files to HTML",
	Long:  "Render each Markdown file (or stdin when no file is given) to HTML on stdout.",
	RunE:  runRender,
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the document tree after annotations are attached",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(dumpCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	md := newMarkdown(loadOptions(), logger)
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return renderSource(md, "<stdin>", src, out)
	}

	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := renderSource(md, path, src, out); err != nil {
			return err
		}
	}
	return nil
}

func runDump(cmd *cobra.Command, args []string) error {
	var (
		src  []byte
		err  error
		name = "<stdin>"
	)
	if len(args) == 1 {
		name = args[0]
		src, err = os.ReadFile(name)
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}

	doc, err := annotation.Parse(newMarkdown(loadOptions(), logger), src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	doc.Dump(src, 0)
	return nil
}
