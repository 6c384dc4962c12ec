package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/manuelmeister/goldmark-attributes/annotation"
)

// options are the Markdown settings shared by every command.
type options struct {
	Escaped bool
	GFM     bool
	Unsafe  bool
}

func loadOptions() options {
	return options{
		Escaped: viper.GetBool("escaped"),
		GFM:     viper.GetBool("gfm"),
		Unsafe:  viper.GetBool("unsafe"),
	}
}

// newMarkdown builds a goldmark instance with the annotation extension.
func newMarkdown(opts options, logger *slog.Logger) goldmark.Markdown {
	exts := []goldmark.Extender{
		annotation.New(annotation.WithEscaped(opts.Escaped), annotation.WithLogger(logger)),
	}
	if opts.GFM {
		exts = append(exts, extension.GFM)
	}

	var rendererOpts []renderer.Option
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

// renderSource converts one document and writes the HTML to w.
func renderSource(md goldmark.Markdown, name string, src []byte, w io.Writer) error {
	logger.Debug("rendering", slog.String("file", name), slog.Int("bytes", len(src)))
	if err := annotation.Convert(md, src, w); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
