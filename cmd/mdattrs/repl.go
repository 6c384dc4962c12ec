package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/manuelmeister/goldmark-attributes/annotation"
)

const replPrompt = "md> "

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Render Markdown interactively, one line at a time",
	Long:  "Start an interactive prompt. Each line is rendered immediately. Commands: :escaped on|off, :help, :quit.",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	opts := loadOptions()
	md := newMarkdown(opts, logger)
	out := cmd.OutOrStdout()

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			quit, msg := handleReplCommand(line, &opts)
			if msg != "" {
				fmt.Fprintln(out, msg)
			}
			if quit {
				return nil
			}
			md = newMarkdown(opts, logger)
			continue
		}

		if err := annotation.Convert(md, []byte(line), out); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
}

// handleReplCommand applies a ":" command to opts. It reports whether the
// session should end and a message for the user.
func handleReplCommand(line string, opts *options) (quit bool, msg string) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(fields) == 0 {
		return false, "unknown command. Type :help for help."
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "q", "exit":
		return true, ""
	case "help":
		return false, ":escaped on|off  switch annotation dialect\n:quit            leave the prompt"
	case "escaped":
		if len(fields) < 2 {
			return false, fmt.Sprintf("escaped is %s", onOff(opts.Escaped))
		}
		switch strings.ToLower(fields[1]) {
		case "on", "true":
			opts.Escaped = true
		case "off", "false":
			opts.Escaped = false
		default:
			return false, "usage: :escaped on|off"
		}
		return false, fmt.Sprintf("escaped is %s", onOff(opts.Escaped))
	}
	return false, fmt.Sprintf("unknown command %q. Type :help for help.", fields[0])
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
