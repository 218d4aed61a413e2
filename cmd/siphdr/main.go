// Command siphdr renders SIP header lines described in a YAML document.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/siphdr/header"
	"github.com/ghettovoice/siphdr/internal/log"
)

//go:generate go tool errtrace -w .

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "siphdr",
		Short:         "SIP header rendering tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenderCmd())
	return root
}

type renderFlags struct {
	file    string
	compact bool
	json    bool
	dev     bool
	verbose bool
	quiet   bool
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render headers from a YAML document, one line per header",
		Long: "Render reads a YAML document with a list of headers from the file given by --file, " +
			"or from stdin, and writes every header as a CRLF terminated line.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lvl := slog.LevelInfo
			if flags.verbose {
				lvl = slog.LevelDebug
			}
			logger := log.Noop
			if !flags.quiet {
				logger = log.New(cmd.ErrOrStderr(), &log.Options{Level: lvl, Dev: flags.dev})
			}

			if err := runRender(cmd.InOrStdin(), cmd.OutOrStdout(), &flags, logger); err != nil {
				logger.Error("render failed", "error", err)
				return errtrace.Wrap(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "YAML document to read instead of stdin")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact header names where defined")
	cmd.Flags().BoolVar(&flags.json, "json", false, "write one JSON object per header instead of header lines")
	cmd.Flags().BoolVar(&flags.dev, "dev", false, "use the developer log handler")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every rendered header")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "disable logging")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	return cmd
}

func runRender(stdin io.Reader, stdout io.Writer, flags *renderFlags, logger *slog.Logger) error {
	in := stdin
	if flags.file != "" {
		f, err := os.Open(flags.file)
		if err != nil {
			return errtrace.Wrap(err)
		}
		defer f.Close()
		in = f
	}

	doc, err := decodeDocument(in)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdrs, err := doc.build()
	if err != nil {
		return errtrace.Wrap(err)
	}
	logger.Debug("document decoded", "source", sourceName(flags.file), "headers", len(hdrs))

	if flags.json {
		return errtrace.Wrap(writeJSON(stdout, hdrs, logger))
	}
	return errtrace.Wrap(writeLines(stdout, hdrs, &header.RenderOptions{Compact: flags.compact}, logger))
}

func writeLines(w io.Writer, hdrs []header.Header, opts *header.RenderOptions, logger *slog.Logger) error {
	var total int
	for _, hdr := range hdrs {
		n, err := header.RenderTo(w, hdr, opts)
		total += n
		if err != nil {
			return errtrace.Wrap(err)
		}
		n, err = io.WriteString(w, "\r\n")
		total += n
		if err != nil {
			return errtrace.Wrap(err)
		}
		logger.Debug("header rendered", "header", hdr)
	}
	logger.Info("headers rendered", "count", len(hdrs), "bytes", total)
	return nil
}

func writeJSON(w io.Writer, hdrs []header.Header, logger *slog.Logger) error {
	for _, hdr := range hdrs {
		data, err := header.ToJSON(hdr)
		if err != nil {
			return errtrace.Wrap(err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return errtrace.Wrap(err)
		}
		logger.Debug("header encoded", "header", hdr)
	}
	logger.Info("headers encoded", "count", len(hdrs))
	return nil
}

func sourceName(file string) string {
	if file == "" {
		return "stdin"
	}
	return file
}
