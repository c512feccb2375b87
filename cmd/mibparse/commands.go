package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	mibparser "github.com/devg1120/mib-parser"
)

var version = "(devel)"

func rootCommand() *cobra.Command {
	var f globalFlags

	root := &cobra.Command{
		Use:           "mibparse",
		Short:         "Parse SNMP SMI MIB files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return f.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
	flags.CountVarP(&f.verbose, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	root.AddCommand(
		parseCommand(&f),
		treeCommand(&f),
		dumpCommand(&f),
		versionCommand(),
	)
	return root
}

func parseCommand(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse MIB files and summarize their modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				doc, err := parseFile(path, f.options()...)
				if err != nil {
					return err
				}
				for _, m := range doc.Modules {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d assignments\n",
						m.Name, len(m.Assignments))
				}
			}
			return nil
		},
	}
}

func treeCommand(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the parse tree of a MIB file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := append(f.options(), mibparser.WithTreeOutput(cmd.OutOrStdout()))
			_, err := parseFile(args[0], opts...)
			return err
		},
	}
}

func dumpCommand(f *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Output the parsed document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0], f.options()...)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := version
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				v = info.Main.Version
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mibparse %s\n", v)
		},
	}
}

func parseFile(path string, opts ...mibparser.Option) (*mibparser.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	doc, err := mibparser.Parse(string(data), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return doc, nil
}

func newLogger(verbose int) *slog.Logger {
	if verbose <= 0 {
		return nil
	}
	level := slog.LevelDebug
	if verbose >= 2 {
		level = mibparser.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
