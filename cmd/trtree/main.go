// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command trtree prints the structure of parse trees.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mdhender/trash"
	"github.com/mdhender/trash/config"
	"github.com/mdhender/trash/renderer"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var inputFile string
	var only string
	var antlrStyle, parenIndentStyle, indentStyle, blockStyle bool
	var displayName bool
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().BoolP("verbose", "v", false, "log more information")
		cmd.Flags().StringVarP(&configFile, "config-file", "c", configFile, "load configuration from file")
		cmd.Flags().StringVarP(&inputFile, "file", "f", inputFile, "read parse trees from file instead of stdin")
		cmd.Flags().StringVar(&only, "only", only, "only print files matching the glob pattern")
		cmd.Flags().BoolVarP(&antlrStyle, "antlr", "a", antlrStyle, "print trees in ANTLR style")
		cmd.Flags().BoolVarP(&parenIndentStyle, "paren-indent", "p", parenIndentStyle, "print trees parenthesized and indented")
		cmd.Flags().BoolVarP(&indentStyle, "indent", "i", indentStyle, "print trees indented")
		cmd.Flags().BoolVarP(&blockStyle, "block", "b", blockStyle, "print trees as blocks")
		cmd.Flags().BoolVar(&displayName, "display-name", displayName, "prefix every line with the file name")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "trtree",
		Short: "print the structure of parse trees",
		Long: `Read parse trees as JSON and print each tree in one of four styles.

If more than one style is given, the first of antlr, paren-indent,
indent and block wins.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("trtree: version %q\n", trash.Version().Core())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("file") {
				cfg.File = inputFile
			}
			if cmd.Flags().Changed("only") {
				cfg.Only = only
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose, _ = cmd.Flags().GetBool("verbose")
			}
			if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
				cfg.Verbose = false
			}
			if cmd.Flags().Changed("display-name") {
				cfg.DisplayName = displayName
			}
			// style flags on the command line replace the configured style
			if antlrStyle || parenIndentStyle || indentStyle || blockStyle {
				cfg.AntlrStyle = antlrStyle
				cfg.ParenIndentStyle = parenIndentStyle
				cfg.IndentStyle = indentStyle
				cfg.BlockTreeStyle = blockStyle
			}

			registry, err := cfg.Registry()
			if err != nil {
				return err
			}

			var logger *slog.Logger
			if cfg.Verbose {
				logger = slog.Default()
			}
			sets, err := trash.Ingest(ctx, cfg.File, os.Stdin, logger)
			if err != nil {
				return err
			}
			if sets, err = trash.Select(sets, cfg.Only); err != nil {
				return err
			}

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()
			showFileName := len(sets) > 1 || cfg.DisplayName
			for _, set := range sets {
				prefix := ""
				if showFileName {
					prefix = set.FileName + ": "
				}
				r, err := renderer.New(
					renderer.WithStyle(cfg.Style()),
					renderer.WithPrefix(prefix),
					renderer.WithVocabulary(registry.Lookup(set.Lexer, set.Parser)),
				)
				if err != nil {
					return err
				}
				if err := r.RenderSet(w, set); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(w)
			return err
		},
	}
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(trash.Version().String())
				return nil
			}
			fmt.Println(trash.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
