// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command trtext prints the source text rebuilt from parse trees.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mdhender/trash"
	"github.com/mdhender/trash/config"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var inputFile string
	var only string
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
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:          "trtext",
		Short:        "print the source text of parse trees",
		Long:         `Read parse trees as JSON and print the source text reconstructed from their text nodes and leading trivia.`,
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
				fmt.Printf("trtext: version %q\n", trash.Version().Core())
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
			return trash.TextReport(os.Stdout, sets)
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
