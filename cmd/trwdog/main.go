// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Command trwdog runs another command and kills it if it runs longer
// than the timeout.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/mdhender/trash"
	"github.com/mdhender/trash/config"
	"github.com/mdhender/trash/watchdog"
	"github.com/spf13/cobra"
)

func main() {
	log.SetFlags(0)

	var configFile string
	var timeout int
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&configFile, "config-file", "c", configFile, "load configuration from file")
		cmd.Flags().IntVarP(&timeout, "timeout", "t", config.DefaultTimeout, "seconds to wait before killing the command, 0 for no limit")
		cmd.Flags().Bool("show-version", false, "show version")
		// everything after the command name belongs to the command
		cmd.Flags().SetInterspersed(false)
		return nil
	}
	exitCode := 0
	var cmdRoot = &cobra.Command{
		Use:          "trwdog [flags] command [args...]",
		Short:        "run a command with a timeout",
		Long:         `Run a command and kill it if it is still running after the timeout. The exit code is the command's, or 1 if it was killed or could not be started.`,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("trwdog: version %q\n", trash.Version().Core())
			}

			var cfg *config.Config
			var err error
			if configFile != "" {
				cfg, err = config.Load(configFile)
			} else {
				cfg, err = config.LoadDefault()
			}
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			wd := &watchdog.Watchdog{
				Timeout: time.Duration(cfg.Timeout) * time.Second,
				Stdin:   os.Stdin,
				Stdout:  os.Stdout,
				Stderr:  os.Stderr,
			}
			exitCode, err = wd.Run(ctx, args[0], args[1:]...)
			if err != nil {
				log.Printf("trwdog: %v\n", err)
			}
			return nil
		},
	}
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
