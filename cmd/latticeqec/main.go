// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command latticeqec is the CLI for the LatticeQEC toric-code workbench.
//
// # Commands
//
//	latticeqec show     # Build a lattice locally and render it
//	latticeqec run      # Sample errors and decode them via the remote service
//	latticeqec serve    # Start the interactive session HTTP/WebSocket server
//	latticeqec codes    # List known codes, decoders and error models
//
// # Environment Variables
//
// All flags can be set through the environment with the LATTICEQEC_ prefix,
// e.g. LATTICEQEC_SERVER_URL, LATTICEQEC_LOG_LEVEL, LATTICEQEC_CACHE_DIR.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AleutianAI/LatticeQEC/pkg/logging"
)

var (
	flagServerURL string // Base URL of the decoding service
	flagLogLevel  string // debug, info, warn, error
	flagLogDir    string // Directory for JSON log files ("" disables)
	flagCacheDir  string // Badger stabilizer cache directory ("" = in-memory)

	cliLogger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "latticeqec",
	Short: "Toric surface-code workbench",
	Long: "latticeqec builds toric surface-code lattices, tracks Pauli error\n" +
		"flags and stabilizer syndromes, and talks to an external service for\n" +
		"error sampling and decoding.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cliLogger = logging.New(logging.Config{
			Level:   logging.ParseLevel(viper.GetString("log_level")),
			LogDir:  viper.GetString("log_dir"),
			Service: "latticeqec",
			Quiet:   true,
		})
		cliLogger.SetDefault()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cliLogger != nil {
			_ = cliLogger.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagServerURL, "server-url", "http://localhost:12240",
		"Base URL of the decoding/sampling service")
	pf.StringVar(&flagLogLevel, "log-level", "info",
		"Log level (debug, info, warn, error)")
	pf.StringVar(&flagLogDir, "log-dir", "",
		"Directory for JSON log files (empty disables file logging)")
	pf.StringVar(&flagCacheDir, "cache-dir", "",
		"Directory for the stabilizer cache (empty keeps it in memory)")

	viper.SetEnvPrefix("LATTICEQEC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("server_url", pf.Lookup("server-url"))
	_ = viper.BindPFlag("log_level", pf.Lookup("log-level"))
	_ = viper.BindPFlag("log_dir", pf.Lookup("log-dir"))
	_ = viper.BindPFlag("cache_dir", pf.Lookup("cache-dir"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
