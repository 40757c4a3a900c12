// Package main provides the entry point for the wallet CLI application.
package main

import (
	"fmt"
	"os"

	"aek/wallet/cmd/add"
	"aek/wallet/cmd/cancel"
	"aek/wallet/cmd/categories"
	"aek/wallet/cmd/dashboard"
	"aek/wallet/cmd/edit"
	"aek/wallet/cmd/export"
	importcmd "aek/wallet/cmd/import"
	"aek/wallet/cmd/list"
	"aek/wallet/cmd/report"
	"aek/wallet/cmd/root"
	"aek/wallet/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env silently first so LOG_LEVEL and WALLET_* can come from it
	_, _ = config.LoadEnv()

	// 2. Configure the global logrus level before anything logs
	configureLogLevelDirectly()

	// 3. Initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(cancel.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

// configureLogLevelDirectly sets the global logrus level from LOG_LEVEL and
// returns it.
func configureLogLevelDirectly() logrus.Level {
	logLevel, err := logrus.ParseLevel(config.BootstrapLogLevel())
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
