// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/gatewaylabs/contract-cli/cmd/projectcmd"
	"github.com/gatewaylabs/contract-cli/pkg/application"
	"github.com/gatewaylabs/contract-cli/pkg/config"
	"github.com/gatewaylabs/contract-cli/pkg/constants"
	"github.com/gatewaylabs/contract-cli/pkg/ux"
	luxlog "github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	app        *application.App
	logFactory luxlog.Factory

	Version = "0.4.0"

	cfgFile  string
	logLevel string
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contract",
		Short: "Utilities to develop Wasm smart contracts",
		Long: `contract - Developer toolchain for Wasm smart contracts.

Scaffold a contract project, build it, generate metadata, and submit the
resulting bytecode to one or more chain nodes.

QUICK START:

  # Create a new contract project
  contract new flipper

  # Compile it
  contract build

  # Upload the bytecode to a local node
  contract deploy --suri //Alice

  # Deploy every composable component to its appointed endpoint
  contract composable-deploy --suri //Alice

For detailed command help, use: contract <command> --help`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.contract-cli/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level for the application")

	for _, cmd := range projectcmd.NewCommands(app) {
		rootCmd.AddCommand(cmd)
	}
	// extrinsic-bearing commands are registered only when the extrinsics
	// capability is compiled in
	for _, cmd := range extrinsicCommands(app) {
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

func createApp(_ *cobra.Command, _ []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}

	if logLevel != "" {
		if level, err := luxlog.ToLevel(logLevel); err == nil {
			logFactory.SetDisplayLevel("contract", level)
			logFactory.SetLogLevel("contract", level)
		}
	}

	projectDir, err := os.Getwd()
	if err != nil {
		return err
	}

	app.Setup(baseDir, log, config.New(), projectDir)

	initConfig()
	return nil
}

func setupEnv() (string, error) {
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)
	if err := os.MkdirAll(baseDir, constants.UserOnlyReadWriteExecPerms); err != nil {
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (luxlog.Logger, error) {
	config := luxlog.Config{}
	config.LogLevel = luxlog.Level(-6)
	config.DisplayLevel, _ = luxlog.ToLevel("WARN")

	config.Directory = filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(config.Directory, constants.UserOnlyReadWriteExecPerms); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	config.LogFormat = luxlog.Colors
	config.MaxSize = constants.MaxLogFileSize
	config.MaxFiles = constants.MaxNumOfLogFiles
	config.MaxAge = constants.RetainOldFiles

	// Register ux package as internal so caller tracking shows actual source, not the wrapper
	luxlog.RegisterInternalPackages("github.com/gatewaylabs/contract-cli/pkg/ux")

	factory := luxlog.NewFactoryWithConfig(config)
	log, err := factory.Make("contract")
	if err != nil {
		factory.Close()
		return nil, fmt.Errorf("failed setting up logging, exiting: %w", err)
	}
	logFactory = factory
	// user output goes to stdout, logs go to the log directory
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads in config file and ENV variables if set.
// Priority: flags > env vars > config file > defaults
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(filepath.Join(home, constants.BaseDirName))
		viper.SetConfigType(constants.DefaultConfigFileType)
		viper.SetConfigName(constants.DefaultConfigFileName)
	}

	_ = viper.BindEnv(constants.ConfigNodeURLKey, constants.EnvNodeURL)
	_ = viper.BindEnv(constants.ConfigTemplateRepoKey, constants.EnvTemplateRepo)
	_ = viper.BindEnv(constants.ConfigToolchainKey, constants.EnvToolchain)

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
	if app.ConfigFileExists() {
		app.Log.Debug("using config file", "config-file", app.Conf.GetConfigPath())
	}
}

// Execute runs exactly one subcommand and formats its outcome: subcommands
// print their own single result line on success, failures surface here as a
// single ERROR line and a non-zero exit.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if ux.Logger != nil {
			ux.Logger.PrintError(err)
		} else {
			fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		}
		os.Exit(1)
	}
}
