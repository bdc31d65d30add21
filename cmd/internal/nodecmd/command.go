package nodecmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/NilFoundation/stone/common/logging"
	"github.com/NilFoundation/stone/services/stonenode"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Execute runs the binary described by definition and returns the process exit code.
func Execute(definition Definition) int {
	return execute(definition, os.Args[1:], os.Stdout, os.Stderr)
}

func execute(definition Definition, args []string, stdout io.Writer, stderr io.Writer) int {
	rootCmd, err := newRootCommand(definition, stdout, stderr)
	if err == nil {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	}

	if err != nil {
		_, _ = color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCommand(definition Definition, stdout io.Writer, stderr io.Writer) (*cobra.Command, error) {
	serviceName := definition.serviceName()

	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         definition.Short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	addConfigFlags(rootCmd.PersistentFlags(), stonenode.NewDefaultConfig(serviceName))
	v, err := newViper(rootCmd.PersistentFlags())
	if err != nil {
		return nil, err
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := logging.SetupGlobalLogger(serviceName, v.GetString(logLevelFlag)); err != nil {
			return fmt.Errorf("invalid %s: %w", logLevelFlag, err)
		}
		return nil
	}

	rootCmd.AddCommand(newRunCommand(definition, v, stdout))
	rootCmd.AddCommand(newConfigCommand(serviceName, v))
	return rootCmd, nil
}

func newRunCommand(definition Definition, v *viper.Viper, stdout io.Writer) *cobra.Command {
	paramValues := make([]*string, len(definition.ParamFlags))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: fmt.Sprintf("Run the %s, standalone if all parameters are given, task-driven if none", definition.Tool.Name()),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]string, len(paramValues))
			for i, value := range paramValues {
				values[i] = *value
			}

			mode, err := stonenode.SelectMode(definition.NewParams(values))
			if err != nil {
				return err
			}

			cfg, err := loadConfig(v, definition.serviceName())
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, definition.Tool, mode, stdout)
		},
	}

	for i, flag := range definition.ParamFlags {
		paramValues[i] = runCmd.Flags().String(flag.Name, "", flag.Usage)
	}
	return runCmd
}

func newConfigCommand(serviceName string, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, serviceName)
			if err != nil {
				return err
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			defer encoder.Close()
			return encoder.Encode(newConfigView(cfg))
		},
	}
}

func run(ctx context.Context, cfg *stonenode.Config, tool stonenode.Tool, mode stonenode.Mode, stdout io.Writer) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	node, err := stonenode.New(cfg, tool, stdout)
	if err != nil {
		return fmt.Errorf("failed to create %s node: %w", tool.Name(), err)
	}
	return node.Run(ctx, mode)
}
