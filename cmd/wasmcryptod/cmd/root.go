package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"wasmcrypto/app"
)

type appKey struct{}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           app.Name + "d",
		Short:         "Dilithium2 keypair, signing and verification tool",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())

			cfg, err := app.ReadConfig(viper.New(), cmd.Flags())
			if err != nil {
				return err
			}
			a, err := app.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
	}

	app.AddConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		NewKeygenCmd(),
		NewPubkeyCmd(),
		NewSignCmd(),
		NewVerifyCmd(),
		NewSelfTestCmd(),
	)
	return rootCmd
}

// Execute runs rootCmd, then dumps collected metrics when --metrics is set,
// whether or not the command failed. Errors are printed as their message only.
func Execute(rootCmd *cobra.Command) error {
	executed, err := rootCmd.ExecuteC()
	if executed != nil {
		if a, appErr := appFromCmd(executed); appErr == nil && a.Config.Metrics {
			if metricsErr := printMetrics(executed.ErrOrStderr(), a); metricsErr != nil && err == nil {
				err = metricsErr
			}
		}
	}
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err.Error())
	}
	return err
}

func appFromCmd(cmd *cobra.Command) (*app.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("command context unavailable")
	}
	a, ok := ctx.Value(appKey{}).(*app.App)
	if !ok || a == nil {
		return nil, errors.New("application not initialised")
	}
	return a, nil
}
