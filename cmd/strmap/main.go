package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jrhy/strmap/internal/logging"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("strmap")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "strmap",
		Short:        "Inspect installation locations and header sets",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configureLogging(cmd, v)
		},
	}
	cmd.PersistentFlags().String("log-level", logging.DefaultLogLevel.String(), "Log level: debug, info, warn or error")
	cmd.PersistentFlags().Bool("log-json", false, "Print logs in JSON format")
	_ = v.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log-json", cmd.PersistentFlags().Lookup("log-json"))

	cmd.AddCommand(newLocateCmd(v))
	cmd.AddCommand(newFindSupportBinaryCmd(v))
	cmd.AddCommand(newSortHeadersCmd(v))
	return cmd
}

func configureLogging(cmd *cobra.Command, v *viper.Viper) error {
	level, err := logging.ParseLogLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	logging.ConfigureLogger(cmd.ErrOrStderr(), level, v.GetBool("log-json"))
	slog.Debug("Logger configured", slog.String("level", level.String()))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
