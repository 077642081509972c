package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jrhy/strmap/locate"
)

func addInstallSpecFlag(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().StringP("install-spec", "s", "", "Locations file or source root")
	cmd.PreRunE = func(cmd *cobra.Command, _ []string) error {
		return v.BindPFlag("install-spec", cmd.Flags().Lookup("install-spec"))
	}
}

func newLocator(v *viper.Viper) (*locate.Locator, error) {
	spec := v.GetString("install-spec")
	if spec == "" {
		return nil, errors.New("install-spec must be set")
	}
	return locate.New(spec)
}

func newLocateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the directories of an installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLocator(v)
			if err != nil {
				return err
			}
			for name, dir := range l.Dirs().All() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, dir); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addInstallSpecFlag(cmd, v)
	return cmd
}

func newFindSupportBinaryCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find-support-binary NAME",
		Short: "Print the path of a support binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLocator(v)
			if err != nil {
				return err
			}
			path, err := l.FindSupportBinary(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	addInstallSpecFlag(cmd, v)
	return cmd
}
