package main

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jrhy/strmap"
)

var headerSeparator = []byte(":")

// readHeaders collects "Name: value" lines. Names are looked up straight
// out of the scanner's buffer; only names seen for the first time get
// copied into the map.
func readHeaders(scanner *bufio.Scanner) (*strmap.Map[string], error) {
	headers := strmap.New[string]()
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		name, value, ok := bytes.Cut(line, headerSeparator)
		if !ok {
			return nil, errors.Errorf("line %d: missing ':' separator", lineNo)
		}
		name = bytes.TrimSpace(name)
		if !headers.Set(name, string(bytes.TrimSpace(value))) {
			slog.Debug("Header repeated, keeping last value",
				slog.Int("line", lineNo), slog.String("name", string(name)))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read headers")
	}
	return headers, nil
}

func newSortHeadersCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort-headers",
		Short: "Read 'Name: value' lines from stdin and print them sorted by name",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlag("digest", cmd.Flags().Lookup("digest"))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers, err := readHeaders(bufio.NewScanner(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for name, value := range headers.All() {
				if _, err := fmt.Fprintf(out, "%s: %s\n", name, value); err != nil {
					return err
				}
			}
			if v.GetBool("digest") {
				d, err := headers.Digest(nil)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "digest: %s\n", d); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("digest", false, "Also print a digest of the header set")
	return cmd
}
