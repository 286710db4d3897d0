package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"portfolio/internal/auth"
	"portfolio/internal/di"
	"portfolio/internal/structures"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Portfolio site content daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config.yml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "mirror logs to the console")

	root.AddCommand(newServeCmd(flags))
	root.AddCommand(newExportCmd(flags))
	root.AddCommand(newImportCmd(flags))
	root.AddCommand(newHashPasswordCmd())
	return root
}

func newServeCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the public API and the admin CMS",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := di.InitApp(flags)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return app.Run()
		},
	}
}

func newExportCmd(flags *structures.CliFlags) *cobra.Command {
	var out string
	var compressed bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every collection to a snapshot file",
		Long: `Write every collection to a snapshot file.

Examples:
  portfolio export -o export.json
  portfolio export --compressed -o backup.zst`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tb, err := di.InitToolbox(flags)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			defer tb.Close()

			if compressed {
				if out == "" {
					return fmt.Errorf("--compressed needs --output")
				}
				return tb.Backup.SaveToFile(out)
			}

			data, err := json.MarshalIndent(tb.Repo.ExportAll(), "", "  ")
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&compressed, "compressed", false, "write a zstd backup instead of plain JSON")
	return cmd
}

func newImportCmd(flags *structures.CliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load a snapshot (plain JSON or zstd backup) into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tb, err := di.InitToolbox(flags)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			defer tb.Close()

			if _, err := os.Stat(args[0]); err != nil {
				return err
			}
			report, err := tb.Backup.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "applied: %s\n", strings.Join(report.Applied, ", "))
			for _, issue := range report.Skipped {
				fmt.Fprintf(w, "skipped %s: %s\n", issue.Key, issue.Reason)
			}
			return nil
		},
	}
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [PASSWORD]",
		Short: "Print a bcrypt hash for auth.credentials[].passwordHash",
		Long: `Print a bcrypt hash for auth.credentials[].passwordHash.
The password is read from stdin when not given as an argument.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordFrom(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func passwordFrom(args []string, in io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("empty password")
	}
	return password, nil
}
