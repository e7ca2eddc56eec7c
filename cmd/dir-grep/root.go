package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bethropolis/dir-grep/internal/app"
	"github.com/bethropolis/dir-grep/internal/config"
)

func newRootCmd() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "dir-grep -s <search-string> [-d <start-directory>] [-f <file-filter>] [-e <exclude-dirs>]",
		Short: "Search text files below a directory for a regular expression",
		Long: `dir-grep walks a directory tree and prints every text file whose contents
match a regular expression, followed by the number of matching files.

Binary files are skipped. Text encoding is taken from the byte-order mark
(UTF-8, UTF-16 or UTF-32), defaulting to UTF-8.

File filters and excluded directories are ';'-separated lists of names with
the wildcards * and ?. An excluded directory is skipped with everything in it.`,
		Example: `  dir-grep -s "public static" -d /src -f "*.htm*"
  dir-grep -s "` + "`t`t" + `int x;" -f "*"
  dir-grep -s "string\[\]" -d ./project -e "bin;obj;.*"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if cfg.ShowVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "dir-grep version %s\n", cfg.Version)
				return nil
			}
			if !cmd.Flags().Changed("search") {
				return errors.New(`required flag "search" not set`)
			}
			if err = cfg.Finalize(); err != nil {
				return err
			}

			application, err := app.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeInto(&err, application)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return application.Run(ctx)
		},
	}

	cfg = config.New(cmd.Flags())
	return cmd
}

// closeInto closes c and reports its error through err unless err is
// already set, so a failed flush of --output is not lost.
func closeInto(err *error, c io.Closer) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("closing output: %w", closeErr)
	}
}
