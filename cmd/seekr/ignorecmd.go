package seekr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seekr/seekr/internal/files"
)

var flagIgnorePath string

func init() {
	cmd := &cobra.Command{
		Use:   "ignore [pattern]",
		Short: "Add a pattern to .seekrignore",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			abs, _ := filepath.Abs(flagIgnorePath)
			if err := files.AppendIgnore(abs, args[0]); err != nil {
				return fmt.Errorf("update ignore file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "added %q to %s\n", args[0], filepath.Join(abs, ".seekrignore"))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().StringVarP(&flagIgnorePath, "path", "p", ".", "directory whose .seekrignore to update")
}
