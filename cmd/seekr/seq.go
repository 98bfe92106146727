package seekr

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var flagSeqWidth int

func init() {
	cmd := &cobra.Command{
		Use:   "seq [prefix] [start] [end]",
		Short: "Generate a numbered string range",
		Long:  "Prints prefix+number for every value in [start, end], one per line. Useful for generating candidate file or host names to search for.",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("start: %w", err)
			}
			end, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("end: %w", err)
			}
			out, err := expandRange(args[0], start, end, flagSeqWidth)
			if err != nil {
				return err
			}
			for _, s := range out {
				fmt.Fprintln(os.Stdout, s)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().IntVarP(&flagSeqWidth, "width", "w", 0, "zero-pad numbers to this width (0 = no padding)")
}

// expandRange builds the inclusive prefix+number sequence. Width pads with
// leading zeros; numbers wider than width are not truncated.
func expandRange(prefix string, start, end, width int) ([]string, error) {
	if end < start {
		return nil, fmt.Errorf("end %d is before start %d", end, start)
	}
	if width < 0 {
		return nil, fmt.Errorf("negative width %d", width)
	}
	out := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, fmt.Sprintf("%s%0*d", prefix, width, n))
	}
	return out, nil
}
