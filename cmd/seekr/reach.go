package seekr

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var flagReachTimeout time.Duration

func init() {
	cmd := &cobra.Command{
		Use:   "reach [host:port]",
		Short: "Check whether a TCP endpoint is reachable",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			addr := args[0]
			if err := checkReachable(addr, flagReachTimeout); err != nil {
				fmt.Fprintf(os.Stderr, "%s unreachable: %v\n", addr, err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stdout, "%s reachable\n", addr)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().DurationVarP(&flagReachTimeout, "timeout", "t", 3*time.Second, "connection timeout")
}

// checkReachable dials the endpoint once with a hard timeout. The connection
// is closed immediately; only reachability matters.
func checkReachable(addr string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return err
	}
	return conn.Close()
}
