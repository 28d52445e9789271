package cmd

import (
	"fmt"
	"os"

	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve [paths...]",
	Short: "Parse firewall logs and serve them over HTTP",
	Long: `Parse the given firewall log files once, then expose the records as a
read-only JSON API:

  GET /api/records                  full collection
  GET /api/records?field=f&value=v  exact-equality filter
  GET /api/records/blocked          blocked-traffic subset
  GET /api/stats                    per-action and per-protocol counts`,
	Args: cobra.ArbitraryArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "HTTP listen port (default: configured port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	paths, err := resolvePaths(args)
	if err != nil {
		return err
	}

	records, ok := aggregatePaths(paths)
	if !ok {
		return nil
	}
	if len(records) == 0 {
		fmt.Println("No valid log data found.")
	}

	port := servePort
	if port == "" {
		port = viper.GetString("port")
	}

	fmt.Fprintf(os.Stderr, "serving %d record(s) on :%s\n", len(records), port)
	return server.New(records, port).Start()
}
