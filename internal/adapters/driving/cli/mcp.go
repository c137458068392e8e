package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/fraction/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can do exact
fraction arithmetic.

Tools:
  evaluate   evaluate an expression such as "2/3 + 3/4"
  is_prime   report whether an integer is prime
  primes     list the primes between 1 and a limit

Resources:
  fraction://history        most recent calculations
  fraction://history/{id}   a single calculation

By default the server communicates over stdio using JSON-RPC.
Use --port to serve streamable HTTP instead. HTTP requests are throttled
by --rate and --burst; excess requests receive 429 Too Many Requests.

Examples:
  fraction mcp serve
  fraction mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRequestRate, "HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultRequestBurst, "HTTP requests allowed in a burst")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Calculator: calculatorService,
		Primes:     primeService,
		History:    historyService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		rps, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			return fmt.Errorf("getting rate flag: %w", err)
		}
		burst, err := cmd.Flags().GetInt("burst")
		if err != nil {
			return fmt.Errorf("getting burst flag: %w", err)
		}
		server.SetRateLimit(rps, burst)

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
