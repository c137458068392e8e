package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded calculations",
	Long: `Every successful calculation is recorded while history.enabled is on.
Use subcommands to list, inspect or clear the history.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent calculations, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one calculation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded calculations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to list (0 = all)")
	historyClearCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "confirm deletion")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	calcs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(calcs) == 0 {
		cmd.Println("No calculations recorded")
		return nil
	}

	for i := range calcs {
		cmd.Printf("%s  %s  %s = %s\n",
			calcs[i].CreatedAt.Local().Format("2006-01-02 15:04:05"),
			calcs[i].ID,
			calcs[i].Expression(),
			calcs[i].Result,
		)
	}

	cmd.Printf("\nTotal: %d calculations\n", len(calcs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	calc, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get calculation: %w", err)
	}

	cmd.Printf("Calculation: %s\n\n", calc.ID)
	cmd.Printf("  Operation:  %s\n", calc.Operation)
	cmd.Printf("  Expression: %s\n", calc.Expression())
	cmd.Printf("  Result:     %s\n", calc.Result)
	cmd.Printf("  Created:    %s\n", calc.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if !historyYes {
		return errors.New("refusing to clear history without --yes")
	}

	n, err := historyService.Clear(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Printf("Removed %d calculations\n", n)
	return nil
}
