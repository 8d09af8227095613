package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
)

var historyLimit int32

var historyCmd = &cobra.Command{
	Use:   "history [owner-id]",
	Short: "Show an owner's recent equipment, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  history,
}

var clearCmd = &cobra.Command{
	Use:   "clear [owner-id]",
	Short: "Drop an owner's history",
	Args:  cobra.ExactArgs(1),
	RunE:  clearHistory,
}

func init() {
	historyCmd.Flags().Int32Var(&historyLimit, "limit", 0, "Maximum items to show (0 shows all kept)")
}

func history(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createEquipmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListHistory(ctx, &v1alpha1.ListHistoryRequest{
		OwnerID: args[0],
		Limit:   historyLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(resp.Equipment) == 0 && !asJSON {
		fmt.Fprintf(cmd.OutOrStdout(), "No history for %s\n", args[0])
		return nil
	}
	return PrintEquipmentList(cmd.OutOrStdout(), resp.Equipment, asJSON)
}

func clearHistory(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createEquipmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearHistory(ctx, &v1alpha1.ClearHistoryRequest{OwnerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d items from %s\n", resp.Removed, args[0])
	return nil
}
