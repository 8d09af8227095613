package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
)

var (
	generateOwner     string
	generateAdjective string
	generateCount     int32
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Forge equipment on the server",
	Long: `Forge equipment on the server. With --owner the items are kept in that owner's history.

  client generate --count 3
  client generate --owner player-1 --adjective 黑星`,
	Args: cobra.NoArgs,
	RunE: generate,
}

func init() {
	generateCmd.Flags().StringVar(&generateOwner, "owner", "", "Owner whose history records the items")
	generateCmd.Flags().StringVar(&generateAdjective, "adjective", "", "Pin the adjective")
	generateCmd.Flags().Int32Var(&generateCount, "count", 1, "Number of items to forge")
}

func generate(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createEquipmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Generate(ctx, &v1alpha1.GenerateRequest{
		OwnerID:   generateOwner,
		Adjective: generateAdjective,
		Count:     generateCount,
	})
	if err != nil {
		return fmt.Errorf("failed to generate equipment: %w", err)
	}

	return PrintEquipmentList(cmd.OutOrStdout(), resp.Equipment, asJSON)
}
