package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the server's special enchantment templates",
	Args:  cobra.NoArgs,
	RunE:  listTemplates,
}

func listTemplates(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createEquipmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListTemplates(ctx, &v1alpha1.ListTemplatesRequest{})
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	PrintTemplates(cmd.OutOrStdout(), resp.Templates)
	return nil
}
