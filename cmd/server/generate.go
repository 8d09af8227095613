package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/cmd/server/client"
	"github.com/KirkDiggler/rpg-equipment/internal/config"
	"github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen"
	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
	"github.com/KirkDiggler/rpg-equipment/internal/logger"
	"github.com/KirkDiggler/rpg-equipment/internal/orchestrators/forge"
)

var (
	generateCount     int
	generateAdjective string
	generateOwner     string
	generateJSON      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Forge equipment locally without a server",
	Long: `Forge equipment in this process and print it.

History is kept in Redis when REDIS_ADDR is set, so --owner records survive
between runs and are visible to a server sharing the same Redis.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the special enchantment templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client.PrintTemplates(cmd.OutOrStdout(), v1alpha1.TemplatesToAPI(equipgen.Templates()))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of items to forge")
	generateCmd.Flags().StringVar(&generateAdjective, "adjective", "", "Pin the adjective (黑星, 传说, 史诗 and 稀有 force a tier)")
	generateCmd.Flags().StringVar(&generateOwner, "owner", "", "Record the items in this owner's history")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print JSON instead of text")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.Logger(serviceName, version), cmd.ErrOrStderr())

	application, err := newApp(cmd.Context(), appConfig{
		cfg:    cfg,
		roller: dice.DefaultRoller,
		logger: log,
	})
	if err != nil {
		return err
	}
	defer application.cleanup()

	out, err := application.forge.Generate(cmd.Context(), &forge.GenerateInput{
		OwnerID:   generateOwner,
		Adjective: generateAdjective,
		Count:     generateCount,
	})
	if err != nil {
		return fmt.Errorf("failed to generate equipment: %w", err)
	}

	items := make([]*v1alpha1.Equipment, 0, len(out.Equipment))
	for _, item := range out.Equipment {
		items = append(items, v1alpha1.EquipmentToAPI(item))
	}
	return client.PrintEquipmentList(cmd.OutOrStdout(), items, generateJSON)
}
