package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-equipment/internal/config"
	"github.com/KirkDiggler/rpg-equipment/internal/engine/equipgen"
	"github.com/KirkDiggler/rpg-equipment/internal/redis"
	equipmenthistory "github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history"
)

var checkFix bool

var historyCheckCmd = &cobra.Command{
	Use:   "history-check",
	Short: "Scan stored equipment history in Redis for corrupt records",
	Long: `Scan every equipment_history list in Redis. Entries that do not decode,
are missing required fields, or whose used capacity does not match their
enchantments are reported. With --fix they are removed.`,
	Args: cobra.NoArgs,
	RunE: runHistoryCheck,
}

func init() {
	historyCheckCmd.Flags().BoolVar(&checkFix, "fix", false, "Remove corrupt entries")
}

func runHistoryCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, envFiles...)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.UseRedis() {
		return fmt.Errorf("%s is not set, history is not stored in redis", config.EnvRedisAddr)
	}

	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := redis.Ping(cmd.Context(), client); err != nil {
		return err
	}

	out, err := equipmenthistory.CheckRedis(cmd.Context(), client, &equipmenthistory.CheckInput{
		UsedCapacity: equipgen.UsedCapacity,
		Fix:          checkFix,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d entries in %d keys, found %d corrupt\n", out.Entries, out.Keys, len(out.Corrupt))
	for _, c := range out.Corrupt {
		fmt.Fprintf(w, "  ✗ %s[%d]: %s\n", c.Key, c.Index, c.Reason)
	}
	if checkFix {
		fmt.Fprintf(w, "Removed %d entries\n", out.Removed)
	}
	return nil
}
