// Package client provides commands that talk to a running equipment server
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/KirkDiggler/rpg-equipment/internal/handlers/equipment/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	asJSON     bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the equipment server",
	Long:  `Client commands make real gRPC requests against a running equipment server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")

	ClientCmd.AddCommand(generateCmd)
	ClientCmd.AddCommand(historyCmd)
	ClientCmd.AddCommand(clearCmd)
	ClientCmd.AddCommand(templatesCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createEquipmentClient creates an equipment service client
func createEquipmentClient() (v1alpha1.EquipmentServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewEquipmentServiceClient(conn), cleanup, nil
}
