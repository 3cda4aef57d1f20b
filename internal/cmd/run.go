package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/orderdesk/internal/clients"
	"github.com/matthieukhl/orderdesk/internal/config"
	"github.com/matthieukhl/orderdesk/internal/orders"
	"github.com/matthieukhl/orderdesk/internal/server"
	mongostore "github.com/matthieukhl/orderdesk/internal/store/mongo"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Orderdesk server",
	Long: `Start the Orderdesk server which provides:
- REST API for client and order management
- Automatic client provisioning on first company-info lookup
- Sequential order id assignment`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 Orderdesk Starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("🔌 Connecting to store...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st, err := mongostore.Connect(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(context.Background())

	fmt.Println("✅ Store connected successfully")

	fmt.Println("⚙️  Setting up server...")
	clientSvc := clients.New(st)
	orderSvc := orders.New(st, cfg.Orders.AtomicIDs)
	srv := server.NewServer(st, clientSvc, orderSvc)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
