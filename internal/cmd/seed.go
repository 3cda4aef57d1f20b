package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/orderdesk/internal/clients"
	"github.com/matthieukhl/orderdesk/internal/config"
	"github.com/matthieukhl/orderdesk/internal/orders"
	mongostore "github.com/matthieukhl/orderdesk/internal/store/mongo"
)

var (
	seedClients int
	seedOrders  int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with sample clients and orders",
	Long: `Insert sample clients and orders for local testing. Clients are
registered as client-1@example.com, client-2@example.com and so on; orders
are spread across them round-robin with increasing totals.

Seeding goes through the same services the API uses, so order ids follow
the normal sequential assignment.`,
	RunE: seedStore,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().IntVar(&seedClients, "clients", 3, "Number of sample clients to register")
	seedCmd.Flags().IntVar(&seedOrders, "orders", 6, "Number of sample orders to place")
}

func seedStore(cmd *cobra.Command, args []string) error {
	fmt.Printf("🌱 Seeding %d clients and %d orders...\n", seedClients, seedOrders)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	st, err := mongostore.Connect(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(context.Background())

	clientSvc := clients.New(st)
	orderSvc := orders.New(st, cfg.Orders.AtomicIDs)

	emails := make([]string, 0, seedClients)
	for i := 1; i <= seedClients; i++ {
		email := fmt.Sprintf("client-%d@example.com", i)
		name := fmt.Sprintf("Sample Client %d", i)

		_, err := clientSvc.Register(ctx, email, name)
		if errors.Is(err, clients.ErrAlreadyRegistered) {
			fmt.Printf("   ↩️  %s already registered, skipping\n", email)
		} else if err != nil {
			return fmt.Errorf("failed to register %s: %w", email, err)
		} else {
			fmt.Printf("   ✅ Registered %s\n", email)
		}
		emails = append(emails, email)
	}

	if len(emails) == 0 {
		return nil
	}

	for i := 0; i < seedOrders; i++ {
		email := emails[i%len(emails)]
		total := float64((i + 1) * 25)

		order, err := orderSvc.Place(ctx, email, total)
		if err != nil {
			return fmt.Errorf("failed to place order for %s: %w", email, err)
		}
		fmt.Printf("   📦 Order #%d for %s (%.2f)\n", order.OrderID, email, order.Total)
	}

	fmt.Println("🎉 Seeding complete")
	return nil
}
