package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/orderdesk/internal/config"
	mongostore "github.com/matthieukhl/orderdesk/internal/store/mongo"
)

var checkEmail string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check store connectivity and order state",
	Long: `Connect to the configured store, verify it is reachable and print
the current highest order id. With --email, also list the orders recorded
for that client.`,
	RunE: checkStore,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkEmail, "email", "", "List orders for this client email")
}

func checkStore(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Checking store...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st, err := mongostore.Connect(ctx, &cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to connect to store: %w", err)
	}
	defer st.Close(context.Background())

	fmt.Println("✅ Store is reachable")

	maxID, err := st.MaxOrderID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max order id: %w", err)
	}
	if maxID == 0 {
		fmt.Println("📦 No orders recorded yet")
	} else {
		fmt.Printf("📦 Highest order id: %d\n", maxID)
	}

	if checkEmail == "" {
		return nil
	}

	orderList, err := st.FindOrdersByEmail(ctx, checkEmail)
	if err != nil {
		return fmt.Errorf("failed to list orders for %s: %w", checkEmail, err)
	}
	if len(orderList) == 0 {
		fmt.Printf("📭 No orders for %s\n", checkEmail)
		return nil
	}

	fmt.Printf("📬 Orders for %s:\n", checkEmail)
	for _, order := range orderList {
		fmt.Printf("   #%d  %-12s %.2f\n", order.OrderID, order.Status, order.Total)
	}

	return nil
}
