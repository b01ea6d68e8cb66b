package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/internal/seed"
)

// seedCmd generates synthetic demo data.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate synthetic demo data for local development.",
	Long: `Populate the database with randomized demo data.

Creates five demo projects (Customer Support, Technical Support, Sales
Team, Product Bugs, Feature Requests) with three years of randomized
analysis records plus performance and availability data points.

Existing analysis records and data points are wiped first. Demo
projects that already exist are reused rather than duplicated.

Examples:
  # Seed data ending at the current year
  ticketdash seed

  # Seed data for 2023-2025
  ticketdash seed --seed-year 2025`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = appStore.Close() }()

		seeder := seed.New(appStore, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		sum, err := seeder.Run(rootCtx, cfg.SeedYear)
		if err != nil {
			contract.LogFatal("Failed to seed demo data", err)
		}
		fmt.Printf("Seeded %d projects, %d records, %d data points for %d-%d.\n",
			sum.Projects, sum.Records, sum.Values, cfg.SeedYear-2, cfg.SeedYear)
	},
}
