// tabua prints a calculated tide table for one of the reference ports,
// useful for eyeballing the fallback model without hitting the endpoints.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/praiaspe/litoral/internal/catalog"
	"github.com/praiaspe/litoral/internal/tide"
)

var (
	portFlag string
	dateFlag string
)

var rootCmd = &cobra.Command{
	Use:          "tabua",
	Short:        "Print a calculated tide table for a Pernambuco reference port",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tables := catalog.Default()

		if portFlag == "" {
			fmt.Println("Available ports:")
			for _, p := range tables.Ports {
				fmt.Printf("  %-10s %s (%.4f, %.4f)\n", p.Slug, p.Name, p.Lat, p.Lon)
			}
			return nil
		}

		port, ok := tables.ResolvePort(portFlag)
		if !ok {
			return fmt.Errorf("unknown port %q, try one of: recife, suape, tamandare", portFlag)
		}

		date := time.Now().UTC()
		if dateFlag != "" {
			var err error
			date, err = time.Parse("2006-01-02", dateFlag)
			if err != nil {
				return fmt.Errorf("parsing date %q: %w", dateFlag, err)
			}
		}

		fmt.Printf("%s — %s\n", port.Name, date.Format("2006-01-02"))
		for _, ev := range tide.NewCalculator().Calculate(date, port) {
			fmt.Printf("  %s  %-4s  %.1fm  %s\n", ev.Time, ev.Type, ev.HeightM, ev.Description)
		}

		return nil
	},
}

func main() {
	rootCmd.Flags().StringVarP(&portFlag, "port", "p", "", "port slug or name (recife, suape, tamandare)")
	rootCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date in YYYY-MM-DD format (default today, UTC)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
