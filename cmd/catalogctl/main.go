// Command catalogctl browses the product catalog from a terminal, either from the
// built-in catalog or from a running catalog service.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"PrecisionWorks/internal/catalog"
)

var (
	remoteURL string
	simulate  bool
	timeout   time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "catalogctl",
	Short:         "Browse the Precision Works product catalog",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "catalog service base URL; empty reads the built-in catalog")
	rootCmd.PersistentFlags().BoolVar(&simulate, "simulate", false, "simulate API latency and transient failures for the built-in catalog")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "overall command timeout")

	rootCmd.AddCommand(productsCmd, productCmd, capabilitiesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newReader() catalog.Reader {
	if remoteURL != "" {
		return catalog.NewHTTPReader(remoteURL)
	}
	opts := catalog.StubOptions{}
	if simulate {
		opts = catalog.DefaultStubOptions()
	}
	return catalog.NewStub(catalog.NewStore(), opts)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
