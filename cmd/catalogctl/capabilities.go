package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"PrecisionWorks/internal/capability"
)

var (
	featuredOnly bool
	capCategory  string
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "List manufacturing capabilities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		lat := capability.Latency{}
		if simulate {
			lat = capability.DefaultLatency()
		}
		svc := capability.NewService(capability.Seed(), lat)

		var (
			items []capability.Capability
			err   error
		)
		switch {
		case capCategory != "":
			items, err = svc.GetByCategory(ctx, capCategory)
		case featuredOnly:
			items, err = svc.GetFeatured(ctx)
		default:
			items, err = svc.GetAll(ctx)
		}
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tFEATURED")
		for _, c := range items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", c.ID, c.Title, c.Category, c.Featured)
		}
		return tw.Flush()
	},
}

func init() {
	capabilitiesCmd.Flags().BoolVar(&featuredOnly, "featured", false, "only featured capabilities")
	capabilitiesCmd.Flags().StringVar(&capCategory, "category", "", "category filter (case-insensitive)")
}
