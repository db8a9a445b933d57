package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voxlab/hostbox/internal/host"
	"github.com/voxlab/hostbox/internal/provider"
	"github.com/voxlab/hostbox/internal/speech"
)

func runListVoices(cmd *cobra.Command, args []string) error {
	fmt.Println("\nAvailable voices:")
	fmt.Printf("\n  %s\n", strings.Repeat("─", 50))
	fmt.Printf("  %-24s %-10s %s\n", "ID", "NAME", "GENDER")
	for i, v := range speech.Voices {
		def := ""
		if i == 0 {
			def = " (default)"
		}
		fmt.Printf("  %-24s %-10s %s%s\n", v.ID, v.Name, v.Gender, def)
	}
	fmt.Println()
	return nil
}

func runListModels(cmd *cobra.Command, args []string) error {
	gw := provider.NewGateway(provider.ConfigFromEnv())

	if gw.IsReady() {
		fmt.Printf("\nActive backend: %s (model %s)\n", gw.CurrentBackend(), gw.CurrentModel())
	} else {
		fmt.Println("\nNo LLM backend configured; generation falls back to canned templates.")
	}

	models := gw.ListModels()
	if len(models) > 0 {
		fmt.Printf("\n  %s\n", strings.Repeat("─", 60))
		fmt.Printf("  %-28s %-20s %s\n", "ID", "NAME", "COST")
		for _, m := range models {
			fmt.Printf("  %-28s %-20s %s\n", m.ID, m.Name, m.Cost)
		}
	}

	if help := gw.ConfigurationHelp(); help != "" {
		fmt.Printf("\n%s\n", help)
	}
	fmt.Println()
	return nil
}

func runListHosts(cmd *cobra.Command, args []string) error {
	fmt.Println("\nAvailable host personalities:")
	for i := range host.Catalog {
		h := &host.Catalog[i]
		def := ""
		if i == 0 {
			def = " (default)"
		}
		fmt.Printf("\n  %-10s %s%s\n", h.ID, h.DisplayName, def)
		fmt.Printf("    %s\n", h.Description)
	}
	fmt.Println()
	return nil
}
