package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// configurationCmd prints the remote API configuration
var configurationCmd = &cobra.Command{
	Use:   "configuration",
	Short: "Show the TMDb system configuration",
	Long: `Fetch and display the TMDb system configuration: the image base
URLs with their valid size names, and the change keys recognized by the
changes endpoints.`,
	RunE: runConfiguration,
}

func init() {
	rootCmd.AddCommand(configurationCmd)
}

func runConfiguration(cmd *cobra.Command, args []string) error {
	config, err := client.GetConfiguration(context.Background())
	if err != nil {
		return err
	}

	fmt.Println("Images")
	fmt.Printf("  Base URL:        %s\n", config.Images.BaseURL)
	fmt.Printf("  Secure base URL: %s\n", config.Images.SecureBaseURL)
	printSizes("Poster sizes", config.Images.PosterSizes)
	printSizes("Backdrop sizes", config.Images.BackdropSizes)
	printSizes("Profile sizes", config.Images.ProfileSizes)
	printSizes("Logo sizes", config.Images.LogoSizes)
	printSizes("Still sizes", config.Images.StillSizes)

	fmt.Printf("\nChange keys (%d)\n", len(config.ChangeKeys))
	if len(config.ChangeKeys) > 0 {
		fmt.Printf("  %s\n", strings.Join(config.ChangeKeys, ", "))
	}

	return nil
}

func printSizes(label string, sizes []string) {
	if len(sizes) == 0 {
		return
	}
	fmt.Printf("  %-16s %s\n", label+":", strings.Join(sizes, ", "))
}
