package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tripplanner",
	Short: "Itinerary planning service",
	Long: `tripplanner keeps itinerary drafts for the mobile app, serves the
destination catalog and saves finished itineraries to the trip API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(destinationsCmd)
	rootCmd.AddCommand(quizCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
