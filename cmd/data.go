package cmd

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/config"
	"github.com/Rorical/RoriGen/internal/fetcher"
	"github.com/Rorical/RoriGen/internal/models"
)

var (
	dataURL    string
	dataFormat string
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Fetch and show the backend data document",
	Long:  `Fetch the JSON document from the local data endpoint once and display it.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if closer := initLogger(cfg); closer != nil {
			defer closer.Close()
		}

		url := cfg.GetDataURL()
		if dataURL != "" {
			url = dataURL
		}

		format, err := fetcher.ParseFormat(dataFormat)
		if err != nil {
			log.Fatalf("%v", err)
		}

		widget := fetcher.NewWidget(fetcher.NewClient(url, 10*time.Second), models.ParseTheme(cfg.GetTheme())).
			WithFormat(format)
		if _, err := tea.NewProgram(widget).Run(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func init() {
	dataCmd.Flags().StringVar(&dataURL, "url", "", "override the data endpoint")
	dataCmd.Flags().StringVar(&dataFormat, "format", "json", "render the data as json or yaml")
	rootCmd.AddCommand(dataCmd)
}
