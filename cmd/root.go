package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/app"
	"github.com/Rorical/RoriGen/internal/config"
	"github.com/Rorical/RoriGen/internal/logger"
)

var (
	attachPath string
	themeName  string
)

var rootCmd = &cobra.Command{
	Use:   "rorigen",
	Short: "AI content generator for the terminal",
	Long:  `RoriGen sends a prompt to a content generation backend and types the answer out in your terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		runApp(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadDotEnv)

	rootCmd.Flags().StringVar(&attachPath, "attach", "", "attach a file at start")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "start in the light or dark theme")

	rootCmd.AddCommand(profileCmd)
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: failed to load .env file: %v", err)
	}
}

// initLogger opens the log file; failures fall back to discarding logs.
func initLogger(cfg *config.Config) io.Closer {
	path, err := config.GetLogPath()
	if err != nil {
		log.Printf("warning: no log file: %v", err)
		return nil
	}
	closer, err := logger.Init(cfg.GetLogLevel(), path)
	if err != nil {
		log.Printf("warning: failed to open log file: %v", err)
		return nil
	}
	return closer
}

func runApp(cfg *config.Config) {
	if closer := initLogger(cfg); closer != nil {
		defer closer.Close()
	}

	application, err := app.NewApplication(cfg, app.Options{
		Attach: attachPath,
		Theme:  themeName,
	})
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
