package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start the generator",
	Long:  `Switch to the specified profile and immediately start the generator.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if err := cfg.UseProfile(profileName); err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runApp(cfg)
	},
}

func init() {
	useCmd.Flags().StringVar(&attachPath, "attach", "", "attach a file at start")
	useCmd.Flags().StringVar(&themeName, "theme", "", "start in the light or dark theme")
	rootCmd.AddCommand(useCmd)
}
