package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriGen/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backend profiles",
	Long:  `Manage profiles describing which generation backend to talk to and how.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range profileNames(cfg, "") {
			profile := cfg.Profiles[name]
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Provider: %s\n", providerOrDefault(profile.Provider))
			if profile.BackendURL != "" {
				fmt.Printf("    Backend URL: %s\n", profile.BackendURL)
			}
			if profile.Model != "" {
				fmt.Printf("    Model: %s\n", profile.Model)
			}
			hasKey := "No"
			if profile.APIKey != "" {
				hasKey = "Yes"
			}
			fmt.Printf("    API Key: %s\n", hasKey)
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := config.NormalizeProfileName(args[0])
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		fmt.Printf("Provider: %s\n", providerOrDefault(profile.Provider))
		fmt.Printf("Backend URL: %s\n", profile.BackendURL)
		fmt.Printf("Model: %s\n", profile.Model)
		if profile.Timeout > 0 {
			fmt.Printf("Timeout: %ds\n", profile.Timeout)
		} else {
			fmt.Println("Timeout: none")
		}
		hasKey := "Not set"
		if profile.APIKey != "" {
			hasKey = "Set (hidden for security)"
		}
		fmt.Printf("API Key: %s\n", hasKey)
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		profileName = config.NormalizeProfileName(profileName)
		if profileName == "" {
			log.Fatalf("Profile name cannot be empty")
		}
		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.Profile{
			Provider:   config.ProviderGenerate,
			BackendURL: config.DefaultBackendURL,
		})
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.SetProfile(profileName, profile)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := selectProfile(cfg, args, "Select profile to edit", "")
		if err != nil {
			log.Fatalf("%v", err)
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.SetProfile(profileName, profile)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := selectProfile(cfg, args, "Select profile to delete", "")
		if err != nil {
			log.Fatalf("%v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		delete(cfg.Profiles, profileName)

		if cfg.ActiveProfile == profileName {
			if others := profileNames(cfg, ""); len(others) > 0 {
				cfg.ActiveProfile = others[0]
			} else {
				// Never leave the config without a usable profile.
				cfg.ActiveProfile = cfg.SetProfile("default", config.Profile{
					Provider:   config.ProviderGenerate,
					BackendURL: config.DefaultBackendURL,
				})
			}
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(profileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}

		profileName, err := selectProfile(cfg, args, "Select profile to switch to", cfg.ActiveProfile)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.UseProfile(profileName); err != nil {
			log.Fatalf("%v", err)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// profileNames returns the sorted profile names, leaving out skip.
func profileNames(cfg *config.Config, skip string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for _, name := range cfg.ProfileNames() {
		if name != skip {
			names = append(names, name)
		}
	}
	return names
}

func selectProfile(cfg *config.Config, args []string, label, skip string) (string, error) {
	if len(args) > 0 {
		return config.NormalizeProfileName(args[0]), nil
	}

	names := profileNames(cfg, skip)
	if len(names) == 0 {
		return "", fmt.Errorf("no profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return name, nil
}

// promptProfile walks the user through every profile field, seeded with
// the values of current.
func promptProfile(current config.Profile) (config.Profile, error) {
	providers := []string{config.ProviderGenerate, config.ProviderOpenAI}
	cursor := 0
	if current.Provider == config.ProviderOpenAI {
		cursor = 1
	}
	providerSelect := promptui.Select{
		Label:     "Provider",
		Items:     providers,
		CursorPos: cursor,
	}
	_, provider, err := providerSelect.Run()
	if err != nil {
		return current, err
	}
	current.Provider = provider

	urlLabel := "Backend URL"
	if provider == config.ProviderOpenAI {
		urlLabel = "Base URL (optional)"
	}
	urlPrompt := promptui.Prompt{
		Label:   urlLabel,
		Default: current.BackendURL,
	}
	if current.BackendURL, err = urlPrompt.Run(); err != nil {
		return current, err
	}

	if provider == config.ProviderOpenAI {
		apiKeyPrompt := promptui.Prompt{
			Label:   "API Key",
			Default: current.APIKey,
			Mask:    '*',
		}
		if current.APIKey, err = apiKeyPrompt.Run(); err != nil {
			return current, err
		}

		model := current.Model
		if model == "" {
			model = config.DefaultModel
		}
		modelPrompt := promptui.Prompt{
			Label:   "Model",
			Default: model,
		}
		if current.Model, err = modelPrompt.Run(); err != nil {
			return current, err
		}
	}

	timeoutPrompt := promptui.Prompt{
		Label:   "Timeout in seconds (0 waits indefinitely)",
		Default: strconv.Itoa(current.Timeout),
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil || n < 0 {
				return fmt.Errorf("enter a whole number of seconds")
			}
			return nil
		},
	}
	timeout, err := timeoutPrompt.Run()
	if err != nil {
		return current, err
	}
	current.Timeout, _ = strconv.Atoi(timeout)

	return current, nil
}

func providerOrDefault(p string) string {
	if p == "" {
		return config.ProviderGenerate
	}
	return p
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
