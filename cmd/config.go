package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrender/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the renderer configuration",
	Long:  `Commands for managing colours and width used when drawing cards.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configSetColorCmd represents the config set-color command
var configSetColorCmd = &cobra.Command{
	Use:   "set-color [item_kind] [hex]",
	Short: "Set the icon colour of an item kind",
	Example: `  cardrender config set-color plants "#2e7d32"
  cardrender config set-color megacredits "#ffd600"
  cardrender config set-color trade_discount "#8e24aa"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SetPaletteColor(args[0], args[1]); err != nil {
			return fmt.Errorf("error setting colour: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Colour for %s set to: %s\n", args[0], args[1])
		return nil
	},
}

// configSetWidthCmd represents the config set-width command
var configSetWidthCmd = &cobra.Command{
	Use:   "set-width [columns]",
	Short: "Set the text width, 0 for the terminal width",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid width: %s", args[0])
		}
		if err := config.SetWidth(width); err != nil {
			return fmt.Errorf("error setting width: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Width set to: %d\n", width)
		return nil
	},
}

// configColorCmd represents the config color command
var configColorCmd = &cobra.Command{
	Use:       "color [on|off]",
	Short:     "Enable or disable coloured output",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var enabled bool
		switch args[0] {
		case "on":
			enabled = true
		case "off":
			enabled = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}

		if err := config.SetColor(enabled); err != nil {
			return fmt.Errorf("error setting colour output: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Coloured output: %s\n", args[0])
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetColorCmd)
	configCmd.AddCommand(configSetWidthCmd)
	configCmd.AddCommand(configColorCmd)
}
