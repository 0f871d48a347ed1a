package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardrender/internal/config"
	"github.com/arcanaland/cardrender/internal/display"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Draw the layout of a card in the terminal",
	Long: `Show draws a card's header and body layout using terminal text.
Use canonical card IDs like 'base.arctic_algae' or 'venus.dirigibles'.

Colours and width come from your config file
(XDG_CONFIG_HOME/cardrender/config.toml) unless overridden by flags.

Examples:
  cardrender show base.birds
  cardrender show --legend base.io_mining_industries
  cardrender show --no-color --width 60 colonies.cryo_sleep`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		palette, err := cfg.ItemPalette()
		if err != nil {
			return err
		}

		opts := display.Options{
			Width:   cfg.Width,
			Color:   cfg.Color,
			Palette: palette,
		}
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			opts.Color = false
		}
		if width, _ := cmd.Flags().GetInt("width"); width > 0 {
			opts.Width = width
		}

		c, err := loadCatalog()
		if err != nil {
			return err
		}

		found, err := c.GetCard(cardID)
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		r, err := display.New(cmd.OutOrStdout(), opts)
		if err != nil {
			return fmt.Errorf("error creating renderer: %w", err)
		}

		logger.Debug("Rendering card", zap.String("id", found.ID), zap.Int("rows", found.Render.Len()))
		if err := r.RenderCard(found); err != nil {
			return err
		}

		if legend, _ := cmd.Flags().GetBool("legend"); legend {
			fmt.Fprintln(cmd.OutOrStdout(), "  Legend:")
			for _, line := range r.Legend(found.Render) {
				fmt.Fprintln(cmd.OutOrStdout(), "    "+line)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("legend", false, "Print a legend of the icons used by the card")
	showCmd.Flags().Bool("no-color", false, "Disable coloured output")
	showCmd.Flags().IntP("width", "w", 0, "Wrap text at this width instead of the configured one")
}
