package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardrender/internal/display"
)

// listCmd represents the ls command
var listCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		tag, _ := cmd.Flags().GetString("tag")

		out := cmd.OutOrStdout()
		for _, found := range c.List() {
			if tag != "" && !hasTag(found.Tags, tag) {
				continue
			}
			fmt.Fprintf(out, "  %-32s %-24s %-10s %3d\n",
				found.ID, found.Name, display.Title(string(found.Type)), found.Cost)
		}
		return nil
	},
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func init() {
	RootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("tag", "t", "", "Only list cards carrying this tag")
}
