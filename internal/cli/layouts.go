package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabwrap/tabwrap/pkg/render"
)

// layoutDescriptions maps layout names to one-line help text.
var layoutDescriptions = map[string]string{
	"grid":           "box-drawing frame with a header rule below the first row",
	"grid_no_header": "box-drawing frame, every row separated alike (default)",
	"plain":          "no frame, columns separated by two spaces",
}

// layoutsCommand creates the layouts command listing the available
// table layouts.
func (c *CLI) layoutsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List the available table layouts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(styleTitle.Render("Available layouts"))
			for _, name := range render.Names() {
				fmt.Println("  " + styleHighlight.Render(name))
				if desc, ok := layoutDescriptions[name]; ok {
					printDetail("%s", desc)
				}
			}
		},
	}
}
