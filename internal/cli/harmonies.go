package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huewheel/internal/harmony"
	"github.com/jmylchreest/huewheel/internal/output"
)

func newHarmoniesCmd(g *globalOptions) *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "harmonies",
		Short: "List the harmony catalog",
		Long: `List every harmony offset with the categories it belongs to and the
identifiers used for it in json and css output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := g.newLogger(cmd.ErrOrStderr())

			filter, err := harmony.ParseCategorySet(categories)
			if err != nil {
				return err
			}

			table := output.NewTable([]string{"Offset", "Categories", "Identifiers", "Label"})
			shown := 0
			for _, e := range harmony.Catalog() {
				if filter.Len() > 0 && !e.In(filter) {
					continue
				}
				names := make([]string, len(e.Categories))
				for i, c := range e.Categories {
					names[i] = c.String()
				}
				table.AddRow([]string{
					strconv.Itoa(e.AngleOffset),
					strings.Join(names, ", "),
					strings.Join(e.Identifiers, ", "),
					e.Label,
				})
				shown++
			}
			logger.Debug("listed harmonies", "entries", shown)

			_, err = fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "only show entries in these categories")

	return cmd
}
