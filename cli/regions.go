package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ozkayhan/wat2/projection"
	"github.com/spf13/cobra"
)

func newRegionsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "regions [name]",
		Short: "List state income tax rates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := projection.Regions()
			if len(args) == 1 {
				r, err := projection.LookupRegion(args[0])
				if err != nil {
					return err
				}
				regions = []projection.Region{r}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				type row struct {
					Name string  `json:"name"`
					Rate float64 `json:"rate"`
				}
				rows := make([]row, len(regions))
				for i, r := range regions {
					rows[i] = row{Name: r.Name, Rate: r.Rate.InexactFloat64()}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			_, err := fmt.Fprintln(out, renderRegions(regions))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
