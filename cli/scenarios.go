package cli

import (
	"fmt"

	"github.com/ozkayhan/wat2/factory"
	"github.com/spf13/cobra"
)

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderScenarios(factory.Presets()))
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export <id>",
		Short: "Print a built-in scenario as a full TOML plan",
		Long: `Print a built-in scenario as TOML with every field filled in, ready to
edit and pass back with "wat2 project --file".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf := factory.NewScenarioFactory()
			doc, err := factory.Preset(args[0])
			if err != nil {
				return err
			}
			state, err := sf.FromDoc(doc)
			if err != nil {
				return err
			}
			full := sf.ToDoc(doc.ID, doc.Name, state)
			full.Description = doc.Description
			full.Category = doc.Category

			data, err := sf.EncodeTOML(full)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return cmd
}
