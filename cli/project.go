package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ozkayhan/wat2/api"
	"github.com/ozkayhan/wat2/factory"
	"github.com/ozkayhan/wat2/form"
	"github.com/spf13/cobra"
)

// fieldFlags maps project flags to form fields.
var fieldFlags = []struct {
	name  string
	field form.Field
	usage string
}{
	{"start", form.FieldStartDate, "season start date (YYYY-MM-DD)"},
	{"end", form.FieldEndDate, "season end date (YYYY-MM-DD)"},
	{"upfront", form.FieldUpfrontCost, "program fee paid before the season"},
	{"job1-wage", form.FieldJob1Wage, "job 1 hourly wage"},
	{"job1-hours", form.FieldJob1Hours, "job 1 hours per week"},
	{"job2-wage", form.FieldJob2Wage, "job 2 hourly wage"},
	{"job2-hours", form.FieldJob2Hours, "job 2 hours per week"},
	{"rate", form.FieldStateTaxRate, "state income tax, percent"},
	{"housing", form.FieldHousingCost, "weekly housing cost"},
	{"living", form.FieldWeeklyLivingCost, "weekly food and living cost"},
	{"travel", form.FieldTravelCost, "post-season travel budget"},
	{"purchase", form.FieldPurchaseCost, "one-time purchases"},
}

func newProjectCmd() *cobra.Command {
	var (
		scenario   string
		file       string
		region     string
		ficaExempt bool
		overtime   bool
		asJSON     bool
		save       string
	)
	values := make(map[string]*string, len(fieldFlags))

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a season",
		Long: `Project a season. The plan starts from the default J-1 summer, a built-in
scenario (--scenario) or a scenario file (--file, .toml or .json); any field
flag given on top overrides it. Numbers are read leniently: text that is
not a number counts as zero.`,
		Example: `  wat2 project
  wat2 project --scenario two-jobs-overtime --json
  wat2 project --start 2025-06-01 --end 2025-08-31 --job1-wage 16 --job1-hours 45 --state Michigan
  wat2 project --file plan.toml --save edited.toml --housing 140`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			sf := factory.NewScenarioFactory()

			state, err := baseState(sf, scenario, file)
			if err != nil {
				return err
			}

			fm := form.NewWithState(state)
			for _, ff := range fieldFlags {
				if cmd.Flags().Changed(ff.name) {
					if err := fm.Set(ff.field, *values[ff.name]); err != nil {
						return err
					}
				}
			}
			if cmd.Flags().Changed("state") {
				if err := fm.SelectRegion(region); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("fica-exempt") {
				if err := fm.SetFlag(form.FlagFicaExempt, ficaExempt); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("overtime") {
				if err := fm.SetFlag(form.FlagOvertime, overtime); err != nil {
					return err
				}
			}

			state = fm.State()
			result := fm.Project()
			logger.Debug("projection computed", "valid", result.IsValid, "days", result.TotalDays)

			if save != "" {
				id := strings.TrimSuffix(filepath.Base(save), filepath.Ext(save))
				data, err := sf.EncodeTOML(sf.ToDoc(id, id, state))
				if err != nil {
					return err
				}
				if err := os.WriteFile(save, data, 0o644); err != nil {
					return fmt.Errorf("save scenario: %w", err)
				}
				logger.Info("scenario saved", "path", save)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(api.NewProjectionResponse(state, result))
			}
			_, err = fmt.Fprintln(out, renderProjection(state, result.ToDisplay()))
			return err
		},
	}

	for _, ff := range fieldFlags {
		values[ff.name] = cmd.Flags().String(ff.name, "", ff.usage)
	}
	cmd.Flags().StringVarP(&scenario, "scenario", "s", "", "start from a built-in scenario")
	cmd.Flags().StringVarP(&file, "file", "f", "", "start from a scenario file (.toml or .json)")
	cmd.Flags().StringVar(&region, "state", "", "take the state tax rate from the table (e.g. Oregon)")
	cmd.Flags().BoolVar(&ficaExempt, "fica-exempt", true, "exempt from Social Security and Medicare")
	cmd.Flags().BoolVar(&overtime, "overtime", true, "pay hours over 40 at 1.5x")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	cmd.Flags().StringVar(&save, "save", "", "write the resulting plan to a TOML file")
	cmd.MarkFlagsMutuallyExclusive("scenario", "file")

	return cmd
}

// baseState picks the plan the flags are applied on top of.
func baseState(sf *factory.ScenarioFactory, scenario, file string) (form.State, error) {
	switch {
	case scenario != "" && file != "":
		return form.State{}, errors.New("--scenario and --file are mutually exclusive")
	case file != "":
		doc, err := sf.LoadFile(file)
		if err != nil {
			return form.State{}, err
		}
		return sf.FromDoc(doc)
	case scenario != "":
		return sf.PresetState(scenario)
	default:
		return form.DefaultState(), nil
	}
}
