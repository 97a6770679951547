package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/terra-clan/paradigm-advisor/internal/advisor"
	"github.com/terra-clan/paradigm-advisor/internal/models"
)

var paradigmColors = map[models.Color]*color.Color{
	models.ColorBlue:   color.New(color.FgBlue, color.Bold),
	models.ColorGreen:  color.New(color.FgGreen, color.Bold),
	models.ColorAmber:  color.New(color.FgYellow, color.Bold),
	models.ColorPurple: color.New(color.FgMagenta, color.Bold),
}

// paint renders a paradigm label in its display color
func paint(p models.Paradigm) string {
	if c, ok := paradigmColors[p.Color()]; ok {
		return c.Sprint(p.Label())
	}
	return p.Label()
}

func newScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the example scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalogue(catalogDirFlag)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Title", "Recommendation"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			for _, sc := range c.ListScenarios() {
				table.Append([]string{sc.ID, sc.Title, sc.Recommendation.Label()})
			}
			table.Render()
			return nil
		},
	}
}

func newScenarioCmd() *cobra.Command {
	var showCode bool

	cmd := &cobra.Command{
		Use:   "scenario <id>",
		Short: "Show one scenario in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalogue(catalogDirFlag)
			if err != nil {
				return err
			}

			sc, ok := c.FindScenario(args[0])
			if !ok {
				return fmt.Errorf("scenario %q not found", args[0])
			}

			printScenario(cmd.OutOrStdout(), sc, showCode)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showCode, "code", false, "include the code comparison")

	return cmd
}

func printScenario(w io.Writer, sc models.Scenario, showCode bool) {
	fmt.Fprintf(w, "%s (%s)\n", sc.Title, paint(sc.Recommendation))
	fmt.Fprintf(w, "%s\n\nRequirements:\n", sc.Description)
	for _, req := range sc.Requirements {
		fmt.Fprintf(w, "  - %s\n", req)
	}
	fmt.Fprintf(w, "\nWhy: %s\n", sc.Reason)

	if !showCode || !sc.CodeExample.HasAny() {
		return
	}
	if sc.CodeExample.ObjectOriented != "" {
		fmt.Fprintf(w, "\n--- %s ---\n%s\n", models.ParadigmObjectOriented.Label(), strings.TrimRight(sc.CodeExample.ObjectOriented, "\n"))
	}
	if sc.CodeExample.Alternative != "" {
		fmt.Fprintf(w, "\n--- %s ---\n%s\n", sc.CodeExample.AlternativeLabel, strings.TrimRight(sc.CodeExample.Alternative, "\n"))
	}
}

func newCriteriaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "List the criteria the recommendation is scored on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadCatalogue(catalogDirFlag)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Criterion", "Favors"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			for _, cr := range c.ListCriteria() {
				table.Append([]string{cr.ID, cr.Label, cr.Favor.Label()})
			}
			table.Render()
			return nil
		},
	}
}

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <criterion-id>...",
		Short: "Score criteria and print the recommended paradigm",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalogue(catalogDirFlag)
			if err != nil {
				return err
			}

			var ids []string
			for _, arg := range args {
				if _, ok := c.FindCriterion(arg); !ok {
					return fmt.Errorf("unknown criterion %q (see the criteria command)", arg)
				}
				ids = append(ids, arg)
			}

			engine := advisor.NewEngine(c.ListCriteria())
			rec, _ := engine.Recommend(advisor.NewSelection(ids...))

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Recommended: %s\n", paint(rec.Paradigm))
			fmt.Fprintf(w, "Scores: object-oriented %d, functional %d, procedural %d\n",
				rec.Scores.ObjectOriented, rec.Scores.Functional, rec.Scores.Procedural)
			return nil
		},
	}
}
