package cmd

import (
	"fmt"

	"geotutor/internal/advisor"
	"geotutor/internal/difficulty"
	"geotutor/internal/geometry"
	"geotutor/internal/problemgen"

	"github.com/spf13/cobra"
)

var exampleCmd = &cobra.Command{
	Use:   "example [shape]",
	Short: "Print a worked example (no profile, no event log)",
	Long: `Generate and print a worked example for a shape.

This is stateless — nothing is graded and nothing is persisted. With no
argument, one example per shape is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shapes := geometry.Kinds()
		if len(args) == 1 {
			kind, err := geometry.Parse(args[0])
			if err != nil {
				return err
			}
			shapes = []geometry.Kind{kind}
		}

		gen := problemgen.New(nil)
		boundary := advisor.NewBoundary("ontology", advisorOrNil())

		for i, shape := range shapes {
			if i > 0 {
				fmt.Println()
			}
			p := gen.Generate(shape, difficulty.Easy)
			fmt.Printf("%s\n", p.Shape)
			fmt.Printf("  %s\n", p.Prompt())
			fmt.Printf("  %s\n", geometry.Explanation(shape))
			fmt.Printf("  Area = %.2f\n", p.CorrectArea)
			if note := boundary.Annotate(cmd.Context(), p); note != "" {
				fmt.Printf("  %s\n", note)
			}
		}
		return nil
	},
}

// advisorOrNil loads the ontology advisor as an interface, keeping the
// boundary quiet rather than wrapping a typed nil when loading fails.
func advisorOrNil() advisor.Advisor {
	if ont := advisor.TryLoad(advisor.DefaultOntologyPath()); ont != nil {
		return ont
	}
	return nil
}
