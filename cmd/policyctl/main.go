// policyctl generates AI usage policies from the command line, without a
// running server.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/compligenie/compligenie/internal/policy"
	"github.com/compligenie/compligenie/internal/render"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// generateFlags holds the parsed flags for the generate and preview
// commands.
type generateFlags struct {
	company    string
	industry   string
	state      string
	employees  int
	tools      []string
	priority   string
	risk       string
	benchmarks bool
	frameworks []string
	format     string
	out        string
}

func (f generateFlags) request() policy.GenerationRequest {
	return policy.GenerationRequest{
		CompanyName:                f.company,
		Industry:                   f.industry,
		State:                      f.state,
		EmployeeCount:              f.employees,
		AITools:                    f.tools,
		CompliancePriority:         f.priority,
		RiskTolerance:              f.risk,
		IncludeBenchmarks:          f.benchmarks,
		CustomComplianceFrameworks: f.frameworks,
	}
}

func main() {
	root := &cobra.Command{
		Use:     "policyctl",
		Short:   "Generate AI usage policy documents",
		Version: version,
	}

	var flags generateFlags
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a complete policy document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(flags)
		},
	}
	addRequestFlags(generateCmd, &flags)
	generateCmd.Flags().StringVar(&flags.format, "format", "html", "Output format: html or json")
	generateCmd.Flags().StringVar(&flags.out, "out", "", "Write output to file instead of stdout")

	var previewFlags generateFlags
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "List the sections a request would produce",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(previewFlags)
		},
	}
	addRequestFlags(previewCmd, &previewFlags)

	listCmd := &cobra.Command{
		Use:   "catalogs",
		Short: "List known industries and state overlays",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println("Industries:")
			for _, name := range policy.Industries() {
				fmt.Println("  " + name)
			}
			fmt.Println("States:")
			fmt.Println("  " + strings.Join(policy.States(), ", "))
		},
	}

	root.AddCommand(generateCmd, previewCmd, listCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func addRequestFlags(cmd *cobra.Command, flags *generateFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.company, "company", "", "Company name (required)")
	f.StringVar(&flags.industry, "industry", "", "Industry, e.g. healthcare or finance (required)")
	f.StringVar(&flags.state, "state", "", "Two-letter state code (required)")
	f.IntVar(&flags.employees, "employees", 1, "Employee count")
	f.StringSliceVar(&flags.tools, "tools", nil, "AI tools in use (may be repeated)")
	f.StringVar(&flags.priority, "priority", "", "Compliance priority: strict, balanced, or flexible")
	f.StringVar(&flags.risk, "risk-tolerance", "", "Risk tolerance: low, medium, or high")
	f.BoolVar(&flags.benchmarks, "benchmarks", false, "Append the industry benchmarks section")
	f.StringSliceVar(&flags.frameworks, "frameworks", nil, "Extra compliance frameworks to include")
	_ = cmd.MarkFlagRequired("company")
	_ = cmd.MarkFlagRequired("industry")
	_ = cmd.MarkFlagRequired("state")
}

func runGenerate(flags generateFlags) error {
	renderer, err := render.For(flags.format)
	if err != nil {
		return err
	}
	doc, _, err := policy.Generate(flags.request())
	if err != nil {
		return err
	}
	out, err := renderer.Render(doc, nil)
	if err != nil {
		return err
	}
	if flags.out == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(flags.out, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flags.out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d sections, ~%d pages)\n", flags.out, len(doc.Sections), policy.EstimateDocumentPages(doc))
	return nil
}

func runPreview(flags generateFlags) error {
	titles, pages, err := policy.Preview(flags.request())
	if err != nil {
		return err
	}
	for i, title := range titles {
		fmt.Printf("%2d. %s\n", i+1, title)
	}
	fmt.Printf("Estimated length: %d pages\n", pages)
	return nil
}
