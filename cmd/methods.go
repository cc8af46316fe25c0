package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/wordnik/wordnik-go/internal/methodfilter"
	"github.com/wordnik/wordnik-go/internal/nameutil"
	"github.com/wordnik/wordnik-go/wordnik"
)

const (
	outputTable = "table"
	outputCSV   = "csv"
)

var (
	flagInclude       string
	flagExclude       string
	flagMethodsOutput string
)

var methodsCmd = &cobra.Command{
	Use:   "methods [method]",
	Short: "List the available methods, or describe one",
	Long: `List every method synthesized from the endpoint descriptors. With a method
name, print its documentation instead.

Examples:
  wordnik methods
  wordnik methods --include word_get_examples,word_get_definitions --output csv
  wordnik methods word_get_examples`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMethods,
}

func init() {
	f := methodsCmd.Flags()
	f.StringVar(&flagInclude, "include", "", "only list these methods (comma-separated)")
	f.StringVar(&flagExclude, "exclude", "", "leave out these methods (comma-separated)")
	f.StringVarP(&flagMethodsOutput, "output", "o", outputTable, "output: table, csv or json")
}

// methodRow is one line of the methods listing.
type methodRow struct {
	Name    string `csv:"name" json:"name"`
	Command string `csv:"command" json:"command"`
	Verb    string `csv:"verb" json:"verb"`
	Path    string `csv:"path" json:"path"`
	Summary string `csv:"summary" json:"summary"`
}

func runMethods(cmd *cobra.Command, args []string) error {
	if err := validateOutput(flagMethodsOutput, outputTable, outputCSV, outputJSON); err != nil {
		return err
	}
	if flagInclude != "" && flagExclude != "" {
		return fmt.Errorf("--include and --exclude cannot be used together")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	methods, err := loadMethods(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		name := nameutil.MethodName(args[0])
		for _, m := range methods {
			if m.Name == name {
				fmt.Fprint(cmd.OutOrStdout(), m.Doc())
				return nil
			}
		}
		return methodfilter.NotFoundError(name, methodNames(methods))
	}

	methods, err = filterMethods(methods, flagInclude, flagExclude)
	if err != nil {
		return err
	}

	rows := make([]methodRow, 0, len(methods))
	for _, m := range methods {
		rows = append(rows, methodRow{
			Name:    m.Name,
			Command: nameutil.CommandName(m.Name),
			Verb:    string(m.Operation.Verb),
			Path:    m.Operation.Path,
			Summary: m.Operation.Summary,
		})
	}

	w := cmd.OutOrStdout()
	switch flagMethodsOutput {
	case outputCSV:
		return gocsv.Marshal(rows, w)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "METHOD\tVERB\tPATH\tSUMMARY")
		for _, r := range rows {
			summary := r.Summary
			if len(summary) > 60 {
				summary = summary[:57] + "..."
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Verb, r.Path, summary)
		}
		return tw.Flush()
	}
}

func filterMethods(methods []wordnik.Method, include, exclude string) ([]wordnik.Method, error) {
	return methodfilter.Filter(methods, func(m wordnik.Method) string { return m.Name },
		methodfilter.ParseList(include), methodfilter.ParseList(exclude))
}

func methodNames(methods []wordnik.Method) []string {
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}
	return names
}

func sortMethods(methods []wordnik.Method) {
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })
}
