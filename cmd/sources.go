package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/intel-cli/internal/model"
	"github.com/sells-group/intel-cli/internal/registry"
	"github.com/sells-group/intel-cli/internal/urlgen"
)

var sourcesCompanyName string

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List the source registry, optionally resolved for a company",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := registry.Load(cfg.Registry.Path)
		if err != nil {
			return eris.Wrap(err, "load source registry")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

		if sourcesCompanyName == "" {
			fmt.Fprintln(w, "NAME\tCATEGORY\tPRIORITY\tTEMPLATE")
			for _, def := range reg.Ordered() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.Name, def.Category, def.Priority, def.URLTemplate)
			}
			return w.Flush()
		}

		url, _ := cmd.Flags().GetString("url")
		resolved, err := urlgen.Resolve(model.CompanyIdentity{Name: sourcesCompanyName, URL: url}, reg)
		if err != nil {
			return eris.Wrap(err, "resolve sources")
		}

		fmt.Fprintln(w, "NAME\tCATEGORY\tPRIORITY\tURL")
		for _, src := range resolved {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", src.Name, src.Category, src.Priority, src.URL)
		}
		return w.Flush()
	},
}

func init() {
	sourcesCmd.Flags().StringVar(&sourcesCompanyName, "name", "", "resolve templates for this company name")
	sourcesCmd.Flags().String("url", "", "canonical company website URL")
	rootCmd.AddCommand(sourcesCmd)
}
