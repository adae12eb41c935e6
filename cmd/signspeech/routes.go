package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vcrobe/signspeech/internal/app"
	"github.com/vcrobe/signspeech/internal/locale"
	"github.com/vcrobe/signspeech/router"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "routes",
		Short:   "List the route table",
		GroupID: "site",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(router.NewMemoryHistory("/"), locale.Default(), nil)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tNAME\tDEPTH")
			for _, route := range a.Engine.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", route.Path, route.Name, len(route.Chain))
			}
			if notFound, ok := a.Engine.Resolve(""); !ok && notFound != nil {
				fmt.Fprintf(w, "%s\t%s\t%d\n", "*", notFound.Name, len(notFound.Chain))
			}
			return w.Flush()
		},
	}
}
