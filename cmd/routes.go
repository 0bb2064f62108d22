package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/site"
	"github.com/abhisek/quizdeck/internal/web"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if httpRoutes, _ := cmd.Flags().GetBool("http"); httpRoutes {
			srv, err := web.NewServer(web.Options{Table: site.DefaultTable()})
			if err != nil {
				return err
			}
			routes, err := srv.Routes()
			if err != nil {
				return err
			}
			writeHTTPRoutes(os.Stdout, routes)
			return nil
		}
		writeRoutes(os.Stdout, site.DefaultTable())
		return nil
	},
}

var routesMatchCmd = &cobra.Command{
	Use:   "match <path>",
	Short: "Show which page a path resolves to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		writeMatch(os.Stdout, site.DefaultTable(), args[0])
		return nil
	},
}

func init() {
	routesCmd.Flags().Bool("http", false, "List the HTTP routes registered by serve")

	routesCmd.AddCommand(routesMatchCmd)
}

func writeRoutes(w io.Writer, table *site.Table) {
	fmt.Fprintf(w, "%-14s  %-10s  %-18s  %s\n", "Path", "Page", "Title", "Nav")
	fmt.Fprintln(w, strings.Repeat("─", 52))

	for _, r := range table.Routes() {
		fmt.Fprintf(w, "%-14s  %-10s  %-18s  %s\n", r.Path, r.Page.ID, r.Page.Title, navLabel(r))
	}
	fb := table.Fallback()
	fmt.Fprintf(w, "%-14s  %-10s  %-18s  %s\n", fb.Path, fb.Page.ID, fb.Page.Title, navLabel(fb))

	fmt.Fprintf(w, "\n%d routes + fallback\n", len(table.Routes()))
}

func navLabel(r site.Route) string {
	if r.Bare {
		return "no"
	}
	return "yes"
}

func writeMatch(w io.Writer, table *site.Table, path string) {
	m := table.Match(path)
	fmt.Fprintf(w, "path:   %s\n", m.Path)
	fmt.Fprintf(w, "page:   %s (%s)\n", m.Route.Page.ID, m.Route.Page.Title)
	fmt.Fprintf(w, "found:  %t\n", m.Found)
	if target, ok := m.Route.Page.MountRedirect(m.Path); ok {
		fmt.Fprintf(w, "redirect: %s\n", target)
	}
}

func writeHTTPRoutes(w io.Writer, routes []web.RouteInfo) {
	for _, r := range routes {
		fmt.Fprintf(w, "%-12s  %s\n", strings.Join(r.Methods, ","), r.Path)
	}
}
