package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/docsite"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	ctrl := docsite.NewSearchController(deps.Searcher, deps.Navigator, deps.Tabs)
	ctrl.Open()

	if c.Interactive {
		return c.interactive(deps, ctrl)
	}

	results := ctrl.SetQuery(strings.Join(c.Query, " "))
	printResults(deps.Stdout, results)

	if c.Open && len(results) > 0 {
		if err := ctrl.Select(deps.Ctx, results[0]); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
			return err
		}
	}
	return nil
}

// interactive reads one query per line. A line holding a result number
// selects that result and ends the session, as does EOF.
func (c *SearchCmd) interactive(deps *Dependencies, ctrl *docsite.SearchController) error {
	if q := strings.Join(c.Query, " "); q != "" {
		printResults(deps.Stdout, ctrl.SetQuery(q))
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "search> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			ctrl.Close()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if n, err := strconv.Atoi(line); err == nil {
			results := ctrl.Results()
			if n < 1 || n > len(results) {
				fmt.Fprintf(deps.Stdout, "No result %d.\n", n)
				continue
			}
			r := results[n-1]
			if err := ctrl.Select(deps.Ctx, r); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", docsite.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Opened %s\n", r.URL)
			return nil
		}

		printResults(deps.Stdout, ctrl.SetQuery(line))
	}
}

func printResults(w io.Writer, results []docsite.SearchRecord) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	for i, r := range results {
		fmt.Fprintf(w, "%2d. [%s] %s  %s\n", i+1, r.Kind, r.Title, r.URL)
		if r.Description != "" {
			fmt.Fprintf(w, "    %s\n", r.Description)
		}
	}
}
