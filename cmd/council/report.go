package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/llm-council/council-relay/common/helper"
	"github.com/llm-council/council-relay/relay/council"
)

const snippetLimit = 80

// renderReport prints one row per distinct model in request order, followed by the full answers.
func renderReport(w io.Writer, models []string, results council.ResultMap) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no models to report")
		return
	}

	order := reportOrder(models, results)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== LLM Council ===")
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Model", "Status", "Duration", "Answer"})
	table.SetAutoWrapText(false)
	for _, id := range order {
		table.Append(formatRow(results[id]))
	}
	table.Render()

	fmt.Fprintf(w, "\nTotals  | Models: %d | Answered: %d | Failed: %d\n",
		len(results), len(results.Succeeded()), len(results.Failed()))

	for _, id := range order {
		r := results[id]
		if !r.OK() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n%s\n", id, strings.TrimSpace(r.Response.ContentString()))
	}
	fmt.Fprintln(w)
}

// reportOrder keeps the requested order, drops repeats and appends anything not requested sorted.
func reportOrder(models []string, results council.ResultMap) []string {
	seen := make(map[string]bool, len(results))
	order := make([]string, 0, len(results))
	for _, id := range models {
		if _, ok := results[id]; ok && !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}

	var rest []string
	for id := range results {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func formatRow(r council.Result) []string {
	duration := fmt.Sprintf("%.2fs", r.Duration.Truncate(10*time.Millisecond).Seconds())
	if !r.OK() {
		reason := "no result"
		if r.Err != nil {
			reason = r.Err.Error()
		}
		return []string{r.Model, "FAIL", duration, helper.Shorten(oneLine(reason), snippetLimit)}
	}

	answer := oneLine(r.Response.ContentString())
	if answer == "" && r.Response.HasReasoningDetails() {
		answer = "(reasoning only)"
	}
	return []string{r.Model, "OK", duration, helper.Shorten(answer, snippetLimit)}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
