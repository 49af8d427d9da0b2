package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteText prints a distribution one basis state per line.
func WriteText(w io.Writer, dist map[string]float64) error {
	if _, err := fmt.Fprintln(w, "Current Probability Distribution:"); err != nil {
		return err
	}

	for _, e := range Entries(dist) {
		if _, err := fmt.Fprintf(w, "|%s>: %.4f\n", e.Basis, e.Probability); err != nil {
			return err
		}
	}

	return nil
}

// WriteTable prints a distribution as a table.
func WriteTable(w io.Writer, dist map[string]float64) error {
	t := table.NewWriter()
	t.SetTitle("Probability Distribution")
	t.AppendHeader(table.Row{"State", "Probability"})

	for _, e := range Entries(dist) {
		t.AppendRow(table.Row{"|" + e.Basis + ">", fmt.Sprintf("%.4f", e.Probability)})
	}
	t.AppendFooter(table.Row{"Total", fmt.Sprintf("%.4f", Total(dist))})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// WriteHistogram prints shot counts as a table.
func WriteHistogram(w io.Writer, h *Histogram) error {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Outcomes over %d shots", h.Shots))
	t.AppendHeader(table.Row{"Outcome", "Count", "Frequency"})

	for _, k := range h.Keys() {
		label := k
		if label == "" {
			label = "(none)"
		}
		t.AppendRow(table.Row{label, h.Counts[k], fmt.Sprintf("%.4f", h.Frequency(k))})
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

// WriteVars prints the variable table of a run.
func WriteVars(w io.Writer, vars map[string]bool) error {
	if len(vars) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetTitle("Variables")
	t.AppendHeader(table.Row{"Name", "Value"})

	for _, name := range sortedKeys(vars) {
		t.AppendRow(table.Row{name, vars[name]})
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
