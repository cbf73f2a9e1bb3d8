package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/delaneyj/dashcells/viewmodel"
	"github.com/olekukonko/tablewriter"
)

// renderTabs writes the tabs in the order the view shows them.
func renderTabs(w io.Writer, m *viewmodel.Main) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "header", "measurement", "mean", "min", "max", "dirty", "selected"})

	selected := m.Selected.Peek()
	for i, tab := range m.Tabs.Values() {
		d := tab.Dataset.Peek()
		mark := ""
		if i == selected {
			mark = "*"
		}
		table.Append([]string{
			strconv.Itoa(i),
			tab.Header.Peek(),
			d.Sensor.Measurement,
			fmt.Sprintf("%.2f", d.Calculated.Mean),
			fmt.Sprintf("%.2f", d.Calculated.Minimum),
			fmt.Sprintf("%.2f", d.Calculated.Maximum),
			strconv.FormatBool(tab.Dirty.Peek()),
			mark,
		})
	}
	table.Render()
}
