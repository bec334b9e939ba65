package observation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

const previewRows = 10

// String renders the raw observations as a table, eliding the middle rows of
// long data. Removed observations are marked with '*'.
func (d *Data) String() string {
	var b strings.Builder
	if err := d.writeTable(&b); err != nil {
		return fmt.Sprintf("observation: %v", err)
	}
	fmt.Fprintf(&b, "[%d rows x %d input dims]", d.Len(), d.InputDims())
	if d.name != "" {
		fmt.Fprintf(&b, " %s", d.name)
	}
	return b.String()
}

func (d *Data) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprint(tw, "\t")
	for _, label := range d.xLabels {
		fmt.Fprintf(tw, "%s\t", label)
	}
	fmt.Fprintf(tw, "%s\t\n", d.yLabel)

	x, y := d.Data()
	n := len(y)
	for i := 0; i < n; i++ {
		if n > previewRows && i == previewRows/2 {
			fmt.Fprintln(tw, "...\t")
			i = n - previewRows/2
		}
		marker := ""
		if !d.mask[i] {
			marker = "*"
		}
		fmt.Fprintf(tw, "%d%s\t", i, marker)
		for _, v := range x[i] {
			fmt.Fprintf(tw, "%s\t", d.formatX(v))
		}
		fmt.Fprintf(tw, "%g\t\n", y[i])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func (d *Data) formatX(v float64) string {
	if d.timeAxis {
		return Time(v).Format(time.RFC3339)
	}
	return fmt.Sprintf("%g", v)
}
