package metrics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// valueWidth is the fixed column width for metric values.
const valueWidth = 6

// EpochPrinter prints one line of metrics per training epoch, with a
// header line before the first epoch. Callers are expected to call Print
// once per epoch in sequence.
type EpochPrinter struct {
	// Out is the print destination; nil means os.Stdout.
	Out io.Writer
}

func (p *EpochPrinter) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// Print writes the metrics for one epoch. Validation metrics, when
// given, follow the training metrics with names suffixed "_val". Values
// are printed with 3 decimal places at a fixed width of 6. The header
// line is emitted only at epoch 0.
func (p *EpochPrinter) Print(epoch int, train, val *Row) {
	row := train.merge(val)

	widths := make([]int, row.Len())
	for i, name := range row.Names() {
		widths[i] = valueWidth
		if len(name) > valueWidth {
			widths[i] = len(name)
		}
	}

	if epoch == 0 {
		var header strings.Builder
		header.WriteString("epoch")
		for i, name := range row.Names() {
			fmt.Fprintf(&header, "  %*s", widths[i], name)
		}
		fmt.Fprintln(p.out(), header.String())
	}

	var line strings.Builder
	fmt.Fprintf(&line, "%5d", epoch+1)
	for i, name := range row.Names() {
		v, _ := row.Get(name)
		fmt.Fprintf(&line, "  %*.3f", widths[i], v)
	}
	fmt.Fprintln(p.out(), line.String())
}

// Recorder accumulates epoch metric rows so a summary table can be
// rendered after training.
type Recorder struct {
	epochs []int
	rows   []*Row
}

// Record stores the merged metrics for one epoch.
func (r *Recorder) Record(epoch int, train, val *Row) {
	r.epochs = append(r.epochs, epoch)
	r.rows = append(r.rows, train.merge(val))
}

// Len returns the number of recorded epochs.
func (r *Recorder) Len() int {
	return len(r.rows)
}

// Last returns the most recently recorded row, or nil if none.
func (r *Recorder) Last() *Row {
	if len(r.rows) == 0 {
		return nil
	}
	return r.rows[len(r.rows)-1]
}

// Summary renders the recorded history as a table. Column order follows
// the first recorded row; epochs missing a metric render as blank cells.
func (r *Recorder) Summary(w io.Writer) error {
	if len(r.rows) == 0 {
		return nil
	}

	names := r.rows[0].Names()
	table := tablewriter.NewWriter(w)
	table.Header(append([]string{"Epoch"}, names...))

	var data [][]string
	for i, row := range r.rows {
		cells := []string{fmt.Sprintf("%d", r.epochs[i]+1)}
		for _, name := range names {
			if v, ok := row.Get(name); ok {
				cells = append(cells, fmt.Sprintf("%.3f", v))
			} else {
				cells = append(cells, "")
			}
		}
		data = append(data, cells)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
