package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reyanb/MindManager-to-Md/layout"
	"github.com/reyanb/MindManager-to-Md/model"
)

// CanvasTable renders a mind map whose central topic's children are laid
// out as a grid on the canvas. Children with both text and a position are
// clustered into columns by x and rows by y; the strategy applies when at
// least two of each emerge. The first row and first column are then tested
// for header status and, when detected, supply the table's column and row
// labels.
type CanvasTable struct{}

// Name returns the strategy's identifier ("canvas-table").
func (CanvasTable) Name() string {
	return "canvas-table"
}

// tableEntry is one topic placed in a cell: its heading text plus the
// texts of its immediate children.
type tableEntry struct {
	heading  string
	children []string
}

// tableCell aggregates the entries sharing one (row, column) bin.
type tableCell struct {
	entries    []tableEntry
	headings   int // entries with non-empty heading text
	childTexts int // total immediate child texts across entries
}

func (c *tableCell) add(t *model.Topic) {
	e := tableEntry{heading: t.Text, children: t.ChildTexts()}
	if e.heading != "" {
		c.headings++
	}
	c.childTexts += len(e.children)
	c.entries = append(c.entries, e)
}

// firstHeading returns the cell's first non-empty entry heading, or "".
func (c *tableCell) firstHeading() string {
	for _, e := range c.entries {
		if e.heading != "" {
			return e.heading
		}
	}
	return ""
}

// Render renders the canvas-table interpretation, or returns nil when the
// children do not form a usable grid.
func (CanvasTable) Render(central *model.Topic, cfg Config) []string {
	// Only children with both text and a position can sit in the grid.
	var valid []*model.Topic
	var xs, ys []float64
	for _, t := range central.Children {
		if t.Text == "" || t.Pos == nil {
			continue
		}
		valid = append(valid, t)
		xs = append(xs, t.Pos.X)
		ys = append(ys, t.Pos.Y)
	}
	if len(valid) < 2 {
		return nil
	}

	cols := layout.Cluster(xs, cfg.Tolerance)
	rows := layout.Cluster(ys, cfg.Tolerance)
	if cols == nil || rows == nil {
		return nil
	}
	if cols.Count() < 2 || rows.Count() < 2 {
		return nil
	}

	cells := make([][]tableCell, rows.Count())
	for i := range cells {
		cells[i] = make([]tableCell, cols.Count())
	}
	for i, t := range valid {
		cells[rows.Index[i]][cols.Index[i]].add(t)
	}

	rowOrder := orderByCenter(rows)
	colOrder := orderByCenter(cols)

	// Only the very first row and column are ever candidates for header
	// status; interior rows and columns are never tested.
	headerRowID := rowOrder[0]
	useColumnHeaders := isHeaderRow(cells, headerRowID, colOrder)

	headerColID := colOrder[0]
	skipRow := -1
	if useColumnHeaders {
		skipRow = headerRowID
	}
	useRowHeaders := isHeaderColumn(cells, headerColID, rowOrder, skipRow)

	bodyRows := rowOrder
	if useColumnHeaders {
		var rest []int
		for _, id := range rowOrder {
			if id != headerRowID {
				rest = append(rest, id)
			}
		}
		// Excluding the header row must not leave an empty table.
		if len(rest) > 0 {
			bodyRows = rest
		}
	}

	bodyCols := colOrder
	if useRowHeaders {
		var rest []int
		for _, id := range colOrder {
			if id != headerColID {
				rest = append(rest, id)
			}
		}
		if len(rest) > 0 {
			bodyCols = rest
		} else {
			// A lone header column is demoted back to a normal column.
			useRowHeaders = false
		}
	}

	columnHeaders := make([]string, 0, len(bodyCols))
	if useColumnHeaders {
		for i, colID := range bodyCols {
			label := cells[headerRowID][colID].firstHeading()
			if label == "" {
				label = fmt.Sprintf("Column %d", i+1)
			}
			columnHeaders = append(columnHeaders, label)
		}
	} else {
		for i := range bodyCols {
			columnHeaders = append(columnHeaders, fmt.Sprintf("Column %d", i+1))
		}
	}

	rowLabels := make(map[int]string)
	if useRowHeaders {
		for i, rowID := range bodyRows {
			label := cells[rowID][headerColID].firstHeading()
			if label == "" {
				label = fmt.Sprintf("Row %d", i+1)
			}
			rowLabels[rowID] = label
		}
	}

	var lines []string
	if central.Text != "" {
		lines = append(lines, "# "+central.Text)
	}

	headerCells := make([]string, 0, len(bodyCols)+1)
	if useRowHeaders {
		headerCells = append(headerCells, " ")
	}
	headerCells = append(headerCells, columnHeaders...)
	lines = append(lines, "| "+strings.Join(headerCells, " | ")+" |")

	separators := make([]string, len(headerCells))
	for i := range separators {
		separators[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(separators, " | ")+" |")

	for _, rowID := range bodyRows {
		rowCells := make([]string, 0, len(bodyCols)+1)
		if useRowHeaders {
			label := rowLabels[rowID]
			if label == "" {
				label = "—"
			}
			rowCells = append(rowCells, label)
		}
		for _, colID := range bodyCols {
			rowCells = append(rowCells, formatCell(&cells[rowID][colID]))
		}
		lines = append(lines, "| "+strings.Join(rowCells, " | ")+" |")
	}

	// Header and separator alone are not a table.
	if len(lines) <= 2 {
		return nil
	}
	return lines
}

// orderByCenter returns cluster ids sorted by ascending center.
func orderByCenter(c *layout.Clusters) []int {
	order := make([]int, c.Count())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return c.Centers[order[a]] < c.Centers[order[b]]
	})
	return order
}

// isHeaderRow reports whether the given row is heading-dominant enough to
// supply column labels: at least max(2, numColumns/2) of its cells must
// contain a headed entry, and the row's total child-text count must not
// exceed twice that heading-cell count.
func isHeaderRow(cells [][]tableCell, rowID int, colOrder []int) bool {
	headingCells := 0
	childTotal := 0
	for _, colID := range colOrder {
		c := &cells[rowID][colID]
		if c.headings > 0 {
			headingCells++
		}
		childTotal += c.childTexts
	}
	if headingCells < max(2, len(colOrder)/2) {
		return false
	}
	return childTotal <= headingCells*2
}

// isHeaderColumn reports whether the given column supplies row labels,
// considering only its non-empty cells outside skipRow: at least two such
// cells, with heading cells ≥ max(1, cellCount−1) and a total child-text
// count no greater than the heading-cell count.
func isHeaderColumn(cells [][]tableCell, colID int, rowOrder []int, skipRow int) bool {
	var relevant []*tableCell
	for _, rowID := range rowOrder {
		if rowID == skipRow {
			continue
		}
		c := &cells[rowID][colID]
		if len(c.entries) > 0 {
			relevant = append(relevant, c)
		}
	}
	if len(relevant) < 2 {
		return false
	}

	headingCells := 0
	childTotal := 0
	for _, c := range relevant {
		if c.headings > 0 {
			headingCells++
		}
		childTotal += c.childTexts
	}
	if headingCells < max(1, len(relevant)-1) {
		return false
	}
	return childTotal <= headingCells
}

// formatCell renders a cell's entries as a single table-safe string. An
// empty cell renders as an em-dash; multiple lines within a cell are
// joined with <br> so the pipe table stays well-formed.
func formatCell(c *tableCell) string {
	if len(c.entries) == 0 {
		return "—"
	}

	var lines []string
	for _, e := range c.entries {
		if e.heading != "" {
			lines = append(lines, "- "+e.heading)
			for _, child := range e.children {
				lines = append(lines, "  - "+child)
			}
		} else {
			for _, child := range e.children {
				lines = append(lines, "- "+child)
			}
		}
	}
	if len(lines) == 0 {
		return "—"
	}
	return strings.Join(lines, "<br>")
}
