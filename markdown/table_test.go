package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reyanb/MindManager-to-Md/model"
)

// gridTopic builds a positioned topic with child texts.
func gridTopic(text string, x, y float64, children ...string) *model.Topic {
	t := &model.Topic{Text: text, Pos: &model.Point{X: x, Y: y}}
	for _, c := range children {
		t.Children = append(t.Children, &model.Topic{Text: c})
	}
	return t
}

func TestCanvasTable_HeaderRow(t *testing.T) {
	// 2x2 grid whose first row is heading-dominant: both cells headed,
	// no child texts.
	central := &model.Topic{
		Text: "Team",
		Children: []*model.Topic{
			gridTopic("Name", 0, 0),
			gridTopic("Role", 200, 0),
			gridTopic("Ada", 0, 100, "Math"),
			gridTopic("Grace", 200, 100, "Compilers"),
		},
	}

	got := CanvasTable{}.Render(central, DefaultConfig())
	want := []string{
		"# Team",
		"| Name | Role |",
		"| --- | --- |",
		"| - Ada<br>  - Math | - Grace<br>  - Compilers |",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCanvasTable_HeaderRowRejectedByChildCount(t *testing.T) {
	// Same grid, but the first row's aggregate child count exceeds twice
	// its heading-cell count (5 > 2*2), so it stays a body row under
	// synthetic column labels.
	central := &model.Topic{
		Children: []*model.Topic{
			gridTopic("Name", 0, 0, "a", "b", "c"),
			gridTopic("Role", 200, 0, "d", "e"),
			gridTopic("Ada", 0, 100),
			gridTopic("Grace", 200, 100),
		},
	}

	got := CanvasTable{}.Render(central, DefaultConfig())
	if len(got) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(got), got)
	}
	if got[0] != "| Column 1 | Column 2 |" {
		t.Errorf("header = %q, want synthetic labels", got[0])
	}
	if !strings.Contains(got[2], "Name") {
		t.Errorf("first row should remain in the body: %q", got[2])
	}
}

func TestCanvasTable_HeaderColumn(t *testing.T) {
	// 3 rows x 2 columns. The first row is disqualified as a header row
	// (too many child texts), but the first column is pure labels, so it
	// supplies row labels and the header line gains a blank label cell.
	central := &model.Topic{
		Children: []*model.Topic{
			gridTopic("Q1", 0, 0),
			gridTopic("Launch", 200, 0, "a", "b", "c", "d", "e"),
			gridTopic("Q2", 0, 100),
			gridTopic("Scale", 200, 100, "f"),
			gridTopic("Q3", 0, 200),
			gridTopic("Retire", 200, 200, "g"),
		},
	}

	got := CanvasTable{}.Render(central, DefaultConfig())
	want := []string{
		"|   | Column 1 |",
		"| --- | --- |",
		"| Q1 | - Launch<br>  - a<br>  - b<br>  - c<br>  - d<br>  - e |",
		"| Q2 | - Scale<br>  - f |",
		"| Q3 | - Retire<br>  - g |",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCanvasTable_EmptyCellRendersEmDash(t *testing.T) {
	// Three topics in a 2x2 grid leave one cell empty.
	central := &model.Topic{
		Children: []*model.Topic{
			gridTopic("Name", 0, 0),
			gridTopic("Role", 200, 0),
			gridTopic("Ada", 0, 100),
		},
	}

	got := CanvasTable{}.Render(central, DefaultConfig())
	want := []string{
		"| Name | Role |",
		"| --- | --- |",
		"| - Ada | — |",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCanvasTable_MultipleTopicsPerCell(t *testing.T) {
	central := &model.Topic{
		Children: []*model.Topic{
			gridTopic("Name", 0, 0),
			gridTopic("Role", 200, 0),
			gridTopic("Ada", 0, 100),
			gridTopic("Alan", 5, 103), // same cell as Ada
			gridTopic("Grace", 200, 100),
		},
	}

	got := CanvasTable{}.Render(central, DefaultConfig())
	if got == nil {
		t.Fatal("Render() = nil, want table")
	}
	joined := strings.Join(got, "\n")
	if !strings.Contains(joined, "- Ada<br>- Alan") {
		t.Errorf("co-located topics not joined in one cell:\n%s", joined)
	}
}

func TestCanvasTable_NotApplicable(t *testing.T) {
	tests := []struct {
		name    string
		central *model.Topic
	}{
		{
			name: "fewer than two qualifying topics",
			central: &model.Topic{Children: []*model.Topic{
				gridTopic("only", 0, 0),
				{Text: "no position"},
				{Pos: &model.Point{X: 200, Y: 100}}, // no text
			}},
		},
		{
			name: "single column",
			central: &model.Topic{Children: []*model.Topic{
				gridTopic("a", 0, 0),
				gridTopic("b", 10, 100),
			}},
		},
		{
			name: "single row",
			central: &model.Topic{Children: []*model.Topic{
				gridTopic("a", 0, 0),
				gridTopic("b", 200, 10),
			}},
		},
		{
			name:    "no children",
			central: &model.Topic{Text: "lonely"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (CanvasTable{}).Render(tt.central, DefaultConfig()); got != nil {
				t.Errorf("Render() = %q, want nil", got)
			}
		})
	}
}

func TestCanvasTable_ToleranceControlsBinning(t *testing.T) {
	// 60 units apart: two columns at the default tolerance, one column
	// (hence no table) when the tolerance is widened.
	central := &model.Topic{
		Children: []*model.Topic{
			gridTopic("a", 0, 0),
			gridTopic("b", 60, 0),
			gridTopic("c", 0, 100),
			gridTopic("d", 60, 100),
		},
	}

	if got := (CanvasTable{}).Render(central, DefaultConfig()); got == nil {
		t.Error("default tolerance: Render() = nil, want table")
	}

	wide := Config{Tolerance: 100}
	if got := (CanvasTable{}).Render(central, wide); got != nil {
		t.Errorf("wide tolerance: Render() = %q, want nil", got)
	}
}
