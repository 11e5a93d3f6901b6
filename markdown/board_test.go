package markdown

import (
	"reflect"
	"testing"

	"github.com/reyanb/MindManager-to-Md/model"
)

// boardTopic builds a positioned topic with child texts.
func boardTopic(text string, x, y float64, children ...string) *model.Topic {
	t := &model.Topic{Text: text, Pos: &model.Point{X: x, Y: y}}
	for _, c := range children {
		t.Children = append(t.Children, &model.Topic{Text: c})
	}
	return t
}

// boardFixture satisfies every board condition: four named children with
// distinct texts, all positioned, all with child texts. Positions keep the
// columns more than a tolerance apart so the x clusters are distinct, but
// share a single y cluster so the table strategy cannot claim the map.
func boardFixture() *model.Topic {
	return &model.Topic{
		Text: "Sprint",
		Children: []*model.Topic{
			boardTopic("Todo", 0, 0, "write docs"),
			boardTopic("Doing", 100, 0, "fix parser"),
			boardTopic("Done", 200, 0, "cut release"),
			boardTopic("Blocked", 300, 0, "vendor reply"),
		},
	}
}

func TestBoard_Render(t *testing.T) {
	got := SpatialBoard{}.Render(boardFixture(), DefaultConfig())
	want := []string{
		"# Sprint",
		"## Todo",
		"- write docs",
		"",
		"## Doing",
		"- fix parser",
		"",
		"## Done",
		"- cut release",
		"",
		"## Blocked",
		"- vendor reply",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBoard_OrderingXThenYThenDocument(t *testing.T) {
	central := &model.Topic{
		Children: []*model.Topic{
			boardTopic("south", 0, 50, "s"),
			boardTopic("east", 100, 0, "e"),
			boardTopic("north", 0, 0, "n"),
			{Text: "adrift", Children: []*model.Topic{{Text: "a"}}},
		},
	}

	got := SpatialBoard{}.Render(central, DefaultConfig())
	want := []string{
		"## north",
		"- n",
		"",
		"## south",
		"- s",
		"",
		"## east",
		"- e",
		"",
		"## adrift",
		"- a",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestBoard_Applicability(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Topic)
		want   bool
	}{
		{
			name:   "fixture applies",
			mutate: func(*model.Topic) {},
			want:   true,
		},
		{
			name: "fewer than four children",
			mutate: func(c *model.Topic) {
				c.Children = c.Children[:3]
			},
			want: false,
		},
		{
			name: "unnamed child",
			mutate: func(c *model.Topic) {
				c.Children[1].Text = ""
			},
			want: false,
		},
		{
			name: "too many duplicate names",
			mutate: func(c *model.Topic) {
				c.Children[1].Text = "Todo"
				c.Children[2].Text = "Todo"
			},
			want: false,
		},
		{
			name: "one duplicate still allowed",
			mutate: func(c *model.Topic) {
				c.Children[1].Text = "Todo"
			},
			want: true,
		},
		{
			name: "too few positioned",
			mutate: func(c *model.Topic) {
				c.Children[0].Pos = nil
				c.Children[1].Pos = nil
				c.Children[2].Pos = nil
			},
			want: false,
		},
		{
			name: "half positioned is enough",
			mutate: func(c *model.Topic) {
				c.Children[0].Pos = nil
				c.Children[1].Pos = nil
			},
			want: true,
		},
		{
			name: "too few children with child texts",
			mutate: func(c *model.Topic) {
				c.Children[0].Children = nil
				c.Children[1].Children = nil
				c.Children[2].Children = nil
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			central := boardFixture()
			tt.mutate(central)
			got := SpatialBoard{}.Render(central, DefaultConfig()) != nil
			if got != tt.want {
				t.Errorf("applies = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoard_NoTrailingBlank(t *testing.T) {
	got := SpatialBoard{}.Render(boardFixture(), DefaultConfig())
	if len(got) == 0 || got[len(got)-1] == "" {
		t.Errorf("output ends with blank line: %q", got)
	}
}
