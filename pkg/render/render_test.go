package render

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/table"
)

// filledTable builds a table of pre-filled cells: every cell is a list
// of lines already padded to its column width.
func filledTable(t *testing.T, nrows int, cells ...[]string) *table.Table[[]string] {
	t.Helper()
	tb, err := table.New(cells, nrows)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}
	return tb
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			r, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) error = %v", name, err)
			}
			if r == nil {
				t.Fatalf("New(%q) = nil", name)
			}
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := New("fancy")
		if !errors.Is(err, errors.ErrCodeInvalidLayout) {
			t.Errorf("New(fancy) code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLayout)
		}
	})
}

func TestNames(t *testing.T) {
	want := []string{"grid", "grid_no_header", "plain"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLayoutWidth(t *testing.T) {
	tests := []struct {
		name     string
		renderer Renderer
		ncols    int
		want     int
	}{
		{"GridOneColumn", &Grid{}, 1, 4},
		{"GridThreeColumns", &Grid{}, 3, 10},
		{"PlainOneColumn", &Plain{}, 1, 0},
		{"PlainThreeColumns", &Plain{}, 3, 4},
		{"Null", Null{}, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.renderer.LayoutWidth(tt.ncols); got != tt.want {
				t.Errorf("LayoutWidth(%d) = %d, want %d", tt.ncols, got, tt.want)
			}
		})
	}
}

func TestGridRender(t *testing.T) {
	tb := filledTable(t, 2,
		[]string{"foo"}, []string{"ab"},
		[]string{"x  "}, []string{"y "},
	)
	widths := []int{3, 2}

	got := (&Grid{}).Render(tb, widths)
	want := "+-----+----+\n" +
		"| foo | ab |\n" +
		"+-----+----+\n" +
		"| x   | y  |\n" +
		"+-----+----+\n"
	if got != want {
		t.Errorf("Grid render:\n%s\nwant:\n%s", got, want)
	}
}

func TestGridRenderHeaderRule(t *testing.T) {
	tb := filledTable(t, 2,
		[]string{"hd"}, []string{"h2"},
		[]string{"a "}, []string{"b "},
	)
	widths := []int{2, 2}

	got := (&Grid{HeaderRule: true}).Render(tb, widths)
	want := "+----+----+\n" +
		"| hd | h2 |\n" +
		"+====+====+\n" +
		"| a  | b  |\n" +
		"+----+----+\n"
	if got != want {
		t.Errorf("Grid render with header rule:\n%s\nwant:\n%s", got, want)
	}
}

func TestGridRenderMultilineCell(t *testing.T) {
	tb := filledTable(t, 1,
		[]string{"foo", "bar"}, []string{"z ", "  "},
	)
	widths := []int{3, 2}

	got := (&Grid{}).Render(tb, widths)
	want := "+-----+----+\n" +
		"| foo | z  |\n" +
		"| bar |    |\n" +
		"+-----+----+\n"
	if got != want {
		t.Errorf("Grid render multiline:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlainRender(t *testing.T) {
	tb := filledTable(t, 2,
		[]string{"foo"}, []string{"ab"},
		[]string{"x  "}, []string{"y "},
	)
	widths := []int{3, 2}

	got := (&Plain{}).Render(tb, widths)
	want := "foo  ab\n" +
		"x    y\n"
	if got != want {
		t.Errorf("Plain render:\n%q\nwant:\n%q", got, want)
	}
}

func ExampleGrid_Render() {
	cells := [][]string{
		{"name "}, {"id"},
		{"hello"}, {"7 "},
	}
	tb, _ := table.New(cells, 2)
	fmt.Print((&Grid{HeaderRule: true}).Render(tb, []int{5, 2}))
	// Output:
	// +-------+----+
	// | name  | id |
	// +=======+====+
	// | hello | 7  |
	// +-------+----+
}
