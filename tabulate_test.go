package tabulate_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabulate"
)

// --- Helpers ---

var (
	left  = tabulate.Must(tabulate.Uniform(tabulate.AlignLeft))
	ascii = tabulate.PlainASCII()
)

func lines(s ...string) string { return strings.Join(s, "\n") }

type errSource struct{ headersErr, rowsErr error }

func (s errSource) HeaderStrings() ([]string, error) { return []string{"A"}, s.headersErr }
func (s errSource) ValueStrings() ([][]string, error) { return [][]string{{"1"}}, s.rowsErr }

var errBroken = errors.New("broken source")

// ============================================================
// Tests
// ============================================================

func TestTabulate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		headers []string
		rows    [][]string
		want    string
	}{
		"header and rows": {
			headers: []string{"Name", "Age"},
			rows:    [][]string{{"Alice", "30"}, {"Bob", "25"}},
			want: lines(
				"+-------+-----+",
				"| Name  | Age |",
				"+-------+-----+",
				"| Alice | 30  |",
				"| Bob   | 25  |",
				"+-------+-----+",
			),
		},
		"ragged rows": {
			headers: []string{"A", "B", "C"},
			rows:    [][]string{{"1", "2"}, {"3", "4", "5", "6"}},
			want: lines(
				"+---+---+---+---+",
				"| A | B | C |   |",
				"+---+---+---+---+",
				"| 1 | 2 |   |   |",
				"| 3 | 4 | 5 | 6 |",
				"+---+---+---+---+",
			),
		},
		"no rows": {
			headers: []string{"Name"},
			want: lines(
				"+------+",
				"| Name |",
				"+------+",
			),
		},
		"no header": {
			rows: [][]string{{"x"}},
			want: lines(
				"+---+",
				"| x |",
				"+---+",
			),
		},
		"empty header row": {
			headers: []string{},
			want: lines(
				"+--+",
				"|  |",
				"+--+",
			),
		},
		"nothing at all": {
			want: lines(
				"+--+",
				"+--+",
			),
		},
		"zero width column": {
			headers: []string{"A", ""},
			rows:    [][]string{{"1", ""}},
			want: lines(
				"+---+--+",
				"| A |  |",
				"+---+--+",
				"| 1 |  |",
				"+---+--+",
			),
		},
		"multi-byte cells count code points": {
			headers: []string{"Ünï"},
			rows:    [][]string{{"é"}},
			want: lines(
				"+-----+",
				"| Ünï |",
				"+-----+",
				"| é   |",
				"+-----+",
			),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Tabulate(tt.headers, tt.rows, left, &ascii)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabulateSeparatorCount(t *testing.T) {
	t.Parallel()
	headers := []string{"A", "B", "C"}
	rows := [][]string{{"1", "2"}, {"3", "4", "5", "6"}, {}}
	numCols := tabulate.ColumnCount(headers, rows)
	require.Equal(t, 4, numCols)

	got, err := tabulate.Tabulate(headers, rows, left, &ascii)
	require.NoError(t, err)
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "|") {
			// One separator per column plus the closing edge.
			assert.Equal(t, numCols+1, strings.Count(line, "|"), line)
		}
	}
}

func TestTabulateNoOverflow(t *testing.T) {
	t.Parallel()
	headers := []string{"short", "a much longer header"}
	rows := [][]string{{"a much longer value", "x"}, {"", "yy"}}
	widths := tabulate.ColumnWidths(headers, rows)
	assert.Equal(t, []int{19, 20}, widths)

	got, err := tabulate.Tabulate(headers, rows, left, &ascii)
	require.NoError(t, err)
	out := strings.Split(got, "\n")
	for _, line := range out {
		assert.Len(t, []rune(line), len([]rune(out[0])), line)
	}
}

func TestTabulateAlignments(t *testing.T) {
	t.Parallel()
	headers := []string{"Item", "Qty"}
	rows := [][]string{{"ab", "1"}, {"abc", "12345"}}
	tests := map[string]struct {
		align *tabulate.AlignmentProvider
		want  string
	}{
		"uniform right": {
			align: tabulate.Must(tabulate.Uniform(tabulate.AlignRight)),
			want: lines(
				"+------+-------+",
				"| Item |   Qty |",
				"+------+-------+",
				"|   ab |     1 |",
				"|  abc | 12345 |",
				"+------+-------+",
			),
		},
		"header center value left": {
			align: tabulate.Must(tabulate.UniformHeaderUniformValue(tabulate.AlignCenterBiasLeft, tabulate.AlignLeft)),
			want: lines(
				"+------+-------+",
				"| Item |  Qty  |",
				"+------+-------+",
				"| ab   | 1     |",
				"| abc  | 12345 |",
				"+------+-------+",
			),
		},
		"per column": {
			align: tabulate.Must(tabulate.UniformColumn(tabulate.AlignLeft, tabulate.AlignRight)),
			want: lines(
				"+------+-------+",
				"| Item |   Qty |",
				"+------+-------+",
				"| ab   |     1 |",
				"| abc  | 12345 |",
				"+------+-------+",
			),
		},
		"header per column": {
			align: tabulate.Must(tabulate.UniformHeaderPerColumn(
				[]tabulate.CellAlignment{tabulate.AlignRight, tabulate.AlignCenterBiasRight}, tabulate.AlignLeft)),
			want: lines(
				"+------+-------+",
				"| Item |  Qty  |",
				"+------+-------+",
				"| ab   | 1     |",
				"| abc  | 12345 |",
				"+------+-------+",
			),
		},
		"value per column": {
			align: tabulate.Must(tabulate.UniformValuePerColumn(tabulate.AlignLeft,
				[]tabulate.CellAlignment{tabulate.AlignCenterBiasRight, tabulate.AlignCenterBiasLeft})),
			want: lines(
				"+------+-------+",
				"| Item | Qty   |",
				"+------+-------+",
				"|  ab  |   1   |",
				"|  abc | 12345 |",
				"+------+-------+",
			),
		},
		"individual": {
			align: tabulate.Must(tabulate.Individual(
				[]tabulate.CellAlignment{tabulate.AlignRight, tabulate.AlignLeft},
				[][]tabulate.CellAlignment{
					{tabulate.AlignLeft, tabulate.AlignRight},
					{tabulate.AlignCenterBiasRight, tabulate.AlignLeft},
				},
			)),
			want: lines(
				"+------+-------+",
				"| Item | Qty   |",
				"+------+-------+",
				"| ab   |     1 |",
				"|  abc | 12345 |",
				"+------+-------+",
			),
		},
		"func": {
			align: tabulate.Must(tabulate.AlignmentFunc(func(isHeader bool, row, col int) tabulate.CellAlignment {
				if !isHeader && row == 1 {
					return tabulate.AlignRight
				}
				return tabulate.AlignLeft
			})),
			want: lines(
				"+------+-------+",
				"| Item | Qty   |",
				"+------+-------+",
				"| ab   | 1     |",
				"|  abc | 12345 |",
				"+------+-------+",
			),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Tabulate(headers, rows, tt.align, &ascii)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabulateStylings(t *testing.T) {
	t.Parallel()
	headers := []string{"Name", "Age"}
	rows := [][]string{{"Bob", "25"}, {"Al", "7"}}
	tests := map[string]struct {
		style tabulate.TableStyling
		want  string
	}{
		"unicode": {
			style: tabulate.UnicodeBox(),
			want: lines(
				"┌──────┬─────┐",
				"│ Name │ Age │",
				"├──────┼─────┤",
				"│ Bob  │ 25  │",
				"│ Al   │ 7   │",
				"└──────┴─────┘",
			),
		},
		"rounded with row separators": {
			style: tabulate.Rounded().WithRowSeparators(),
			want: lines(
				"╭──────┬─────╮",
				"│ Name │ Age │",
				"├──────┼─────┤",
				"│ Bob  │ 25  │",
				"├──────┼─────┤",
				"│ Al   │ 7   │",
				"╰──────┴─────╯",
			),
		},
		"borderless": {
			style: tabulate.Borderless(),
			want: lines(
				"Name  Age",
				"----  ---",
				"Bob   25 ",
				"Al    7  ",
			),
		},
		"header separator suppressed": {
			style: tabulate.PlainASCII().With(func(s *tabulate.TableStyling) {
				s.HeaderSeparatorLeft = ""
				s.HeaderSeparator = ""
				s.HeaderSeparatorJoint = ""
				s.HeaderSeparatorRight = ""
			}),
			want: lines(
				"+------+-----+",
				"| Name | Age |",
				"| Bob  | 25  |",
				"| Al   | 7   |",
				"+------+-----+",
			),
		},
		"custom glyphs": {
			style: tabulate.TableStyling{Left: "[", ColumnSeparator: ":", Right: "]"},
			want: lines(
				"[Name:Age]",
				"[Bob :25 ]",
				"[Al  :7  ]",
			),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Tabulate(headers, rows, left, &tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTabulateErrors(t *testing.T) {
	t.Parallel()
	headers := []string{"A", "B", "C"}
	rows := [][]string{{"1", "2", "3"}}
	tests := map[string]struct {
		align   *tabulate.AlignmentProvider
		style   *tabulate.TableStyling
		target  error
		message string
	}{
		"nil styling": {
			align:  left,
			target: tabulate.ErrUsage,
		},
		"nil provider": {
			style:  &ascii,
			target: tabulate.ErrUsage,
		},
		"zero provider": {
			align:  &tabulate.AlignmentProvider{},
			style:  &ascii,
			target: tabulate.ErrUsage,
		},
		"column count mismatch": {
			align:   tabulate.Must(tabulate.UniformColumn(tabulate.AlignLeft, tabulate.AlignRight)),
			style:   &ascii,
			target:  tabulate.ErrConfiguration,
			message: "2 column alignments for a table with 3 columns",
		},
		"header column count mismatch": {
			align:   tabulate.Must(tabulate.UniformHeaderPerColumn([]tabulate.CellAlignment{tabulate.AlignLeft}, tabulate.AlignLeft)),
			style:   &ascii,
			target:  tabulate.ErrConfiguration,
			message: "1 header column alignments for a table with 3 columns",
		},
		"individual row count mismatch": {
			align: tabulate.Must(tabulate.Individual(
				[]tabulate.CellAlignment{tabulate.AlignLeft, tabulate.AlignLeft, tabulate.AlignLeft},
				nil,
			)),
			style:   &ascii,
			target:  tabulate.ErrConfiguration,
			message: "0 alignment rows for a table with 1 value rows",
		},
		"individual without header": {
			align: tabulate.Must(tabulate.Individual(nil, [][]tabulate.CellAlignment{
				{tabulate.AlignLeft, tabulate.AlignLeft, tabulate.AlignLeft},
			})),
			style:  &ascii,
			target: tabulate.ErrConfiguration,
		},
		"func returns invalid alignment": {
			align: tabulate.Must(tabulate.AlignmentFunc(func(bool, int, int) tabulate.CellAlignment {
				return tabulate.CellAlignment(42)
			})),
			style:   &ascii,
			target:  tabulate.ErrConfiguration,
			message: "header column 0",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabulate.Tabulate(headers, rows, tt.align, tt.style)
			require.ErrorIs(t, err, tt.target)
			assert.Empty(t, got)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestTabulatorReuse(t *testing.T) {
	t.Parallel()
	tab, err := tabulate.New(left, &ascii)
	require.NoError(t, err)

	want := lines("+----+", "| hi |", "+----+")
	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = tab.Tabulate(nil, [][]string{{"hi"}})
		}()
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestTabulatorStylingIsCopied(t *testing.T) {
	t.Parallel()
	style := tabulate.PlainASCII()
	tab, err := tabulate.New(left, &style)
	require.NoError(t, err)
	style.Left = "!!"

	got, err := tab.Tabulate(nil, [][]string{{"x"}})
	require.NoError(t, err)
	assert.Equal(t, lines("+---+", "| x |", "+---+"), got)
}

func TestTabulatorWrite(t *testing.T) {
	t.Parallel()
	tab, err := tabulate.New(left, &ascii)
	require.NoError(t, err)
	var buf strings.Builder
	require.NoError(t, tab.Write(&buf, []string{"A"}, nil))
	assert.Equal(t, "+---+\n| A |\n+---+\n", buf.String())
}

func TestTabulatorRender(t *testing.T) {
	t.Parallel()
	tab, err := tabulate.New(left, &ascii)
	require.NoError(t, err)

	got, err := tab.Render(tabulate.Table{Headers: []string{"A"}, Rows: [][]string{{"1"}}})
	require.NoError(t, err)
	assert.Equal(t, lines("+---+", "| A |", "+---+", "| 1 |", "+---+"), got)

	_, err = tab.Render(errSource{headersErr: errBroken})
	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "read headers")

	_, err = tab.Render(errSource{rowsErr: errBroken})
	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "read rows")

	_, err = tab.Render(nil)
	require.ErrorIs(t, err, tabulate.ErrUsage)
}
