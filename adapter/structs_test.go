package adapter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabulate"
	"github.com/bjaus/tabulate/adapter"
)

type status int

func (s status) String() string {
	if s == 1 {
		return "active"
	}
	return "inactive"
}

type audit struct {
	ID int
}

type product struct {
	audit
	Name      string
	UnitPrice float64 `table:"Price"`
	Secret    string  `table:"-"`
	note      string
	Tags      []string
	Owner     *string
	Raw       []byte
	Status    status
}

type Inner struct {
	Depth int
}

type outer struct {
	*Inner
	Label string
}

func TestStructs(t *testing.T) {
	t.Parallel()
	owner := "ann"
	items := []product{
		{
			audit:     audit{ID: 7},
			Name:      "Apples",
			UnitPrice: 1.5,
			Secret:    "hidden",
			note:      "ignored",
			Tags:      []string{"fruit", "red"},
			Owner:     &owner,
			Raw:       []byte("abc"),
			Status:    1,
		},
		{Name: "Bread"},
	}

	got, err := adapter.Structs(items, adapter.WithNames(tabulate.SnakeCase))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "Price", "tags", "owner", "raw", "status"}, got.Headers)
	assert.Equal(t, [][]string{
		{"7", "Apples", "1.5", "[fruit red]", "ann", "abc", "active"},
		{"0", "Bread", "0", "", "", "", "inactive"},
	}, got.Rows)
}

func TestStructsPointers(t *testing.T) {
	t.Parallel()
	items := []*product{{Name: "Apples"}, nil}

	got, err := adapter.Structs(items)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Name", "Price", "Tags", "Owner", "Raw", "Status"}, got.Headers)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "Apples", got.Rows[0][1])
	assert.Equal(t, []string{"", "", "", "", "", "", ""}, got.Rows[1])
}

func TestStructsNilEmbeddedPointer(t *testing.T) {
	t.Parallel()
	got, err := adapter.Structs([]outer{{Label: "top"}, {Inner: &Inner{Depth: 2}, Label: "deep"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Depth", "Label"}, got.Headers)
	assert.Equal(t, [][]string{{"", "top"}, {"2", "deep"}}, got.Rows)
}

func TestNewReflectorRejectsNonStruct(t *testing.T) {
	t.Parallel()
	_, err := adapter.NewReflector[int]()
	require.ErrorIs(t, err, adapter.ErrUnsupportedShape)

	_, err = adapter.Structs([]string{"a"})
	require.ErrorIs(t, err, adapter.ErrUnsupportedShape)
}

func TestReflector(t *testing.T) {
	t.Parallel()
	r, err := adapter.NewReflector[product](adapter.WithNames(tabulate.PascalWithSeparator(true, true, ' ')))
	require.NoError(t, err)

	headers := r.Headers()
	assert.Equal(t, []string{"ID", "Name", "Price", "Tags", "Owner", "Raw", "Status"}, headers)
	headers[0] = "mutated"
	assert.Equal(t, "ID", r.Headers()[0])

	// Shared between goroutines.
	var wg sync.WaitGroup
	rows := make([][]string, 8)
	for i := range rows {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rows[i] = r.Row(product{Name: "n", audit: audit{ID: i}})
		}()
	}
	wg.Wait()
	for i, row := range rows {
		assert.Equal(t, "n", row[1])
		assert.Equal(t, r.Row(product{Name: "n", audit: audit{ID: i}}), row)
	}

	tbl := r.Table(nil)
	assert.Equal(t, r.Headers(), tbl.Headers)
	assert.Empty(t, tbl.Rows)
}
