package tabulate

import "iter"

// FromSeq collects rows from an iterator into a Table. Layout needs every
// row before the first line can be drawn, so the whole sequence is read.
func FromSeq(headers []string, seq iter.Seq[[]string]) Table {
	var rows [][]string
	for row := range seq {
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows}
}

// FromChan collects rows from a channel until it is closed. It is a thin
// wrapper around [FromSeq].
func FromChan(headers []string, ch <-chan []string) Table {
	return FromSeq(headers, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
