package shared

import (
	"strconv"
)

// FormatID builds a positional identifier such as "BK12" from a prefix and a
// 1-based row number.
func FormatID(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

// Sum folds ints into their total.
func Sum(values ...int) (total int) {
	for _, v := range values {
		total += v
	}

	return total
}

// Rows flattens models into spreadsheet rows using their column order.
func Rows[T interface{ Values() []any }](items []T) [][]any {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = item.Values()
	}

	return rows
}
