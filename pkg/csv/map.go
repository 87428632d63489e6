package csv

// Projection into typed structures. These are package-level functions
// because methods cannot take type parameters.

// MapRows applies fn to each row in order and collects the results. The
// table is not mutated. Each row passed to fn is a copy.
//
// Example:
//
//	type Language struct {
//	    Name string
//	    Fun  int
//	}
//
//	langs := csv.MapRows(table, func(row []string) Language {
//	    fun, _ := strconv.Atoi(row[1])
//	    return Language{Name: row[0], Fun: fun}
//	})
func MapRows[T any](t *Table, fn func(row []string) T) []T {
	results := make([]T, len(t.rows))
	for i, row := range t.rows {
		copied := make([]string, len(row))
		copy(copied, row)
		results[i] = fn(copied)
	}
	return results
}

// ToMap transposes the table into a map from each column name to the
// fn-converted values of that column, preserving row order within each
// column. The table is not mutated.
//
// Example:
//
//	nums := csv.ToMap(table, func(cell string) int {
//	    n, _ := strconv.Atoi(cell)
//	    return n
//	})
//	// nums["a"] holds column "a" top to bottom
func ToMap[T any](t *Table, fn func(cell string) T) map[string][]T {
	result := make(map[string][]T, len(t.columns))
	for _, col := range t.columns {
		result[col] = []T{}
	}

	for _, row := range t.rows {
		for i, cell := range row {
			col := t.columns[i]
			result[col] = append(result[col], fn(cell))
		}
	}
	return result
}
