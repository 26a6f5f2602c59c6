package grid

// DefaultFixtureRows is the row count of the demo table
const DefaultFixtureRows = 200

// Fixture builds the demo table: six columns, rows rows, with the first
// three rows filled in and the rest left absent.
func Fixture(rows int) *Data {
	d := New([]string{"ID", "Name", "Age", "Job", "Country", "Very very long column name"}, rows)

	samples := [][]string{
		{"1", "Alice", "29", "Engineer", "USA", "A"},
		{"2", "Bob the super duper ulra very very good builder that is too long", "34", "Designer", "UK", "B"},
		{"3", "Charlie", "22", "Student", "Canada", "C"},
	}
	for row, values := range samples {
		if row >= rows {
			break
		}
		// rows and columns are in range by construction
		_ = d.SetRow(row, values...)
	}
	return d
}
