package csv_test

import (
	"reflect"
	"testing"

	"github.com/ThomasGysemans/csv-tools/pkg/csv"
)

func blank() []string {
	return []string{"", "", ""}
}

func trimTable(t *testing.T, rows [][]string) *csv.Table {
	t.Helper()
	table, err := csv.New(fakeColumns(), rows, ',')
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return table
}

func TestTrimEnd(t *testing.T) {
	table := trimTable(t, [][]string{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		blank(),
		{"", "8", ""},
		blank(),
		blank(),
	})

	table.TrimEnd()
	if got := table.RowCount(); got != 5 {
		t.Errorf("RowCount() = %d after TrimEnd, want 5", got)
	}
	// The interior blank row survives.
	row, _ := table.Row(3)
	if !reflect.DeepEqual(row, blank()) {
		t.Errorf("Row(3) = %v, want blank", row)
	}
}

func TestTrimEnd_NonBlankLastRow(t *testing.T) {
	table := trimTable(t, [][]string{{"1", "2", "3"}})
	table.TrimEnd()
	if got := table.RowCount(); got != 1 {
		t.Errorf("RowCount() = %d after TrimEnd, want 1", got)
	}
}

func TestTrimEnd_SingleBlankRow(t *testing.T) {
	table := trimTable(t, [][]string{blank()})
	table.TrimEnd()
	if got := table.RowCount(); got != 0 {
		t.Errorf("RowCount() = %d after TrimEnd, want 0", got)
	}
	if !table.HasNoRows() {
		t.Error("HasNoRows() should be true after trimming the only row")
	}
}

func TestTrimEnd_NoRows(t *testing.T) {
	table := trimTable(t, nil)
	table.TrimEnd() // must not underflow
	if got := table.RowCount(); got != 0 {
		t.Errorf("RowCount() = %d, want 0", got)
	}
}

func TestTrimStart(t *testing.T) {
	table := trimTable(t, [][]string{
		blank(),
		{"", "8", ""},
		blank(),
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})

	table.TrimStart()
	if got := table.RowCount(); got != 5 {
		t.Errorf("RowCount() = %d after TrimStart, want 5", got)
	}
	row, _ := table.Row(0)
	if want := []string{"", "8", ""}; !reflect.DeepEqual(row, want) {
		t.Errorf("Row(0) = %v, want %v", row, want)
	}
}

func TestTrimStart_SingleBlankRow(t *testing.T) {
	table := trimTable(t, [][]string{blank()})
	table.TrimStart()
	if !table.HasNoRows() {
		t.Error("HasNoRows() should be true after trimming the only row")
	}
}

func TestTrim(t *testing.T) {
	table := trimTable(t, [][]string{
		blank(),
		{"", "8", ""},
		blank(),
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		blank(),
		{"", "8", ""},
		blank(),
	})

	table.Trim()
	if got := table.RowCount(); got != 7 {
		t.Errorf("RowCount() = %d after Trim, want 7", got)
	}
	first, _ := table.Row(0)
	last, _ := table.Row(6)
	want := []string{"", "8", ""}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("Row(0) = %v, want %v", first, want)
	}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("Row(6) = %v, want %v", last, want)
	}
}

// TestTrim_Idempotent verifies trimming twice equals trimming once.
func TestTrim_Idempotent(t *testing.T) {
	table := trimTable(t, [][]string{
		blank(),
		{"1", "2", "3"},
		blank(),
	})

	table.Trim()
	once := table.String()
	table.Trim()
	if got := table.String(); got != once {
		t.Errorf("second Trim changed the table:\nonce:  %q\ntwice: %q", once, got)
	}
}

func TestRemoveEmptyLines(t *testing.T) {
	table := trimTable(t, [][]string{
		blank(),
		{"", "8", ""},
		blank(),
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
		blank(),
		{"", "8", ""},
		blank(),
	})

	table.RemoveEmptyLines()
	if got := table.RowCount(); got != 5 {
		t.Errorf("RowCount() = %d after RemoveEmptyLines, want 5", got)
	}
	first, _ := table.Row(0)
	if want := []string{"", "8", ""}; !reflect.DeepEqual(first, want) {
		t.Errorf("Row(0) = %v, want %v", first, want)
	}
	second, _ := table.Row(1)
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(second, want) {
		t.Errorf("Row(1) = %v, want %v", second, want)
	}
	last, _ := table.Row(4)
	if want := []string{"", "8", ""}; !reflect.DeepEqual(last, want) {
		t.Errorf("Row(4) = %v, want %v", last, want)
	}
}
