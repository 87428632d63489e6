package csv

import "os"

// Thin file wrappers around Load and Write. The table model itself never
// touches persistent storage.

// Open reads the named file and builds a Table from its contents.
func Open(name string, delim rune) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Load(f, delim)
}

// WriteFile writes the serialized table to the named file, creating or
// truncating it.
func (t *Table) WriteFile(name string) error {
	return os.WriteFile(name, []byte(t.String()), 0o644)
}
