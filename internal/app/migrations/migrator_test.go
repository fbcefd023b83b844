package migrations

import (
	"reflect"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"migrations/001_init.sql", "001"},
		{"002_add_drive_fk.sql", "002"},
		{"003.sql", "003.sql"},
	}
	for _, tt := range tests {
		if got := MigrationVersion(tt.path); got != tt.want {
			t.Errorf("MigrationVersion(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestSortedSQLFiles(t *testing.T) {
	got := SortedSQLFiles([]string{"010_late.sql", "README.md", "001_init.sql", "002_next.sql"})
	want := []string{"001_init.sql", "002_next.sql", "010_late.sql"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedSQLFiles() = %v, want %v", got, want)
	}
}
