package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	table := Table{
		Sheet:  "Eligible",
		Header: []string{"Roll Number", "Email", "CGPA", "Branch"},
		Rows: [][]interface{}{
			{"22341A0594", "a@college.edu", 9.0, "Computer Science"},
			{"22341A0595", "b@college.edu", 8.5, "Computer Science"},
		},
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, table); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Eligible")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "Roll Number" || rows[0][3] != "Branch" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "22341A0594" || rows[2][2] != "8.5" {
		t.Errorf("data rows = %v", rows[1:])
	}
}

func TestWriteXLSX_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, Table{Header: []string{"Roll Number"}}); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want header only", len(rows))
	}
}
