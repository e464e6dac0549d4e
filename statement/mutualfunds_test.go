package statement

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestMutualFundsParseMergesFolios(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	if _, err := f.NewSheet("Holdings"); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"Consolidated holdings"},
		{"Scheme Name", "AMC", "Category", "Sub Category", "Folio Number", "Source",
			"Units", "Invested Value", "Current Value", "Returns", "XIRR"},
		{"Parag Parikh Flexi Cap Fund", "PPFAS", "Equity", "Flexi Cap", "1234567/89", "Groww",
			120.5, 10000, 12000, 2000, 10},
		{"Parag Parikh Flexi Cap Fund", "PPFAS", "Equity", "Flexi Cap", "9876543/21", "Kuvera",
			241.0, 20000, 26000, 6000, 16},
		{"HDFC Liquid Fund", "HDFC", "Debt", "Liquid", "555/1", "MF Central",
			50, 5000, 5100, 100, 6.5},
	}
	for i, row := range rows {
		axis, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Holdings", axis, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(dir, "MutualFunds_2026.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	out := MutualFunds{}.Parse(path)
	if out.Failed() {
		t.Fatalf("parse errors: %v", out.Errors)
	}
	if len(out.MutualFunds) != 2 {
		t.Fatalf("fund count = %d, want 2 (folios merged)", len(out.MutualFunds))
	}

	ppfc := out.MutualFunds[0]
	if ppfc.Name != "Parag Parikh Flexi Cap Fund" {
		t.Fatalf("first fund = %q", ppfc.Name)
	}
	if ppfc.Invested != 30000 || ppfc.Current != 38000 {
		t.Errorf("invested/current = %v/%v, want 30000/38000", ppfc.Invested, ppfc.Current)
	}
	if ppfc.XIRR != 14.0 {
		t.Errorf("weighted XIRR = %v, want 14.0", ppfc.XIRR)
	}
	if ppfc.Units != 361.5 {
		t.Errorf("units = %v, want 361.5", ppfc.Units)
	}
	if ppfc.SubCategory != "Flexi Cap" {
		t.Errorf("sub category = %q, want Flexi Cap", ppfc.SubCategory)
	}
}
