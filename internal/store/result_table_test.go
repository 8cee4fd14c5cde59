package store

import (
	"testing"

	"tradedeck/internal/domain"
)

func ltp(v float64) *float64 { return &v }

func TestUpsert_NewSymbolAppendsOneRow(t *testing.T) {
	table := NewResultTable()

	if !table.Upsert(domain.ResultRow{Symbol: "TCS", LTP: ltp(3500)}) {
		t.Fatal("expected upsert to be accepted")
	}

	rows := table.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Symbol != "TCS" {
		t.Errorf("expected symbol TCS, got %s", rows[0].Symbol)
	}
}

func TestUpsert_ExistingSymbolUpdatesInPlace(t *testing.T) {
	table := NewResultTable()
	table.Upsert(domain.ResultRow{Symbol: "INFY", LTP: ltp(1400)})
	table.Upsert(domain.ResultRow{Symbol: "TCS", LTP: ltp(3500)})

	table.Upsert(domain.ResultRow{Symbol: "INFY", LTP: ltp(1450), Prediction: "UP"})

	rows := table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Symbol != "INFY" {
		t.Errorf("expected INFY to keep its position, got %s", rows[0].Symbol)
	}
	if rows[0].LTP == nil || *rows[0].LTP != 1450 {
		t.Errorf("expected updated LTP 1450, got %v", rows[0].LTP)
	}
	if rows[0].Prediction != "UP" {
		t.Errorf("expected prediction UP, got %q", rows[0].Prediction)
	}
}

func TestUpsert_MissingSymbolIsNoOp(t *testing.T) {
	table := NewResultTable()
	table.Upsert(domain.ResultRow{Symbol: "TCS"})

	if table.Upsert(domain.ResultRow{LTP: ltp(100)}) {
		t.Error("expected upsert without symbol to be rejected")
	}
	if table.Len() != 1 {
		t.Errorf("expected row count unchanged at 1, got %d", table.Len())
	}
}

func TestUpsertLTP_PreservesPrediction(t *testing.T) {
	table := NewResultTable()
	table.Upsert(domain.ResultRow{Symbol: "TCS", LTP: ltp(3500), Prediction: "UP"})

	table.UpsertLTP("TCS", 3510)

	rows := table.Rows()
	if *rows[0].LTP != 3510 {
		t.Errorf("expected LTP 3510, got %v", *rows[0].LTP)
	}
	if rows[0].Prediction != "UP" {
		t.Errorf("expected prediction preserved, got %q", rows[0].Prediction)
	}
}

func TestUpsertLTP_CreatesRowForNewSymbol(t *testing.T) {
	table := NewResultTable()
	table.UpsertLTP("ACC", 1900)

	rows := table.Rows()
	if len(rows) != 1 || rows[0].Symbol != "ACC" {
		t.Fatalf("expected one ACC row, got %+v", rows)
	}
}

func TestRemoveAll_DeletesEveryMatch(t *testing.T) {
	table := NewResultTable()
	table.Upsert(domain.ResultRow{Symbol: "TCS"})
	table.Upsert(domain.ResultRow{Symbol: "INFY"})

	if removed := table.RemoveAll("TCS"); removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if removed := table.RemoveAll("TCS"); removed != 0 {
		t.Errorf("expected 0 removed on second pass, got %d", removed)
	}
	if table.Len() != 1 {
		t.Errorf("expected 1 row left, got %d", table.Len())
	}
}
