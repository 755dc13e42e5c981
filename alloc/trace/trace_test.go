package trace

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func sampleTrace() *AllocationTrace {
	t := NewAllocationTrace(100)
	t.Record(Record{Rank: 0, Name: "video", Priority: 100, Demand: 50, Ratio: "2", Allocated: 50, Fraction: 1, CreditedValue: 100, RemainingAfter: 50})
	t.Record(Record{Rank: 1, Name: "backup", Priority: 60, Demand: 60, Ratio: "1", Allocated: 50, Fraction: 5.0 / 6, CreditedValue: 50, RemainingAfter: 0})
	t.Record(Record{Rank: 2, Name: "bulk", Priority: 30, Demand: 30, Ratio: "1", Allocated: 0, Fraction: 0, CreditedValue: 0, RemainingAfter: 0})
	return t
}

func TestAllocationTrace_Record_Appends(t *testing.T) {
	tr := NewAllocationTrace(10)
	tr.Record(Record{Rank: 0, Name: "a"})

	if len(tr.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(tr.Records))
	}
	if tr.Records[0].Name != "a" {
		t.Errorf("expected name a, got %s", tr.Records[0].Name)
	}
}

func TestAllocationTrace_WriteJSON(t *testing.T) {
	var buf strings.Builder
	if err := sampleTrace().WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded AllocationTrace
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Capacity != 100 {
		t.Errorf("capacity: got %v, want 100", decoded.Capacity)
	}
	if len(decoded.Records) != 3 {
		t.Errorf("records: got %d, want 3", len(decoded.Records))
	}
	if decoded.Records[0].Name != "video" {
		t.Errorf("first record: got %s, want video", decoded.Records[0].Name)
	}
}

func TestAllocationTrace_WriteCSV(t *testing.T) {
	var buf strings.Builder
	if err := sampleTrace().WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 4 { // header + 3 records
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != "rank" || rows[0][1] != "name" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "video" || rows[1][4] != "2" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
}

func TestRecord_Outcome(t *testing.T) {
	cases := []struct {
		name   string
		record Record
		want   Outcome
	}{
		{"full fill", Record{Demand: 50, Allocated: 50}, OutcomeFull},
		{"zero demand", Record{Demand: 0, Allocated: 0}, OutcomeFull},
		{"partial fill", Record{Demand: 60, Allocated: 50}, OutcomePartial},
		{"starved", Record{Demand: 30, Allocated: 0}, OutcomeStarved},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.Outcome(); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}
