package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// AllocationTrace collects the per-claim records of one allocation pass.
type AllocationTrace struct {
	Capacity float64  `json:"capacity"`
	Records  []Record `json:"records"`
}

// NewAllocationTrace creates a trace ready for recording.
func NewAllocationTrace(capacity float64) *AllocationTrace {
	return &AllocationTrace{
		Capacity: capacity,
		Records:  make([]Record, 0),
	}
}

// Record appends one claim record.
func (t *AllocationTrace) Record(record Record) {
	t.Records = append(t.Records, record)
}

// WriteJSON writes the full trace as indented JSON.
func (t *AllocationTrace) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return nil
}

var csvHeader = []string{
	"rank", "name", "priority", "demand", "ratio",
	"allocated", "fraction", "credited_value", "remaining_after",
}

// WriteCSV writes the records as CSV with a header row.
func (t *AllocationTrace) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range t.Records {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Name,
			strconv.Itoa(r.Priority),
			strconv.FormatFloat(r.Demand, 'f', -1, 64),
			r.Ratio,
			strconv.FormatFloat(r.Allocated, 'f', -1, 64),
			strconv.FormatFloat(r.Fraction, 'f', -1, 64),
			strconv.FormatFloat(r.CreditedValue, 'f', -1, 64),
			strconv.FormatFloat(r.RemainingAfter, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.Rank, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
