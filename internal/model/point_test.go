package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPointJSONPair(t *testing.T) {
	p := Point{Timestamp: 1700000000, Price: 9.5}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[1700000000,9.5]" {
		t.Fatalf("unexpected encoding: %s", data)
	}

	var got Point
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestPointRejectsNonPair(t *testing.T) {
	for _, in := range []string{`[1700000000]`, `[1, 2, 3]`, `{"t": 1}`, `"x"`} {
		var p Point
		if err := json.Unmarshal([]byte(in), &p); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestDayOf(t *testing.T) {
	if got := DayOf(1700000000); got != "2023-11-14" {
		t.Fatalf("DayOf(1700000000) = %s, want 2023-11-14", got)
	}
	if got := DayOf(0); got != "1970-01-01" {
		t.Fatalf("DayOf(0) = %s, want 1970-01-01", got)
	}
}

func TestRawPointTruncatesToSeconds(t *testing.T) {
	r := RawPoint{TimestampMS: 1700086400123, Price: 9.7}
	p := r.Point()
	if p.Timestamp != 1700086400 {
		t.Fatalf("expected 1700086400, got %d", p.Timestamp)
	}
	if p.Price != 9.7 {
		t.Fatalf("price changed: %f", p.Price)
	}
}

func TestDatasetLast(t *testing.T) {
	var empty Dataset
	if empty.Last() != 0 {
		t.Fatalf("empty dataset should report 0")
	}
	ds := Dataset{{Timestamp: 1700000000}, {Timestamp: 1700086400}}
	if ds.Last() != 1700086400 {
		t.Fatalf("Last() = %d", ds.Last())
	}
}

func TestDatasetDays(t *testing.T) {
	ds := Dataset{
		{Timestamp: 1700000000, Price: 9.5},
		{Timestamp: 1700086400, Price: 9.7},
	}
	want := map[string]struct{}{
		"2023-11-14": {},
		"2023-11-15": {},
	}
	if !reflect.DeepEqual(ds.Days(), want) {
		t.Fatalf("Days() = %v", ds.Days())
	}
}
