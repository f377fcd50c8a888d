package service_test

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"studyplan/internal/service"
)

func TestParseDate(t *testing.T) {
	d, err := service.ParseDate("2026-02-03")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != (service.Date{Year: 2026, Month: time.February, Day: 3}) {
		t.Errorf("unexpected date %+v", d)
	}
	if d.String() != "2026-02-03" {
		t.Errorf("String() = %q", d.String())
	}

	for _, bad := range []string{"", "2026-2-3", "03/02/2026", "2026-02-30", "2026-13-01", "tomorrow"} {
		if _, err := service.ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestDate_CompareMatchesStringOrder(t *testing.T) {
	inputs := []string{"2026-10-15", "2025-12-31", "2026-01-09", "2026-01-10", "2026-10-05", "2027-01-01"}

	byString := append([]string(nil), inputs...)
	sort.Strings(byString)

	dates := make([]service.Date, len(inputs))
	for i, s := range inputs {
		dates[i], _ = service.ParseDate(s)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	for i := range dates {
		if dates[i].String() != byString[i] {
			t.Errorf("position %d: date order %s, string order %s", i, dates[i], byString[i])
		}
	}
}

func TestDate_ZeroValue(t *testing.T) {
	var zero service.Date
	if !zero.IsZero() || zero.String() != "" || zero.Format("1/2/2006") != "" {
		t.Errorf("zero date should render empty, got %q", zero.String())
	}
	if !zero.Before(service.NewDate(1, time.January, 1)) {
		t.Error("zero date should order first")
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		Due service.Date `json:"dueDate"`
	}

	data, err := json.Marshal(wrapper{Due: service.NewDate(2026, time.October, 15)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"dueDate":"2026-10-15"}` {
		t.Errorf("unexpected JSON %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"dueDate":""}`), &w); err != nil || !w.Due.IsZero() {
		t.Errorf("empty string should decode to zero date, got %+v err=%v", w.Due, err)
	}
	if err := json.Unmarshal([]byte(`{"dueDate":"10/15/2026"}`), &w); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	if got := service.NewDate(2026, time.September, 31); got.String() != "2026-10-01" {
		t.Errorf("expected 2026-10-01, got %s", got)
	}
	if got := service.NewDate(2026, time.April, 1).Weekday(); got != time.Wednesday {
		t.Errorf("expected Wednesday, got %s", got)
	}
}
