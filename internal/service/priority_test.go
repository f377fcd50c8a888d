package service_test

import (
	"encoding/json"
	"testing"

	"studyplan/internal/service"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want service.Priority
	}{
		{"low", service.PriorityLow},
		{"Medium", service.PriorityMedium},
		{" HIGH ", service.PriorityHigh},
	}
	for _, tt := range tests {
		got, err := service.ParsePriority(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := service.ParsePriority("urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestPriority_JSON(t *testing.T) {
	data, err := json.Marshal(service.PriorityHigh)
	if err != nil || string(data) != `"high"` {
		t.Errorf("Marshal = %s, %v", data, err)
	}

	if _, err := json.Marshal(service.Priority(0)); err == nil {
		t.Error("expected error marshaling unset priority")
	}

	var p service.Priority
	if err := json.Unmarshal([]byte(`"low"`), &p); err != nil || p != service.PriorityLow {
		t.Errorf("Unmarshal = %v, %v", p, err)
	}
	if err := json.Unmarshal([]byte(`"critical"`), &p); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestPatch_Apply(t *testing.T) {
	title := "new"
	orig := service.Task{ID: "1", Title: "old", Category: "Math", Completed: true}

	got := service.Patch{Title: &title}.Apply(orig)
	if got.Title != "new" || got.Category != "Math" || got.ID != "1" || !got.Completed {
		t.Errorf("unexpected patch result %+v", got)
	}
	if !(service.Patch{}).IsEmpty() || (service.Patch{Title: &title}).IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}
