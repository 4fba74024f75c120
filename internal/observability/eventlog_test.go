package observability

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestLog(t *testing.T) (EventLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("NewJSONLEventLog: %v", err)
	}
	t.Cleanup(func() { log.Close() })
	return log, path
}

func TestEventLog_RecordAndRead(t *testing.T) {
	log, _ := newTestLog(t)

	if err := log.Record(EventTodoGenerated, "generated 3 tasks", map[string]any{"tasks": 3}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := log.Record(EventDirectiveAdded, "directive added", nil); err != nil {
		t.Fatalf("Record: %v", err)
	}

	events, err := log.Read(Filter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d", len(events))
	}
	if events[0].Type != EventTodoGenerated || events[1].Type != EventDirectiveAdded {
		t.Errorf("file order not preserved: %+v", events)
	}
	if events[0].Message != "generated 3 tasks" {
		t.Errorf("message = %q", events[0].Message)
	}
	if events[0].Time.IsZero() {
		t.Error("events must carry a timestamp")
	}
}

func TestEventLog_TypeFilter(t *testing.T) {
	log, _ := newTestLog(t)
	log.Record(EventTodoGenerated, "a", nil)
	log.Record(EventPlanGenerated, "b", nil)
	log.Record(EventTodoGenerated, "c", nil)

	events, err := log.Read(Filter{Type: EventTodoGenerated})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("filtered events = %d", len(events))
	}
}

func TestEventLog_SinceFilter(t *testing.T) {
	log, _ := newTestLog(t)
	log.Record(EventTodoGenerated, "old", nil)

	cutoff := time.Now().UTC().Add(time.Hour)
	events, err := log.Read(Filter{Since: &cutoff})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("future cutoff should match nothing, got %d", len(events))
	}
}

func TestEventLog_SkipsCorruptLines(t *testing.T) {
	log, path := newTestLog(t)
	log.Record(EventTodoGenerated, "good", nil)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("not json\n")
	f.Close()

	log.Record(EventPlanGenerated, "also good", nil)

	events, err := log.Read(Filter{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("corrupt lines should be skipped, got %d events", len(events))
	}
}
