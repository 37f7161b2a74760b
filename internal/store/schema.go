package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names shared by the repositories.
const (
	llmEventsTable = "llm_request_events"
	attemptsTable  = "writing_attempts"

	colID        = "id"
	colSequence  = "sequence"
	colTimestamp = "timestamp"
)

// eventColumns returns the base columns shared by every event table:
// an auto-increment id, the global sequence and the wall-clock timestamp.
func eventColumns() (*schema.Column, []*schema.Column) {
	id := &schema.Column{Name: colID, Type: field.TypeInt, Increment: true}
	return id, []*schema.Column{
		{Name: colSequence, Type: field.TypeInt64, Unique: true},
		{Name: colTimestamp, Type: field.TypeTime},
	}
}

func newEventTable(name string, cols ...*schema.Column) *schema.Table {
	id, base := eventColumns()
	t := schema.NewTable(name).AddPrimary(id)
	for _, c := range base {
		t.AddColumn(c)
	}
	for _, c := range cols {
		t.AddColumn(c)
	}
	t.AddIndex(name+"_sequence", false, []string{colSequence})
	t.AddIndex(name+"_timestamp", false, []string{colTimestamp})
	return t
}

// LLMRequestEventsTable records every LLM API call for cost tracking and debugging.
var LLMRequestEventsTable = func() *schema.Table {
	t := newEventTable(llmEventsTable,
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Default: ""},
	)
	t.AddIndex("llm_request_events_purpose", false, []string{"purpose"})
	t.AddIndex("llm_request_events_success", false, []string{"success"})
	return t
}()

// WritingAttemptsTable records every essay submitted for feedback.
// The feedback column stores the raw JSON returned by the examiner model.
var WritingAttemptsTable = func() *schema.Table {
	t := newEventTable(attemptsTable,
		&schema.Column{Name: "attempt_id", Type: field.TypeString, Unique: true},
		&schema.Column{Name: "task", Type: field.TypeString},
		&schema.Column{Name: "word_count", Type: field.TypeInt},
		&schema.Column{Name: "essay", Type: field.TypeString},
		&schema.Column{Name: "feedback", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
	)
	t.AddIndex("writing_attempts_task", false, []string{"task"})
	return t
}()

// Tables lists every table created by auto-migration.
var Tables = []*schema.Table{
	LLMRequestEventsTable,
	WritingAttemptsTable,
}
