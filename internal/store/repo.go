package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage for one purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event, or nil if no event has the id.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// WritingAttemptData captures one essay submission and its outcome.
type WritingAttemptData struct {
	AttemptID    string
	Task         string
	WordCount    int
	Essay        string
	Feedback     string // raw feedback JSON, empty on failure
	Success      bool
	ErrorMessage string
}

// WritingAttemptRecord is a stored writing attempt. OverallBand is read
// out of the stored feedback JSON and is zero for failed attempts.
type WritingAttemptRecord struct {
	ID          int
	Sequence    int64
	Timestamp   time.Time
	OverallBand float64
	WritingAttemptData
}

// AttemptRepo stores writing attempts.
type AttemptRepo interface {
	AppendAttempt(ctx context.Context, data WritingAttemptData) error
	QueryAttempts(ctx context.Context, task string, opts QueryOpts) ([]WritingAttemptRecord, error)
}
