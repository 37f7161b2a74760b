package llm

import "context"

// Purpose labels recorded with every call. They are the values accepted by
// `ieltsprep llm list --purpose`.
const (
	PurposeWritingFeedback = "writing-feedback"
	PurposeSpeakingSample  = "speaking-sample"
	PurposeSpeechSynthesis = "speech-synthesis"

	purposeUnknown = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx so the logging decorator can attribute the call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok {
		return v
	}
	return purposeUnknown
}
