package speaking

import (
	spk "github.com/abhisek/ieltsprep/internal/speaking"
)

// sampleMsg is sent when a sample answer request finishes.
type sampleMsg struct {
	RequestID string
	Part      spk.Part
	Answer    string
	Err       error
}

// speechDoneMsg is sent when a prompt has finished playing or failed.
type speechDoneMsg struct {
	RequestID string
	Err       error
}
