// Package listening holds the listening section placeholder.
package listening

const (
	Title   = "Listening Section Coming Soon"
	Message = "We're fine-tuning our interactive listening exercises to provide you with the best practice experience. Stay tuned for updates!"
)
