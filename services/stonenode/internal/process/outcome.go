package process

import "time"

// Outcome is what a single run of an external executable produced.
type Outcome struct {
	// ExitCode is nil if the process did not exit normally.
	ExitCode *int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

func (o *Outcome) Success() bool {
	return o.ExitCode != nil && *o.ExitCode == 0
}
