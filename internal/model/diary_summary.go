package model

import "time"

// DiarySummary holds the generated summary of exactly one diary.
// Contents is the raw model output, expected to be a JSON object of the form
// {"response": ["...", "...", "...", "..."]}.
type DiarySummary struct {
	ID        int64
	DiaryID   int64
	Contents  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WithContents returns a copy of s carrying new contents.
func (s DiarySummary) WithContents(contents string) DiarySummary {
	s.Contents = contents
	return s
}
