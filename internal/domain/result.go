package domain

import "github.com/google/uuid"

// TestResult is the outcome of one query under one TestRun.
//
// AnswerFound and AnswerRank are independent: a found answer may lack a rank
// when rank tracking failed, so callers must check each on its own.
type TestResult struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	RunID       uuid.UUID `json:"run_id" yaml:"run_id"`
	Query       string    `json:"query" yaml:"query" jsonschema:"required"`
	AnswerFound bool      `json:"answer_found" yaml:"answer_found"`
	// AnswerRank is the 1-based position of the answer chunk among retrieved chunks, nil when absent.
	AnswerRank *int `json:"answer_rank,omitempty" yaml:"answer_rank,omitempty" jsonschema:"minimum=1"`
}

func (r TestResult) HasRank() bool {
	return r.AnswerRank != nil
}
