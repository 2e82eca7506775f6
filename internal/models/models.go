// Package models defines the core data structures used throughout the application.
package models

import (
	"time"
)

// Difficulty rates how hard a puzzle answer is to guess.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// HintType categorizes a hint by what it reveals about the answer.
type HintType string

const (
	HintTypeStructure HintType = "structure" // vowel/consonant counts
	HintTypePosition  HintType = "position"  // first and last letters
	HintTypeRepeat    HintType = "repeat"    // repeated letters
	HintTypeVowels    HintType = "vowels"    // vowel distinctness
	HintTypeAlphabet  HintType = "alphabet"  // alphabet half of the first letter
	HintTypePattern   HintType = "pattern"   // common digraphs
	HintTypeCategory  HintType = "category"  // semantic category
)

// Hint is a single descriptive clue about the answer. Hints are presented
// in insertion order, least to most revealing.
type Hint struct {
	Type  HintType `json:"type"`
	Value string   `json:"value"`
}

// PuzzleRecord is the persisted result of resolving one day's puzzle.
// Date is the unique key; at most one record exists per date.
type PuzzleRecord struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"` // YYYY-MM-DD
	PuzzleNumber int        `json:"puzzle_number"`
	Answer       string     `json:"answer"` // 5 uppercase letters
	Hints        []Hint     `json:"hints"`
	Difficulty   Difficulty `json:"difficulty"`
	Definition   string     `json:"definition,omitempty"`
	Source       string     `json:"source,omitempty"` // strategy that produced the answer
	CreatedAt    time.Time  `json:"created_at"`
}

// RawCandidate is an unvalidated answer token extracted by a source
// strategy. Source identifies the strategy for diagnostics; Token is the
// raw extracted text before validation.
type RawCandidate struct {
	Source string `json:"source"`
	Token  string `json:"token"`
}

// ErrorResponse is the structured failure payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
