// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import (
	"fmt"

	"github.com/seqlabs/strand"
)

// InvalidScoringError occurs when a scoring scheme rewards mismatches
// or penalizes matches.
type InvalidScoringError struct {
	Match    int32
	Mismatch int32
}

// Error implements the error interface.
func (e InvalidScoringError) Error() string {
	return fmt.Sprintf("align: scoring scheme requires match >= 0 and mismatch <= 0, got match %d and mismatch %d", e.Match, e.Mismatch)
}

// Scoring is the configuration element carrying the simple scoring
// scheme: one score for matching characters and one for mismatching
// ones.
type Scoring struct {
	match    int32
	mismatch int32
}

// Kind implements the [strand.Element] interface.
func (Scoring) Kind() strand.Kind { return KindScoring }

// NewScoring returns a Scoring scheme with the given match and
// mismatch scores. It fails with an [InvalidScoringError] if match is
// negative or mismatch positive.
func NewScoring(match, mismatch int32) (Scoring, error) {
	if match < 0 || mismatch > 0 {
		return Scoring{}, InvalidScoringError{Match: match, Mismatch: mismatch}
	}
	return Scoring{match: match, mismatch: mismatch}, nil
}

// Match returns the score for matching characters.
func (s Scoring) Match() int32 { return s.match }

// Mismatch returns the score for mismatching characters.
func (s Scoring) Mismatch() int32 { return s.mismatch }
