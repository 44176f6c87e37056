// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"math"

	"github.com/danielhkuo/themis/models"
)

// Vote is one participant's stored verdict on one option. A nil rating
// means no numeric rating was recorded. A rating may coexist with a
// veto; the aggregator decides whether it counts.
type Vote struct {
	Rating *int
	Veto   bool
}

// optionTally accumulates the votes cast for a single option. sum and
// count cover non-veto ratings only; rawSum and rawCount cover every
// numeric rating, veto or not, for the all-vetoed fallback.
type optionTally struct {
	sum      int
	count    int
	rawSum   int
	rawCount int
	vetoes   int
}

func (t *optionTally) mean() float64 {
	if t.count == 0 {
		return math.Inf(-1)
	}
	return float64(t.sum) / float64(t.count)
}

func (t *optionTally) rawMean() float64 {
	if t.rawCount == 0 {
		return math.Inf(-1)
	}
	return float64(t.rawSum) / float64(t.rawCount)
}

// Winner computes the winning option for the given options and votes.
// options must be in creation order; votes maps participant id →
// option id → Vote. Returns false only when there are zero options.
//
// Scoring: each option's score is the mean of its non-veto numeric
// ratings, and an option with at least one veto cannot win. If every
// option has a veto that exclusion would leave no winner, so it is
// waived and raw means — over all numeric ratings, vetoed entries
// included — are compared instead. An option with no countable
// ratings scores as low as possible. Ties break to the
// earliest-created option. Total and deterministic over any
// option/vote combination.
func Winner(options []models.Option, votes map[string]map[string]Vote) (string, bool) {
	if len(options) == 0 {
		return "", false
	}

	tallies := make(map[string]*optionTally, len(options))
	for _, opt := range options {
		tallies[opt.ID] = &optionTally{}
	}

	for _, byOption := range votes {
		for optionID, v := range byOption {
			t, ok := tallies[optionID]
			if !ok {
				continue
			}
			if v.Rating != nil {
				t.rawSum += *v.Rating
				t.rawCount++
			}
			if v.Veto {
				t.vetoes++
			} else if v.Rating != nil {
				t.sum += *v.Rating
				t.count++
			}
		}
	}

	allVetoed := true
	for _, opt := range options {
		if tallies[opt.ID].vetoes == 0 {
			allVetoed = false
			break
		}
	}

	bestIdx := -1
	bestScore := math.Inf(-1)
	for i, opt := range options {
		t := tallies[opt.ID]

		var score float64
		if allVetoed {
			score = t.rawMean()
		} else if t.vetoes > 0 {
			continue
		} else {
			score = t.mean()
		}

		// Strict > keeps the earliest-created option on ties.
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	return options[bestIdx].ID, true
}
