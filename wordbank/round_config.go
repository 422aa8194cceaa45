package wordbank

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// RoundConfig is the word selection for one round, fixed at round start
type RoundConfig struct {
	CategoryID  string
	Title       string
	Correct     mapset.Set[string]
	Distractors mapset.Set[string]

	correctList    []string
	distractorList []string
}

// NewRoundConfig builds the correct set from the category and samples as many distractors
// A distractor equal to a target word is dropped so each word has a single classification
func (b *Bank) NewRoundConfig(categoryID string, rng *rand.Rand) (RoundConfig, error) {
	c, ok := b.Category(categoryID)
	if !ok {
		return RoundConfig{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	if len(c.Words) == 0 {
		return RoundConfig{}, fmt.Errorf("%w: %q", ErrEmptyCategory, categoryID)
	}

	rc := RoundConfig{
		CategoryID:  c.ID,
		Title:       c.Title,
		Correct:     mapset.New[string](),
		Distractors: mapset.New[string](),
	}
	for _, w := range c.Words {
		if rc.Correct.Has(w) {
			continue
		}
		rc.Correct.Put(w)
		rc.correctList = append(rc.correctList, w)
	}

	for _, w := range b.DistractorsFor(categoryID, len(rc.correctList), rng) {
		if rc.Correct.Has(w) {
			continue
		}
		rc.Distractors.Put(w)
		rc.distractorList = append(rc.distractorList, w)
	}
	return rc, nil
}

// IsCorrect reports whether word belongs to the target category
func (rc RoundConfig) IsCorrect(word string) bool {
	return rc.Correct.Has(word)
}

// Draw picks a word, a target word with probability correctRatio
// An empty chosen list falls back to the other; the word is empty only when both are
func (rc RoundConfig) Draw(rng *rand.Rand, correctRatio float64) (word string, correct bool) {
	wantCorrect := rng.Float64() < correctRatio
	if wantCorrect && len(rc.correctList) == 0 {
		wantCorrect = false
	}
	if !wantCorrect && len(rc.distractorList) == 0 {
		wantCorrect = true
	}

	list := rc.distractorList
	if wantCorrect {
		list = rc.correctList
	}
	if len(list) == 0 {
		return "", false
	}
	return list[rng.IntN(len(list))], wantCorrect
}
