// Package hints derives descriptive hints and a difficulty rating from a
// resolved puzzle answer. Everything here is pure: no I/O, no state, the
// same answer always produces the same output.
package hints

import (
	"fmt"
	"strings"

	"github.com/puzzlewire/wordled/internal/models"
)

const vowels = "AEIOU"

// digraphs are checked in this fixed order; the first one contained in the
// answer produces the pattern hint.
var digraphs = []string{"TH", "ST", "ND", "ER", "ON", "RE", "ED", "IN", "TO", "IT"}

// Generate builds the ordered hint list and difficulty rating for an
// answer. Hints run from most structural to most revealing.
func Generate(answer string) ([]models.Hint, models.Difficulty) {
	word := strings.ToUpper(strings.TrimSpace(answer))

	var hints []models.Hint
	add := func(t models.HintType, format string, args ...interface{}) {
		hints = append(hints, models.Hint{Type: t, Value: fmt.Sprintf(format, args...)})
	}

	vowelCount := countVowels(word)
	add(models.HintTypeStructure, "This word has %d vowel%s and %d consonant%s.",
		vowelCount, plural(vowelCount), len(word)-vowelCount, plural(len(word)-vowelCount))

	if len(word) > 0 {
		add(models.HintTypePosition, "It starts with '%c' and ends with '%c'.",
			word[0], word[len(word)-1])
	}

	if letter, n := firstRepeatedLetter(word); n > 1 {
		add(models.HintTypeRepeat, "The letter '%c' appears %d times.", letter, n)
	}

	if vowelCount >= 2 {
		switch distinctVowels(word) {
		case 1:
			add(models.HintTypeVowels, "All of its vowels are the same letter.")
		case 2:
			add(models.HintTypeVowels, "It contains two distinct vowels.")
		default:
			add(models.HintTypeVowels, "It contains %d distinct vowels.", distinctVowels(word))
		}
	}

	if len(word) > 0 {
		if word[0] <= 'M' {
			add(models.HintTypeAlphabet, "The first letter is in the first half of the alphabet (A-M).")
		} else {
			add(models.HintTypeAlphabet, "The first letter is in the second half of the alphabet (N-Z).")
		}
	}

	for _, d := range digraphs {
		if strings.Contains(word, d) {
			add(models.HintTypePattern, "It contains the common letter pair '%s'.", d)
			break
		}
	}

	if sentence, ok := categorySentence(word); ok {
		add(models.HintTypeCategory, "%s", sentence)
	} else if len(word) == 5 {
		add(models.HintTypeCategory, "This is a common English word you might use in everyday conversation.")
	}

	return hints, rate(word, vowelCount)
}

// rate scores the answer and maps the score to a difficulty band.
func rate(word string, vowelCount int) models.Difficulty {
	score := 0
	if vowelCount <= 1 {
		score += 2
	}
	if vowelCount >= 4 {
		score++
	}
	if _, n := firstRepeatedLetter(word); n > 1 {
		score++
	}
	for _, r := range word {
		switch r {
		case 'J', 'Q', 'X', 'Z':
			score += 2
		}
	}
	if _, ok := commonWords[word]; ok {
		score--
	}

	switch {
	case score <= 0:
		return models.DifficultyEasy
	case score <= 2:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

func countVowels(word string) int {
	n := 0
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			n++
		}
	}
	return n
}

func distinctVowels(word string) int {
	seen := map[rune]bool{}
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			seen[r] = true
		}
	}
	return len(seen)
}

// firstRepeatedLetter returns the first letter (in word order) that occurs
// more than once, with its occurrence count.
func firstRepeatedLetter(word string) (byte, int) {
	for i := 0; i < len(word); i++ {
		n := strings.Count(word, string(word[i]))
		if n > 1 {
			return word[i], n
		}
	}
	return 0, 0
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
