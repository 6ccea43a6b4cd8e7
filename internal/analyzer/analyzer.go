// Package analyzer computes basic statistics over a piece of text.
//
// Everything here is a pure function: no state, no I/O, no errors.
// The HTTP handlers call Analyze and render whatever comes back.
package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is the outcome of analysing one text.
//
// MostFrequent is "" and Frequency is 0 when the cleaned text holds no
// words at all (e.g. "123!!!"). That is a normal result, not an error.
type Result struct {
	CharCount     int    `json:"char_count"`
	WordCount     int    `json:"word_count"`
	SentenceCount int    `json:"sentence_count"`
	MostFrequent  string `json:"most_frequent"`
	Frequency     int    `json:"freq"`
}

// WordCount pairs a cleaned word with the number of times it occurs.
type WordCount struct {
	Word  string
	Count int
}

// Analyze runs every statistic over content.
//
//	CharCount     — number of Unicode code points (not bytes)
//	WordCount     — whitespace-separated tokens of the RAW text
//	SentenceCount — every '.', '!' and '?' counted on its own ("..." = 3)
//	MostFrequent  — top word of the CLEANED text, see CleanText
func Analyze(content string) Result {
	result := Result{
		CharCount:     utf8.RuneCountInString(content),
		WordCount:     len(strings.Fields(content)),
		SentenceCount: countSentenceMarks(content),
	}

	if top := MostFrequentWords(CleanText(content), 1); len(top) > 0 {
		result.MostFrequent = top[0].Word
		result.Frequency = top[0].Count
	}

	return result
}

// CleanText removes every character that is neither an ASCII letter nor
// whitespace. Digits, punctuation and non-ASCII letters ("é", "ß") are
// all dropped; whitespace is kept so word boundaries survive.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if isASCIILetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// MostFrequentWords lower-cases the cleaned text, counts each word and
// returns the n most frequent ones.
//
// Ordering is by count descending; words with the same count are ordered
// by the word itself, DESCENDING ("dog" before "cat"). n <= 0 returns
// every word.
func MostFrequentWords(cleaned string, n int) []WordCount {
	counts := make(map[string]int)
	for _, word := range strings.Fields(strings.ToLower(cleaned)) {
		counts[word]++
	}

	words := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, WordCount{Word: word, Count: count})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word > words[j].Word
	})

	if n > 0 && len(words) > n {
		words = words[:n]
	}

	return words
}

func countSentenceMarks(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
