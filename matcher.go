package main

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const maxSearchResults = 3

// Words that make an unmatched query look like a question. Questions get the
// general-information fallback instead of the search suggestion.
var interrogatives = map[string]bool{
	"what":  true,
	"how":   true,
	"why":   true,
	"when":  true,
	"where": true,
	"who":   true,
}

// normalizeText lowercases input and flattens unicode before matching:
// NFKD normalization, every unicode space becomes a plain space, and outer
// whitespace is trimmed.
func normalizeText(text string) string {
	text = norm.NFKD.String(text)

	text = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)

	return strings.ToLower(strings.TrimSpace(text))
}

// searchKB matches a free-text query against the knowledge base and returns
// up to maxSearchResults records in knowledge-base declaration order, plus
// the normalized query for echoing back to the client.
//
// A record matches when any query word occurs as a substring of its topic
// key, or when any underscore-separated piece of the key occurs as a
// substring of the whole query. Plain substring containment over-matches on
// short common fragments; that looseness is intentional and kept.
func searchKB(query string, kb []kbEntry) ([]ResponseRecord, string) {
	normalized := normalizeText(query)
	queryWords := strings.Fields(normalized)

	var results []ResponseRecord
	for _, entry := range kb {
		if matchesEntry(entry.Key, normalized, queryWords) {
			results = append(results, entry.Record)
			if len(results) == maxSearchResults {
				break
			}
		}
	}

	if len(results) == 0 {
		if containsInterrogative(queryWords) {
			results = append(results, generalInfoRecord)
		} else {
			results = append(results, searchSuggestionRecord)
		}
	}

	return results, normalized
}

func matchesEntry(key, query string, queryWords []string) bool {
	for _, word := range queryWords {
		if strings.Contains(key, word) {
			return true
		}
	}
	for _, part := range strings.Split(key, "_") {
		if strings.Contains(query, part) {
			return true
		}
	}
	return false
}

func containsInterrogative(words []string) bool {
	for _, word := range words {
		if interrogatives[word] {
			return true
		}
	}
	return false
}
