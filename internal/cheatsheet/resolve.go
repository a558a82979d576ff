package cheatsheet

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	log "github.com/sirupsen/logrus"
)

// Match returns the candidates whose stem contains pattern, ignoring case.
// Listing order is preserved. Stems that are not valid UTF-8 never match.
func Match(candidates []CandidateFile, pattern string) []CandidateFile {
	needle := strings.ToLower(pattern)

	var matches []CandidateFile
	for _, c := range candidates {
		if !utf8.ValidString(c.Stem) {
			continue
		}
		if strings.Contains(strings.ToLower(c.Stem), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Resolve picks the one candidate the pattern refers to.
//
// A single match always wins. With several matches, a lone markup source among
// otherwise rendered files is preferred, then a single candidate whose stem equals
// pattern exactly (case-sensitive). Anything else is an *AmbiguousError.
// ErrNoMatch is returned when nothing matches.
func Resolve(candidates []CandidateFile, pattern string) (Target, error) {
	matches := Match(candidates, pattern)
	log.Debugf("Pattern %q matched %d of %d files", pattern, len(matches), len(candidates))

	switch len(matches) {
	case 0:
		return Target{}, ErrNoMatch
	case 1:
		return NewTarget(matches[0]), nil
	}

	if c, ok := loneMarkupSource(matches); ok {
		log.Debugf("Preferring markup source %s over rendered copies", c.Name)
		return NewTarget(c), nil
	}

	if c, ok := exactStem(matches, pattern); ok {
		log.Debugf("Preferring exact stem match %s", c.Name)
		return NewTarget(c), nil
	}

	return Target{}, &AmbiguousError{Pattern: pattern, Names: names(matches)}
}

// loneMarkupSource returns the markup source when every match is either markup
// or rendered and exactly one of them is markup.
func loneMarkupSource(matches []CandidateFile) (CandidateFile, bool) {
	var found CandidateFile
	count := 0
	for _, c := range matches {
		switch {
		case c.IsMarkup():
			found = c
			count++
		case c.IsRendered():
		default:
			return CandidateFile{}, false
		}
	}
	return found, count == 1
}

// exactStem returns the match whose stem equals pattern byte for byte.
// Two or more such matches are not a resolution.
func exactStem(matches []CandidateFile, pattern string) (CandidateFile, bool) {
	var found CandidateFile
	count := 0
	for _, c := range matches {
		if c.Stem == pattern {
			found = c
			count++
		}
	}
	return found, count == 1
}

func names(files []CandidateFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Name
	}
	return out
}

// Suggest returns up to limit file names whose stem fuzzily contains pattern,
// closest first. It is used to hint at alternatives when Resolve finds nothing.
func Suggest(candidates []CandidateFile, pattern string, limit int) []string {
	if pattern == "" || limit <= 0 {
		return nil
	}

	stems := make([]string, len(candidates))
	for i, c := range candidates {
		stems[i] = c.Stem
	}

	ranks := fuzzy.RankFindNormalizedFold(pattern, stems)
	sort.Stable(ranks)

	var out []string
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, candidates[r.OriginalIndex].Name)
	}
	return out
}
