package prompt

import (
	"github.com/sahilm/fuzzy"
)

// rankSuggestions returns up to limit candidates for query, best first.
// An empty query keeps the candidates' own order. A candidate equal to
// the query is skipped since accepting it would change nothing.
func rankSuggestions(query string, candidates []string, limit int) []string {
	var out []string
	if query == "" {
		for _, c := range candidates {
			if len(out) == limit {
				break
			}
			if c != "" {
				out = append(out, c)
			}
		}
		return out
	}

	for _, match := range fuzzy.Find(query, candidates) {
		if len(out) == limit {
			break
		}
		if match.Str == query {
			continue
		}
		out = append(out, match.Str)
	}
	return out
}

func (m *Modal) refreshMatches() {
	if len(m.candidates) == 0 {
		m.matches = nil
		return
	}
	m.matches = rankSuggestions(m.input.Value(), m.candidates, maxSuggestions)
}

// acceptSuggestion replaces the field with the best match, caret at end.
func (m *Modal) acceptSuggestion() {
	if len(m.matches) == 0 {
		return
	}
	m.input.SetValue(m.matches[0])
	m.input.CursorEnd()
	m.refreshMatches()
}
