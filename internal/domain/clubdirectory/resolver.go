package clubdirectory

import (
	"regexp"
	"strings"

	"github.com/riskibarqy/paddle-roster/internal/platform/names"
)

var trailingTeamNumber = regexp.MustCompile(`\s+\d+[A-Za-z]?$`)

// Resolver maps raw team display strings onto official club names.
type Resolver struct {
	official map[string]string
	aliases  map[string]string
}

func NewResolver(entries []Entry) *Resolver {
	r := &Resolver{
		official: make(map[string]string, len(entries)),
		aliases:  make(map[string]string, len(entries)),
	}
	for _, entry := range entries {
		name := strings.TrimSpace(entry.OfficialName)
		if name == "" {
			continue
		}
		r.official[names.Normalize(name)] = name
		for _, alias := range entry.Aliases {
			key := names.Normalize(alias)
			if key == "" {
				continue
			}
			if _, exists := r.aliases[key]; !exists {
				r.aliases[key] = name
			}
		}
	}
	return r
}

// Resolve tries, in order: official name, alias, the name without a trailing team number,
// then successively shorter word prefixes. Unknown names come back trimmed.
func (r *Resolver) Resolve(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || r == nil {
		return trimmed
	}

	if name, ok := r.lookup(trimmed); ok {
		return name
	}

	base := trimmed
	if stripped := strings.TrimSpace(trailingTeamNumber.ReplaceAllString(trimmed, "")); stripped != "" && stripped != trimmed {
		if name, ok := r.lookup(stripped); ok {
			return name
		}
		base = stripped
	}

	words := strings.Fields(base)
	for n := len(words) - 1; n >= 1; n-- {
		if name, ok := r.lookup(strings.Join(words[:n], " ")); ok {
			return name
		}
	}

	return trimmed
}

func (r *Resolver) lookup(candidate string) (string, bool) {
	key := names.Normalize(candidate)
	if name, ok := r.official[key]; ok {
		return name, true
	}
	if name, ok := r.aliases[key]; ok {
		return name, true
	}
	return "", false
}
