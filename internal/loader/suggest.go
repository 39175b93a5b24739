package loader

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest lists entries of the directory named by query that fuzzy-match its
// last path element, best first. Directories carry a trailing slash. The
// returned strings keep the directory part exactly as typed.
func (l FileLoader) Suggest(query string, limit int) []string {
	dirPart, base := splitQuery(query)
	dir := dirPart
	if dir == "" {
		dir = "."
	}
	abs, err := l.Abs(dir)
	if err != nil {
		return nil
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	ranked := RankNames(names, base)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i, name := range ranked {
		ranked[i] = dirPart + name
	}
	return ranked
}

func splitQuery(query string) (dir, base string) {
	idx := strings.LastIndex(query, string(filepath.Separator))
	if idx < 0 {
		return "", query
	}
	return query[:idx+1], query[idx+1:]
}

// RankNames orders names by how well they match query. Exact and prefix
// matches come first, then fuzzy matches by distance. An empty query keeps
// every name in lexical order.
func RankNames(names []string, query string) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		out := append([]string(nil), names...)
		sort.Strings(out)
		return out
	}
	lower := strings.ToLower(trimmed)
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	score := func(r fuzzy.Rank) int {
		name := strings.ToLower(strings.TrimSuffix(r.Target, "/"))
		switch {
		case name == lower:
			return 0
		case strings.HasPrefix(name, lower):
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		si, sj := score(ranks[i]), score(ranks[j])
		if si != sj {
			return si < sj
		}
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].Target < ranks[j].Target
	})
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
