package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yuyuan12138/food-cal/models"
)

// MaxSearchResults caps the ranked result list.
const MaxSearchResults = 10

// SearchService ranks catalog foods against free-text queries. It holds no
// mutable state beyond the collator and is safe to call on every keystroke;
// debouncing is the caller's concern (see utils.Debouncer).
type SearchService struct {
	coll *collate.Collator
}

func NewSearchService() *SearchService {
	return &SearchService{coll: collate.New(language.English, collate.IgnoreCase)}
}

// Search returns at most MaxSearchResults foods matching the query, best
// first. An empty or whitespace-only query matches nothing. A food matches
// when the query is a case-insensitive substring of its name, any tag, or
// its category, or when every whitespace-separated term of the query
// appears in the name.
func (s *SearchService) Search(query string, catalog []models.FoodRecord) []models.FoodRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.FoodRecord{}
	}
	terms := strings.Fields(q)

	var matched []models.FoodRecord
	for _, f := range catalog {
		if matches(f, q, terms) {
			matched = append(matched, f)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return s.less(matched[i], matched[j], q)
	})

	if len(matched) > MaxSearchResults {
		matched = matched[:MaxSearchResults]
	}
	if matched == nil {
		matched = []models.FoodRecord{}
	}
	return matched
}

func matches(f models.FoodRecord, q string, terms []string) bool {
	name := strings.ToLower(f.Name)
	if strings.Contains(name, q) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(string(f.Category)), q) {
		return true
	}
	for _, term := range terms {
		if !strings.Contains(name, term) {
			return false
		}
	}
	return true
}

// less orders exact name matches first, then prefix matches, then the rest
// by collated name.
func (s *SearchService) less(a, b models.FoodRecord, q string) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)

	if (an == q) != (bn == q) {
		return an == q
	}
	ap, bp := strings.HasPrefix(an, q), strings.HasPrefix(bn, q)
	if ap != bp {
		return ap
	}
	return s.coll.CompareString(a.Name, b.Name) < 0
}

// RememberSearch pushes query onto a recency-ordered list: duplicates move
// to the front, the list is capped at 10. Blank queries are ignored. The
// list is owned by the caller, not the engine.
func RememberSearch(recent []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return recent
	}
	out := make([]string, 0, len(recent)+1)
	out = append(out, query)
	for _, r := range recent {
		if r != query {
			out = append(out, r)
		}
	}
	if len(out) > 10 {
		out = out[:10]
	}
	return out
}
