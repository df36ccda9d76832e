package services

import (
	"strings"
	"testing"

	"github.com/yuyuan12138/food-cal/models"
)

func testCatalog() []models.FoodRecord {
	return []models.FoodRecord{
		{ID: "apple", Name: "Apple", Category: models.CategorySnack, Tags: []string{"fruit"}},
		{ID: "apple-pie", Name: "Apple Pie", Category: models.CategorySnack, Tags: []string{"dessert"}},
		{ID: "pineapple", Name: "Pineapple", Category: models.CategorySnack, Tags: []string{"fruit"}},
		{ID: "banana", Name: "Banana", Category: models.CategorySnack, Tags: []string{"fruit"}},
		{ID: "chicken", Name: "Grilled Chicken Breast", Category: models.CategoryLunch, Tags: []string{"protein"}},
		{ID: "salmon", Name: "Grilled Salmon", Category: models.CategoryDinner, Tags: []string{"fish"}},
		{ID: "oatmeal", Name: "Oatmeal", Category: models.CategoryBreakfast, Tags: []string{"grain"}},
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	s := NewSearchService()
	for _, q := range []string{"", "   ", "\t"} {
		if got := s.Search(q, testCatalog()); len(got) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", q, len(got))
		}
	}
}

func TestSearch_ExactMatchFirst(t *testing.T) {
	s := NewSearchService()
	got := s.Search("apple", testCatalog())
	if len(got) == 0 {
		t.Fatal("no results for apple")
	}
	if got[0].Name != "Apple" {
		t.Errorf("first result = %q, want exact match Apple", got[0].Name)
	}
}

func TestSearch_PrefixBeforeSubstring(t *testing.T) {
	s := NewSearchService()
	got := s.Search("app", testCatalog())
	// Apple and Apple Pie start with the query, Pineapple merely contains it.
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	if got[0].Name != "Apple" || got[1].Name != "Apple Pie" || got[2].Name != "Pineapple" {
		t.Errorf("order = %q, %q, %q", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	s := NewSearchService()
	got := s.Search("GRILLED SALMON", testCatalog())
	if len(got) == 0 || got[0].Name != "Grilled Salmon" {
		t.Fatalf("uppercase query did not find Grilled Salmon: %v", got)
	}
}

func TestSearch_TagAndCategoryMatch(t *testing.T) {
	s := NewSearchService()

	byTag := s.Search("fruit", testCatalog())
	if len(byTag) != 3 {
		t.Errorf("tag search got %d results, want 3", len(byTag))
	}

	byCategory := s.Search("breakfast", testCatalog())
	if len(byCategory) != 1 || byCategory[0].ID != "oatmeal" {
		t.Errorf("category search = %v", byCategory)
	}
}

func TestSearch_AllTermsInName(t *testing.T) {
	s := NewSearchService()
	// "grilled breast" is not a substring of any name, but both terms
	// appear in "Grilled Chicken Breast".
	got := s.Search("grilled breast", testCatalog())
	if len(got) != 1 || got[0].ID != "chicken" {
		t.Fatalf("multi-term search = %v, want Grilled Chicken Breast", got)
	}
}

func TestSearch_ResultCap(t *testing.T) {
	var catalog []models.FoodRecord
	for _, suffix := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		catalog = append(catalog, models.FoodRecord{
			ID:       "rice-" + suffix,
			Name:     "Rice " + strings.ToUpper(suffix),
			Category: models.CategoryLunch,
		})
	}
	s := NewSearchService()
	got := s.Search("rice", catalog)
	if len(got) != MaxSearchResults {
		t.Errorf("got %d results, want cap of %d", len(got), MaxSearchResults)
	}
}

func TestSearch_AllResultsMatch(t *testing.T) {
	s := NewSearchService()
	for _, q := range []string{"a", "grill", "fish", "snack", "ba na"} {
		for _, f := range s.Search(q, testCatalog()) {
			if !matches(f, strings.ToLower(strings.TrimSpace(q)), strings.Fields(strings.ToLower(q))) {
				t.Errorf("Search(%q) returned non-matching food %q", q, f.Name)
			}
		}
	}
}

func TestRememberSearch(t *testing.T) {
	var recent []string
	for _, q := range []string{"apple", "banana", "apple"} {
		recent = RememberSearch(recent, q)
	}
	if len(recent) != 2 || recent[0] != "apple" || recent[1] != "banana" {
		t.Fatalf("recent = %v, want [apple banana]", recent)
	}

	for _, q := range []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9"} {
		recent = RememberSearch(recent, q)
	}
	if len(recent) != 10 {
		t.Errorf("recent list length = %d, want cap of 10", len(recent))
	}
	if recent[0] != "c9" {
		t.Errorf("most recent = %q, want c9", recent[0])
	}

	if got := RememberSearch(recent, "   "); len(got) != 10 {
		t.Errorf("blank query changed the list: %v", got)
	}
}
