package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/yuyuan12138/food-cal/models"
	"github.com/yuyuan12138/food-cal/storage"
	"github.com/yuyuan12138/food-cal/utils"
)

// TrackerStore owns all mutable tracker state: the profile, the log
// entries, the UI selection and the recent searches. It is the explicit
// context object the rest of the app works through — loaded from the
// snapshot store at startup and saved after every mutation.
type TrackerStore struct {
	mu   sync.RWMutex
	snap storage.Snapshot

	store storage.Store
	hub   *SummaryHub
}

func NewTrackerStore(store storage.Store, hub *SummaryHub) *TrackerStore {
	return &TrackerStore{
		snap: storage.Snapshot{
			Version:        storage.SchemaVersion,
			Profile:        models.DefaultProfile(),
			Entries:        []models.LogEntry{},
			SelectedDate:   utils.TodayDate(),
			SelectedMeal:   models.MealBreakfast,
			RecentSearches: []string{},
		},
		store: store,
		hub:   hub,
	}
}

// Load restores state from the snapshot store. A missing snapshot or a
// schema version mismatch leaves the defaults in place.
func (t *TrackerStore) Load(ctx context.Context) error {
	snap, err := t.store.Load(ctx)
	if errors.Is(err, storage.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snap.Version != storage.SchemaVersion {
		log.Printf("snapshot schema version %d != %d, starting fresh", snap.Version, storage.SchemaVersion)
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.snap = *snap
	if t.snap.Profile.Goals.DailyCalorieTarget <= 0 {
		t.snap.Profile.Goals.DailyCalorieTarget = 2000
	}
	if t.snap.Profile.ActivityLevel == "" {
		t.snap.Profile.ActivityLevel = models.ActivityModerate
	}
	if t.snap.Entries == nil {
		t.snap.Entries = []models.LogEntry{}
	}
	if t.snap.RecentSearches == nil {
		t.snap.RecentSearches = []string{}
	}
	if !utils.ValidDate(t.snap.SelectedDate) {
		t.snap.SelectedDate = utils.TodayDate()
	}
	return nil
}

// persist must be called with the write lock held. A failed save is logged
// and otherwise ignored: the in-memory state stays authoritative and the
// next mutation retries the write.
func (t *TrackerStore) persist(ctx context.Context) {
	snap := t.snap
	if err := t.store.Save(ctx, &snap); err != nil {
		log.Printf("save snapshot: %v", err)
	}
}

func (t *TrackerStore) broadcastSummary(date string) {
	if t.hub == nil {
		return
	}
	t.hub.Broadcast("summary.updated", t.DailySummary(date))
}

/* ── Entries ── */

// AddEntry creates a frozen log entry for food and appends it to the log.
func (t *TrackerStore) AddEntry(ctx context.Context, food models.FoodRecord, meal models.MealType, servings float64, date string) (models.LogEntry, error) {
	entry, err := NewLogEntry(food, meal, servings, date)
	if err != nil {
		return models.LogEntry{}, err
	}

	t.mu.Lock()
	t.snap.Entries = append(t.snap.Entries, entry)
	t.persist(ctx)
	t.mu.Unlock()

	t.broadcastSummary(entry.Date)
	return entry, nil
}

// UpdateEntryServings rescales one entry's frozen nutrition to a new
// serving multiplier. Other fields are immutable.
func (t *TrackerStore) UpdateEntryServings(ctx context.Context, id string, servings float64) (models.LogEntry, error) {
	t.mu.Lock()
	idx := -1
	for i, e := range t.snap.Entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return models.LogEntry{}, fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	updated, err := RescaleEntry(t.snap.Entries[idx], servings)
	if err != nil {
		t.mu.Unlock()
		return models.LogEntry{}, err
	}
	t.snap.Entries[idx] = updated
	t.persist(ctx)
	t.mu.Unlock()

	t.broadcastSummary(updated.Date)
	return updated, nil
}

// DeleteEntry removes exactly one entry by id, preserving the order of the
// rest.
func (t *TrackerStore) DeleteEntry(ctx context.Context, id string) error {
	t.mu.Lock()
	idx := -1
	for i, e := range t.snap.Entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.mu.Unlock()
		return fmt.Errorf("entry %q: %w", id, ErrNotFound)
	}
	date := t.snap.Entries[idx].Date
	t.snap.Entries = append(t.snap.Entries[:idx], t.snap.Entries[idx+1:]...)
	t.persist(ctx)
	t.mu.Unlock()

	t.broadcastSummary(date)
	return nil
}

func (t *TrackerStore) EntriesForDate(date string) []models.LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := []models.LogEntry{}
	for _, e := range t.snap.Entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// DailySummary recomputes the summary for a date from the current entries.
func (t *TrackerStore) DailySummary(date string) models.DailySummary {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Summarize(t.snap.Entries, date)
}

// MetricProgress is consumed/goal/percent for one tracked metric. Percent
// is clamped to 1 and zero when no goal is set.
type MetricProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// Progress reports how the date's totals stand against the profile goals.
func (t *TrackerStore) Progress(date string) map[string]MetricProgress {
	t.mu.RLock()
	goals := t.snap.Profile.Goals
	summary := Summarize(t.snap.Entries, date)
	t.mu.RUnlock()

	pct := func(consumed, goal float64) float64 {
		if goal <= 0 {
			return 0
		}
		p := consumed / goal
		if p > 1 {
			return 1
		}
		return p
	}
	mk := func(consumed, goal float64) MetricProgress {
		return MetricProgress{Consumed: consumed, Goal: goal, Percent: pct(consumed, goal)}
	}

	return map[string]MetricProgress{
		"calories": mk(float64(summary.TotalCalories), float64(goals.DailyCalorieTarget)),
		"protein":  mk(summary.TotalProtein, goals.ProteinTarget),
		"carbs":    mk(summary.TotalCarbs, goals.CarbsTarget),
		"fat":      mk(summary.TotalFat, goals.FatTarget),
	}
}

/* ── Profile ── */

func (t *TrackerStore) Profile() models.UserProfile {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap.Profile
}

// ProfileUpdate carries the fields of a partial profile update; nil means
// "leave unchanged".
type ProfileUpdate struct {
	WeightKG      *float64              `json:"weight_kg"`
	HeightCM      *float64              `json:"height_cm"`
	AgeYears      *int                  `json:"age_years"`
	Gender        *models.Gender        `json:"gender"`
	ActivityLevel *models.ActivityLevel `json:"activity_level"`
	Goals         *models.Goals         `json:"goals"`
}

func (t *TrackerStore) UpdateProfile(ctx context.Context, upd ProfileUpdate) (models.UserProfile, error) {
	if upd.Gender != nil {
		switch *upd.Gender {
		case models.GenderMale, models.GenderFemale, models.GenderOther:
		default:
			return models.UserProfile{}, validationErr("gender", "unknown gender %q", *upd.Gender)
		}
	}
	if upd.Goals != nil && upd.Goals.DailyCalorieTarget <= 0 {
		return models.UserProfile{}, validationErr("goals", "daily calorie target must be positive")
	}

	t.mu.Lock()
	p := &t.snap.Profile
	if upd.WeightKG != nil {
		p.WeightKG = *upd.WeightKG
	}
	if upd.HeightCM != nil {
		p.HeightCM = *upd.HeightCM
	}
	if upd.AgeYears != nil {
		p.AgeYears = *upd.AgeYears
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.ActivityLevel != nil {
		p.ActivityLevel = *upd.ActivityLevel
	}
	if upd.Goals != nil {
		p.Goals = *upd.Goals
	}
	profile := *p
	t.persist(ctx)
	t.mu.Unlock()

	if t.hub != nil {
		t.hub.Broadcast("profile.updated", profile)
	}
	return profile, nil
}

func (t *TrackerStore) SetCalorieTarget(ctx context.Context, calories int) error {
	if calories <= 0 {
		return validationErr("daily_calorie_target", "must be positive, got %d", calories)
	}
	t.mu.Lock()
	t.snap.Profile.Goals.DailyCalorieTarget = calories
	profile := t.snap.Profile
	t.persist(ctx)
	t.mu.Unlock()

	if t.hub != nil {
		t.hub.Broadcast("profile.updated", profile)
	}
	return nil
}

// ApplyNeeds writes a calculator result into the goals: the recommended
// intake becomes the calorie target and the macro grams become the gram
// targets.
func (t *TrackerStore) ApplyNeeds(ctx context.Context, needs models.CalorieNeeds) error {
	if needs.Recommended <= 0 {
		return validationErr("recommended", "must be positive, got %d", needs.Recommended)
	}
	t.mu.Lock()
	t.snap.Profile.Goals = models.Goals{
		DailyCalorieTarget: needs.Recommended,
		ProteinTarget:      float64(needs.Macros.Protein.Grams),
		CarbsTarget:        float64(needs.Macros.Carbs.Grams),
		FatTarget:          float64(needs.Macros.Fat.Grams),
	}
	profile := t.snap.Profile
	t.persist(ctx)
	t.mu.Unlock()

	if t.hub != nil {
		t.hub.Broadcast("profile.updated", profile)
	}
	return nil
}

/* ── UI selection & recent searches ── */

func (t *TrackerStore) Selection() (string, models.MealType) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snap.SelectedDate, t.snap.SelectedMeal
}

func (t *TrackerStore) SetSelectedDate(ctx context.Context, date string) error {
	if !utils.ValidDate(date) {
		return validationErr("date", "want YYYY-MM-DD, got %q", date)
	}
	t.mu.Lock()
	t.snap.SelectedDate = date
	t.persist(ctx)
	t.mu.Unlock()
	return nil
}

func (t *TrackerStore) SetSelectedMeal(ctx context.Context, meal models.MealType) error {
	if _, err := models.ParseMealType(string(meal)); err != nil {
		return validationErr("meal", "%v", err)
	}
	t.mu.Lock()
	t.snap.SelectedMeal = meal
	t.persist(ctx)
	t.mu.Unlock()
	return nil
}

func (t *TrackerStore) RecentSearches() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.snap.RecentSearches))
	copy(out, t.snap.RecentSearches)
	return out
}

// RememberSearch records a non-empty query, most recent first, capped at
// ten.
func (t *TrackerStore) RememberSearch(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	t.mu.Lock()
	t.snap.RecentSearches = RememberSearch(t.snap.RecentSearches, query)
	t.persist(ctx)
	t.mu.Unlock()
}
