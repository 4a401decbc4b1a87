package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category tags every basic, habit, and goal with one fixed area of worship.
type Category string

const (
	CategoryPrayer   Category = "prayer"
	CategoryQuran    Category = "quran"
	CategoryDhikr    Category = "dhikr"
	CategoryCharity  Category = "charity"
	CategoryDua      Category = "dua"
	CategoryFasting  Category = "fasting"
	CategoryLearning Category = "learning"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryPrayer, CategoryQuran, CategoryDhikr, CategoryCharity,
		CategoryDua, CategoryFasting, CategoryLearning:
		return true
	}
	return false
}

// Basic is one of the six fixed daily obligations.
type Basic struct {
	ID       string
	Category Category
	LabelKey MessageKey
}

// GalleryHabit is a curated daily-habit template the user can adopt.
type GalleryHabit struct {
	ID            string
	Category      Category
	LabelKey      MessageKey
	DefaultTarget int
}

// GalleryGoal is a curated monthly-goal template with a whole-month target.
type GalleryGoal struct {
	ID            string
	Category      Category
	LabelKey      MessageKey
	DefaultTarget int
}

var basics = []Basic{
	{ID: "fajr", Category: CategoryPrayer, LabelKey: MsgBasicFajr},
	{ID: "dhuhr", Category: CategoryPrayer, LabelKey: MsgBasicDhuhr},
	{ID: "asr", Category: CategoryPrayer, LabelKey: MsgBasicAsr},
	{ID: "maghrib", Category: CategoryPrayer, LabelKey: MsgBasicMaghrib},
	{ID: "isha", Category: CategoryPrayer, LabelKey: MsgBasicIsha},
	{ID: "fasting", Category: CategoryFasting, LabelKey: MsgBasicFasting},
}

var habitGallery = []GalleryHabit{
	{ID: "quran-daily", Category: CategoryQuran, LabelKey: MsgHabitQuranDaily, DefaultTarget: 1},
	{ID: "morning-adhkar", Category: CategoryDhikr, LabelKey: MsgHabitMorningAdhkar},
	{ID: "evening-adhkar", Category: CategoryDhikr, LabelKey: MsgHabitEveningAdhkar},
	{ID: "taraweeh", Category: CategoryPrayer, LabelKey: MsgHabitTaraweeh},
	{ID: "tahajjud", Category: CategoryPrayer, LabelKey: MsgHabitTahajjud},
	{ID: "duha", Category: CategoryPrayer, LabelKey: MsgHabitDuha},
	{ID: "istighfar", Category: CategoryDhikr, LabelKey: MsgHabitIstighfar, DefaultTarget: 100},
	{ID: "salawat", Category: CategoryDhikr, LabelKey: MsgHabitSalawat, DefaultTarget: 100},
	{ID: "daily-dua", Category: CategoryDua, LabelKey: MsgHabitDailyDua},
	{ID: "daily-charity", Category: CategoryCharity, LabelKey: MsgHabitDailyCharity},
	{ID: "islamic-lecture", Category: CategoryLearning, LabelKey: MsgHabitLecture},
	{ID: "family-iftar", Category: CategoryCharity, LabelKey: MsgHabitFamilyIftar},
}

var goalGallery = []GalleryGoal{
	{ID: "monthly-khatm", Category: CategoryQuran, LabelKey: MsgGoalKhatm, DefaultTarget: 30},
	{ID: "monthly-charity", Category: CategoryCharity, LabelKey: MsgGoalCharity, DefaultTarget: 30},
	{ID: "monthly-taraweeh", Category: CategoryPrayer, LabelKey: MsgGoalTaraweeh, DefaultTarget: 20},
	{ID: "monthly-dua", Category: CategoryDua, LabelKey: MsgGoalDua, DefaultTarget: 30},
	{ID: "monthly-memorization", Category: CategoryQuran, LabelKey: MsgGoalMemorization, DefaultTarget: 10},
	{ID: "monthly-lectures", Category: CategoryLearning, LabelKey: MsgGoalLectures, DefaultTarget: 15},
	{ID: "monthly-iftar-meals", Category: CategoryCharity, LabelKey: MsgGoalIftarMeals, DefaultTarget: 10},
}

// Basics returns the fixed list of daily obligations (five prayers + fasting).
func Basics() []Basic {
	return append([]Basic(nil), basics...)
}

func HabitGallery() []GalleryHabit {
	return append([]GalleryHabit(nil), habitGallery...)
}

func GoalGallery() []GalleryGoal {
	return append([]GalleryGoal(nil), goalGallery...)
}

// BasicByID looks up a fixed basic by id.
func BasicByID(id string) (Basic, bool) {
	for _, b := range basics {
		if b.ID == id {
			return b, true
		}
	}
	return Basic{}, false
}

// GalleryHabitByID looks up a habit template by id.
func GalleryHabitByID(id string) (GalleryHabit, bool) {
	for _, g := range habitGallery {
		if g.ID == id {
			return g, true
		}
	}
	return GalleryHabit{}, false
}

// GalleryGoalByID looks up a goal template by id. The migration chain uses it
// to map retired weekly-goal ids onto their monthly counterparts.
func GalleryGoalByID(id string) (GalleryGoal, bool) {
	for _, g := range goalGallery {
		if g.ID == id {
			return g, true
		}
	}
	return GalleryGoal{}, false
}

// ValidateCatalog checks the id-uniqueness invariant across all three lists.
// Both binaries run it at startup so a bad edit fails loudly instead of
// corrupting documents.
func ValidateCatalog() error {
	seen := make(map[string]string)

	check := func(list, id string) error {
		if id == "" {
			return fmt.Errorf("catalog: empty id in %s", list)
		}
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("catalog: duplicate id %q in %s (already in %s)", id, list, prev)
		}
		seen[id] = list
		return nil
	}

	for _, b := range basics {
		if err := check("basics", b.ID); err != nil {
			return err
		}
		if !ValidCategory(b.Category) {
			return fmt.Errorf("catalog: basic %q has invalid category %q", b.ID, b.Category)
		}
	}
	for _, h := range habitGallery {
		if err := check("habit gallery", h.ID); err != nil {
			return err
		}
		if !ValidCategory(h.Category) {
			return fmt.Errorf("catalog: habit %q has invalid category %q", h.ID, h.Category)
		}
	}
	for _, g := range goalGallery {
		if err := check("goal gallery", g.ID); err != nil {
			return err
		}
		if !ValidCategory(g.Category) {
			return fmt.Errorf("catalog: goal %q has invalid category %q", g.ID, g.Category)
		}
	}

	return nil
}

// TrackedHabit turns a gallery template into a tracked daily habit.
func TrackedHabit(g GalleryHabit, locale string) DailyHabit {
	return DailyHabit{
		ID:        g.ID,
		Name:      Translate(locale, g.LabelKey),
		Category:  g.Category,
		Source:    SourceGallery,
		Enabled:   true,
		Target:    g.DefaultTarget,
		CreatedAt: time.Now().UTC(),
	}
}

// NewCustomHabit builds a fully custom daily habit from user input.
func NewCustomHabit(name string, category Category, target int) (DailyHabit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DailyHabit{}, ErrHabitNameEmpty
	}
	if len(name) > MaxNameLen {
		return DailyHabit{}, ErrHabitNameTooLong
	}
	if !ValidCategory(category) {
		return DailyHabit{}, ErrInvalidCategory
	}
	if target < 0 {
		target = 0
	}

	return DailyHabit{
		ID:        "custom-" + uuid.NewString(),
		Name:      name,
		Category:  category,
		Source:    SourceCustom,
		Enabled:   true,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// TrackedGoal turns a gallery template into a tracked monthly goal.
func TrackedGoal(g GalleryGoal, locale string) MonthlyGoal {
	return MonthlyGoal{
		ID:        g.ID,
		Name:      Translate(locale, g.LabelKey),
		Category:  g.Category,
		Source:    SourceGallery,
		Target:    g.DefaultTarget,
		CreatedAt: time.Now().UTC(),
	}
}

// NewCustomGoal builds a fully custom monthly goal from user input.
func NewCustomGoal(name string, category Category, target int) (MonthlyGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return MonthlyGoal{}, ErrGoalNameEmpty
	}
	if len(name) > MaxNameLen {
		return MonthlyGoal{}, ErrGoalNameTooLong
	}
	if !ValidCategory(category) {
		return MonthlyGoal{}, ErrInvalidCategory
	}
	if target < 1 {
		return MonthlyGoal{}, ErrGoalTargetZero
	}

	return MonthlyGoal{
		ID:        "custom-" + uuid.NewString(),
		Name:      name,
		Category:  category,
		Source:    SourceCustom,
		Target:    target,
		CreatedAt: time.Now().UTC(),
	}, nil
}
