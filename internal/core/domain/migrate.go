package domain

import "strings"

// The persisted document went through three older shapes:
//
//	v1: habits lived under "habits", and day entries stored a "missed_basics"
//	    list — basics were auto-checked and the user recorded misses.
//	v2: basics became an explicit boolean map (confirm-by-checking), goals
//	    were weekly with "weekly-" ids and boolean per-day flags.
//	v3: goals became monthly, but the document still lacked the enabled-basics
//	    set, the setup gate, and the locale field.
//
// Each step upgrades exactly one version and runs on the raw decoded JSON, so
// fields the current model no longer knows about can still be reshaped.
// Applying the chain to a current document is a no-op.
type migrationStep struct {
	from  int
	apply func(doc map[string]any)
}

var migrationSteps = []migrationStep{
	{from: 1, apply: migrateMissedBasics},
	{from: 2, apply: migrateWeeklyGoals},
	{from: 3, apply: migrateDocumentFields},
}

// Migrate upgrades a raw document to the current schema version, one step at
// a time. Documents already at (or above) the current version pass through
// untouched.
func Migrate(doc map[string]any) map[string]any {
	for _, step := range migrationSteps {
		if v, ok := documentVersion(doc); ok && v == step.from {
			step.apply(doc)
			doc["version"] = step.from + 1
		}
	}
	return doc
}

// documentVersion reads the schema discriminant. JSON numbers decode as
// float64.
func documentVersion(doc map[string]any) (int, bool) {
	switch v := doc["version"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// migrateMissedBasics moves "habits" to "daily_habits", renames the v1
// "start_date" to v2's "ramadan_start" (the v3 step carries it on), and
// inverts the v1 basics policy: a day entry recorded which basics were
// missed; the modern shape records which were confirmed.
func migrateMissedBasics(doc map[string]any) {
	if habits, ok := doc["habits"]; ok {
		doc["daily_habits"] = habits
		delete(doc, "habits")
	}

	if start, ok := doc["start_date"]; ok {
		doc["ramadan_start"] = start
		delete(doc, "start_date")
	}

	for _, entry := range dayEntries(doc) {
		missed := map[string]bool{}
		if list, ok := entry["missed_basics"].([]any); ok {
			for _, id := range list {
				if s, ok := id.(string); ok {
					missed[s] = true
				}
			}
		}

		checked := map[string]any{}
		for _, b := range basics {
			checked[b.ID] = !missed[b.ID]
		}
		entry["basics"] = checked
		delete(entry, "missed_basics")
	}
}

// migrateWeeklyGoals maps the retired weekly-goal concept onto monthly goals.
// A "weekly-" id becomes its "monthly-" counterpart when the current gallery
// knows that id; goals with no modern counterpart are dropped silently, along
// with their per-day flags.
func migrateWeeklyGoals(doc map[string]any) {
	mapped := map[string]string{}

	var goals []any
	if list, ok := doc["weekly_goals"].([]any); ok {
		for _, item := range list {
			goal, ok := item.(map[string]any)
			if !ok {
				continue
			}
			oldID, _ := goal["id"].(string)
			newID := "monthly-" + strings.TrimPrefix(oldID, "weekly-")

			gallery, ok := GalleryGoalByID(newID)
			if !ok {
				continue
			}

			goal["id"] = newID
			goal["target"] = gallery.DefaultTarget
			goal["source"] = SourceGallery
			if _, ok := goal["name"].(string); !ok {
				goal["name"] = Translate(DefaultLocale, gallery.LabelKey)
			}
			if _, ok := goal["category"].(string); !ok {
				goal["category"] = string(gallery.Category)
			}

			mapped[oldID] = newID
			goals = append(goals, goal)
		}
	}
	doc["monthly_goals"] = goals
	delete(doc, "weekly_goals")

	for _, entry := range dayEntries(doc) {
		flags, ok := entry["weekly_goal_completions"].(map[string]any)
		if ok {
			monthly := map[string]any{}
			for oldID, flag := range flags {
				if newID, ok := mapped[oldID]; ok {
					monthly[newID] = flag
				}
			}
			entry["monthly_goal_completions"] = monthly
		}
		delete(entry, "weekly_goal_completions")
	}
}

// migrateDocumentFields fills in the fields v4 introduced. A document that
// already carries habits, goals, or recorded days has clearly been through
// setup, so the gate opens for it.
func migrateDocumentFields(doc map[string]any) {
	if start, ok := doc["ramadan_start"]; ok {
		doc["ramadan_start_date"] = start
		delete(doc, "ramadan_start")
	}

	if _, ok := doc["enabled_basics"]; !ok {
		enabled := make([]any, 0, len(basics))
		for _, b := range basics {
			enabled = append(enabled, b.ID)
		}
		doc["enabled_basics"] = enabled
	}

	if _, ok := doc["locale"]; !ok {
		doc["locale"] = DefaultLocale
	}

	if _, ok := doc["setup_complete"]; !ok {
		hasData := len(asList(doc["daily_habits"])) > 0 ||
			len(asList(doc["monthly_goals"])) > 0 ||
			len(asObject(doc["days"])) > 0
		doc["setup_complete"] = hasData
	}
}

func dayEntries(doc map[string]any) []map[string]any {
	days, ok := doc["days"].(map[string]any)
	if !ok {
		return nil
	}
	entries := make([]map[string]any, 0, len(days))
	for _, raw := range days {
		if entry, ok := raw.(map[string]any); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}
