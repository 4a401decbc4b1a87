package domain

// MessageKey is a typed label identifier. Lookups resolve through an ordered
// fallback chain: requested locale, then DefaultLocale, then the raw key, so a
// missing translation degrades to something readable instead of an empty cell.
type MessageKey string

const (
	MsgBasicFajr    MessageKey = "basic.fajr"
	MsgBasicDhuhr   MessageKey = "basic.dhuhr"
	MsgBasicAsr     MessageKey = "basic.asr"
	MsgBasicMaghrib MessageKey = "basic.maghrib"
	MsgBasicIsha    MessageKey = "basic.isha"
	MsgBasicFasting MessageKey = "basic.fasting"

	MsgHabitQuranDaily    MessageKey = "habit.quran-daily"
	MsgHabitMorningAdhkar MessageKey = "habit.morning-adhkar"
	MsgHabitEveningAdhkar MessageKey = "habit.evening-adhkar"
	MsgHabitTaraweeh      MessageKey = "habit.taraweeh"
	MsgHabitTahajjud      MessageKey = "habit.tahajjud"
	MsgHabitDuha          MessageKey = "habit.duha"
	MsgHabitIstighfar     MessageKey = "habit.istighfar"
	MsgHabitSalawat       MessageKey = "habit.salawat"
	MsgHabitDailyDua      MessageKey = "habit.daily-dua"
	MsgHabitDailyCharity  MessageKey = "habit.daily-charity"
	MsgHabitLecture       MessageKey = "habit.islamic-lecture"
	MsgHabitFamilyIftar   MessageKey = "habit.family-iftar"

	MsgGoalKhatm        MessageKey = "goal.monthly-khatm"
	MsgGoalCharity      MessageKey = "goal.monthly-charity"
	MsgGoalTaraweeh     MessageKey = "goal.monthly-taraweeh"
	MsgGoalDua          MessageKey = "goal.monthly-dua"
	MsgGoalMemorization MessageKey = "goal.monthly-memorization"
	MsgGoalLectures     MessageKey = "goal.monthly-lectures"
	MsgGoalIftarMeals   MessageKey = "goal.monthly-iftar-meals"
)

var messages = map[string]map[MessageKey]string{
	"en": {
		MsgBasicFajr:    "Fajr prayer",
		MsgBasicDhuhr:   "Dhuhr prayer",
		MsgBasicAsr:     "Asr prayer",
		MsgBasicMaghrib: "Maghrib prayer",
		MsgBasicIsha:    "Isha prayer",
		MsgBasicFasting: "Fasting",

		MsgHabitQuranDaily:    "Read Quran",
		MsgHabitMorningAdhkar: "Morning adhkar",
		MsgHabitEveningAdhkar: "Evening adhkar",
		MsgHabitTaraweeh:      "Taraweeh prayer",
		MsgHabitTahajjud:      "Tahajjud prayer",
		MsgHabitDuha:          "Duha prayer",
		MsgHabitIstighfar:     "Istighfar",
		MsgHabitSalawat:       "Salawat on the Prophet",
		MsgHabitDailyDua:      "Daily dua",
		MsgHabitDailyCharity:  "Daily charity",
		MsgHabitLecture:       "Islamic lecture",
		MsgHabitFamilyIftar:   "Share iftar",

		MsgGoalKhatm:        "Complete the Quran",
		MsgGoalCharity:      "Give charity every day",
		MsgGoalTaraweeh:     "Pray Taraweeh",
		MsgGoalDua:          "Dua list",
		MsgGoalMemorization: "Memorize new verses",
		MsgGoalLectures:     "Lecture series",
		MsgGoalIftarMeals:   "Provide iftar meals",
	},
	"ar": {
		MsgBasicFajr:    "صلاة الفجر",
		MsgBasicDhuhr:   "صلاة الظهر",
		MsgBasicAsr:     "صلاة العصر",
		MsgBasicMaghrib: "صلاة المغرب",
		MsgBasicIsha:    "صلاة العشاء",
		MsgBasicFasting: "الصيام",

		MsgHabitQuranDaily:    "قراءة القرآن",
		MsgHabitMorningAdhkar: "أذكار الصباح",
		MsgHabitEveningAdhkar: "أذكار المساء",
		MsgHabitTaraweeh:      "صلاة التراويح",
		MsgHabitTahajjud:      "صلاة التهجد",
		MsgHabitDuha:          "صلاة الضحى",
		MsgHabitIstighfar:     "الاستغفار",
		MsgHabitSalawat:       "الصلاة على النبي",
		MsgHabitDailyDua:      "الدعاء اليومي",
		MsgHabitDailyCharity:  "صدقة يومية",
		MsgHabitLecture:       "درس ديني",
		MsgHabitFamilyIftar:   "مشاركة الإفطار",

		MsgGoalKhatm:        "ختم القرآن",
		MsgGoalCharity:      "صدقة كل يوم",
		MsgGoalTaraweeh:     "صلاة التراويح",
		MsgGoalDua:          "قائمة الدعاء",
		MsgGoalMemorization: "حفظ آيات جديدة",
		MsgGoalLectures:     "سلسلة دروس",
		MsgGoalIftarMeals:   "إطعام صائمين",
	},
}

// SupportedLocales lists the locales with a translation table, default first.
func SupportedLocales() []string {
	return []string{"en", "ar"}
}

// Translate resolves a message key for the requested locale.
func Translate(locale string, key MessageKey) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return string(key)
}
