package models

import "github.com/vkotov/stride/internal/constants"

// DefaultSettings is the settings template. Every field of a stored
// settings block that is absent falls back to these values.
func DefaultSettings() Settings {
	return Settings{
		Theme:      "dark",
		Language:   "ru",
		DefaultTab: "summary",
		TipsOnHome: true,
		Nickname:   "User",
		QuietHours: QuietHours{Enabled: true, From: 22, To: 7},
		Units:      Units{Currency: "RUB", Weight: "kg", Length: "cm"},
		Visibility: Visibility{Notes: true, Competitions: true},
	}
}

// DefaultDocument is the document every load starts from; stored
// fields are merged over it so anything missing keeps its default.
func DefaultDocument() *Document {
	return &Document{
		Version:        constants.SchemaVersion,
		Settings:       DefaultSettings(),
		Goals:          []Goal{},
		Habits:         []Habit{},
		Wishes:         []Wish{},
		CompletedItems: []ArchivedItem{},
		Journals: []Journal{
			{ID: "inbox", Name: "Inbox", Entries: []JournalEntry{}},
		},
		Competitions: Competitions{
			My: []Competition{},
			Public: []Competition{
				{
					ID:          "pub_100_pushups",
					Title:       "100 отжиманий",
					Type:        "habit",
					Duration:    30,
					Description: "30 дней без пропусков. Показываем ник и чистый прогресс.",
					Leagues: []League{
						{ID: "L1", Name: "Лига 1 (0–15)"},
						{ID: "L2", Name: "Лига 2 (16–30)"},
						{ID: "L3", Name: "Лига 3 (31–50)"},
						{ID: "L4", Name: "Лига 4 (51+)"},
					},
				},
			},
		},
		Tips: []Tip{
			{ID: 1, Text: "Маленькие шаги каждый день сильнее мотивации раз в месяц."},
			{ID: 2, Text: "Записывай — голова отдыхает, система работает."},
			{ID: 3, Text: "Первый шаг не должен быть идеальным, он должен быть сделан."},
		},
	}
}
