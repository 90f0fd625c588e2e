package services

import (
	"summit-sheriff/recruiting/internal/constants"
)

// BadgeCounters holds the per-user aggregates badge rules evaluate
// against. Only the counters for the triggering event family are
// populated on a given pass.
type BadgeCounters struct {
	DonationCount   int64
	LifetimeCents   int64
	LargestCents    int64
	HasRecurring    bool
	GamesCompleted  int64
	TotalCorrect    int64
	BestStreak      int64
	RequiredItems   int64
	CheckedRequired int64
}

// BadgeRule is one threshold. Requirement is a human label snapshotted
// onto the badge row at award time, so later threshold changes don't
// rewrite what users already earned.
type BadgeRule struct {
	Type        constants.BadgeType
	Trigger     constants.BadgeTrigger
	Requirement string
	Met         func(c *BadgeCounters) bool
}

// badgeRules is the full catalog, evaluated in order. Every rule whose
// threshold is crossed awards independently; one event can grant
// several badges at once.
var badgeRules = []BadgeRule{
	{
		Type:        constants.BadgeFirstDonation,
		Trigger:     constants.TriggerDonation,
		Requirement: "1 donation",
		Met:         func(c *BadgeCounters) bool { return c.DonationCount >= 1 },
	},
	{
		Type:        constants.BadgeBigDonation,
		Trigger:     constants.TriggerDonation,
		Requirement: "single donation of $100",
		Met:         func(c *BadgeCounters) bool { return c.LargestCents >= 100_00 },
	},
	{
		Type:        constants.BadgeDonationCount5,
		Trigger:     constants.TriggerDonation,
		Requirement: "5 donations",
		Met:         func(c *BadgeCounters) bool { return c.DonationCount >= 5 },
	},
	{
		Type:        constants.BadgeDonationCount10,
		Trigger:     constants.TriggerDonation,
		Requirement: "10 donations",
		Met:         func(c *BadgeCounters) bool { return c.DonationCount >= 10 },
	},
	{
		Type:        constants.BadgeDonationCount25,
		Trigger:     constants.TriggerDonation,
		Requirement: "25 donations",
		Met:         func(c *BadgeCounters) bool { return c.DonationCount >= 25 },
	},
	{
		Type:        constants.BadgeLifetime250,
		Trigger:     constants.TriggerDonation,
		Requirement: "$250 lifetime giving",
		Met:         func(c *BadgeCounters) bool { return c.LifetimeCents >= 250_00 },
	},
	{
		Type:        constants.BadgeLifetime500,
		Trigger:     constants.TriggerDonation,
		Requirement: "$500 lifetime giving",
		Met:         func(c *BadgeCounters) bool { return c.LifetimeCents >= 500_00 },
	},
	{
		Type:        constants.BadgeLifetime1000,
		Trigger:     constants.TriggerDonation,
		Requirement: "$1000 lifetime giving",
		Met:         func(c *BadgeCounters) bool { return c.LifetimeCents >= 1000_00 },
	},
	{
		Type:        constants.BadgeRecurringSupport,
		Trigger:     constants.TriggerDonation,
		Requirement: "recurring donation",
		Met:         func(c *BadgeCounters) bool { return c.HasRecurring },
	},
	{
		Type:        constants.BadgeTriviaRookie,
		Trigger:     constants.TriggerTrivia,
		Requirement: "1 trivia game completed",
		Met:         func(c *BadgeCounters) bool { return c.GamesCompleted >= 1 },
	},
	{
		Type:        constants.BadgeTriviaScholar,
		Trigger:     constants.TriggerTrivia,
		Requirement: "50 correct answers",
		Met:         func(c *BadgeCounters) bool { return c.TotalCorrect >= 50 },
	},
	{
		Type:        constants.BadgeTriviaStreak,
		Trigger:     constants.TriggerTrivia,
		Requirement: "streak of 5",
		Met:         func(c *BadgeCounters) bool { return c.BestStreak >= 5 },
	},
	{
		Type:        constants.BadgeChecklistComplete,
		Trigger:     constants.TriggerChecklist,
		Requirement: "all required documents checked",
		Met: func(c *BadgeCounters) bool {
			return c.RequiredItems > 0 && c.CheckedRequired >= c.RequiredItems
		},
	},
}

// badgeDisplay maps badge types to the name and blurb shown in the UI.
var badgeDisplay = map[constants.BadgeType][2]string{
	constants.BadgeFirstDonation:     {"First Supporter", "Made your first donation"},
	constants.BadgeBigDonation:       {"Big Heart", "Gave $100 or more in one donation"},
	constants.BadgeDonationCount5:    {"Steady Supporter", "Made 5 donations"},
	constants.BadgeDonationCount10:   {"Dedicated Donor", "Made 10 donations"},
	constants.BadgeDonationCount25:   {"Pillar of the Community", "Made 25 donations"},
	constants.BadgeLifetime250:       {"Bronze Star", "Gave $250 lifetime"},
	constants.BadgeLifetime500:       {"Silver Star", "Gave $500 lifetime"},
	constants.BadgeLifetime1000:      {"Gold Star", "Gave $1000 lifetime"},
	constants.BadgeRecurringSupport:  {"Recurring Supporter", "Set up a recurring donation"},
	constants.BadgeTriviaRookie:      {"Trivia Rookie", "Finished your first trivia game"},
	constants.BadgeTriviaScholar:     {"Trivia Scholar", "Answered 50 questions correctly"},
	constants.BadgeTriviaStreak:      {"Hot Streak", "Answered 5 in a row correctly"},
	constants.BadgeChecklistComplete: {"Background Ready", "Checked off every required document"},
}

// BadgeDisplayName returns the UI name and description for a badge
// type, falling back to the raw type string.
func BadgeDisplayName(badgeType constants.BadgeType) (string, string) {
	if d, ok := badgeDisplay[badgeType]; ok {
		return d[0], d[1]
	}
	return string(badgeType), ""
}

// RulesForTrigger filters the catalog down to one event family.
func RulesForTrigger(trigger constants.BadgeTrigger) []BadgeRule {
	var out []BadgeRule
	for _, rule := range badgeRules {
		if rule.Trigger == trigger {
			out = append(out, rule)
		}
	}
	return out
}
