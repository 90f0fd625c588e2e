package services

import (
	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

// backupQuestions is the built-in question set served when the bank
// cannot be loaded. IDs carry a backup- prefix so answer scoring can
// resolve them without touching the database.
func backupQuestions() []gormModels.TriviaQuestion {
	return []gormModels.TriviaQuestion{
		{
			ID:           "backup-1",
			Question:     "What is the minimum age to apply as a deputy sheriff in most states?",
			OptionsJSON:  `["18","21","25","30"]`,
			CorrectIndex: 1,
			Explanation:  "Most agencies require applicants to be at least 21 at the time of appointment.",
			Difficulty:   "easy",
			Category:     "requirements",
			IsActive:     true,
		},
		{
			ID:           "backup-2",
			Question:     "Which document is typically required for the background check?",
			OptionsJSON:  `["Birth certificate","Library card","Gym membership","Movie ticket stub"]`,
			CorrectIndex: 0,
			Explanation:  "A certified birth certificate establishes identity and citizenship.",
			Difficulty:   "easy",
			Category:     "requirements",
			IsActive:     true,
		},
		{
			ID:           "backup-3",
			Question:     "What does a field training officer (FTO) do?",
			OptionsJSON:  `["Manages the evidence room","Mentors new deputies on patrol","Schedules court dates","Maintains patrol vehicles"]`,
			CorrectIndex: 1,
			Explanation:  "FTOs ride with new deputies and evaluate them during their first months on patrol.",
			Difficulty:   "medium",
			Category:     "career",
			IsActive:     true,
		},
		{
			ID:           "backup-4",
			Question:     "Which of these is part of the standard physical agility test?",
			OptionsJSON:  `["Marathon run","1.5 mile run","Swimming relay","Rock climbing"]`,
			CorrectIndex: 1,
			Explanation:  "A timed 1.5 mile run is the most common cardiovascular component.",
			Difficulty:   "easy",
			Category:     "fitness",
			IsActive:     true,
		},
		{
			ID:           "backup-5",
			Question:     "Who runs the county jail in most U.S. counties?",
			OptionsJSON:  `["The state police","The sheriff's office","The city council","The highway patrol"]`,
			CorrectIndex: 1,
			Explanation:  "Operating the county jail is a core duty of the sheriff's office.",
			Difficulty:   "easy",
			Category:     "duties",
			IsActive:     true,
		},
		{
			ID:           "backup-6",
			Question:     "What is a polygraph exam used for in the hiring process?",
			OptionsJSON:  `["Fitness scoring","Verifying application honesty","Firearms qualification","Driving evaluation"]`,
			CorrectIndex: 1,
			Explanation:  "The polygraph checks the truthfulness of statements made during the background process.",
			Difficulty:   "medium",
			Category:     "requirements",
			IsActive:     true,
		},
		{
			ID:           "backup-7",
			Question:     "Which shift do new patrol deputies most often start on?",
			OptionsJSON:  `["Day shift","Night shift","Weekends only","Court duty"]`,
			CorrectIndex: 1,
			Explanation:  "Seniority-based bidding usually places new deputies on nights first.",
			Difficulty:   "medium",
			Category:     "career",
			IsActive:     true,
		},
		{
			ID:           "backup-8",
			Question:     "What does serving civil process mean?",
			OptionsJSON:  `["Delivering court documents","Directing traffic","Booking inmates","Testifying in court"]`,
			CorrectIndex: 0,
			Explanation:  "Deputies serve subpoenas, summonses and other court papers as civil process.",
			Difficulty:   "hard",
			Category:     "duties",
			IsActive:     true,
		},
		{
			ID:           "backup-9",
			Question:     "Which benefit is common for sworn deputies?",
			OptionsJSON:  `["Pension plan","Free housing","Company car for personal use","Unlimited vacation"]`,
			CorrectIndex: 0,
			Explanation:  "Most sheriff's offices offer a defined-benefit pension for sworn staff.",
			Difficulty:   "easy",
			Category:     "career",
			IsActive:     true,
		},
		{
			ID:           "backup-10",
			Question:     "What is the purpose of the oral board interview?",
			OptionsJSON:  `["Testing firearm skills","Assessing judgment and communication","Measuring running speed","Reviewing tax records"]`,
			CorrectIndex: 1,
			Explanation:  "A panel evaluates how candidates think through scenarios and communicate.",
			Difficulty:   "medium",
			Category:     "requirements",
			IsActive:     true,
		},
	}
}
