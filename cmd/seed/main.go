package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	gormModels "summit-sheriff/recruiting/internal/models/gorm"
)

// Seeds the reference data the site needs on first boot: donation
// point rules, the background checklist catalog and a starter trivia
// bank. Safe to re-run; rows upsert by primary key or natural key.
func main() {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}

	seedChecklist(db)
	seedDonationRules(db)
	seedTrivia(db)

	fmt.Println("Seed complete")
}

func seedChecklist(db *gorm.DB) {
	items := []gormModels.ChecklistItem{
		{ID: "birth-certificate", Title: "Certified birth certificate", Description: "Original or certified copy", Required: true, SortOrder: 1},
		{ID: "drivers-license", Title: "Valid driver's license", Description: "Current, not suspended", Required: true, SortOrder: 2},
		{ID: "ssn-card", Title: "Social Security card", Description: "Original card", Required: true, SortOrder: 3},
		{ID: "hs-diploma", Title: "High school diploma or GED", Description: "Certified transcript accepted", Required: true, SortOrder: 4},
		{ID: "dd214", Title: "DD-214 (if applicable)", Description: "Military discharge record, member 4 copy", Required: false, SortOrder: 5},
		{ID: "college-transcripts", Title: "College transcripts", Description: "Sealed official transcripts", Required: false, SortOrder: 6},
		{ID: "reference-list", Title: "Personal reference list", Description: "Five references with current contact info", Required: true, SortOrder: 7},
		{ID: "employment-history", Title: "Ten-year employment history", Description: "Include addresses and supervisors", Required: true, SortOrder: 8},
		{ID: "residence-history", Title: "Ten-year residence history", Description: "All addresses with dates", Required: true, SortOrder: 9},
		{ID: "credit-report", Title: "Recent credit report", Description: "Pulled within the last 60 days", Required: false, SortOrder: 10},
	}
	for i := range items {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&items[i]).Error; err != nil {
			log.Fatalf("seed checklist: %v", err)
		}
	}
	fmt.Printf("Seeded %d checklist items\n", len(items))
}

func seedDonationRules(db *gorm.DB) {
	rules := []gormModels.DonationPointRule{
		{Name: "Standard", MinAmountCents: 100, MaxAmountCents: 99_99, PointsPerDollar: 1, RecurringMultiplier: 1.5, IsActive: true},
		{Name: "Supporter", MinAmountCents: 100_00, MaxAmountCents: 499_99, PointsPerDollar: 2, RecurringMultiplier: 1.5, IsActive: true},
		{Name: "Champion", MinAmountCents: 500_00, MaxAmountCents: 0, PointsPerDollar: 3, RecurringMultiplier: 1.5, IsActive: true},
	}
	for i := range rules {
		var existing gormModels.DonationPointRule
		err := db.Where("name = ?", rules[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("seed rules: %v", err)
		}
		if err := db.Create(&rules[i]).Error; err != nil {
			log.Fatalf("seed rules: %v", err)
		}
	}
	fmt.Printf("Seeded %d donation rules\n", len(rules))

	start := time.Now()
	end := start.AddDate(0, 1, 0)
	campaign := gormModels.DonationCampaign{
		Name:            "Launch Month Double Points",
		StartDate:       start,
		EndDate:         &end,
		PointMultiplier: 2,
		IsActive:        true,
	}
	var existing gormModels.DonationCampaign
	if db.Where("name = ?", campaign.Name).First(&existing).Error == gorm.ErrRecordNotFound {
		if err := db.Create(&campaign).Error; err != nil {
			log.Fatalf("seed campaign: %v", err)
		}
		fmt.Println("Seeded launch campaign")
	}
}

func seedTrivia(db *gorm.DB) {
	questions := []gormModels.TriviaQuestion{
		{Question: "What is the minimum age to apply as a deputy sheriff?", OptionsJSON: `["18","21","25","30"]`, CorrectIndex: 1, Explanation: "Appointment requires being at least 21.", Difficulty: "easy", Category: "requirements", IsActive: true},
		{Question: "Which test measures cardiovascular fitness?", OptionsJSON: `["1.5 mile run","Bench press","Sit and reach","Vertical jump"]`, CorrectIndex: 0, Explanation: "The timed 1.5 mile run is the cardio component.", Difficulty: "easy", Category: "fitness", IsActive: true},
		{Question: "Who operates the county jail?", OptionsJSON: `["State police","Sheriff's office","City council","Highway patrol"]`, CorrectIndex: 1, Explanation: "Running the county jail is a sheriff's office duty.", Difficulty: "easy", Category: "duties", IsActive: true},
		{Question: "How long is the law enforcement academy?", OptionsJSON: `["6 weeks","12 weeks","About 22 weeks","A full year"]`, CorrectIndex: 2, Explanation: "The academy runs roughly 22 weeks, paid from day one.", Difficulty: "medium", Category: "career", IsActive: true},
		{Question: "What does an FTO do?", OptionsJSON: `["Runs the evidence room","Mentors new deputies on patrol","Schedules court dates","Services patrol vehicles"]`, CorrectIndex: 1, Explanation: "Field training officers evaluate new deputies on patrol.", Difficulty: "medium", Category: "career", IsActive: true},
		{Question: "What is serving civil process?", OptionsJSON: `["Delivering court documents","Directing traffic","Booking inmates","Patrolling highways"]`, CorrectIndex: 0, Explanation: "Deputies serve subpoenas and summonses as civil process.", Difficulty: "hard", Category: "duties", IsActive: true},
		{Question: "What does the polygraph exam verify?", OptionsJSON: `["Physical fitness","Application honesty","Driving skill","Marksmanship"]`, CorrectIndex: 1, Explanation: "It checks the truthfulness of background statements.", Difficulty: "medium", Category: "requirements", IsActive: true},
		{Question: "Which document proves citizenship for the background packet?", OptionsJSON: `["Birth certificate","Library card","Pay stub","Lease agreement"]`, CorrectIndex: 0, Explanation: "A certified birth certificate establishes citizenship.", Difficulty: "easy", Category: "requirements", IsActive: true},
		{Question: "What does the oral board assess?", OptionsJSON: `["Firearm accuracy","Judgment and communication","Typing speed","Physical strength"]`, CorrectIndex: 1, Explanation: "A panel scores judgment and communication under pressure.", Difficulty: "medium", Category: "requirements", IsActive: true},
		{Question: "Which shift do new deputies usually start on?", OptionsJSON: `["Day shift","Night shift","Weekends only","Court security"]`, CorrectIndex: 1, Explanation: "Seniority bidding puts new deputies on nights first.", Difficulty: "medium", Category: "career", IsActive: true},
		{Question: "Which benefit is standard for sworn deputies?", OptionsJSON: `["Defined-benefit pension","Free housing","Personal aircraft","Unlimited vacation"]`, CorrectIndex: 0, Explanation: "A pension is standard for sworn staff.", Difficulty: "easy", Category: "career", IsActive: true},
		{Question: "How many personal references does the background packet require?", OptionsJSON: `["Two","Three","Five","Ten"]`, CorrectIndex: 2, Explanation: "Five references with current contact information.", Difficulty: "hard", Category: "requirements", IsActive: true},
	}

	var count int64
	if err := db.Model(&gormModels.TriviaQuestion{}).Count(&count).Error; err != nil {
		log.Fatalf("seed trivia: %v", err)
	}
	if count > 0 {
		fmt.Println("Trivia bank already seeded, skipping")
		return
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			log.Fatalf("seed trivia: %v", err)
		}
	}
	fmt.Printf("Seeded %d trivia questions\n", len(questions))
}
