package services

// ChatTopic is one keyword-matched knowledge base entry. Topics are
// checked in order; the first entry with a keyword contained in the
// visitor's message wins.
type ChatTopic struct {
	Topic        string
	Keywords     []string
	Reply        string
	QuickReplies []string
}

var chatTopics = []ChatTopic{
	{
		Topic:    "salary",
		Keywords: []string{"salary", "pay", "wage", "money", "earn", "income"},
		Reply: "Starting pay for a deputy sheriff is competitive for the region, with step increases, " +
			"overtime opportunities and shift differentials. Lateral hires with prior certification start higher.",
		QuickReplies: []string{"What about benefits?", "How do I apply?", "What are the requirements?"},
	},
	{
		Topic:    "benefits",
		Keywords: []string{"benefit", "pension", "retirement", "insurance", "vacation", "leave"},
		Reply: "Deputies receive a defined-benefit pension, full medical and dental coverage, paid vacation " +
			"and sick leave, and a take-home vehicle program after field training.",
		QuickReplies: []string{"What's the salary?", "How long is the academy?"},
	},
	{
		Topic:    "requirements",
		Keywords: []string{"requirement", "qualify", "eligib", "age", "degree", "education", "citizen"},
		Reply: "You must be at least 21, a U.S. citizen, hold a high school diploma or GED, have a valid " +
			"driver's license and pass a background investigation. A degree is a plus, not a must.",
		QuickReplies: []string{"What disqualifies me?", "How do I apply?"},
	},
	{
		Topic:    "disqualifiers",
		Keywords: []string{"disqualif", "felony", "record", "tattoo", "dui", "drug"},
		Reply: "Felony convictions and recent DUIs are disqualifying. Minor past marijuana use and visible " +
			"tattoos are reviewed case by case. When in doubt, disclose it; honesty issues end more " +
			"applications than history does.",
		QuickReplies: []string{"What are the requirements?", "Talk to a recruiter"},
	},
	{
		Topic:    "process",
		Keywords: []string{"apply", "application", "process", "hire", "step", "how long", "timeline"},
		Reply: "The process runs written test, physical agility, oral board, background investigation, " +
			"polygraph, medical and psychological exams. Most candidates finish in three to five months.",
		QuickReplies: []string{"Start my checklist", "What are the requirements?"},
	},
	{
		Topic:    "academy",
		Keywords: []string{"academy", "training", "fto", "field training"},
		Reply: "Recruits attend a state-certified academy for about 22 weeks, paid from day one, followed " +
			"by roughly 14 weeks of field training with an FTO.",
		QuickReplies: []string{"What's the salary?", "What about fitness standards?"},
	},
	{
		Topic:    "fitness",
		Keywords: []string{"fitness", "physical", "agility", "pt", "run", "pushup", "push-up"},
		Reply: "The agility test includes a timed 1.5 mile run, push-ups, sit-ups and an obstacle course. " +
			"We publish the standards and offer prep sessions before each test date.",
		QuickReplies: []string{"When is the next test?", "How do I apply?"},
	},
	{
		Topic:    "jail",
		Keywords: []string{"jail", "corrections", "detention", "inmate"},
		Reply: "Many deputies start in the detention division. Corrections experience counts toward " +
			"seniority and the patrol transfer list opens yearly.",
		QuickReplies: []string{"What about patrol?", "What's the salary?"},
	},
	{
		Topic:    "contact",
		Keywords: []string{"recruiter", "contact", "talk", "call", "email", "person"},
		Reply: "A recruiter can walk you through your situation one on one. Leave your details through the " +
			"interest form and someone from the recruiting unit will reach out within two business days.",
		QuickReplies: []string{"Open the interest form"},
	},
}

// chatFallback answers messages no topic matches.
var chatFallback = ChatTopic{
	Topic: "fallback",
	Reply: "Good question. I cover salary, benefits, requirements, the hiring process, the academy and " +
		"fitness standards. For anything else, a recruiter is the best source.",
	QuickReplies: []string{"What's the salary?", "What are the requirements?", "Talk to a recruiter"},
}

// chatRegisterPrompt is returned once an anonymous visitor has spent
// the free question.
var chatRegisterPrompt = ChatTopic{
	Topic: "register",
	Reply: "Happy to keep answering. Create a free account to continue the conversation, track your " +
		"application checklist and earn points along the way.",
	QuickReplies: []string{"Create an account", "Sign in"},
}
