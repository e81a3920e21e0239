// challenge/catalog.go - Static challenge template catalog
package challenge

// Catalog holds all templates organized by skill area and difficulty.
// Read-only after construction; safe to share across concurrent requests.
type Catalog map[SkillArea]map[Difficulty][]Template

// Lookup returns the templates for the exact (skillArea, difficulty) pair.
// Always returns a non-nil slice.
func (c Catalog) Lookup(skill SkillArea, difficulty Difficulty) []Template {
	byDiff, ok := c[skill]
	if !ok {
		return []Template{}
	}
	templates, ok := byDiff[difficulty]
	if !ok {
		return []Template{}
	}
	return templates
}

// Empty reports whether the catalog holds no templates at all.
func (c Catalog) Empty() bool {
	for _, byDiff := range c {
		for _, templates := range byDiff {
			if len(templates) > 0 {
				return false
			}
		}
	}
	return true
}

var defaultCatalog = Catalog{
	SkillStrategy: {
		DifficultyBeginner:     strategyBeginner,
		DifficultyIntermediate: strategyIntermediate,
		DifficultyAdvanced:     strategyAdvanced,
	},
	SkillResearch: {
		DifficultyBeginner:     researchBeginner,
		DifficultyIntermediate: researchIntermediate,
		DifficultyAdvanced:     researchAdvanced,
	},
	SkillAnalytics: {
		DifficultyBeginner:     analyticsBeginner,
		DifficultyIntermediate: analyticsIntermediate,
		DifficultyAdvanced:     analyticsAdvanced,
	},
	SkillDesign: {
		DifficultyBeginner:     designBeginner,
		DifficultyIntermediate: designIntermediate,
		DifficultyAdvanced:     designAdvanced,
	},
}

// DefaultCatalog returns the built-in template catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog
}

var strategyBeginner = []Template{
	{
		ID:               "strat-beg-prioritize",
		Title:            "Prioritize the Roadmap",
		Description:      "Three features compete for the next sprint. Pick the one that best serves the quarterly goal.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 120,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Your quarterly goal is activation. Engineering has capacity for exactly one feature this sprint.",
			Options: []Option{
				{ID: "a", Text: "Revamp the onboarding checklist", Quality: QualityExcellent, IsCorrect: true, Explanation: "Onboarding is the activation lever you control directly."},
				{ID: "b", Text: "Add a dark mode theme", Quality: QualityPoor, Explanation: "Popular request, but it moves no activation metric."},
				{ID: "c", Text: "Build an admin export tool", Quality: QualityAverage, Explanation: "Useful for retention, not for this quarter's goal."},
				{ID: "d", Text: "Run a pricing experiment", Quality: QualityGood, Explanation: "Valuable, but it targets revenue rather than activation."},
			},
		}},
	},
	{
		ID:               "strat-beg-vision",
		Title:            "Pitch the Vision",
		Description:      "A new engineer asks why the product exists. Choose the framing that aligns the team.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionDialogue,
		TimeLimitSeconds: 150,
		Content: Content{Dialogue: &DialogueContent{
			Scenario: "First one-on-one with a newly hired senior engineer.",
			Root: DialogueNode{
				Speaker: "Engineer",
				Text:    "Honestly, I still don't get what we're building toward. What's the actual vision?",
				Responses: []DialogueResponse{
					{ID: "r1", Text: "Walk through the customer problem and how each roadmap theme attacks it.", Quality: QualityExcellent},
					{ID: "r2", Text: "Forward the slide deck from the last all-hands.", Quality: QualityAverage},
					{ID: "r3", Text: "Tell them to focus on their tickets for now.", Quality: QualityPoor},
				},
			},
		}},
	},
	{
		ID:               "strat-beg-tradeoff",
		Title:            "Speed vs. Scope",
		Description:      "Set the balance between shipping fast and shipping complete for a beta launch.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionSlider,
		TimeLimitSeconds: 90,
		Content: Content{Slider: &SliderContent{
			Scenario: "The beta launch date is fixed. You control how much scope ships with it.",
			TradeOffs: []TradeOff{
				{ID: "t1", LeftLabel: "Ship minimal now", RightLabel: "Ship complete later", Description: "Beta users forgive rough edges but not missing core flows.", OptimalValue: 35},
			},
		}},
	},
}

var strategyIntermediate = []Template{
	{
		ID:               "strat-int-stakeholders",
		Title:            "Map the Launch Stakeholders",
		Description:      "Place each stakeholder on the influence map before the pricing-change announcement.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionDragDrop,
		TimeLimitSeconds: 180,
		Content: Content{DragDrop: &DragDropContent{
			Scenario: "You are announcing a pricing change that doubles the entry tier.",
			Zones:    []string{"manage closely", "keep satisfied", "keep informed"},
			Stakeholders: []Stakeholder{
				{ID: "s1", Name: "Dana", Role: "VP Sales", Concern: "Deals in flight at old pricing", Influence: "high"},
				{ID: "s2", Name: "Miguel", Role: "Support Lead", Concern: "Ticket volume on announcement day", Influence: "medium"},
				{ID: "s3", Name: "Priya", Role: "CFO", Concern: "Revenue forecast accuracy", Influence: "high"},
			},
		}},
	},
	{
		ID:               "strat-int-sunset",
		Title:            "Sunset or Sustain",
		Description:      "A legacy feature consumes 20% of maintenance time. Decide its fate.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 150,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Usage of the legacy report builder has fallen to 4% of accounts, but two of them are your largest contracts.",
			Options: []Option{
				{ID: "a", Text: "Deprecate with a 6-month migration path and white-glove support for the large accounts", Consequences: []Consequence{
					{Type: ConsequencePositive, Title: "Capacity freed", Description: "Maintenance load drops next quarter", Impact: "20% engineering time recovered"},
					{Type: ConsequencePositive, Title: "Accounts retained", Description: "Key customers get a managed path", Impact: "Renewal risk contained"},
					{Type: ConsequenceNeutral, Title: "Migration cost", Description: "One sprint of tooling work", Impact: "Short-term slowdown"},
				}},
				{ID: "b", Text: "Kill it at the end of the month", Consequences: []Consequence{
					{Type: ConsequencePositive, Title: "Immediate capacity", Description: "Maintenance ends now", Impact: "Fast relief"},
					{Type: ConsequenceNegative, Title: "Contract risk", Description: "Largest accounts lose a workflow with no warning", Impact: "Churn threat"},
					{Type: ConsequenceNegative, Title: "Trust damage", Description: "Customers learn features vanish overnight", Impact: "Long-term credibility"},
				}},
				{ID: "c", Text: "Keep maintaining it indefinitely", Consequences: []Consequence{
					{Type: ConsequenceNegative, Title: "Capacity drain", Description: "20% tax continues", Impact: "Roadmap slows"},
					{Type: ConsequenceNeutral, Title: "No disruption", Description: "Customers unaffected", Impact: "Status quo"},
				}},
			},
		}},
	},
}

var strategyAdvanced = []Template{
	{
		ID:               "strat-adv-pivot",
		Title:            "The Pivot Question",
		Description:      "Growth has flatlined for three quarters. Rank the strategic responses.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionRanking,
		TimeLimitSeconds: 240,
		Content: Content{Ranking: &RankingContent{
			Scenario: "Net-new signups are flat, expansion revenue is growing 8% QoQ, and a competitor just raised a large round.",
			Items: []RankItem{
				{ID: "i1", Text: "Double down on expansion within the existing base", CorrectRank: 1, Description: "Follow the signal that is already working."},
				{ID: "i2", Text: "Commission win/loss research before committing", CorrectRank: 2},
				{ID: "i3", Text: "Launch a second product line to open a new market", CorrectRank: 4},
				{ID: "i4", Text: "Cut price to reignite top-of-funnel growth", CorrectRank: 3},
			},
		}},
	},
	{
		ID:               "strat-adv-board",
		Title:            "Defend the Roadmap",
		Description:      "A board member wants an AI feature on the roadmap by next quarter. Navigate the conversation.",
		SkillArea:        SkillStrategy,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionDialogue,
		TimeLimitSeconds: 200,
		Content: Content{Dialogue: &DialogueContent{
			Scenario: "Quarterly board meeting, ten minutes left on the agenda.",
			Root: DialogueNode{
				Speaker: "Board member",
				Text:    "Every competitor has an AI story. Why is there nothing on your roadmap?",
				Responses: []DialogueResponse{
					{ID: "r1", Text: "Share the customer evidence you have, name the problem AI could solve, and commit to a scoped discovery spike.", Quality: QualityExcellent},
					{ID: "r2", Text: "Agree and promise to add an AI feature next quarter.", Quality: QualityPoor, Consequences: []Consequence{
						{Type: ConsequenceNegative, Title: "Unfunded commitment", Description: "Roadmap now carries a feature with no validated problem", Impact: "Team whiplash"},
					}},
					{ID: "r3", Text: "Explain that chasing trends is how companies die.", Quality: QualityAverage},
				},
			},
		}},
	},
}

var researchBeginner = []Template{
	{
		ID:               "res-beg-interview",
		Title:            "The Leading Question",
		Description:      "Spot the interview question that won't bias the customer.",
		SkillArea:        SkillResearch,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 90,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "You are drafting a discovery interview script about expense reporting.",
			Options: []Option{
				{ID: "a", Text: "Walk me through the last time you filed an expense report.", Quality: QualityExcellent, IsCorrect: true, Explanation: "Grounded in a specific past behavior."},
				{ID: "b", Text: "Wouldn't an automatic receipt scanner save you time?", Quality: QualityPoor, Explanation: "Pitches the solution inside the question."},
				{ID: "c", Text: "How often do you think about expenses?", Quality: QualityAverage, Explanation: "Invites speculation rather than recall."},
			},
		}},
	},
	{
		ID:               "res-beg-sample",
		Title:            "Who Do You Talk To?",
		Description:      "Choose the recruiting pool for a churn study.",
		SkillArea:        SkillResearch,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 100,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Churn jumped 3 points last quarter and you have budget for eight interviews.",
			Options: []Option{
				{ID: "a", Text: "Customers who cancelled in the last 60 days", Quality: QualityExcellent, IsCorrect: true},
				{ID: "b", Text: "Your most active power users", Quality: QualityPoor},
				{ID: "c", Text: "A mix of prospects from the waitlist", Quality: QualityAverage},
				{ID: "d", Text: "Internal account managers", Quality: QualityGood, Explanation: "Useful secondary signal, but secondhand."},
			},
		}},
	},
}

var researchIntermediate = []Template{
	{
		ID:               "res-int-synthesis",
		Title:            "Synthesize the Study",
		Description:      "Rank the findings from strongest to weakest evidence.",
		SkillArea:        SkillResearch,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionRanking,
		TimeLimitSeconds: 180,
		Content: Content{Ranking: &RankingContent{
			Scenario: "Twelve interviews are done. Which findings deserve the most weight in the readout?",
			Items: []RankItem{
				{ID: "i1", Text: "Nine of twelve participants independently described the same workaround", CorrectRank: 1},
				{ID: "i2", Text: "Usage logs confirm the workaround pattern at scale", CorrectRank: 2},
				{ID: "i3", Text: "Two participants requested the same feature by name", CorrectRank: 3},
				{ID: "i4", Text: "One enthusiastic participant predicted everyone would love it", CorrectRank: 4},
			},
		}},
	},
	{
		ID:               "res-int-method",
		Title:            "Pick the Method",
		Description:      "Match the research question to the cheapest method that can answer it.",
		SkillArea:        SkillResearch,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 140,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Question: do users notice the new save indicator? You need an answer this week.",
			Options: []Option{
				{ID: "a", Text: "Five-user moderated usability test on the live build", Quality: QualityExcellent, IsCorrect: true},
				{ID: "b", Text: "Quarterly NPS survey with an added question", Quality: QualityPoor},
				{ID: "c", Text: "A/B test over the next six weeks", Quality: QualityAverage, Explanation: "Rigorous but misses the deadline."},
				{ID: "d", Text: "Ask the design team if it looks visible", Quality: QualityPoor},
			},
		}},
	},
}

var researchAdvanced = []Template{
	{
		ID:               "res-adv-conflict",
		Title:            "When the Data Disagrees",
		Description:      "Qualitative and quantitative findings point in opposite directions. Decide the path.",
		SkillArea:        SkillResearch,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 180,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Interviews say the wizard is confusing; funnel data shows completion improved 12% after its launch.",
			Options: []Option{
				{ID: "a", Text: "Segment the funnel by user cohort to find who the interviews represent", Consequences: []Consequence{
					{Type: ConsequencePositive, Title: "Resolves the conflict", Description: "Both signals can be true for different cohorts", Impact: "Targeted fix"},
					{Type: ConsequencePositive, Title: "Cheap", Description: "One analyst-day", Impact: "Fast clarity"},
				}},
				{ID: "b", Text: "Trust the quantitative data and close the research", Consequences: []Consequence{
					{Type: ConsequenceNegative, Title: "Signal discarded", Description: "Interview pain points go unexplained", Impact: "Risk resurfaces later"},
					{Type: ConsequencePositive, Title: "No further cost", Description: "Team moves on", Impact: "Capacity preserved"},
				}},
				{ID: "c", Text: "Re-run the interviews with a bigger sample", Consequences: []Consequence{
					{Type: ConsequenceNegative, Title: "Expensive", Description: "Weeks of recruiting", Impact: "Decision delayed"},
					{Type: ConsequenceNeutral, Title: "More of the same", Description: "Likely repeats the existing signal", Impact: "Low information gain"},
				}},
			},
		}},
	},
	{
		ID:               "res-adv-exec",
		Title:            "The Executive Anecdote",
		Description:      "The CEO met one customer and wants the roadmap changed. Handle it.",
		SkillArea:        SkillResearch,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionDialogue,
		TimeLimitSeconds: 200,
		Content: Content{Dialogue: &DialogueContent{
			Scenario: "Monday morning, the CEO drops by your desk after a weekend conference.",
			Root: DialogueNode{
				Speaker: "CEO",
				Text:    "I talked to a customer at the conference and they need bulk import. Can we get it in this sprint?",
				Responses: []DialogueResponse{
					{ID: "r1", Text: "Treat it as a hypothesis: check how many accounts show the same need, and report back within two days.", Quality: QualityExcellent},
					{ID: "r2", Text: "Add it to the sprint immediately.", Quality: QualityPoor},
					{ID: "r3", Text: "Explain that one anecdote is not data and decline.", Quality: QualityAverage, Consequences: []Consequence{
						{Type: ConsequenceNegative, Title: "Relationship cost", Description: "CEO feels dismissed", Impact: "Harder conversations later"},
						{Type: ConsequencePositive, Title: "Process defended", Description: "Roadmap integrity holds", Impact: "Short-term discipline"},
					}},
				},
			},
		}},
	},
}

var analyticsBeginner = []Template{
	{
		ID:               "ana-beg-metric",
		Title:            "Pick the North Star",
		Description:      "Choose the metric that best reflects delivered value for a meal-kit service.",
		SkillArea:        SkillAnalytics,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 90,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "The team argues about which single metric should headline the weekly dashboard.",
			Options: []Option{
				{ID: "a", Text: "Weekly meals cooked per subscriber", Quality: QualityExcellent, IsCorrect: true, Explanation: "Measures realized value, not just purchase."},
				{ID: "b", Text: "Total registered accounts", Quality: QualityPoor, Explanation: "Vanity metric; never decreases."},
				{ID: "c", Text: "App sessions per day", Quality: QualityAverage},
				{ID: "d", Text: "Monthly recurring revenue", Quality: QualityGood, Explanation: "Lags value; fine for finance, weak for product."},
			},
		}},
	},
	{
		ID:               "ana-beg-dashboard",
		Title:            "Read the Dashboard",
		Description:      "Three KPIs moved this week. Decide which one demands investigation first.",
		SkillArea:        SkillAnalytics,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 110,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Monday metrics review.",
			KPIs: []KPI{
				{ID: "k1", Name: "Activation rate", Value: "38%", Trend: "down", Signal: "fell 6 points in one week"},
				{ID: "k2", Name: "Page load p95", Value: "2.1s", Trend: "flat"},
				{ID: "k3", Name: "Referral signups", Value: "412", Trend: "up"},
			},
			Options: []Option{
				{ID: "a", Text: "The activation drop — a six-point single-week fall is unlikely to be noise", Quality: QualityExcellent, IsCorrect: true},
				{ID: "b", Text: "The referral spike — growth is the priority", Quality: QualityAverage},
				{ID: "c", Text: "Nothing — wait another week for more data", Quality: QualityPoor},
			},
		}},
	},
}

var analyticsIntermediate = []Template{
	{
		ID:               "ana-int-funnel",
		Title:            "Find the Leak",
		Description:      "Rank the funnel stages by where investigation effort should go.",
		SkillArea:        SkillAnalytics,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionRanking,
		TimeLimitSeconds: 160,
		Content: Content{Ranking: &RankingContent{
			Scenario: "Signup → verify email (92%) → create project (41%) → invite teammate (38%) → paid (11%).",
			Items: []RankItem{
				{ID: "i1", Text: "Verify → create project", CorrectRank: 1, Description: "Largest absolute drop; earliest in the funnel."},
				{ID: "i2", Text: "Invite → paid", CorrectRank: 2},
				{ID: "i3", Text: "Create project → invite", CorrectRank: 3},
				{ID: "i4", Text: "Signup → verify", CorrectRank: 4},
			},
		}},
	},
	{
		ID:               "ana-int-experiment",
		Title:            "Call the Experiment",
		Description:      "The A/B test ended ambiguously. Choose the call.",
		SkillArea:        SkillAnalytics,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 150,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Variant shows +2.1% conversion, p=0.11, after the planned four-week run.",
			Options: []Option{
				{ID: "a", Text: "Declare it inconclusive and decide on cost: ship if the variant is cheap to keep", Quality: QualityExcellent, IsCorrect: true},
				{ID: "b", Text: "Extend the test until it reaches significance", Quality: QualityPoor, Explanation: "Peeking until significance inflates false positives."},
				{ID: "c", Text: "Ship it — 2.1% is 2.1%", Quality: QualityAverage},
			},
		}},
	},
}

var analyticsAdvanced = []Template{
	{
		ID:               "ana-adv-regression",
		Title:            "The Post-Launch Dip",
		Description:      "A core metric fell after launch. Investigate before reacting.",
		SkillArea:        SkillAnalytics,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 200,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Weekly retention fell 4 points in the cohort that received the redesigned editor.",
			Options: []Option{
				{ID: "a", Text: "Segment the dip by platform and tenure before touching the rollout", Consequences: []Consequence{
					{Type: ConsequencePositive, Title: "Root cause first", Description: "Locates whether the dip is universal or local", Impact: "Targeted response"},
					{Type: ConsequencePositive, Title: "Rollout preserved", Description: "No premature reversal", Impact: "Momentum kept"},
					{Type: ConsequenceNeutral, Title: "One more week of dip", Description: "Affected users wait", Impact: "Bounded cost"},
				}},
				{ID: "b", Text: "Roll back the redesign immediately", Consequences: []Consequence{
					{Type: ConsequencePositive, Title: "Bleeding stopped", Description: "Metric likely recovers", Impact: "Fast"},
					{Type: ConsequenceNegative, Title: "No learning", Description: "Cause remains unknown; relaunch will repeat it", Impact: "Wasted cycle"},
					{Type: ConsequenceNegative, Title: "Team morale", Description: "Months of work shelved on one week of data", Impact: "Trust cost"},
				}},
				{ID: "c", Text: "Wait a month — novelty effects fade", Consequences: []Consequence{
					{Type: ConsequenceNegative, Title: "Unbounded exposure", Description: "If real, the dip compounds", Impact: "Churn risk"},
					{Type: ConsequenceNeutral, Title: "Maybe self-heals", Description: "Some dips are adjustment periods", Impact: "Uncertain"},
				}},
			},
		}},
	},
	{
		ID:               "ana-adv-attribution",
		Title:            "Attribution Fight",
		Description:      "Marketing and product both claim the growth spike. Allocate credit on the sliders.",
		SkillArea:        SkillAnalytics,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionSlider,
		TimeLimitSeconds: 180,
		Content: Content{Slider: &SliderContent{
			Scenario: "Signups doubled the same week a campaign launched and the new referral flow shipped.",
			TradeOffs: []TradeOff{
				{ID: "t1", LeftLabel: "Campaign-driven", RightLabel: "Referral-flow-driven", Description: "Referral-attributed signups carry the flow's share tag.", OptimalValue: 60},
				{ID: "t2", LeftLabel: "Report now", RightLabel: "Run holdout first", Description: "A geographic holdout would separate the effects in two weeks.", OptimalValue: 75},
			},
		}},
	},
}

var designBeginner = []Template{
	{
		ID:               "des-beg-feedback",
		Title:            "Critique the Flow",
		Description:      "Pick the most useful piece of feedback for the signup flow review.",
		SkillArea:        SkillDesign,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 90,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "Design review for a four-step signup flow. You get one comment.",
			Options: []Option{
				{ID: "a", Text: "Step 3 asks for payment before the user has seen any value — can we defer it?", Quality: QualityExcellent, IsCorrect: true},
				{ID: "b", Text: "The blue feels a bit corporate", Quality: QualityPoor},
				{ID: "c", Text: "Looks great, ship it", Quality: QualityPoor},
				{ID: "d", Text: "Could the progress bar be more prominent?", Quality: QualityAverage},
			},
		}},
	},
	{
		ID:               "des-beg-tradeoff",
		Title:            "Density vs. Clarity",
		Description:      "Set the information density for the new analytics dashboard.",
		SkillArea:        SkillDesign,
		Difficulty:       DifficultyBeginner,
		InteractionType:  InteractionSlider,
		TimeLimitSeconds: 90,
		Content: Content{Slider: &SliderContent{
			Scenario: "Power users want everything on one screen; new users get lost.",
			TradeOffs: []TradeOff{
				{ID: "t1", LeftLabel: "Dense, single screen", RightLabel: "Progressive disclosure", Description: "Default to clarity, let power users opt into density.", OptimalValue: 65},
			},
		}},
	},
}

var designIntermediate = []Template{
	{
		ID:               "des-int-handoff",
		Title:            "The Compromised Mock",
		Description:      "Engineering says the design costs three extra weeks. Navigate the trade.",
		SkillArea:        SkillDesign,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionDialogue,
		TimeLimitSeconds: 170,
		Content: Content{Dialogue: &DialogueContent{
			Scenario: "Sprint planning; the animated transitions in the approved mock need a new rendering layer.",
			Root: DialogueNode{
				Speaker: "Tech lead",
				Text:    "Those transitions add three weeks. Do we really need them?",
				Responses: []DialogueResponse{
					{ID: "r1", Text: "Ask the designer which interactions carry meaning versus polish, and cut only the polish.", Quality: QualityExcellent},
					{ID: "r2", Text: "Cut all animation — function over form.", Quality: QualityAverage},
					{ID: "r3", Text: "Insist on the full mock as approved.", Quality: QualityPoor},
				},
			},
		}},
	},
	{
		ID:               "des-int-accessibility",
		Title:            "Accessibility Pushback",
		Description:      "Decide how to handle an accessibility gap found a week before launch.",
		SkillArea:        SkillDesign,
		Difficulty:       DifficultyIntermediate,
		InteractionType:  InteractionMultipleChoice,
		TimeLimitSeconds: 140,
		Content: Content{MultipleChoice: &MultipleChoiceContent{
			Scenario: "QA reports the new modal flow is unusable by keyboard. Launch is in five days.",
			Options: []Option{
				{ID: "a", Text: "Fix keyboard navigation before launch; it blocks real users, not a checklist", Quality: QualityExcellent, IsCorrect: true},
				{ID: "b", Text: "Launch on time and patch it next sprint", Quality: QualityPoor},
				{ID: "c", Text: "Delay launch two weeks for a full accessibility audit", Quality: QualityAverage, Explanation: "Over-rotates; the known gap is fixable in days."},
			},
		}},
	},
}

var designAdvanced = []Template{
	{
		ID:               "des-adv-redesign",
		Title:            "Big-Bang or Incremental",
		Description:      "Rank the rollout strategies for a full navigation redesign.",
		SkillArea:        SkillDesign,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionRanking,
		TimeLimitSeconds: 220,
		Content: Content{Ranking: &RankingContent{
			Scenario: "The navigation redesign touches every screen. 40k daily actives, strong muscle memory.",
			Items: []RankItem{
				{ID: "i1", Text: "Opt-in preview with telemetry, then staged default", CorrectRank: 1},
				{ID: "i2", Text: "Percentage rollout with fast rollback", CorrectRank: 2},
				{ID: "i3", Text: "Big-bang release with an announcement tour", CorrectRank: 3},
				{ID: "i4", Text: "Silent overnight switch", CorrectRank: 4},
			},
		}},
	},
	{
		ID:               "des-adv-stakeholder",
		Title:            "Design by Committee",
		Description:      "Place the reviewers on the map before the final design sign-off.",
		SkillArea:        SkillDesign,
		Difficulty:       DifficultyAdvanced,
		InteractionType:  InteractionDragDrop,
		TimeLimitSeconds: 190,
		Content: Content{DragDrop: &DragDropContent{
			Scenario: "Five people have opinions on the checkout redesign. Only some should gate it.",
			Zones:    []string{"decider", "consulted", "informed"},
			Stakeholders: []Stakeholder{
				{ID: "s1", Name: "Ava", Role: "Design Lead", Concern: "Interaction consistency", Influence: "high"},
				{ID: "s2", Name: "Noah", Role: "CEO", Concern: "Brand impression", Influence: "high"},
				{ID: "s3", Name: "Leah", Role: "Payments Engineer", Concern: "PCI constraints on field layout", Influence: "medium"},
				{ID: "s4", Name: "Sam", Role: "Sales Rep", Concern: "A prospect's one-off request", Influence: "low"},
			},
		}},
	},
}
