package game

// Products is the static catalog of supported games and their flow steps.
var Products = []Product{
	{
		ID:          ProductSongQuiz,
		Name:        "SongQuiz",
		Description: "Music trivia and song identification game",
		FlowSteps: []FlowStep{
			{
				ID:          "round_result",
				Name:        "Round Result",
				Description: "Player answered correctly or incorrectly",
				Type:        StepRoundResult,
				HasSettings: true,
			},
			{
				ID:          "streak_milestone",
				Name:        "Streak Milestone",
				Description: "Player hit 3+, 5+, or 10+ correct answers in a row",
				Type:        StepStreakMilestone,
				HasSettings: true,
			},
			{
				ID:          "game_result",
				Name:        "Game Result",
				Description: "End-of-game performance summary",
				Type:        StepGameResult,
				HasSettings: true,
			},
			{
				ID:          "comeback_moment",
				Name:        "Comeback Moment",
				Description: "Player recovering from wrong answers or breaking slumps",
				Type:        StepComebackMoment,
				HasSettings: false,
			},
			{
				ID:          "answer_steal",
				Name:        "Answer Steal",
				Description: "One player guesses partial answer, another player completes it to steal points",
				Type:        StepAnswerSteal,
				HasSettings: true,
			},
		},
	},
	{
		ID:          ProductWheel,
		Name:        "Wheel of Fortune",
		Description: "Word puzzle solving game with spinning wheel",
		FlowSteps: []FlowStep{
			{
				ID:          "puzzle_solve",
				Name:        "Puzzle Solve",
				Description: "Player successfully solved a puzzle",
				Type:        StepPuzzleSolve,
				HasSettings: true,
			},
			{
				ID:          "bankrupt",
				Name:        "Bankrupt",
				Description: "Player hit bankrupt and lost their money",
				Type:        StepBankrupt,
				HasSettings: false,
			},
			{
				ID:          "big_money_spin",
				Name:        "Big Money Spin",
				Description: "Player landed on high-value wheel section",
				Type:        StepBigMoneySpin,
				HasSettings: true,
			},
			{
				ID:          "final_puzzle",
				Name:        "Final Puzzle",
				Description: "Performance in the bonus round",
				Type:        StepFinalPuzzle,
				HasSettings: true,
			},
		},
	},
	{
		ID:          ProductJeopardy,
		Name:        "Jeopardy",
		Description: "Trivia game show with categories and point values",
		FlowSteps: []FlowStep{
			{
				ID:          "daily_double",
				Name:        "Daily Double",
				Description: "Player found a Daily Double and made a wager",
				Type:        StepDailyDouble,
				HasSettings: true,
			},
			{
				ID:          "category_completion",
				Name:        "Category Completion",
				Description: "Player completed an entire category",
				Type:        StepCategoryCompletion,
				HasSettings: false,
			},
			{
				ID:          "final_jeopardy",
				Name:        "Final Jeopardy",
				Description: "Performance in Final Jeopardy round",
				Type:        StepFinalJeopardy,
				HasSettings: true,
			},
			{
				ID:          "score_momentum",
				Name:        "Score Momentum",
				Description: "Significant lead changes or comebacks",
				Type:        StepScoreMomentum,
				HasSettings: false,
			},
		},
	},
}
