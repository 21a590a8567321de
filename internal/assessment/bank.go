package assessment

// primaryQuestions is the question set for ages 6-12.
var primaryQuestions = []Question{
	{
		ID:     QuestionVerbal1,
		Prompt: "1. Arrange the steps to build a birdhouse in the correct order by selecting numbers from 1 to 5 for each step.",
		Type:   TypeOrderedNumber,
		Options: []string{
			"Paint the birdhouse.",
			"Hammer the nails into the wood.",
			"Draw a design on paper.",
			"Let the paint dry.",
			"Put the pieces together.",
		},
		CorrectAnswer: "3,2,5,1,4",
		Hint:          "What do you do first—plan or build?",
	},
	{
		ID:     QuestionVerbal2,
		Prompt: `2. What does "predict" mean?`,
		Type:   TypeMultipleChoice,
		Options: []string{
			"To guess what will happen next",
			"To forget something",
			"To draw a picture",
		},
		CorrectAnswer: "To guess what will happen next",
		Hint:          "If I say it will rain tomorrow, I'm ______ing the weather.",
	},
	{
		ID:            QuestionNonverbal1,
		Prompt:        "3. Complete the pattern: △ ▢ △ ▢ ○ △ ▢ ___",
		Type:          TypePattern,
		Options:       []string{"△", "▢", "○"},
		CorrectAnswer: "△",
		Hint:          "Look at the shapes—do they repeat in a special order?",
	},
	{
		ID:     QuestionLogic1,
		Prompt: "4. Why did the ice cream melt?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"It was in the freezer",
			"It was left in the sun",
			"It was wrapped in a blanket",
		},
		CorrectAnswer: "It was left in the sun",
	},
	{
		ID:            QuestionLogic2,
		Prompt:        "5. Complete the pair: Hand is to glove, as foot is to _____.",
		Type:          TypeMultipleChoice,
		Options:       []string{"Sock", "Shoe", "Hat"},
		CorrectAnswer: "Sock",
		Hint:          "What do you wear on your feet?",
	},
}

// secondaryQuestions is the question set for ages 13-18.
var secondaryQuestions = []Question{
	{
		ID:     QuestionVerbal1,
		Prompt: "1. Plan a science experiment: Arrange these steps logically by selecting numbers from 1 to 5 for each step.",
		Type:   TypeOrderedNumber,
		Options: []string{
			"Record the results.",
			"Form a hypothesis.",
			"Gather materials.",
			"Analyze the data.",
			"Test the hypothesis.",
		},
		CorrectAnswer: "2,3,5,1,4",
	},
	{
		ID:     QuestionVerbal2,
		Prompt: "2. What does 'hypothesis' mean?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"A proven fact",
			"An educated guess",
			"A type of graph",
		},
		CorrectAnswer: "An educated guess",
	},
	{
		ID:            QuestionNonverbal1,
		Prompt:        "3. What's missing in the pattern?",
		Type:          TypePattern,
		Options:       []string{"◻️", "◼️", "◯"},
		CorrectAnswer: "◻️",
		Hint:          "Look for symmetry in rows and columns.",
		Scaffolding:   "Pattern:\n◻️◼️◻️\n◼️?◼️\n◻️◼️◻️",
	},
	{
		ID:     QuestionLogic1,
		Prompt: "4. If all planets orbit stars, and Earth orbits the Sun, is Earth a planet?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Yes",
			"No",
			"Not enough info",
		},
		CorrectAnswer: "Yes",
		Scaffolding:   "What category does Earth fit into?",
	},
	{
		ID: QuestionLogic2,
		Prompt: "5. Amy, Ben, and Cara each have a favorite subject: math, history, or art.\n" +
			"Amy doesn't like math or history.\n" +
			"Ben's favorite subject isn't art.\n" +
			"What is Cara's favorite subject?",
		Type:          TypeLogicPuzzle,
		Options:       []string{"Math", "History", "Art"},
		CorrectAnswer: "History",
	},
}

// answerKeys maps each band to its canonical answers, derived once from the
// question sets so the two can never drift apart.
var answerKeys = map[Band]map[string]string{
	BandPrimary:   keyFor(primaryQuestions),
	BandSecondary: keyFor(secondaryQuestions),
}

func keyFor(questions []Question) map[string]string {
	key := make(map[string]string, len(questions))
	for _, q := range questions {
		key[q.ID] = q.CorrectAnswer
	}
	return key
}
