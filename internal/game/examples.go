package game

import (
	"fmt"
	"math/rand"
)

// ExampleCategory classifies a context example for the sandbox UI.
type ExampleCategory string

const (
	CategoryPlayerAction    ExampleCategory = "player_action"
	CategoryGameDescription ExampleCategory = "game_description"
	CategorySituation       ExampleCategory = "situation"
)

// ContextExample is one prefabricated game-context scenario the sandbox
// offers for a product and flow step.
type ContextExample struct {
	Text     string
	Category ExampleCategory
}

// GenerateExamples returns scenario suggestions for the product and flow
// step, shaped by the step settings where the step reads them. Unknown
// steps fall back to the product's generic set.
func GenerateExamples(product ProductID, flowStep string, settings StepSettings) []ContextExample {
	switch product {
	case ProductSongQuiz:
		return songQuizExamples(flowStep, settings)
	case ProductWheel:
		return wheelExamples(flowStep, settings)
	case ProductJeopardy:
		return jeopardyExamples(flowStep, settings)
	}
	return nil
}

// RandomExample picks one suggestion using the caller's rng.
func RandomExample(rng *rand.Rand, product ProductID, flowStep string, settings StepSettings) ContextExample {
	examples := GenerateExamples(product, flowStep, settings)
	if len(examples) == 0 {
		return ContextExample{Text: "Exciting moment in the game", Category: CategorySituation}
	}
	return examples[rng.Intn(len(examples))]
}

func songQuizExamples(flowStep string, s StepSettings) []ContextExample {
	switch flowStep {
	case "round_result":
		if s.IsCorrect {
			return []ContextExample{
				{`Charlie said "Shake It Off by Taylor Swift" right away`, CategoryPlayerAction},
				{`Player answered "Bohemian Rhapsody by Queen" as soon as it started`, CategoryPlayerAction},
				{`Charlie shouted "Hotel California by Eagles!"`, CategoryPlayerAction},
				{"Player got it right within 3 seconds of the song starting", CategoryGameDescription},
				{"Charlie figured it out from just the opening chord", CategoryGameDescription},
				{"Player recognized this 1980s rock classic", CategoryGameDescription},
				{"Player got the answer out just as time was running out", CategorySituation},
				{`Player said "umm..." then gave the right answer`, CategorySituation},
				{"Charlie came through at the very last second", CategorySituation},
			}
		}
		return []ContextExample{
			{`Charlie said "Wonderwall by Oasis" but it was "Champagne Supernova"`, CategoryPlayerAction},
			{`Player answered "Stairway to Heaven by Led Zeppelin" when it was "Kashmir"`, CategoryPlayerAction},
			{`Charlie called out "That's Michael Jackson!" but it was Prince`, CategoryPlayerAction},
			{"Player missed this 1990s hip-hop classic completely", CategoryGameDescription},
			{"Charlie got the artist right but wrong song from the same album", CategoryGameDescription},
			{"Player confused the original with the more famous cover version", CategoryGameDescription},
			{"Player hesitated for 10 seconds, then guessed incorrectly", CategorySituation},
			{"Charlie confidently gave the wrong answer", CategorySituation},
			{`Charlie said "I have no idea" and made a wild guess`, CategorySituation},
		}
	case "streak_milestone":
		n := s.StreakCount
		if n <= 0 {
			n = 3
		}
		return []ContextExample{
			{fmt.Sprintf("Player just hit %d correct answers in a row!", n), CategorySituation},
			{fmt.Sprintf("Amazing %d-song streak across different decades", n), CategoryGameDescription},
			{fmt.Sprintf("Charlie nailed %d straight rock classics", n), CategorySituation},
			{fmt.Sprintf("Perfect streak of %d - mix of pop, rock, and hip-hop", n), CategoryGameDescription},
			{fmt.Sprintf("%d in a row! Player is absolutely on fire right now", n), CategorySituation},
			{fmt.Sprintf("That's %d straight! Player knows their music", n), CategorySituation},
		}
	case "game_result":
		switch {
		case s.Performance >= 4:
			return []ContextExample{
				{"Perfect game! Player got all 5 songs correct", CategoryGameDescription},
				{"Incredible performance - 100% accuracy across all genres", CategoryGameDescription},
				{"Charlie dominated the final round with perfect scores", CategorySituation},
				{"Player nailed the final song for the win!", CategorySituation},
				{"Amazing finish - came back to win in the final song", CategorySituation},
				{"Exceptional game - only missed one tricky track", CategoryGameDescription},
			}
		case s.Performance <= 2:
			return []ContextExample{
				{"Tough game - player only got 1 out of 5 songs correct", CategoryGameDescription},
				{"Challenging playlist stumped the player today", CategorySituation},
				{"Not their best round - lots of tricky tracks", CategorySituation},
				{"Rough start but player kept trying until the end", CategorySituation},
				{"Missed 4 out of 5 but showed great sportsmanship", CategoryGameDescription},
				{"Player learned a lot of new songs today", CategorySituation},
			}
		}
		return []ContextExample{
			{"Solid game - player got 3 out of 5 songs right", CategoryGameDescription},
			{"Good mix of hits and misses across different genres", CategoryGameDescription},
			{"Player showed steady improvement throughout the game", CategorySituation},
			{"Charlie held their own against a challenging playlist", CategorySituation},
			{"Respectable showing with 60% accuracy overall", CategoryGameDescription},
			{"Consistent performance from start to finish", CategorySituation},
		}
	case "comeback_moment":
		return []ContextExample{
			{"Player was down 0-2 but just scored 3 in a row!", CategorySituation},
			{"Amazing comeback after missing the first 3 songs", CategorySituation},
			{"Charlie bounced back strong after that rough patch", CategorySituation},
			{"From zero correct to suddenly on fire - what a turnaround!", CategorySituation},
			{"Incredible rally - went from last place to first", CategorySituation},
			{"What a recovery! From 1 correct to nailing the final 3", CategorySituation},
		}
	case "answer_steal":
		if s.IsCorrect {
			return []ContextExample{
				{`Ada said "Taylor Swift" and Maya successfully stole with "Shake It Off!"`, CategoryPlayerAction},
				{`Charlie guessed "Queen" then Jordan correctly completed with "Bohemian Rhapsody"`, CategoryPlayerAction},
				{`Emilio said "Hotel California" and Ada stole the points with "Eagles!"`, CategoryPlayerAction},
				{"Great teamwork steal on this 1980s rock classic", CategoryGameDescription},
				{"Second player got the points with the missing artist", CategoryGameDescription},
				{"Second player jumped in within 2 seconds of the partial answer", CategorySituation},
				{"Quick steal while the first player was still speaking", CategorySituation},
			}
		}
		return []ContextExample{
			{`Ada said "Taylor Swift" then Maya failed the steal with "Bad Blood" but it was "Shake It Off"`, CategoryPlayerAction},
			{`Charlie guessed "Queen" and Jordan attempted to steal with "We Will Rock You" but it was "Bohemian Rhapsody"`, CategoryPlayerAction},
			{"Steal attempt failed - wrong artist for this 1980s classic", CategoryGameDescription},
			{"Unsuccessful steal - second player guessed wrong song by same artist", CategoryGameDescription},
			{"Second player jumped in too quickly and got it wrong", CategorySituation},
			{"Steal attempt backfired with an incorrect completion", CategorySituation},
		}
	}
	return []ContextExample{
		{"Player is doing great so far", CategorySituation},
		{"Exciting moment in the game", CategorySituation},
		{"Charlie made a smart play", CategoryPlayerAction},
		{"Player showed good musical instincts", CategoryGameDescription},
		{"This round is getting interesting", CategorySituation},
		{"Nice musical knowledge on display", CategoryGameDescription},
	}
}

func wheelExamples(flowStep string, s StepSettings) []ContextExample {
	switch flowStep {
	case "puzzle_solve":
		var lead []ContextExample
		switch s.Difficulty {
		case DifficultyEasy:
			lead = []ContextExample{
				{`Player solved "GOOD MORNING" with most letters revealed`, CategoryPlayerAction},
				{`Charlie got "HAPPY BIRTHDAY" pretty quickly`, CategoryPlayerAction},
				{`Easy puzzle solved: "BEST FRIENDS"`, CategoryGameDescription},
			}
		case DifficultyHard:
			lead = []ContextExample{
				{`Incredible solve: "ENCYCLOPEDIA BRITANNICA" with minimal letters`, CategoryPlayerAction},
				{`Player cracked "SUPERCALIFRAGILISTICEXPIALIDOCIOUS"`, CategoryPlayerAction},
				{"Amazing! Solved the tough puzzle with only R-S-T-L-N-E", CategoryGameDescription},
			}
		default:
			lead = []ContextExample{
				{`Player solved "PRACTICE MAKES PERFECT" with skill`, CategoryPlayerAction},
				{`Charlie figured out "DIAMOND IN THE ROUGH"`, CategoryPlayerAction},
				{`Solid solve on "BETTER LATE THAN NEVER"`, CategoryGameDescription},
			}
		}
		return append(lead,
			ContextExample{"Player studied the board carefully before solving", CategorySituation},
			ContextExample{"Great puzzle-solving instincts on display", CategoryGameDescription},
			ContextExample{`Player had that "aha!" moment and solved it`, CategorySituation},
		)
	case "big_money_spin":
		v := s.SpinValue
		if v <= 0 {
			v = 1000
		}
		return []ContextExample{
			{fmt.Sprintf("Player spun $%d and called the letter T!", v), CategoryPlayerAction},
			{fmt.Sprintf("Huge spin! $%d on the wheel", v), CategorySituation},
			{fmt.Sprintf("Charlie hit the $%d wedge with style", v), CategoryPlayerAction},
			{fmt.Sprintf("Big money! $%d and there are 3 R's in the puzzle", v), CategoryGameDescription},
			{fmt.Sprintf("Charlie called N and there are 2 - that's $%d!", v*2), CategoryGameDescription},
			{fmt.Sprintf("Perfect timing for a $%d spin", v), CategorySituation},
		}
	case "final_puzzle":
		if s.Difficulty == DifficultyHard {
			return []ContextExample{
				{`Player solved "WORLD CHAMPIONSHIP" in the bonus round!`, CategoryPlayerAction},
				{"Incredible! Charlie got the tough final puzzle", CategorySituation},
				{"Amazing solve with just R-S-T-L-N-E and D-M-C-O", CategoryGameDescription},
				{"Player won the car with that brilliant final solve!", CategorySituation},
				{"Difficult final puzzle solved in the nick of time", CategorySituation},
			}
		}
		return []ContextExample{
			{`Player solved "CHOCOLATE CAKE" and won big!`, CategoryPlayerAction},
			{"Charlie figured out the final puzzle for $25,000", CategorySituation},
			{`Bonus round success! Player got "FAMILY VACATION"`, CategoryGameDescription},
			{"Player won the bonus round with time to spare", CategorySituation},
			{"Great final puzzle solve for the grand prize", CategoryGameDescription},
		}
	case "bankrupt":
		return []ContextExample{
			{"Player hit BANKRUPT and lost $2,400", CategorySituation},
			{"Ouch! Charlie spun BANKRUPT at the worst time", CategorySituation},
			{"Heartbreaking BANKRUPT after building up $3,000", CategoryGameDescription},
			{"BANKRUPT! There goes $1,800 in winnings", CategoryGameDescription},
			{"Charlie hit BANKRUPT but kept a positive attitude", CategorySituation},
			{"BANKRUPT struck at the most painful moment", CategorySituation},
		}
	}
	return []ContextExample{
		{"Player made a smart letter choice", CategoryPlayerAction},
		{"Charlie is studying the puzzle board", CategorySituation},
		{"Player called a vowel at the right time", CategoryPlayerAction},
		{"Charlie is building up their winnings", CategorySituation},
		{"The puzzle is starting to come together", CategorySituation},
		{"Player is thinking strategically", CategoryGameDescription},
	}
}

func jeopardyExamples(flowStep string, s StepSettings) []ContextExample {
	switch flowStep {
	case "daily_double":
		w := s.WagerAmount
		if w <= 0 {
			w = 1000
		}
		return []ContextExample{
			{fmt.Sprintf("Player found Daily Double and wagered $%d!", w), CategoryPlayerAction},
			{fmt.Sprintf("Charlie bet $%d on the Daily Double - all or nothing!", w), CategoryPlayerAction},
			{fmt.Sprintf("Daily Double! Player is risking $%d on this answer", w), CategorySituation},
			{fmt.Sprintf("Big wager of $%d on the Daily Double clue", w), CategoryGameDescription},
			{fmt.Sprintf("Confident wager! $%d riding on this Daily Double", w), CategorySituation},
			{fmt.Sprintf("High stakes: $%d Daily Double bet", w), CategoryGameDescription},
		}
	case "final_jeopardy":
		difficultyContext := map[Difficulty]string{
			DifficultyEasy:   "straightforward Final Jeopardy",
			DifficultyMedium: "challenging Final Jeopardy",
			DifficultyHard:   "incredibly difficult Final Jeopardy",
		}
		ctx, ok := difficultyContext[s.Difficulty]
		if !ok {
			ctx = difficultyContext[DifficultyMedium]
		}
		return []ContextExample{
			{fmt.Sprintf("Player wagered everything on this %s", ctx), CategoryPlayerAction},
			{"Charlie wrote down their answer with confidence", CategoryPlayerAction},
			{`Final Jeopardy category is "WORLD CAPITALS" - player looks ready`, CategorySituation},
			{"Player is trailing by $2,000 going into Final Jeopardy", CategoryGameDescription},
			{"This Final Jeopardy will determine the champion", CategorySituation},
			{"Nail-biting Final Jeopardy - anyone could win", CategorySituation},
		}
	case "category_completion":
		return []ContextExample{
			{`Player swept the entire "POTPOURRI" category!`, CategoryGameDescription},
			{`Charlie ran the table on "WORLD CAPITALS"`, CategoryPlayerAction},
			{"Complete category sweep - all five clues correct", CategoryGameDescription},
			{`Impressive run through the "SCIENCE" category`, CategorySituation},
			{`Charlie knows their "MOVIE QUOTES" - perfect category!`, CategoryPlayerAction},
			{`Perfect performance on the "LITERATURE" category`, CategoryGameDescription},
		}
	case "score_momentum":
		return []ContextExample{
			{"Player made an incredible comeback from last place!", CategorySituation},
			{"Charlie went from $5,000 behind to taking the lead", CategoryGameDescription},
			{"Dramatic momentum shift - player is now ahead by $3,000", CategorySituation},
			{"Charlie turned the game around in Double Jeopardy", CategorySituation},
			{"Momentum completely shifted after that Daily Double", CategorySituation},
			{"Player turned potential elimination into victory", CategoryGameDescription},
		}
	}
	return []ContextExample{
		{`Player selected "POTPOURRI" for $400`, CategoryPlayerAction},
		{"Charlie answered confidently and got it right", CategorySituation},
		{"Good strategy shown in category selection", CategoryGameDescription},
		{"Player is building momentum this round", CategorySituation},
		{"Charlie is showing good Jeopardy instincts", CategoryGameDescription},
		{"The competition is heating up this round", CategorySituation},
	}
}
