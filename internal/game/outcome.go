package game

// Outcome represents the result of a round, always from the player's
// perspective.
type Outcome int

const (
	// Win means the player's move beat the computer's
	Win Outcome = iota
	// Lose means the computer's move beat the player's
	Lose
	// Draw means both sides played the same move
	Draw
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// beats[a][b] reports whether move a defeats move b.
var beats = [3][3]bool{
	Rock:     {Scissors: true},
	Paper:    {Rock: true},
	Scissors: {Paper: true},
}

// Decide resolves a round between two moves, from the player's perspective.
// Equal moves draw; otherwise the fixed relation applies: rock beats
// scissors, scissors beats paper, paper beats rock. Both arguments must be
// valid moves.
func Decide(player, computer Move) Outcome {
	if player == computer {
		return Draw
	}
	if beats[player][computer] {
		return Win
	}
	return Lose
}

// DecideStrings resolves a round given raw string moves, normalizing and
// validating both before deciding. The interactive path validates input up
// front and calls Decide directly, so ErrInvalidMove from here is only
// reachable by programmatic callers.
func DecideStrings(player, computer string) (Outcome, error) {
	p, err := MoveFromString(player)
	if err != nil {
		return Draw, err
	}
	c, err := MoveFromString(computer)
	if err != nil {
		return Draw, err
	}
	return Decide(p, c), nil
}
