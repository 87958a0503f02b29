package engine

// Outcome is how a session ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota // session still running
	OutcomeWin
	OutcomeLose
	OutcomeQuit
)

var outcomeNames = [...]string{
	OutcomeNone: "none",
	OutcomeWin:  "win",
	OutcomeLose: "lose",
	OutcomeQuit: "quit",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}
