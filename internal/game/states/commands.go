package states

// Command names a player command for phase checks.
type Command string

const (
	CmdReinforce Command = "reinforce"
	CmdAttack    Command = "attack"
	CmdOccupy    Command = "occupy"
	CmdEndAttack Command = "end attack"
	CmdRegroup   Command = "regroup"
)
