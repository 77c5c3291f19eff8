package events

import (
	"time"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted          = "game.started"
	TypeGameEnded            = "game.ended"
	TypeTurnStarted          = "turn.started"
	TypeReinforcementsPlaced = "reinforcements.placed"
	TypeCombatResolved       = "combat.resolved"
	TypeTerritoryConquered   = "territory.conquered"
	TypeConquestOccupied     = "conquest.occupied"
	TypeTroopsRegrouped      = "troops.regrouped"
	TypePlayerEliminated     = "player.eliminated"
	TypeCommandRejected      = "command.rejected"
	TypeStateTransition      = "state.transition"
)

// GameStartedEvent is published when a new game begins
type GameStartedEvent struct {
	BaseEvent
	Players     []core.PlayerName
	Territories int
	Continents  int
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, players []core.PlayerName, territories, continents int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:   newBase(TypeGameStarted, gameID),
		Players:     players,
		Territories: territories,
		Continents:  continents,
	}
}

// GameEndedEvent is published when a game ends
type GameEndedEvent struct {
	BaseEvent
	Winners   []core.PlayerName
	Duration  time.Duration
	FinalTurn int
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winners []core.PlayerName, duration time.Duration, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBase(TypeGameEnded, gameID),
		Winners:   winners,
		Duration:  duration,
		FinalTurn: finalTurn,
	}
}

// TurnStartedEvent is published when a player's turn begins
type TurnStartedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	TurnNumber int
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(gameID string, player core.PlayerName, turn int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, gameID),
		Metadata:   EventMetadata{Player: player, Turn: turn},
		TurnNumber: turn,
	}
}

// ReinforcementsPlacedEvent is published after a reinforcement batch applied
type ReinforcementsPlacedEvent struct {
	BaseEvent
	Metadata       EventMetadata
	Reinforcements []core.Reinforcement
	Total          int
}

// NewReinforcementsPlacedEvent creates an event for one accepted reinforce batch
func NewReinforcementsPlacedEvent(gameID string, player core.PlayerName, turn int, rs []core.Reinforcement) *ReinforcementsPlacedEvent {
	total := 0
	for _, r := range rs {
		total += r.Troops.Int()
	}
	return &ReinforcementsPlacedEvent{
		BaseEvent:      newBase(TypeReinforcementsPlaced, gameID),
		Metadata:       EventMetadata{Player: player, Turn: turn},
		Reinforcements: rs,
		Total:          total,
	}
}

// CombatResolvedEvent is published after every attack
type CombatResolvedEvent struct {
	BaseEvent
	Metadata       EventMetadata
	Attacker       core.PlayerName
	Defender       core.PlayerName
	From           core.Territory
	To             core.Territory
	AttackerRolls  []int
	DefenderRolls  []int
	AttackerLosses int
	DefenderLosses int
	Conquered      bool
}

// NewCombatResolvedEvent creates a new CombatResolvedEvent
func NewCombatResolvedEvent(gameID string, turn int, attacker, defender core.PlayerName, from, to core.Territory,
	attackerRolls, defenderRolls []int, attackerLosses, defenderLosses int, conquered bool) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent:      newBase(TypeCombatResolved, gameID),
		Metadata:       EventMetadata{Player: attacker, Turn: turn},
		Attacker:       attacker,
		Defender:       defender,
		From:           from,
		To:             to,
		AttackerRolls:  attackerRolls,
		DefenderRolls:  defenderRolls,
		AttackerLosses: attackerLosses,
		DefenderLosses: defenderLosses,
		Conquered:      conquered,
	}
}

// TerritoryConqueredEvent is published when a territory changes hands
type TerritoryConqueredEvent struct {
	BaseEvent
	Metadata  EventMetadata
	Territory core.Territory
	From      core.Territory
	NewOwner  core.PlayerName
	OldOwner  core.PlayerName
	MovedIn   int
}

// NewTerritoryConqueredEvent creates an event for a territory changing hands
func NewTerritoryConqueredEvent(gameID string, turn int, territory, from core.Territory, newOwner, oldOwner core.PlayerName, movedIn int) *TerritoryConqueredEvent {
	return &TerritoryConqueredEvent{
		BaseEvent: newBase(TypeTerritoryConquered, gameID),
		Metadata:  EventMetadata{Player: newOwner, Turn: turn},
		Territory: territory,
		From:      from,
		NewOwner:  newOwner,
		OldOwner:  oldOwner,
		MovedIn:   movedIn,
	}
}

// ConquestOccupiedEvent is published when the conqueror finishes moving
// troops into a conquered territory
type ConquestOccupiedEvent struct {
	BaseEvent
	Metadata EventMetadata
	From     core.Territory
	To       core.Territory
	Amount   int
}

// NewConquestOccupiedEvent creates an event for the follow-up occupy move
func NewConquestOccupiedEvent(gameID string, turn int, player core.PlayerName, from, to core.Territory, amount int) *ConquestOccupiedEvent {
	return &ConquestOccupiedEvent{
		BaseEvent: newBase(TypeConquestOccupied, gameID),
		Metadata:  EventMetadata{Player: player, Turn: turn},
		From:      from,
		To:        to,
		Amount:    amount,
	}
}

// TroopsRegroupedEvent is published after a regroup batch applied
type TroopsRegroupedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Moves    []core.Regrouping
}

// NewTroopsRegroupedEvent creates an event for an accepted regroup batch
func NewTroopsRegroupedEvent(gameID string, player core.PlayerName, turn int, moves []core.Regrouping) *TroopsRegroupedEvent {
	return &TroopsRegroupedEvent{
		BaseEvent: newBase(TypeTroopsRegrouped, gameID),
		Metadata:  EventMetadata{Player: player, Turn: turn},
		Moves:     moves,
	}
}

// PlayerEliminatedEvent is published when a player is eliminated
type PlayerEliminatedEvent struct {
	BaseEvent
	Metadata     EventMetadata
	Player       core.PlayerName
	EliminatedBy core.PlayerName
	FinalRank    int
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent
func NewPlayerEliminatedEvent(gameID string, player, eliminatedBy core.PlayerName, rank int, turn int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent:    newBase(TypePlayerEliminated, gameID),
		Metadata:     EventMetadata{Player: player, Turn: turn},
		Player:       player,
		EliminatedBy: eliminatedBy,
		FinalRank:    rank,
	}
}

// CommandRejectedEvent is published when the engine refuses a command
type CommandRejectedEvent struct {
	BaseEvent
	Metadata EventMetadata
	Command  string
	Reason   string
}

// NewCommandRejectedEvent creates an event for a command the engine refused
func NewCommandRejectedEvent(gameID string, player core.PlayerName, turn int, command string, err error) *CommandRejectedEvent {
	return &CommandRejectedEvent{
		BaseEvent: newBase(TypeCommandRejected, gameID),
		Metadata:  EventMetadata{Player: player, Turn: turn},
		Command:   command,
		Reason:    err.Error(),
	}
}

// StateTransitionEvent is published when the game state machine transitions between phases
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, gameID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
