package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	// If no filter is set, interested in all events
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	// Create the base event log
	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	// Add event-specific fields based on type
	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Strs("players", playerNames(e.Players)).
			Int("territories", e.Territories).
			Int("continents", e.Continents)

	case *events.GameEndedEvent:
		logEvent.
			Strs("winners", playerNames(e.Winners)).
			Dur("duration", e.Duration).
			Int("final_turn", e.FinalTurn)

	case *events.TurnStartedEvent:
		logEvent.
			Str("player", string(e.Metadata.Player)).
			Int("turn", e.TurnNumber)

	case *events.ReinforcementsPlacedEvent:
		logEvent.
			Str("player", string(e.Metadata.Player)).
			Int("placements", len(e.Reinforcements)).
			Int("total", e.Total)

	case *events.CombatResolvedEvent:
		logEvent.
			Str("attacker", string(e.Attacker)).
			Str("defender", string(e.Defender)).
			Str("from", string(e.From)).
			Str("to", string(e.To)).
			Ints("attacker_rolls", e.AttackerRolls).
			Ints("defender_rolls", e.DefenderRolls).
			Int("attacker_losses", e.AttackerLosses).
			Int("defender_losses", e.DefenderLosses).
			Bool("conquered", e.Conquered)

	case *events.TerritoryConqueredEvent:
		logEvent.
			Str("territory", string(e.Territory)).
			Str("new_owner", string(e.NewOwner)).
			Str("old_owner", string(e.OldOwner)).
			Int("moved_in", e.MovedIn)

	case *events.ConquestOccupiedEvent:
		logEvent.
			Str("player", string(e.Metadata.Player)).
			Str("from", string(e.From)).
			Str("to", string(e.To)).
			Int("amount", e.Amount)

	case *events.TroopsRegroupedEvent:
		logEvent.
			Str("player", string(e.Metadata.Player)).
			Int("moves", len(e.Moves))

	case *events.PlayerEliminatedEvent:
		logEvent.
			Str("player", string(e.Player)).
			Str("eliminated_by", string(e.EliminatedBy)).
			Int("final_rank", e.FinalRank)

	case *events.CommandRejectedEvent:
		logEvent.
			Str("player", string(e.Metadata.Player)).
			Str("command", e.Command).
			Str("reason", e.Reason)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	// Send the log
	logEvent.Msg("Game event")
}

func playerNames(ps []core.PlayerName) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return out
}
