package game

// Stats summarizes every player in seating order.
func (e *Engine) Stats() []PlayerStats {
	out := make([]PlayerStats, 0, len(e.players))
	for _, p := range e.players {
		s := PlayerStats{
			Name:        p.Name,
			Color:       p.Color,
			Territories: len(e.registry.TerritoriesOf(p.Name)),
			Troops:      e.registry.TotalTroops(p.Name),
			Continents:  e.continentsHeld(p.Name),
			Eliminated:  e.eliminations.IsEliminated(p.Name),
		}
		if p.Goal != nil {
			s.Goal = p.Goal.String()
		}
		if s.Eliminated {
			s.EliminatedBy, _ = e.eliminations.DestroyerOf(p.Name)
		}
		out = append(out, s)
	}
	e.logger.Debug().Int("players", len(out)).Msg("Player stats computed")
	return out
}
