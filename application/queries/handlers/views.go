package handlers

import (
	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/entities"
)

// celebritySummary projects a celebrity entity into the roster shape
func celebritySummary(c *entities.Celebrity) queries.CelebritySummary {
	return queries.CelebritySummary{
		ID:            c.ID().String(),
		Name:          c.Name(),
		Category:      c.Category().String(),
		Bio:           c.Bio(),
		AccessScore:   c.AccessScore(),
		PrimaryHandle: c.PrimaryHandle(),
		KnownManager:  c.KnownManager(),
		NodeCount:     c.NodeCount(),
	}
}

// buildNodeView projects one snapshot member into the API shape
func buildNodeView(snapshot *ports.Snapshot, person *entities.Person) queries.NodeView {
	score := snapshot.Scores[person.ID()]
	hops, _ := snapshot.Graph.HopDistance(person.ID())

	view := queries.NodeView{
		ID:            person.ID().String(),
		Name:          person.Name(),
		Role:          person.Profile().Role(),
		Tag:           person.Tag().String(),
		HopDistance:   hops,
		WarmScore:     score.Value(),
		Uncontactable: score.IsUncontactable(),
		WhyWarm:       person.Profile().Rationale(),
	}
	if channel, ok := person.PreferredChannel(); ok {
		view.ContactInfo = channel.Display()
	}
	for _, c := range score.Contributions() {
		view.Contributions = append(view.Contributions, queries.SignalBreakdown{
			Name:     c.Name,
			Value:    c.Value,
			Weight:   c.Weight,
			Weighted: c.Weighted,
		})
	}
	return view
}

// buildPathStep projects one chain member into the API shape
func buildPathStep(snapshot *ports.Snapshot, person *entities.Person) queries.PathStep {
	score := snapshot.Scores[person.ID()]
	hops, _ := snapshot.Graph.HopDistance(person.ID())

	step := queries.PathStep{
		NodeID:    person.ID().String(),
		Name:      person.Name(),
		Role:      person.Profile().Role(),
		Tag:       person.Tag().String(),
		Hop:       hops,
		WarmScore: score.Value(),
		WhyWarm:   person.Profile().Rationale(),
	}
	if channel, ok := person.PreferredChannel(); ok {
		step.ContactInfo = channel.Display()
	}
	return step
}
