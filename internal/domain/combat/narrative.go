package combat

var narratives = map[Outcome]struct{ escorted, unescorted string }{
	OutcomePiratesDefeated: {
		escorted:   "Your security escort drove the raiders off. The convoy holds course.",
		unescorted: "Against the odds, your crew shook the raiders and slipped away intact.",
	},
	OutcomePiratesWon: {
		escorted:   "The escort was overwhelmed. Ship and cargo are gone.",
		unescorted: "With no escort to cover them, the crew never stood a chance. Total loss.",
	},
	OutcomePayloadSeized: {
		escorted:   "The escort bought enough time for the crew to escape, but the cargo hold was stripped.",
		unescorted: "The crew surrendered the cargo and limped home empty.",
	},
}

func narrativeFor(outcome Outcome, escorted bool) string {
	n, ok := narratives[outcome]
	if !ok {
		return ""
	}
	if escorted {
		return n.escorted
	}
	return n.unescorted
}
