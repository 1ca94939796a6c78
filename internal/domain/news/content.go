package news

var educationalPool = []string{
	"C-type asteroids are rich in water and organics; their ice feeds orbital depots.",
	"M-type asteroids are mostly nickel-iron, the cheapest structural metal off Earth.",
	"S-type asteroids carry silicates with traces of platinum-group metals.",
	"Delta-v, not distance, decides what a trip costs. Some far rocks are cheap to reach.",
	"A mining rig drills anchored, never hovering: microgravity makes cuttings drift for hours.",
	"Contract buyers pay a premium over spot for guaranteed delivery windows.",
	"Provider reliability compounds: every phase of a mission rides on the same hardware.",
}

var flavorPool = []string{
	"Dockside rumor: a freighter crew swears their cargo hold hummed the whole trip home.",
	"The Ceres chamber of commerce has voted to adopt a municipal anthem. Again.",
	"A belt prospector claims to have found a rock shaped exactly like Earth's moon. No photos yet.",
	"Station chow update: the noodle printer on Vesta Relay is back online.",
	"Classified ads: slightly used drill head, only dropped once. From orbit.",
	"An intern at a rival firm reportedly aimed the comms dish at Jupiter for a week. Nobody noticed.",
}

// EducationalNews picks one entry uniformly. Repeats across calls are allowed;
// the pool is not exhausted.
func (s *Scheduler) EducationalNews(now float64) NewsItem {
	text := educationalPool[s.Rand.Intn(len(educationalPool))]
	return newItem(CategoryEducational, now, text)
}

// FlavorNews picks one entry uniformly, repeats permitted.
func (s *Scheduler) FlavorNews(now float64) NewsItem {
	text := flavorPool[s.Rand.Intn(len(flavorPool))]
	return newItem(CategoryFlavor, now, text)
}
