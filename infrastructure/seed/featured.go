package seed

import (
	"accessengine-backend/domain/core/valueobjects"
)

// FeaturedCircles returns the hand-modeled circles. Members are people in
// each celebrity's orbit whose role is public record; contact details are
// public handles or synthetic .example placeholders, never private data.
func FeaturedCircles() []CircleSeed {
	return []CircleSeed{
		mrBeast(),
		taylorSwift(),
		elonMusk(),
		lebronJames(),
		zendaya(),
		barackObama(),
	}
}

func mrBeast() CircleSeed {
	return CircleSeed{
		Slug:     "mrbeast",
		Name:     "MrBeast",
		Category: valueobjects.CategoryOther,
		Bio:      "Jimmy Donaldson, the most-subscribed individual creator on YouTube, known for large-scale stunt philanthropy and the Beast Industries brands.",
		Handle:   "@MrBeast",
		Manager:  "Reed Duchscher",
		Members: []MemberSeed{
			{
				Slug: "reed-duchscher", Name: "Reed Duchscher", Tag: valueobjects.TagManager,
				Role:      "Talent manager, CEO of Night",
				Rationale: "Runs Night, the management company behind MrBeast; fields every serious business inquiry",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@reedduchscher", Public: true},
					{Type: valueobjects.ChannelEmail, Handle: "talent@night.example", Public: false},
				},
				Strength: 92, Mutuals: 40, Frequency: 28, DaysSinceActive: 3,
			},
			{
				Slug: "chandler-hallow", Name: "Chandler Hallow", Tag: valueobjects.TagCloseFriend,
				Role:      "Cast member and longtime friend",
				Rationale: "On camera in most main-channel videos since 2017; close personal friend",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@ChandlerHallow", Public: true},
				},
				Strength: 88, Mutuals: 35, Frequency: 30, DaysSinceActive: 2,
			},
			{
				Slug: "karl-jacobs", Name: "Karl Jacobs", Tag: valueobjects.TagCloseFriend,
				Role:      "Cast member and creator",
				Rationale: "Main-channel cast member with his own large audience; active collaborator",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@KarlJacobs", Public: true},
				},
				Strength: 84, Mutuals: 30, Frequency: 24, DaysSinceActive: 5,
			},
			{
				Slug: "mark-rober", Name: "Mark Rober", Tag: valueobjects.TagCollaborator,
				Role:      "Creator and engineering collaborator",
				Rationale: "Co-ran Team Trees and Team Seas; recurring collaboration partner",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@MarkRober", Public: true},
					{Type: valueobjects.ChannelYouTube, Handle: "MarkRober", Public: true},
				},
				Strength: 78, Mutuals: 22, Frequency: 8, DaysSinceActive: 30,
			},
			{
				Slug: "colin-samir", Name: "Colin and Samir", Tag: valueobjects.TagMedia,
				Role:      "Creator-economy journalists",
				Rationale: "Have interviewed him at length repeatedly; trusted press channel into the creator world",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelYouTube, Handle: "ColinandSamir", Public: true},
					{Type: valueobjects.ChannelEmail, Handle: "studio@colinandsamir.example", Public: true},
				},
				Strength: 62, Mutuals: 15, Frequency: 4, DaysSinceActive: 45,
			},
			{
				Slug: "night-partnerships", Name: "Night Partnerships Lead", Tag: valueobjects.TagColleague,
				Role:      "Brand partnerships at Night",
				Rationale: "Routes sponsorship and partnership pitches to the management team",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "partnerships@night.example", Public: true},
				},
				Strength: 70, Mutuals: 12, Frequency: 16, DaysSinceActive: 7,
				ViaSlug:  "reed-duchscher",
			},
		},
		Edges: []EdgeSeed{
			{From: "chandler-hallow", To: "karl-jacobs", Strength: 85},
			{From: "reed-duchscher", To: "mark-rober", Strength: 55},
		},
	}
}

func taylorSwift() CircleSeed {
	return CircleSeed{
		Slug:     "taylor-swift",
		Name:     "Taylor Swift",
		Category: valueobjects.CategoryMusic,
		Bio:      "Singer-songwriter with the highest-grossing concert tour in history; famously self-managed with a tight long-tenured inner team.",
		Handle:   "@taylorswift13",
		Manager:  "",
		Members: []MemberSeed{
			{
				Slug: "tree-paine", Name: "Tree Paine", Tag: valueobjects.TagPublicist,
				Role:      "Publicist, founder of Premium PR",
				Rationale: "Her publicist since 2014; the only consistent press route",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@treepaine", Public: true},
					{Type: valueobjects.ChannelEmail, Handle: "press@premiumpr.example", Public: false},
				},
				Strength: 90, Mutuals: 25, Frequency: 26, DaysSinceActive: 2,
			},
			{
				Slug: "jack-antonoff", Name: "Jack Antonoff", Tag: valueobjects.TagCollaborator,
				Role:      "Producer and co-writer",
				Rationale: "Co-produced most of her albums since 1989; close creative partner",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@jackantonoff", Public: true},
				},
				Strength: 86, Mutuals: 30, Frequency: 14, DaysSinceActive: 10,
			},
			{
				Slug: "aaron-dessner", Name: "Aaron Dessner", Tag: valueobjects.TagCollaborator,
				Role:      "Producer and co-writer",
				Rationale: "Co-wrote folklore and evermore; ongoing creative collaborator",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelInstagram, Handle: "@aarondessner", Public: true},
				},
				Strength: 80, Mutuals: 20, Frequency: 8, DaysSinceActive: 21,
			},
			{
				Slug: "andrea-swift", Name: "Andrea Swift", Tag: valueobjects.TagFamily,
				Role:      "Mother, informal advisor",
				Rationale: "Travels with the tour and sits in on business decisions; no public contact route",
				Strength:  95, Mutuals: 18, Frequency: 30, DaysSinceActive: 1,
			},
			{
				Slug: "travis-kelce", Name: "Travis Kelce", Tag: valueobjects.TagCloseFriend,
				Role:      "Partner, NFL tight end",
				Rationale: "Publicly together since 2023; hosts the New Heights podcast",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@tkelce", Public: true},
				},
				Strength: 92, Mutuals: 12, Frequency: 28, DaysSinceActive: 1,
			},
			{
				Slug: "republic-press", Name: "Republic Records Press Office", Tag: valueobjects.TagColleague,
				Role:      "Label press office",
				Rationale: "Label-side press contact; slower than Premium PR but always staffed",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "press@republic.example", Public: true},
				},
				Strength: 58, Mutuals: 10, Frequency: 10, DaysSinceActive: 14,
				ViaSlug:  "tree-paine",
			},
		},
		Edges: []EdgeSeed{
			{From: "jack-antonoff", To: "aaron-dessner", Strength: 80},
		},
	}
}

func elonMusk() CircleSeed {
	return CircleSeed{
		Slug:     "elon-musk",
		Name:     "Elon Musk",
		Category: valueobjects.CategoryTech,
		Bio:      "Founder and CEO across Tesla, SpaceX, and xAI; owner of X. Notoriously hard to reach through official channels, famously reachable through friends.",
		Handle:   "@elonmusk",
		Manager:  "Jared Birchall",
		Members: []MemberSeed{
			{
				Slug: "jared-birchall", Name: "Jared Birchall", Tag: valueobjects.TagManager,
				Role:      "Head of the family office",
				Rationale: "Runs Excession, his family office; gatekeeper for personal business matters",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "office@excession.example", Public: false},
				},
				Strength: 90, Mutuals: 15, Frequency: 26, DaysSinceActive: 4,
			},
			{
				Slug: "kimbal-musk", Name: "Kimbal Musk", Tag: valueobjects.TagFamily,
				Role:      "Brother, restaurateur and board member",
				Rationale: "Tesla and SpaceX board member; closest long-term family tie",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@kimbal", Public: true},
				},
				Strength: 88, Mutuals: 28, Frequency: 12, DaysSinceActive: 9,
			},
			{
				Slug: "david-sacks", Name: "David Sacks", Tag: valueobjects.TagFriend,
				Role:      "Investor, All-In podcast co-host",
				Rationale: "PayPal-era friend; their public exchanges show standing access",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@DavidSacks", Public: true},
				},
				Strength: 76, Mutuals: 45, Frequency: 10, DaysSinceActive: 12,
			},
			{
				Slug: "jason-calacanis", Name: "Jason Calacanis", Tag: valueobjects.TagFriend,
				Role:      "Angel investor and podcaster",
				Rationale: "Early Tesla backer and frequent public interlocutor; answers his DMs",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@Jason", Public: true},
					{Type: valueobjects.ChannelEmail, Handle: "jason@launch.example", Public: true},
				},
				Strength: 72, Mutuals: 40, Frequency: 9, DaysSinceActive: 15,
			},
			{
				Slug: "gwynne-shotwell", Name: "Gwynne Shotwell", Tag: valueobjects.TagColleague,
				Role:      "President and COO of SpaceX",
				Rationale: "Has run SpaceX operations beside him for two decades",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelLinkedIn, Handle: "gwynne-shotwell", Public: true},
				},
				Strength: 82, Mutuals: 20, Frequency: 22, DaysSinceActive: 6,
			},
			{
				Slug: "walter-isaacson", Name: "Walter Isaacson", Tag: valueobjects.TagMedia,
				Role:      "Biographer",
				Rationale: "Shadowed him for two years for the 2023 biography; retains direct access",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@WalterIsaacson", Public: true},
				},
				Strength: 60, Mutuals: 18, Frequency: 3, DaysSinceActive: 60,
			},
		},
		Edges: []EdgeSeed{
			{From: "david-sacks", To: "jason-calacanis", Strength: 85},
			{From: "jared-birchall", To: "kimbal-musk", Strength: 70},
		},
	}
}

func lebronJames() CircleSeed {
	return CircleSeed{
		Slug:     "lebron-james",
		Name:     "LeBron James",
		Category: valueobjects.CategorySports,
		Bio:      "Four-time NBA champion and all-time leading scorer; runs a media and business empire through SpringHill and LRMR.",
		Handle:   "@KingJames",
		Manager:  "Rich Paul",
		Members: []MemberSeed{
			{
				Slug: "rich-paul", Name: "Rich Paul", Tag: valueobjects.TagAgent,
				Role:      "Agent, CEO of Klutch Sports",
				Rationale: "His agent and one of his oldest friends; all basketball business runs through Klutch",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@RichPaul4", Public: true},
					{Type: valueobjects.ChannelEmail, Handle: "info@klutchsports.example", Public: true},
				},
				Strength: 93, Mutuals: 35, Frequency: 25, DaysSinceActive: 2,
			},
			{
				Slug: "maverick-carter", Name: "Maverick Carter", Tag: valueobjects.TagBusinessPartner,
				Role:      "Business partner, CEO of SpringHill",
				Rationale: "Co-founded SpringHill and LRMR with him; handles media and brand deals",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@mavcarter", Public: true},
				},
				Strength: 91, Mutuals: 32, Frequency: 24, DaysSinceActive: 3,
			},
			{
				Slug: "randy-mims", Name: "Randy Mims", Tag: valueobjects.TagFriend,
				Role:      "Longtime friend and logistics manager",
				Rationale: "Part of the original LRMR four; manages his day-to-day logistics",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "rm@lrmr.example", Public: false},
				},
				Strength: 87, Mutuals: 25, Frequency: 28, DaysSinceActive: 2,
			},
			{
				Slug: "adam-mendelsohn", Name: "Adam Mendelsohn", Tag: valueobjects.TagPublicist,
				Role:      "Media and communications advisor",
				Rationale: "Longtime comms strategist for him and Klutch; shapes all public positioning",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "am@dewey.example", Public: false},
				},
				Strength: 80, Mutuals: 15, Frequency: 12, DaysSinceActive: 8,
			},
			{
				Slug: "springhill-partnerships", Name: "SpringHill Partnerships", Tag: valueobjects.TagColleague,
				Role:      "Brand partnerships at SpringHill",
				Rationale: "Front door for media and brand collaboration pitches",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "partnerships@springhill.example", Public: true},
				},
				Strength: 66, Mutuals: 10, Frequency: 14, DaysSinceActive: 6,
				ViaSlug:  "maverick-carter",
			},
		},
		Edges: []EdgeSeed{
			{From: "rich-paul", To: "maverick-carter", Strength: 88},
			{From: "maverick-carter", To: "adam-mendelsohn", Strength: 75},
		},
	}
}

func zendaya() CircleSeed {
	return CircleSeed{
		Slug:     "zendaya",
		Name:     "Zendaya",
		Category: valueobjects.CategoryFilm,
		Bio:      "Emmy-winning actor anchoring the Dune and Spider-Man franchises; among the most-followed people on Instagram.",
		Handle:   "@Zendaya",
		Manager:  "",
		Members: []MemberSeed{
			{
				Slug: "stephen-huvane", Name: "Stephen Huvane", Tag: valueobjects.TagPublicist,
				Role:      "Publicist, partner at Slate PR",
				Rationale: "Handles her press; the standard professional route in",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "shuvane@slate-pr.example", Public: false},
				},
				Strength: 87, Mutuals: 12, Frequency: 20, DaysSinceActive: 4,
			},
			{
				Slug: "law-roach", Name: "Law Roach", Tag: valueobjects.TagCollaborator,
				Role:      "Image architect",
				Rationale: "Styled every major look of her career; creative confidant",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelInstagram, Handle: "@luxurylaw", Public: true},
				},
				Strength: 85, Mutuals: 20, Frequency: 16, DaysSinceActive: 6,
			},
			{
				Slug: "tom-holland", Name: "Tom Holland", Tag: valueobjects.TagCloseFriend,
				Role:      "Partner, actor",
				Rationale: "Publicly together since 2021; constant presence at her appearances",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelInstagram, Handle: "@tomholland2013", Public: true},
				},
				Strength: 93, Mutuals: 30, Frequency: 30, DaysSinceActive: 1,
			},
			{
				Slug: "claire-stoermer", Name: "Claire Stoermer", Tag: valueobjects.TagFamily,
				Role:      "Mother",
				Rationale: "Former teacher, closely involved in her career decisions; no public contact route",
				Strength:  94, Mutuals: 10, Frequency: 26, DaysSinceActive: 2,
			},
			{
				Slug: "darnell-appling", Name: "Darnell Appling", Tag: valueobjects.TagColleague,
				Role:      "Assistant and longtime friend",
				Rationale: "Her assistant since the Disney years; appears in her public life constantly",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelInstagram, Handle: "@appling14", Public: true},
				},
				Strength: 86, Mutuals: 18, Frequency: 28, DaysSinceActive: 2,
			},
		},
		Edges: []EdgeSeed{
			{From: "law-roach", To: "darnell-appling", Strength: 70},
			{From: "stephen-huvane", To: "law-roach", Strength: 55},
		},
	}
}

func barackObama() CircleSeed {
	return CircleSeed{
		Slug:     "barack-obama",
		Name:     "Barack Obama",
		Category: valueobjects.CategoryPolitics,
		Bio:      "44th President of the United States; runs Higher Ground productions and the Obama Foundation with a famously disciplined office.",
		Handle:   "@BarackObama",
		Manager:  "",
		Members: []MemberSeed{
			{
				Slug: "michelle-obama", Name: "Michelle Obama", Tag: valueobjects.TagFamily,
				Role:      "Spouse, former First Lady",
				Rationale: "Shares the office, the foundation, and the production company",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@MichelleObama", Public: true},
				},
				Strength: 96, Mutuals: 50, Frequency: 30, DaysSinceActive: 1,
			},
			{
				Slug: "eric-schultz", Name: "Eric Schultz", Tag: valueobjects.TagPublicist,
				Role:      "Senior advisor, office of Barack Obama",
				Rationale: "Runs post-presidency communications; every press request crosses his desk",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "press@obamaoffice.example", Public: true},
				},
				Strength: 88, Mutuals: 20, Frequency: 24, DaysSinceActive: 3,
			},
			{
				Slug: "valerie-jarrett", Name: "Valerie Jarrett", Tag: valueobjects.TagColleague,
				Role:      "CEO of the Obama Foundation",
				Rationale: "Advisor since Chicago; leads the foundation he chairs",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@ValerieJarrett", Public: true},
				},
				Strength: 85, Mutuals: 35, Frequency: 18, DaysSinceActive: 5,
			},
			{
				Slug: "david-axelrod", Name: "David Axelrod", Tag: valueobjects.TagColleague,
				Role:      "Former chief strategist, podcast host",
				Rationale: "Decades-long political partnership; still interviews him publicly",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelTwitter, Handle: "@davidaxelrod", Public: true},
				},
				Strength: 78, Mutuals: 40, Frequency: 6, DaysSinceActive: 25,
			},
			{
				Slug: "higher-ground", Name: "Higher Ground Productions", Tag: valueobjects.TagBusinessPartner,
				Role:      "Production company development office",
				Rationale: "Front door for film, podcast, and documentary pitches",
				Channels: []ChannelSeed{
					{Type: valueobjects.ChannelEmail, Handle: "development@higherground.example", Public: true},
				},
				Strength: 64, Mutuals: 8, Frequency: 12, DaysSinceActive: 10,
				ViaSlug:  "eric-schultz",
			},
		},
		Edges: []EdgeSeed{
			{From: "valerie-jarrett", To: "david-axelrod", Strength: 75},
			{From: "michelle-obama", To: "valerie-jarrett", Strength: 80},
		},
	}
}
