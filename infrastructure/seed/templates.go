package seed

import (
	"fmt"
	"math/rand"

	"accessengine-backend/domain/core/valueobjects"
)

// roleTemplate describes one placeholder staffer or contact in a generated
// circle. Titles stand in for people whose identity is not public record,
// which is why generated members carry role names instead of personal names.
type roleTemplate struct {
	Slug      string
	Title     string
	Tag       valueobjects.RelationshipTag
	Role      string
	Rationale string // fmt verb %s receives the celebrity's name
	Strength  int
	Mutuals   int
	Frequency int
	DaysSince int
	Channels  []channelTemplate
}

type channelTemplate struct {
	Type   valueobjects.ChannelType
	Local  string // email local part; phone numbers are generated
	Public bool
}

// circleTemplate is a category's member blueprint. Core[0] is the anchor
// staffer every circle keeps; Second is only reachable through that anchor.
type circleTemplate struct {
	Core   []roleTemplate
	Second roleTemplate
	Edges  []EdgeSeed // candidate edges, kept when both endpoints were picked
}

// generatedCircle expands a roster entry into a full circle. All randomness
// is seeded from the slug, so the same entry always yields the same circle.
func generatedCircle(entry rosterEntry) CircleSeed {
	r := rand.New(rand.NewSource(slugSeed(entry.Slug)))
	tpl := templatesFor(entry.Category)

	count := 5 + r.Intn(3)
	if count > len(tpl.Core) {
		count = len(tpl.Core)
	}

	members := make([]MemberSeed, 0, count+1)
	for _, role := range tpl.Core[:count] {
		members = append(members, buildMember(entry, role, r, ""))
	}
	if r.Intn(2) == 0 {
		members = append(members, buildMember(entry, tpl.Second, r, tpl.Core[0].Slug))
	}

	var edges []EdgeSeed
	for _, e := range tpl.Edges {
		if !hasMember(members, e.From) || !hasMember(members, e.To) {
			continue
		}
		edges = append(edges, EdgeSeed{From: e.From, To: e.To, Strength: jitter(r, e.Strength, 6)})
	}

	return CircleSeed{
		Slug:     entry.Slug,
		Name:     entry.Name,
		Category: entry.Category,
		Bio:      entry.Bio,
		Handle:   entry.Handle,
		Members:  members,
		Edges:    edges,
	}
}

func buildMember(entry rosterEntry, role roleTemplate, r *rand.Rand, via string) MemberSeed {
	m := MemberSeed{
		Slug:            role.Slug,
		Name:            role.Title,
		Tag:             role.Tag,
		Role:            role.Role,
		Rationale:       fmt.Sprintf(role.Rationale, entry.Name),
		Strength:        jitter(r, role.Strength, 4),
		Mutuals:         jitter(r, role.Mutuals, 3),
		Frequency:       jitter(r, role.Frequency, 8),
		DaysSinceActive: jitter(r, role.DaysSince, 4),
		ViaSlug:         via,
	}
	for _, c := range role.Channels {
		m.Channels = append(m.Channels, ChannelSeed{
			Type:   c.Type,
			Handle: channelHandle(entry, c, r),
			Public: c.Public,
		})
	}
	return m
}

func channelHandle(entry rosterEntry, c channelTemplate, r *rand.Rand) string {
	switch c.Type {
	case valueobjects.ChannelPhone:
		// 555-01xx is the reserved fictional exchange
		return fmt.Sprintf("+155501%02d", r.Intn(100))
	default:
		return fmt.Sprintf("%s@%s.example", c.Local, entry.Slug)
	}
}

func hasMember(members []MemberSeed, slug string) bool {
	for _, m := range members {
		if m.Slug == slug {
			return true
		}
	}
	return false
}

// jitter returns base +/- spread, clamped to the [0, 100] signal range.
func jitter(r *rand.Rand, base, spread int) int {
	v := base + r.Intn(2*spread+1) - spread
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func templatesFor(category valueobjects.Category) circleTemplate {
	switch category {
	case valueobjects.CategoryTech:
		return techTemplate
	case valueobjects.CategorySports:
		return sportsTemplate
	case valueobjects.CategoryMusic:
		return musicTemplate
	case valueobjects.CategoryFilm:
		return filmTemplate
	case valueobjects.CategoryPolitics:
		return politicsTemplate
	default:
		return otherTemplate
	}
}

var techTemplate = circleTemplate{
	Core: []roleTemplate{
		{
			Slug: "chief-of-staff", Title: "Chief of Staff", Tag: valueobjects.TagColleague,
			Role:      "Chief of staff",
			Rationale: "Runs %s's calendar and filters every inbound request before it lands.",
			Strength:  80, Mutuals: 24, Frequency: 88, DaysSince: 4,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "cos", Public: false}},
		},
		{
			Slug: "cofounder", Title: "Co-founder", Tag: valueobjects.TagBusinessPartner,
			Role:      "Co-founder",
			Rationale: "Built the company with %s from the first commit and still shares a whiteboard.",
			Strength:  88, Mutuals: 40, Frequency: 76, DaysSince: 6,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "founders", Public: false}},
		},
		{
			Slug: "comms-lead", Title: "Head of Communications", Tag: valueobjects.TagPublicist,
			Role:      "Head of communications",
			Rationale: "Clears every press request and public statement that carries %s's name.",
			Strength:  78, Mutuals: 18, Frequency: 70, DaysSince: 5,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "press", Public: true}},
		},
		{
			Slug: "lead-investor", Title: "Lead Investor", Tag: valueobjects.TagInvestor,
			Role:      "Board member and lead investor",
			Rationale: "Sits on the board; %s returns their calls the same day.",
			Strength:  74, Mutuals: 32, Frequency: 40, DaysSince: 12,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "board", Public: false}},
		},
		{
			Slug: "college-friend", Title: "College Roommate", Tag: valueobjects.TagCloseFriend,
			Role:      "Close friend since college",
			Rationale: "Knew %s long before the company existed and still gets the late-night texts.",
			Strength:  84, Mutuals: 15, Frequency: 55, DaysSince: 9,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "personal", Public: false}},
		},
		{
			Slug: "exec-assistant", Title: "Executive Assistant", Tag: valueobjects.TagColleague,
			Role:      "Executive assistant",
			Rationale: "Books every meeting that actually reaches %s.",
			Strength:  82, Mutuals: 12, Frequency: 92, DaysSince: 3,
			Channels: []channelTemplate{
				{Type: valueobjects.ChannelEmail, Local: "office", Public: false},
				{Type: valueobjects.ChannelPhone, Public: false},
			},
		},
		{
			Slug: "beat-reporter", Title: "Beat Reporter", Tag: valueobjects.TagMedia,
			Role:      "Reporter covering the company",
			Rationale: "Has interviewed %s on the record several times a year.",
			Strength:  54, Mutuals: 9, Frequency: 25, DaysSince: 40,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "tips", Public: true}},
		},
	},
	Second: roleTemplate{
		Slug: "deputy-cos", Title: "Deputy Chief of Staff", Tag: valueobjects.TagColleague,
		Role:      "Deputy chief of staff",
		Rationale: "Handles overflow scheduling when %s's chief of staff is traveling.",
		Strength:  62, Mutuals: 10, Frequency: 60, DaysSince: 7,
		Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "deputy", Public: false}},
	},
	Edges: []EdgeSeed{
		{From: "chief-of-staff", To: "exec-assistant", Strength: 70},
		{From: "cofounder", To: "lead-investor", Strength: 65},
	},
}

var sportsTemplate = circleTemplate{
	Core: []roleTemplate{
		{
			Slug: "agent", Title: "Lead Agent", Tag: valueobjects.TagAgent,
			Role:      "Lead agent",
			Rationale: "Negotiates every contract %s signs and controls commercial access.",
			Strength:  90, Mutuals: 28, Frequency: 82, DaysSince: 3,
			Channels: []channelTemplate{
				{Type: valueobjects.ChannelEmail, Local: "agent", Public: false},
				{Type: valueobjects.ChannelPhone, Public: false},
			},
		},
		{
			Slug: "business-manager", Title: "Business Manager", Tag: valueobjects.TagManager,
			Role:      "Business manager",
			Rationale: "Runs %s's off-field ventures and endorsement pipeline.",
			Strength:  86, Mutuals: 22, Frequency: 68, DaysSince: 5,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "mgmt", Public: false}},
		},
		{
			Slug: "publicist", Title: "Team Publicist", Tag: valueobjects.TagPublicist,
			Role:      "Publicist",
			Rationale: "Routes every media request that mentions %s.",
			Strength:  78, Mutuals: 16, Frequency: 62, DaysSince: 6,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "media", Public: true}},
		},
		{
			Slug: "trainer", Title: "Personal Trainer", Tag: valueobjects.TagColleague,
			Role:      "Personal trainer",
			Rationale: "Sees %s six mornings a week in season.",
			Strength:  80, Mutuals: 8, Frequency: 90, DaysSince: 2,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "training", Public: false}},
		},
		{
			Slug: "teammate", Title: "Longtime Teammate", Tag: valueobjects.TagCloseFriend,
			Role:      "Teammate and close friend",
			Rationale: "Shared a locker room with %s for the better part of a decade.",
			Strength:  84, Mutuals: 30, Frequency: 72, DaysSince: 4,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "teammate", Public: false}},
		},
		{
			Slug: "sibling", Title: "Sibling", Tag: valueobjects.TagFamily,
			Role:      "Sibling",
			Rationale: "Family first; %s runs big decisions past them before anyone else.",
			Strength:  90, Mutuals: 12, Frequency: 65, DaysSince: 5,
		},
		{
			Slug: "journalist", Title: "Sports Journalist", Tag: valueobjects.TagMedia,
			Role:      "Journalist on the beat",
			Rationale: "Breaks most of the news about %s and keeps a working relationship.",
			Strength:  56, Mutuals: 10, Frequency: 22, DaysSince: 35,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "desk", Public: true}},
		},
	},
	Second: roleTemplate{
		Slug: "agency-assistant", Title: "Agency Assistant", Tag: valueobjects.TagColleague,
		Role:      "Assistant at the agency",
		Rationale: "First reader of anything sent to %s's representation.",
		Strength:  58, Mutuals: 6, Frequency: 55, DaysSince: 8,
		Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "assist", Public: false}},
	},
	Edges: []EdgeSeed{
		{From: "agent", To: "business-manager", Strength: 72},
		{From: "business-manager", To: "publicist", Strength: 60},
	},
}

var musicTemplate = circleTemplate{
	Core: []roleTemplate{
		{
			Slug: "manager", Title: "Artist Manager", Tag: valueobjects.TagManager,
			Role:      "Artist manager",
			Rationale: "Has final say on what reaches %s and signs off on every booking.",
			Strength:  92, Mutuals: 26, Frequency: 86, DaysSince: 2,
			Channels: []channelTemplate{
				{Type: valueobjects.ChannelEmail, Local: "mgmt", Public: false},
				{Type: valueobjects.ChannelPhone, Public: false},
			},
		},
		{
			Slug: "publicist", Title: "Lead Publicist", Tag: valueobjects.TagPublicist,
			Role:      "Publicist",
			Rationale: "Every interview and red-carpet appearance for %s moves through them.",
			Strength:  84, Mutuals: 20, Frequency: 70, DaysSince: 4,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "press", Public: true}},
		},
		{
			Slug: "producer", Title: "Longtime Producer", Tag: valueobjects.TagCollaborator,
			Role:      "Producer and studio collaborator",
			Rationale: "Has production credits across most of %s's catalog.",
			Strength:  86, Mutuals: 24, Frequency: 58, DaysSince: 8,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "studio", Public: false}},
		},
		{
			Slug: "creative-director", Title: "Creative Director", Tag: valueobjects.TagCollaborator,
			Role:      "Creative director",
			Rationale: "Shapes the visuals for %s's tours and releases.",
			Strength:  76, Mutuals: 14, Frequency: 48, DaysSince: 10,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "creative", Public: false}},
		},
		{
			Slug: "parent", Title: "Parent", Tag: valueobjects.TagFamily,
			Role:      "Parent",
			Rationale: "%s's first phone call after every show.",
			Strength:  92, Mutuals: 10, Frequency: 75, DaysSince: 3,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "family", Public: false}},
		},
		{
			Slug: "opening-act", Title: "Opening Act", Tag: valueobjects.TagFriend,
			Role:      "Opening act and tour friend",
			Rationale: "Spent two tours on the same bus as %s.",
			Strength:  70, Mutuals: 18, Frequency: 40, DaysSince: 15,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "tour", Public: false}},
		},
		{
			Slug: "label-ar", Title: "Label A&R", Tag: valueobjects.TagColleague,
			Role:      "A&R at the label",
			Rationale: "The label's day-to-day line into %s's camp.",
			Strength:  66, Mutuals: 16, Frequency: 35, DaysSince: 14,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "ar", Public: true}},
		},
	},
	Second: roleTemplate{
		Slug: "day-to-day", Title: "Day-to-Day Manager", Tag: valueobjects.TagColleague,
		Role:      "Day-to-day manager",
		Rationale: "Handles logistics under %s's manager and answers fastest.",
		Strength:  64, Mutuals: 9, Frequency: 66, DaysSince: 5,
		Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "daytoday", Public: false}},
	},
	Edges: []EdgeSeed{
		{From: "manager", To: "publicist", Strength: 68},
		{From: "producer", To: "creative-director", Strength: 58},
	},
}

var filmTemplate = circleTemplate{
	Core: []roleTemplate{
		{
			Slug: "agent", Title: "Talent Agent", Tag: valueobjects.TagAgent,
			Role:      "Talent agent",
			Rationale: "Every script offer to %s crosses their desk first.",
			Strength:  90, Mutuals: 30, Frequency: 78, DaysSince: 3,
			Channels: []channelTemplate{
				{Type: valueobjects.ChannelEmail, Local: "agency", Public: false},
				{Type: valueobjects.ChannelPhone, Public: false},
			},
		},
		{
			Slug: "publicist", Title: "Personal Publicist", Tag: valueobjects.TagPublicist,
			Role:      "Personal publicist",
			Rationale: "Decides which interviews %s takes during a press cycle.",
			Strength:  86, Mutuals: 22, Frequency: 72, DaysSince: 4,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "pr", Public: true}},
		},
		{
			Slug: "costar", Title: "Frequent Co-star", Tag: valueobjects.TagCloseFriend,
			Role:      "Co-star and close friend",
			Rationale: "Three films with %s and a friendship that outlasted all of them.",
			Strength:  84, Mutuals: 26, Frequency: 45, DaysSince: 12,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "friend", Public: false}},
		},
		{
			Slug: "director", Title: "Collaborating Director", Tag: valueobjects.TagCollaborator,
			Role:      "Director and repeat collaborator",
			Rationale: "Keeps writing parts with %s in mind.",
			Strength:  78, Mutuals: 20, Frequency: 30, DaysSince: 20,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "production", Public: false}},
		},
		{
			Slug: "stylist", Title: "Stylist", Tag: valueobjects.TagCollaborator,
			Role:      "Stylist",
			Rationale: "Dresses %s for every premiere and campaign.",
			Strength:  74, Mutuals: 12, Frequency: 50, DaysSince: 7,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "studio", Public: false}},
		},
		{
			Slug: "sibling", Title: "Sibling", Tag: valueobjects.TagFamily,
			Role:      "Sibling",
			Rationale: "The one person %s trusts with an honest read on a script.",
			Strength:  90, Mutuals: 8, Frequency: 60, DaysSince: 6,
		},
		{
			Slug: "trade-reporter", Title: "Trade Reporter", Tag: valueobjects.TagMedia,
			Role:      "Reporter at a trade outlet",
			Rationale: "First call when %s attaches to a project.",
			Strength:  54, Mutuals: 11, Frequency: 18, DaysSince: 45,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "tips", Public: true}},
		},
	},
	Second: roleTemplate{
		Slug: "agency-coordinator", Title: "Agency Coordinator", Tag: valueobjects.TagColleague,
		Role:      "Coordinator at the agency",
		Rationale: "Schedules every meeting %s's agent sets up.",
		Strength:  56, Mutuals: 7, Frequency: 58, DaysSince: 6,
		Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "coord", Public: false}},
	},
	Edges: []EdgeSeed{
		{From: "agent", To: "publicist", Strength: 70},
		{From: "costar", To: "director", Strength: 55},
	},
}

var politicsTemplate = circleTemplate{
	Core: []roleTemplate{
		{
			Slug: "chief-of-staff", Title: "Chief of Staff", Tag: valueobjects.TagColleague,
			Role:      "Chief of staff",
			Rationale: "Controls %s's schedule and decides which meetings happen.",
			Strength:  86, Mutuals: 20, Frequency: 90, DaysSince: 2,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "cos", Public: false}},
		},
		{
			Slug: "comms-director", Title: "Communications Director", Tag: valueobjects.TagPublicist,
			Role:      "Communications director",
			Rationale: "Speaks for %s on the record and books every appearance.",
			Strength:  84, Mutuals: 18, Frequency: 80, DaysSince: 3,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "press", Public: true}},
		},
		{
			Slug: "spouse", Title: "Spouse", Tag: valueobjects.TagFamily,
			Role:      "Spouse",
			Rationale: "%s's closest advisor in every sense.",
			Strength:  95, Mutuals: 14, Frequency: 95, DaysSince: 1,
		},
		{
			Slug: "senior-advisor", Title: "Senior Advisor", Tag: valueobjects.TagColleague,
			Role:      "Senior advisor",
			Rationale: "Has advised %s through every campaign cycle.",
			Strength:  80, Mutuals: 24, Frequency: 65, DaysSince: 5,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "advisor", Public: false}},
		},
		{
			Slug: "major-donor", Title: "Major Donor", Tag: valueobjects.TagInvestor,
			Role:      "Major donor and fundraiser",
			Rationale: "Hosts %s's largest fundraisers and always gets a callback.",
			Strength:  64, Mutuals: 16, Frequency: 20, DaysSince: 25,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "finance", Public: false}},
		},
		{
			Slug: "law-school-friend", Title: "Law School Friend", Tag: valueobjects.TagCloseFriend,
			Role:      "Friend since law school",
			Rationale: "Knew %s before politics and stayed out of it.",
			Strength:  82, Mutuals: 9, Frequency: 35, DaysSince: 18,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "personal", Public: false}},
		},
		{
			Slug: "correspondent", Title: "Political Correspondent", Tag: valueobjects.TagMedia,
			Role:      "Correspondent on the beat",
			Rationale: "Has covered %s since their first race.",
			Strength:  55, Mutuals: 12, Frequency: 28, DaysSince: 30,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "newsdesk", Public: true}},
		},
	},
	Second: roleTemplate{
		Slug: "scheduler", Title: "Director of Scheduling", Tag: valueobjects.TagColleague,
		Role:      "Director of scheduling",
		Rationale: "Owns the calendar %s's chief of staff approves.",
		Strength:  60, Mutuals: 8, Frequency: 70, DaysSince: 4,
		Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "scheduling", Public: true}},
	},
	Edges: []EdgeSeed{
		{From: "chief-of-staff", To: "comms-director", Strength: 75},
		{From: "senior-advisor", To: "major-donor", Strength: 50},
	},
}

var otherTemplate = circleTemplate{
	Core: []roleTemplate{
		{
			Slug: "manager", Title: "Talent Manager", Tag: valueobjects.TagManager,
			Role:      "Talent manager",
			Rationale: "Negotiates every brand deal and appearance for %s.",
			Strength:  90, Mutuals: 22, Frequency: 84, DaysSince: 2,
			Channels: []channelTemplate{
				{Type: valueobjects.ChannelEmail, Local: "mgmt", Public: false},
				{Type: valueobjects.ChannelPhone, Public: false},
			},
		},
		{
			Slug: "lead-editor", Title: "Lead Editor", Tag: valueobjects.TagCollaborator,
			Role:      "Lead editor",
			Rationale: "Cuts everything %s publishes and knows the upload schedule cold.",
			Strength:  82, Mutuals: 10, Frequency: 88, DaysSince: 2,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "edit", Public: false}},
		},
		{
			Slug: "brand-lead", Title: "Brand Partnerships Lead", Tag: valueobjects.TagColleague,
			Role:      "Brand partnerships lead",
			Rationale: "Fields every sponsorship inquiry aimed at %s.",
			Strength:  72, Mutuals: 14, Frequency: 60, DaysSince: 5,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "partnerships", Public: true}},
		},
		{
			Slug: "best-friend", Title: "Childhood Best Friend", Tag: valueobjects.TagCloseFriend,
			Role:      "Best friend and frequent collaborator",
			Rationale: "Appears in half of %s's videos and predates all of it.",
			Strength:  86, Mutuals: 20, Frequency: 70, DaysSince: 3,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "friend", Public: false}},
		},
		{
			Slug: "sibling", Title: "Sibling", Tag: valueobjects.TagFamily,
			Role:      "Sibling",
			Rationale: "Family, and often behind the camera for %s.",
			Strength:  88, Mutuals: 11, Frequency: 62, DaysSince: 4,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "family", Public: false}},
		},
		{
			Slug: "showrunner", Title: "Showrunner", Tag: valueobjects.TagCollaborator,
			Role:      "Showrunner and producer",
			Rationale: "Produces %s's flagship series end to end.",
			Strength:  78, Mutuals: 13, Frequency: 74, DaysSince: 4,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "production", Public: false}},
		},
		{
			Slug: "culture-reporter", Title: "Culture Reporter", Tag: valueobjects.TagMedia,
			Role:      "Reporter covering creators",
			Rationale: "Profiles %s whenever the numbers spike.",
			Strength:  52, Mutuals: 8, Frequency: 15, DaysSince: 50,
			Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "culture", Public: true}},
		},
	},
	Second: roleTemplate{
		Slug: "coordinator", Title: "Management Coordinator", Tag: valueobjects.TagColleague,
		Role:      "Coordinator at the management company",
		Rationale: "Triage for everything sent to %s's manager.",
		Strength:  56, Mutuals: 6, Frequency: 52, DaysSince: 7,
		Channels: []channelTemplate{{Type: valueobjects.ChannelEmail, Local: "coord", Public: false}},
	},
	Edges: []EdgeSeed{
		{From: "manager", To: "brand-lead", Strength: 66},
		{From: "lead-editor", To: "showrunner", Strength: 60},
	},
}
