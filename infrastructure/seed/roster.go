package seed

import (
	"accessengine-backend/domain/core/valueobjects"
)

// rosterEntry is one non-featured celebrity; their circle is generated
// from the category's role templates
type rosterEntry struct {
	Slug     string
	Name     string
	Category valueobjects.Category
	Handle   string
	Bio      string
}

// roster lists every generated celebrity. Featured names are excluded;
// they carry hand-modeled circles instead.
func roster() []rosterEntry {
	entries := []rosterEntry{}
	entries = append(entries, techRoster()...)
	entries = append(entries, sportsRoster()...)
	entries = append(entries, musicRoster()...)
	entries = append(entries, filmRoster()...)
	entries = append(entries, politicsRoster()...)
	entries = append(entries, otherRoster()...)
	return entries
}

func techRoster() []rosterEntry {
	return withCategory(valueobjects.CategoryTech, []rosterEntry{
		{Slug: "sam-altman", Name: "Sam Altman", Handle: "@sama", Bio: "CEO of OpenAI, former president of Y Combinator."},
		{Slug: "mark-zuckerberg", Name: "Mark Zuckerberg", Handle: "@finkd", Bio: "Founder and CEO of Meta."},
		{Slug: "jeff-bezos", Name: "Jeff Bezos", Handle: "@JeffBezos", Bio: "Founder of Amazon and Blue Origin."},
		{Slug: "tim-cook", Name: "Tim Cook", Handle: "@tim_cook", Bio: "CEO of Apple."},
		{Slug: "satya-nadella", Name: "Satya Nadella", Handle: "@satyanadella", Bio: "Chairman and CEO of Microsoft."},
		{Slug: "sundar-pichai", Name: "Sundar Pichai", Handle: "@sundarpichai", Bio: "CEO of Google and Alphabet."},
		{Slug: "jensen-huang", Name: "Jensen Huang", Handle: "@nvidia", Bio: "Founder and CEO of NVIDIA."},
		{Slug: "marc-andreessen", Name: "Marc Andreessen", Handle: "@pmarca", Bio: "Co-founder of a16z, creator of the first mainstream web browser."},
		{Slug: "naval-ravikant", Name: "Naval Ravikant", Handle: "@naval", Bio: "AngelList founder, investor, and philosopher of leverage."},
		{Slug: "patrick-collison", Name: "Patrick Collison", Handle: "@patrickc", Bio: "Co-founder and CEO of Stripe."},
		{Slug: "john-collison", Name: "John Collison", Handle: "@collision", Bio: "Co-founder and president of Stripe."},
		{Slug: "brian-chesky", Name: "Brian Chesky", Handle: "@bchesky", Bio: "Co-founder and CEO of Airbnb."},
		{Slug: "whitney-wolfe-herd", Name: "Whitney Wolfe Herd", Handle: "@WhitWolfeHerd", Bio: "Founder of Bumble, youngest woman to take a company public."},
		{Slug: "palmer-luckey", Name: "Palmer Luckey", Handle: "@PalmerLuckey", Bio: "Founder of Oculus and Anduril."},
		{Slug: "alexandr-wang", Name: "Alexandr Wang", Handle: "@alexandr_wang", Bio: "Founder of Scale AI."},
		{Slug: "demis-hassabis", Name: "Demis Hassabis", Handle: "@demishassabis", Bio: "Nobel laureate, co-founder and CEO of DeepMind."},
		{Slug: "reid-hoffman", Name: "Reid Hoffman", Handle: "@reidhoffman", Bio: "Co-founder of LinkedIn, partner at Greylock."},
		{Slug: "vitalik-buterin", Name: "Vitalik Buterin", Handle: "@VitalikButerin", Bio: "Creator of Ethereum."},
		{Slug: "garry-tan", Name: "Garry Tan", Handle: "@garrytan", Bio: "President and CEO of Y Combinator."},
		{Slug: "paul-graham", Name: "Paul Graham", Handle: "@paulg", Bio: "Y Combinator co-founder and essayist."},
		{Slug: "melanie-perkins", Name: "Melanie Perkins", Handle: "@MelanieCanva", Bio: "Co-founder and CEO of Canva."},
		{Slug: "daniel-ek", Name: "Daniel Ek", Handle: "@eldsjal", Bio: "Founder and CEO of Spotify."},
		{Slug: "drew-houston", Name: "Drew Houston", Handle: "@drewhouston", Bio: "Co-founder and CEO of Dropbox."},
	})
}

func sportsRoster() []rosterEntry {
	return withCategory(valueobjects.CategorySports, []rosterEntry{
		{Slug: "serena-williams", Name: "Serena Williams", Handle: "@serenawilliams", Bio: "23-time Grand Slam champion, founder of Serena Ventures."},
		{Slug: "cristiano-ronaldo", Name: "Cristiano Ronaldo", Handle: "@Cristiano", Bio: "Five-time Ballon d'Or winner, most-followed person on Instagram."},
		{Slug: "lionel-messi", Name: "Lionel Messi", Handle: "@leomessi", Bio: "Eight-time Ballon d'Or winner, World Cup champion."},
		{Slug: "stephen-curry", Name: "Stephen Curry", Handle: "@StephenCurry30", Bio: "Four-time NBA champion, greatest shooter in league history."},
		{Slug: "patrick-mahomes", Name: "Patrick Mahomes", Handle: "@PatrickMahomes", Bio: "Three-time Super Bowl MVP quarterback."},
		{Slug: "simone-biles", Name: "Simone Biles", Handle: "@Simone_Biles", Bio: "Most decorated gymnast in history."},
		{Slug: "usain-bolt", Name: "Usain Bolt", Handle: "@usainbolt", Bio: "Eight-time Olympic gold medalist, fastest human ever timed."},
		{Slug: "tom-brady", Name: "Tom Brady", Handle: "@TomBrady", Bio: "Seven-time Super Bowl champion, broadcaster and investor."},
		{Slug: "shaquille-oneal", Name: "Shaquille O'Neal", Handle: "@SHAQ", Bio: "Four-time NBA champion turned broadcaster and pitchman."},
		{Slug: "roger-federer", Name: "Roger Federer", Handle: "@rogerfederer", Bio: "20-time Grand Slam champion, co-owner of On."},
		{Slug: "rafael-nadal", Name: "Rafael Nadal", Handle: "@RafaelNadal", Bio: "22-time Grand Slam champion, runs an academy in Mallorca."},
		{Slug: "novak-djokovic", Name: "Novak Djokovic", Handle: "@DjokerNole", Bio: "Men's record holder for Grand Slam singles titles."},
		{Slug: "tiger-woods", Name: "Tiger Woods", Handle: "@TigerWoods", Bio: "15-time major champion."},
		{Slug: "lewis-hamilton", Name: "Lewis Hamilton", Handle: "@LewisHamilton", Bio: "Seven-time Formula 1 world champion."},
		{Slug: "max-verstappen", Name: "Max Verstappen", Handle: "@Max33Verstappen", Bio: "Four-time Formula 1 world champion."},
		{Slug: "kylian-mbappe", Name: "Kylian Mbappé", Handle: "@KMbappe", Bio: "World Cup champion striker."},
		{Slug: "erling-haaland", Name: "Erling Haaland", Handle: "@ErlingHaaland", Bio: "Record-breaking Premier League striker."},
		{Slug: "caitlin-clark", Name: "Caitlin Clark", Handle: "@CaitlinClark22", Bio: "NCAA all-time leading scorer, WNBA phenomenon."},
		{Slug: "shohei-ohtani", Name: "Shohei Ohtani", Handle: "@shoheiohtani", Bio: "Two-way MLB superstar with the largest contract in sports history."},
		{Slug: "conor-mcgregor", Name: "Conor McGregor", Handle: "@TheNotoriousMMA", Bio: "Two-division UFC champion and entrepreneur."},
		{Slug: "megan-rapinoe", Name: "Megan Rapinoe", Handle: "@mPinoe", Bio: "Two-time World Cup champion and equal-pay advocate."},
		{Slug: "giannis-antetokounmpo", Name: "Giannis Antetokounmpo", Handle: "@Giannis_An34", Bio: "Two-time NBA MVP, champion with Milwaukee."},
		{Slug: "coco-gauff", Name: "Coco Gauff", Handle: "@CocoGauff", Bio: "Grand Slam champion, youngest top-ranked American since Serena."},
	})
}

func musicRoster() []rosterEntry {
	return withCategory(valueobjects.CategoryMusic, []rosterEntry{
		{Slug: "beyonce", Name: "Beyoncé", Handle: "@Beyonce", Bio: "Most-awarded artist in Grammy history, runs Parkwood Entertainment."},
		{Slug: "drake", Name: "Drake", Handle: "@Drake", Bio: "Most-streamed rapper of the decade, founder of OVO."},
		{Slug: "bad-bunny", Name: "Bad Bunny", Handle: "@sanbenito", Bio: "Global face of Latin trap and reggaeton."},
		{Slug: "billie-eilish", Name: "Billie Eilish", Handle: "@billieeilish", Bio: "Multi-Grammy and double-Oscar winner, records with her brother Finneas."},
		{Slug: "the-weeknd", Name: "The Weeknd", Handle: "@theweeknd", Bio: "Abel Tesfaye, one of the most-streamed artists on earth."},
		{Slug: "ariana-grande", Name: "Ariana Grande", Handle: "@ArianaGrande", Bio: "Pop superstar and actor."},
		{Slug: "ed-sheeran", Name: "Ed Sheeran", Handle: "@edsheeran", Bio: "Singer-songwriter with two of the best-selling albums ever."},
		{Slug: "olivia-rodrigo", Name: "Olivia Rodrigo", Handle: "@oliviarodrigo", Bio: "Grammy-winning singer-songwriter."},
		{Slug: "dua-lipa", Name: "Dua Lipa", Handle: "@DUALIPA", Bio: "Pop star and founder of the Service95 media company."},
		{Slug: "kendrick-lamar", Name: "Kendrick Lamar", Handle: "@kendricklamar", Bio: "Pulitzer Prize-winning rapper, co-founder of pgLang."},
		{Slug: "rihanna", Name: "Rihanna", Handle: "@rihanna", Bio: "Singer and billionaire founder of Fenty Beauty."},
		{Slug: "post-malone", Name: "Post Malone", Handle: "@PostMalone", Bio: "Genre-blending diamond-certified artist."},
		{Slug: "travis-scott", Name: "Travis Scott", Handle: "@trvisXX", Bio: "Rapper and producer behind the Cactus Jack brand."},
		{Slug: "sza", Name: "SZA", Handle: "@sza", Bio: "Grammy-winning R&B artist."},
		{Slug: "doja-cat", Name: "Doja Cat", Handle: "@DojaCat", Bio: "Rapper and singer with viral-era dominance."},
		{Slug: "harry-styles", Name: "Harry Styles", Handle: "@Harry_Styles", Bio: "Grammy-winning solo artist and actor."},
		{Slug: "bruno-mars", Name: "Bruno Mars", Handle: "@BrunoMars", Bio: "15-time Grammy winner, half of Silk Sonic."},
		{Slug: "adele", Name: "Adele", Handle: "@Adele", Bio: "16-time Grammy winner with three diamond albums."},
		{Slug: "lady-gaga", Name: "Lady Gaga", Handle: "@ladygaga", Bio: "Oscar and Grammy winner across music and film."},
		{Slug: "karol-g", Name: "Karol G", Handle: "@karolg", Bio: "Leading woman in Latin music, stadium headliner."},
		{Slug: "zach-bryan", Name: "Zach Bryan", Handle: "@zachlanebryan", Bio: "Self-produced country star who broke out from active Navy duty."},
		{Slug: "sabrina-carpenter", Name: "Sabrina Carpenter", Handle: "@SabrinaAnnLynn", Bio: "Pop star with back-to-back global hits."},
		{Slug: "chappell-roan", Name: "Chappell Roan", Handle: "@ChappellRoan", Bio: "Breakout pop artist and festival phenomenon."},
	})
}

func filmRoster() []rosterEntry {
	return withCategory(valueobjects.CategoryFilm, []rosterEntry{
		{Slug: "tom-cruise", Name: "Tom Cruise", Handle: "@TomCruise", Bio: "Star and producer of the Mission: Impossible franchise."},
		{Slug: "margot-robbie", Name: "Margot Robbie", Handle: "@margotrobbie", Bio: "Actor and producer behind LuckyChap."},
		{Slug: "ryan-reynolds", Name: "Ryan Reynolds", Handle: "@VancityReynolds", Bio: "Actor and serial brand owner, co-owner of Wrexham AFC."},
		{Slug: "dwayne-johnson", Name: "Dwayne Johnson", Handle: "@TheRock", Bio: "Highest-paid actor, founder of Seven Bucks."},
		{Slug: "timothee-chalamet", Name: "Timothée Chalamet", Handle: "@RealChalamet", Bio: "Leading man of Dune and Wonka."},
		{Slug: "florence-pugh", Name: "Florence Pugh", Handle: "@Florence_Pugh", Bio: "Oscar-nominated actor."},
		{Slug: "leonardo-dicaprio", Name: "Leonardo DiCaprio", Handle: "@LeoDiCaprio", Bio: "Oscar winner and climate philanthropist."},
		{Slug: "tom-holland", Name: "Tom Holland", Handle: "@TomHolland1996", Bio: "Spider-Man lead and West End headliner."},
		{Slug: "jenna-ortega", Name: "Jenna Ortega", Handle: "@jennaortega", Bio: "Star and producer of Wednesday."},
		{Slug: "pedro-pascal", Name: "Pedro Pascal", Handle: "@PedroPascal1", Bio: "Lead of The Last of Us and The Mandalorian."},
		{Slug: "keanu-reeves", Name: "Keanu Reeves", Handle: "@KeanuReeves", Bio: "Star of The Matrix and John Wick franchises."},
		{Slug: "scarlett-johansson", Name: "Scarlett Johansson", Handle: "@ScarlettJo", Bio: "Highest-grossing lead actress in film history."},
		{Slug: "chris-hemsworth", Name: "Chris Hemsworth", Handle: "@chrishemsworth", Bio: "Thor of the Marvel universe, founder of Centr."},
		{Slug: "emma-stone", Name: "Emma Stone", Handle: "@EmmaStoneOffcl", Bio: "Two-time Oscar winner and producer."},
		{Slug: "ryan-gosling", Name: "Ryan Gosling", Handle: "@RyanGosling", Bio: "Oscar-nominated actor."},
		{Slug: "cillian-murphy", Name: "Cillian Murphy", Handle: "@CillianMurphyOf", Bio: "Oscar winner for Oppenheimer."},
		{Slug: "anya-taylor-joy", Name: "Anya Taylor-Joy", Handle: "@anyataylorjoy", Bio: "Star of The Queen's Gambit and Furiosa."},
		{Slug: "denzel-washington", Name: "Denzel Washington", Handle: "@DenzelWN", Bio: "Two-time Oscar winner and director."},
		{Slug: "ana-de-armas", Name: "Ana de Armas", Handle: "@AnadeArmas", Bio: "Oscar-nominated actor and action lead."},
		{Slug: "glen-powell", Name: "Glen Powell", Handle: "@glenpowell", Bio: "Leading man of Top Gun: Maverick and Twisters."},
		{Slug: "sydney-sweeney", Name: "Sydney Sweeney", Handle: "@sydney_sweeney", Bio: "Actor and producer behind Fifty-Fifty Films."},
		{Slug: "austin-butler", Name: "Austin Butler", Handle: "@austinbutler", Bio: "Oscar-nominated star of Elvis."},
		{Slug: "greta-gerwig", Name: "Greta Gerwig", Handle: "@GretaGerwig", Bio: "Director of Barbie, Little Women, and Lady Bird."},
	})
}

func politicsRoster() []rosterEntry {
	return withCategory(valueobjects.CategoryPolitics, []rosterEntry{
		{Slug: "michelle-obama", Name: "Michelle Obama", Handle: "@MichelleObama", Bio: "Former First Lady, author, and producer."},
		{Slug: "bernie-sanders", Name: "Bernie Sanders", Handle: "@BernieSanders", Bio: "U.S. senator from Vermont."},
		{Slug: "alexandria-ocasio-cortez", Name: "Alexandria Ocasio-Cortez", Handle: "@AOC", Bio: "U.S. representative from New York."},
		{Slug: "gavin-newsom", Name: "Gavin Newsom", Handle: "@GavinNewsom", Bio: "Governor of California."},
		{Slug: "pete-buttigieg", Name: "Pete Buttigieg", Handle: "@PeteButtigieg", Bio: "Former U.S. transportation secretary."},
		{Slug: "gretchen-whitmer", Name: "Gretchen Whitmer", Handle: "@gretchenwhitmer", Bio: "Governor of Michigan."},
		{Slug: "cory-booker", Name: "Cory Booker", Handle: "@CoryBooker", Bio: "U.S. senator from New Jersey."},
		{Slug: "justin-trudeau", Name: "Justin Trudeau", Handle: "@JustinTrudeau", Bio: "Former prime minister of Canada."},
		{Slug: "emmanuel-macron", Name: "Emmanuel Macron", Handle: "@EmmanuelMacron", Bio: "President of France."},
		{Slug: "jacinda-ardern", Name: "Jacinda Ardern", Handle: "@jacindaardern", Bio: "Former prime minister of New Zealand."},
		{Slug: "kamala-harris", Name: "Kamala Harris", Handle: "@KamalaHarris", Bio: "Former vice president of the United States."},
		{Slug: "mitt-romney", Name: "Mitt Romney", Handle: "@MittRomney", Bio: "Former U.S. senator and presidential nominee."},
		{Slug: "nikki-haley", Name: "Nikki Haley", Handle: "@NikkiHaley", Bio: "Former U.N. ambassador and governor of South Carolina."},
		{Slug: "john-fetterman", Name: "John Fetterman", Handle: "@JohnFetterman", Bio: "U.S. senator from Pennsylvania."},
		{Slug: "wes-moore", Name: "Wes Moore", Handle: "@iamwesmoore", Bio: "Governor of Maryland."},
		{Slug: "raphael-warnock", Name: "Raphael Warnock", Handle: "@ReverendWarnock", Bio: "U.S. senator from Georgia."},
		{Slug: "ro-khanna", Name: "Ro Khanna", Handle: "@RoKhanna", Bio: "U.S. representative for Silicon Valley."},
		{Slug: "katie-porter", Name: "Katie Porter", Handle: "@katieporteroc", Bio: "Former U.S. representative known for whiteboard hearings."},
		{Slug: "andy-beshear", Name: "Andy Beshear", Handle: "@AndyBeshearKY", Bio: "Governor of Kentucky."},
	})
}

func otherRoster() []rosterEntry {
	return withCategory(valueobjects.CategoryOther, []rosterEntry{
		{Slug: "oprah-winfrey", Name: "Oprah Winfrey", Handle: "@Oprah", Bio: "Media mogul, founder of OWN and Harpo."},
		{Slug: "kim-kardashian", Name: "Kim Kardashian", Handle: "@KimKardashian", Bio: "Founder of SKIMS, reality TV pioneer."},
		{Slug: "kylie-jenner", Name: "Kylie Jenner", Handle: "@KylieJenner", Bio: "Founder of Kylie Cosmetics."},
		{Slug: "emma-chamberlain", Name: "Emma Chamberlain", Handle: "@emmachamberlain", Bio: "Creator and founder of Chamberlain Coffee."},
		{Slug: "joe-rogan", Name: "Joe Rogan", Handle: "@joerogan", Bio: "Host of the biggest podcast in the world."},
		{Slug: "trevor-noah", Name: "Trevor Noah", Handle: "@Trevornoah", Bio: "Comedian and former Daily Show host."},
		{Slug: "jimmy-fallon", Name: "Jimmy Fallon", Handle: "@jimmyfallon", Bio: "Host of The Tonight Show."},
		{Slug: "pewdiepie", Name: "PewDiePie", Handle: "@pewdiepie", Bio: "Felix Kjellberg, YouTube's original megastar."},
		{Slug: "pokimane", Name: "Pokimane", Handle: "@pokimanelol", Bio: "Top streamer and co-founder of Myth Talent."},
		{Slug: "logan-paul", Name: "Logan Paul", Handle: "@LoganPaul", Bio: "Creator, boxer, and PRIME co-founder."},
		{Slug: "ksi", Name: "KSI", Handle: "@KSI", Bio: "Creator, rapper, boxer, and PRIME co-founder."},
		{Slug: "charli-damelio", Name: "Charli D'Amelio", Handle: "@charlidamelio", Bio: "TikTok's defining dance creator."},
		{Slug: "addison-rae", Name: "Addison Rae", Handle: "@whoisaddison", Bio: "Creator turned pop artist and actor."},
		{Slug: "gordon-ramsay", Name: "Gordon Ramsay", Handle: "@GordonRamsay", Bio: "Chef with a global restaurant and TV empire."},
		{Slug: "david-attenborough", Name: "David Attenborough", Handle: "@AttenboroughTV", Bio: "Natural history broadcaster for seven decades."},
		{Slug: "neil-degrasse-tyson", Name: "Neil deGrasse Tyson", Handle: "@neiltyson", Bio: "Astrophysicist and science communicator."},
		{Slug: "bill-nye", Name: "Bill Nye", Handle: "@BillNye", Bio: "The Science Guy, CEO of The Planetary Society."},
		{Slug: "malala-yousafzai", Name: "Malala Yousafzai", Handle: "@Malala", Bio: "Nobel Peace Prize laureate and education activist."},
		{Slug: "greta-thunberg", Name: "Greta Thunberg", Handle: "@GretaThunberg", Bio: "Climate activist who started the school strikes."},
		{Slug: "marques-brownlee", Name: "Marques Brownlee", Handle: "@MKBHD", Bio: "The best technology reviewer on the planet."},
		{Slug: "casey-neistat", Name: "Casey Neistat", Handle: "@Casey", Bio: "Filmmaker who defined the YouTube vlog."},
		{Slug: "kai-cenat", Name: "Kai Cenat", Handle: "@KaiCenat", Bio: "Most-subscribed streamer on Twitch."},
		{Slug: "ishowspeed", Name: "IShowSpeed", Handle: "@ishowspeedsui", Bio: "Streamer known for globe-trotting live marathons."},
		{Slug: "zach-king", Name: "Zach King", Handle: "@ZachKing", Bio: "Illusionist filmmaker with record-breaking short videos."},
	})
}

func withCategory(category valueobjects.Category, entries []rosterEntry) []rosterEntry {
	for i := range entries {
		entries[i].Category = category
	}
	return entries
}
