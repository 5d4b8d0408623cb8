package lore

import (
	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/theme"
)

func thomasWorld() World {
	return World{
		Persona: theme.Thomas,
		Characters: []Character{
			{ID: "thomas", Name: "Thomas Shelby", Role: "Leader of the Peaky Blinders", Initials: "TS", Quote: `"I already know what I'm going to do."`, Aliases: []string{"Tommy", "OBE", "The Devil"}, X: 780, Y: 420},
			{ID: "arthur", Name: "Arthur Shelby", Role: "Enforcer", Initials: "AS", Quote: `"BY ORDER OF THE PEAKY BLINDERS!"`, Aliases: []string{"The Mad Dog"}, X: 380, Y: 200},
			{ID: "polly", Name: "Polly Gray", Role: "Treasurer & Matriarch", Initials: "PG", Quote: `"When you're dead already, you're free."`, Aliases: []string{"Aunt Pol", "Elizabeth"}, X: 1180, Y: 200},
			{ID: "john", Name: "John Shelby", Role: "Soldier", Initials: "JS", Quote: `"Who the hell are you?"`, Aliases: []string{"Johnny Boy"}, X: 250, Y: 500},
			{ID: "ada", Name: "Ada Shelby", Role: "Diplomat", Initials: "AD", Quote: `"I am not just a Shelby."`, Aliases: []string{"Ada Thorne"}, X: 1300, Y: 500},
			{ID: "alfie", Name: "Alfie Solomons", Role: "Ally / Rival", Initials: "AF", Quote: `"Big fucks small."`, Aliases: []string{"The Wandering Jew"}, X: 180, Y: 780},
			{ID: "grace", Name: "Grace Shelby", Role: "Wife & Spy", Initials: "GS", Quote: `"You have no idea what I am."`, Aliases: []string{"Grace Burgess"}, X: 780, Y: 120},
			{ID: "luca", Name: "Luca Changretta", Role: "Nemesis", Initials: "LC", Quote: `"Vendetta."`, Aliases: []string{"The Italian"}, X: 1350, Y: 800},
			{ID: "campbell", Name: "Major Campbell", Role: "Antagonist", Initials: "MC", Quote: `"I am the law."`, Aliases: []string{"Inspector Campbell"}, X: 780, Y: 800},
			{ID: "mosley", Name: "Oswald Mosley", Role: "Political Foe", Initials: "OM", Quote: `"The future belongs to the fascist."`, Aliases: []string{"Sir Oswald"}, X: 500, Y: 780},
		},
		Relationships: []graph.Edge{
			{From: "thomas", To: "arthur", Kind: graph.Family, Label: "Brothers, bound by blood and war"},
			{From: "thomas", To: "polly", Kind: graph.Family, Label: "Aunt, his counsel and conscience"},
			{From: "thomas", To: "john", Kind: graph.Family, Label: "Brothers, loyal soldier"},
			{From: "thomas", To: "ada", Kind: graph.Family, Label: "Sister, independent spirit"},
			{From: "thomas", To: "grace", Kind: graph.Ally, Label: "Wife, his only vulnerability"},
			{From: "thomas", To: "alfie", Kind: graph.Neutral, Label: "Unpredictable alliance, mutual respect"},
			{From: "thomas", To: "luca", Kind: graph.Enemy, Label: "Vendetta, blood feud"},
			{From: "thomas", To: "campbell", Kind: graph.Enemy, Label: "Obsessive pursuer"},
			{From: "thomas", To: "mosley", Kind: graph.Enemy, Label: "Political enemy, fascist threat"},
			{From: "arthur", To: "john", Kind: graph.Family, Label: "Brothers"},
			{From: "polly", To: "ada", Kind: graph.Family, Label: "Aunt and niece"},
			{From: "luca", To: "alfie", Kind: graph.Neutral, Label: "Italian-Jewish tensions"},
		},
		Territories: []Territory{
			{ID: "1", Name: "Shelby HQ, Watery Lane", Type: "safehouse", Influence: InfluenceHigh, Value: 15800,
				Description: "The Shelby family residence and war council room.",
				Lore:        "Number 6 Watery Lane. Where it all began. The heart of the Shelby empire, guarded by razor blades and blood oaths. Every order Thomas gives echoes from these walls.",
				Personnel:   "Thomas Shelby", Threat: 15, Revenue: []int{8200, 9100, 11500, 13200, 14800, 15800}, X: 300, Y: 196},
			{ID: "2", Name: "The Garrison Pub", Type: "pub", Influence: InfluenceHigh, Value: 4200,
				Description: "The Peaky Blinders' public house. Front for smuggling ops.",
				Lore:        "The snug at the Garrison is where deals are made and throats are cut. Harry runs the bar, Arthur runs the crowd. On a Friday night, the blood on the floor could be from a fight or a transaction.",
				Personnel:   "Arthur Shelby", Threat: 30, Revenue: []int{3200, 3500, 3800, 4000, 3900, 4200}, X: 400, Y: 140},
			{ID: "3", Name: "Small Heath Distillery", Type: "distillery", Influence: InfluenceHigh, Value: 25000,
				Description: "Primary production facility for premium spirits.",
				Lore:        "Hidden behind a scrap metal yard, the distillery runs 24 hours. The copper stills were smuggled from Ireland by Polly herself. The whiskey here is pure, which is more than you can say about the men who make it.",
				Personnel:   "Polly Gray", Threat: 20, Revenue: []int{18000, 19500, 21000, 22500, 24000, 25000}, X: 480, Y: 280},
			{ID: "4", Name: "Charlie's Yard", Type: "warehouse", Influence: InfluenceMedium, Value: 8900,
				Description: "Canal-side warehouse for contraband storage.",
				Lore:        "Charlie Strong's boatyard sits on the cut. Every crate that comes through Birmingham passes under his watchful eye. The canal is how the Shelbys move what the police can't see.",
				Personnel:   "Charlie Strong", Threat: 45, Revenue: []int{6500, 7200, 7800, 8100, 8500, 8900}, X: 250, Y: 308},
			{ID: "5", Name: "BSA Factory Arms Cache", Type: "warehouse", Influence: InfluenceMedium, Value: 3200,
				Description: "Stolen arms hidden within the BSA factory grounds.",
				Lore:        "After the Great War, the British Government stored 25,000 rifles at the BSA. Thomas had other plans for them. The missing crate from 1919 is the reason Inspector Campbell came to Small Heath.",
				Personnel:   "John Shelby", Threat: 65, Revenue: []int{2800, 3000, 3100, 3200, 3100, 3200}, X: 420, Y: 100},
			{ID: "6", Name: "Camden Town, Solomons' Bakery", Type: "distillery", Influence: InfluenceMedium, Value: 12000,
				Description: "Alfie Solomons' rum distillery disguised as a bakery.",
				Lore:        `"It's bread, mate. We bake bread." Behind the flour-dusted counters lies the largest illegal rum operation in London. The alliance with Alfie is profitable but volatile.`,
				Personnel:   "Alfie Solomons", Threat: 55, Revenue: []int{8000, 9000, 10000, 10500, 11000, 12000}, X: 680, Y: 325},
			{ID: "7", Name: "London Docks, Import Hub", Type: "warehouse", Influence: InfluenceLow, Value: 7800,
				Description: "Overseas import hub. Sabini territory, contested.",
				Lore:        `The docks are where empires meet. Crates marked "machine parts" contain Lewis guns. Barrels marked "tea" contain opium. The customs officer on the night shift works for three different gangs.`,
				Personnel:   "Aberama Gold", Threat: 80, Revenue: []int{5000, 5500, 6200, 6800, 7200, 7800}, X: 780, Y: 268},
		},
		Routes: []Route{
			{ID: "r1", From: "3", To: "2", Cargo: "whiskey", Label: "Irish Whiskey, 200 bottles weekly", Status: "active"},
			{ID: "r2", From: "1", To: "4", Cargo: "goods", Label: "Cash & Documents, Watery Lane to Yard", Status: "active"},
			{ID: "r3", From: "5", To: "4", Cargo: "weapons", Label: "BSA Rifles, 50 crates", Status: "active"},
			{ID: "r4", From: "4", To: "7", Cargo: "whiskey", Label: "Export Whiskey, Birmingham to Docks", Status: "active"},
			{ID: "r5", From: "6", To: "7", Cargo: "whiskey", Label: "Solomons Rum, Camden to Docks", Status: "disrupted"},
			{ID: "r6", From: "1", To: "3", Cargo: "opium", Label: "Opium, Medicinal Supply", Status: "active"},
		},
		Events: []Event{
			{ID: "e1", Text: "Arthur secured the Garrison for the week.", Type: "success", When: "2 hours ago"},
			{ID: "e2", Text: "Sabini forces spotted near London Docks.", Type: "danger", When: "4 hours ago"},
			{ID: "e3", Text: "New whiskey shipment arrived at Charlie's Yard.", Type: "info", When: "6 hours ago"},
			{ID: "e4", Text: "Polly increased distillery output by 12%.", Type: "success", When: "1 day ago"},
			{ID: "e5", Text: "Inspector Campbell seen in Small Heath.", Type: "warning", When: "1 day ago"},
			{ID: "e6", Text: "Alfie Solomons demands renegotiation of terms.", Type: "warning", When: "2 days ago"},
			{ID: "e7", Text: "John completed arms transfer to BSA cache.", Type: "success", When: "3 days ago"},
			{ID: "e8", Text: "Export route to New York confirmed by Alfie.", Type: "info", When: "4 days ago"},
			{ID: "e9", Text: "Billy Kimber's men retreating from Worcester.", Type: "success", When: "5 days ago"},
			{ID: "e10", Text: "Aberama Gold reports dock workers on strike.", Type: "danger", When: "1 week ago"},
		},
		Eras: []Era{
			{Year: "1919", Title: "Return from the Tunnels", Season: "Case #001", Mood: "war",
				Description: "Emerging from the mud of France, Thomas Shelby returns to a broken city.",
				Quote:       `"I came back from France with nothing but a plan."`,
				Detail:      "The claykickers survived the subterranean nightmare of Gallipoli. Thomas returns completely stripped of fear, ready to elevate his family from the soot and smog of Small Heath by any means necessary."},
			{Year: "1919", Title: "The BSA Heist", Season: "Case #002", Mood: "victory",
				Description: "A misdirected shipment of crown weapons changes everything.",
				Quote:       `"Those guns are my leverage."`,
				Detail:      "A crate of Lewis machine guns destined for Libya inadvertently falls into Shelby hands. Instead of returning them, Thomas weaponizes the government's panic to bend Inspector Campbell and the local police to his will."},
			{Year: "1920", Title: "The Cheltenham Coup", Season: "Case #003", Mood: "victory",
				Description: "Taking the tracks from Billy Kimber.",
				Detail:      "By fixing the races and engineering a high-stakes turf war against the self-proclaimed King of the Racecourses, the Peaky Blinders secure legal betting licenses and establish their absolute supremacy in the Midlands."},
			{Year: "1921", Title: "Marching South", Season: "Case #004", Mood: "alliance",
				Description: "The empire pushes into the smoke-filled clubs of London.",
				Quote:       `"Alfie, you cross me and I'll kill you and your dog."`,
				Detail:      "Small Heath is no longer enough. The Shelbys violently insert themselves into the fractured London underworld, forging a treacherous, highly volatile alliance with Camden Town's eccentric kingpin, Alfie Solomons."},
			{Year: "1922", Title: "Shattered Grace", Season: "Case #005", Mood: "loss",
				Description: "The agonizing cost of power.",
				Quote:       `"I have no one."`,
				Detail:      "At the height of their newfound legitimate wealth, an Italian bullet meant for Thomas strikes his wife, Grace. Her death fractures his soul permanently, ushering in an era of cold, absolute ruthlessness."},
			{Year: "1924", Title: "The Black Hand", Season: "Case #006", Mood: "war",
				Description: "A vendetta carried across the Atlantic.",
				Quote:       `"I'm going to find out who sent you, and then I'm going to kill them."`,
				Detail:      "Luca Changretta arrives from New York with a cadre of professional mafia assassins. John Shelby is executed on his doorstep, forcing the fractured family to retreat to Small Heath for a brutal war of survival."},
			{Year: "1926", Title: "A Seat of Power", Season: "Case #007", Mood: "victory",
				Description: "The gangster becomes the politician.",
				Detail:      "Swapping the razor cap for the parliamentary benches, Thomas mounts a successful campaign to become the Labour MP for Birmingham South. He quickly discovers the halls of Westminster are far more deceitful than back-alley brawls."},
			{Year: "1929", Title: "The Fascist Threat", Season: "Case #008", Mood: "betrayal",
				Description: "An ideology more dangerous than any rival gang.",
				Quote:       `"There are darker forces at work now."`,
				Detail:      "Sir Oswald Mosley's hypnotic fascism grips Britain. Thomas attempts to assassinate him from within, only to be utterly betrayed by an unknown informant, leading to devastating losses and his own psychological unraveling."},
			{Year: "1934", Title: "The Final Reckoning", Season: "Case #009", Mood: "victory",
				Description: "Facing the ghosts of a lifetime of violence.",
				Quote:       `"I'm a man who drinks smoke and eats fire. You'll never defeat me."`,
				Detail:      "Believing he is terminally ill, Thomas destroys his enemies, secures the next generation's future, and sets his own funeral pyre alight, only to walk away anew, finally free from the curses of the past."},
		},
		Quotes: []string{
			"I don't pay for suits. My suits are on the house or the house burns down.",
			"Everyone's a whore, Grace. We just sell different parts of ourselves.",
			"I have no limitations. I am whatever I need to be.",
			"Big fucks small.",
			"In the bleak midwinter...",
		},
		Roster: []Profile{
			{ID: "thomas", Name: "Thomas Shelby", Role: "Leader of the Peaky Blinders", Status: "Alive", Initials: "TS", Loyalty: 70, Danger: 95, Intelligence: 98,
				Quote:     "Everyone's a whore, Grace. We just sell different parts of ourselves.",
				Backstory: "A decorated war hero turned crime lord. Thomas returned from France with tunnel vision, literally and figuratively. He transformed a small Birmingham gang into a political empire, sacrificing everything human about himself along the way. His mind is a weapon, but his heart is a battlefield."},
			{ID: "arthur", Name: "Arthur Shelby", Role: "Enforcer & Eldest Brother", Status: "Alive", Initials: "AS", Loyalty: 95, Danger: 90, Intelligence: 40,
				Quote:     "I'm the oldest! I'm the head of this family!",
				Backstory: "Arthur is the muscle and the heart of the Shelby family. Prone to violent episodes and emotional breakdowns, he struggles between his savage nature and his desire for redemption. His loyalty to Tommy is absolute, even when it destroys him."},
			{ID: "john", Name: "John Shelby", Role: "Soldier & Third Brother", Status: "Dead", Initials: "JS", Loyalty: 90, Danger: 75, Intelligence: 50,
				Quote:     "Just tell me who to shoot, Tom.",
				Backstory: "The most straightforward of the Shelby brothers. John was a loyal soldier who asked few questions and fired without hesitation. His death at the hands of the Changretta family changed the Shelbys forever."},
			{ID: "polly", Name: "Polly Gray", Role: "Treasurer & Matriarch", Status: "Dead", Initials: "PG", Loyalty: 85, Danger: 65, Intelligence: 92,
				Quote:     "We women have to stick together. Men, they come and go.",
				Backstory: "The true spine of the Shelby empire. Polly kept the business running while the boys were at war and never let them forget it. A spiritual woman with razor-sharp instincts, she was the only person who could challenge Thomas and survive."},
			{ID: "ada", Name: "Ada Shelby", Role: "Diplomat & Sister", Status: "Alive", Initials: "AD", Loyalty: 60, Danger: 30, Intelligence: 85,
				Quote:     "I am not just a Shelby. I am my own woman.",
				Backstory: "The most independent Shelby. Ada rejected the family business but could never fully escape it. Educated, principled, and fiercely protective of her children, she became the family's unlikely diplomat in London's political circles."},
			{ID: "alfie", Name: "Alfie Solomons", Role: "Ally & Wildcard", Status: "Unknown", Initials: "AF", Loyalty: 25, Danger: 88, Intelligence: 90,
				Quote:     "Big fucks small. And the big, it doesn't even know the small's name.",
				Backstory: "Leader of the Jewish gang in Camden Town. Alfie is unpredictable, theatrical, and devastatingly intelligent. His relationship with Thomas oscillates between genuine respect and calculated betrayal. No one ever truly knows whose side Alfie is on."},
		},
	}
}
