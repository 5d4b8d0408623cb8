package lore

import (
	"github.com/DaanHessen/smallheath/internal/graph"
	"github.com/DaanHessen/smallheath/internal/theme"
)

func lucaWorld() World {
	return World{
		Persona: theme.Luca,
		Characters: []Character{
			{ID: "luca", Name: "Luca Changretta", Role: "Don of the Changretta Family", Initials: "LC", Quote: `"Vendetta."`, Aliases: []string{"The Italian", "Don Luca"}, X: 780, Y: 420},
			{ID: "angel", Name: "Angel Changretta", Role: "Brother & Soldier", Initials: "AC", Quote: `"For the family."`, Aliases: []string{"Little Angel"}, X: 450, Y: 180},
			{ID: "vicente", Name: "Vicente Changretta", Role: "Father & Patriarch", Initials: "VC", Quote: `"An eye for an eye."`, Aliases: []string{"The Old Don"}, X: 1100, Y: 180},
			{ID: "audrey", Name: "Audrey Changretta", Role: "Mother", Initials: "AU", Quote: `"Never forgive. Never forget."`, Aliases: []string{"Mamma Changretta"}, X: 780, Y: 100},
			{ID: "thomas", Name: "Thomas Shelby", Role: "Primary Target", Initials: "TS", Quote: `"I already know what I'm going to do."`, Aliases: []string{"Tommy", "OBE"}, X: 200, Y: 700},
			{ID: "arthur", Name: "Arthur Shelby", Role: "Target", Initials: "AS", Quote: `"BY ORDER OF THE PEAKY BLINDERS!"`, Aliases: []string{"The Mad Dog"}, X: 520, Y: 750},
			{ID: "polly", Name: "Polly Gray", Role: "Target", Initials: "PG", Quote: `"When you're dead already, you're free."`, Aliases: []string{"Aunt Pol"}, X: 850, Y: 780},
			{ID: "alfie", Name: "Alfie Solomons", Role: "Hired Gun", Initials: "AF", Quote: `"Big fucks small."`, Aliases: []string{"The Wandering Jew"}, X: 1280, Y: 550},
			{ID: "matteo", Name: "Matteo", Role: "Loyal Soldier", Initials: "MT", Quote: `"It is done."`, Aliases: []string{"The Professional"}, X: 300, Y: 430},
		},
		Relationships: []graph.Edge{
			{From: "luca", To: "angel", Kind: graph.Family, Label: "Brother, killed by Shelbys"},
			{From: "luca", To: "vicente", Kind: graph.Family, Label: "Father, murdered, vendetta begins"},
			{From: "luca", To: "audrey", Kind: graph.Family, Label: "Mother, demands vengeance"},
			{From: "luca", To: "thomas", Kind: graph.Enemy, Label: "Primary target, blood debt"},
			{From: "luca", To: "arthur", Kind: graph.Enemy, Label: "Target, Shelby brother"},
			{From: "luca", To: "polly", Kind: graph.Enemy, Label: "Target, Shelby matriarch"},
			{From: "luca", To: "alfie", Kind: graph.Neutral, Label: "Hired to betray Shelbys"},
			{From: "luca", To: "matteo", Kind: graph.Ally, Label: "Loyal soldier from New York"},
			{From: "angel", To: "vicente", Kind: graph.Family, Label: "Father and son"},
		},
		Territories: []Territory{
			{ID: "1", Name: "Little Italy HQ", Type: "safehouse", Influence: InfluenceHigh, Value: 12000,
				Description: "Base of operations in New York.",
				Lore:        "The Changretta family parlour. Behind the restaurant kitchen, Luca plots the vendetta. Every wall has a photograph of a Shelby with a red X drawn over their face.",
				Personnel:   "Luca Changretta", Threat: 10, Revenue: []int{10000, 10500, 11000, 11200, 11800, 12000}, X: 300, Y: 196},
			{ID: "2", Name: "Boston Harbor", Type: "warehouse", Influence: InfluenceHigh, Value: 45000,
				Description: "Main import hub for prohibition liquor.",
				Lore:        "The harbor is controlled by the Changretta family through a network of corrupt dock workers and customs officials. Crates arrive weekly from Sicily and Ireland.",
				Personnel:   "Matteo", Threat: 25, Revenue: []int{35000, 38000, 40000, 42000, 44000, 45000}, X: 400, Y: 140},
			{ID: "3", Name: "Brooklyn Docks", Type: "distillery", Influence: InfluenceMedium, Value: 22000,
				Description: "Secondary distribution point.",
				Lore:        "The Brooklyn operation runs under the guise of a fishing company. The stench of fish covers the smell of grappa distillation.",
				Personnel:   "Angel Changretta", Threat: 40, Revenue: []int{15000, 17000, 18500, 20000, 21000, 22000}, X: 480, Y: 280},
			{ID: "4", Name: "Changretta Estate", Type: "safehouse", Influence: InfluenceHigh, Value: 80000,
				Description: "Family residence and fortress.",
				Lore:        "A sprawling estate on Long Island. Armed guards at every entrance. The wine cellar hides enough weapons to start a small war, which is exactly the plan.",
				Personnel:   "Audrey Changretta", Threat: 5, Revenue: []int{70000, 72000, 74000, 76000, 78000, 80000}, X: 250, Y: 308},
			{ID: "5", Name: "Birmingham Railyard", Type: "warehouse", Influence: InfluenceLow, Value: 5000,
				Description: "Encroaching territory for shipments into Shelby turf.",
				Lore:        "A small foothold in enemy territory. The railyard workers are paid to look the other way when Changretta men arrive at night.",
				Personnel:   "Matteo", Threat: 90, Revenue: []int{1000, 2000, 2500, 3500, 4000, 5000}, X: 420, Y: 100},
			{ID: "6", Name: "London Hotel", Type: "pub", Influence: InfluenceLow, Value: 3000,
				Description: "Meeting point for Sabini alliance.",
				Lore:        "The hotel lobby serves as neutral ground. Luca meets Sabini here to discuss their shared enemy. The waiter is on three payrolls.",
				Personnel:   "Vicente Changretta", Threat: 70, Revenue: []int{1500, 1800, 2000, 2200, 2500, 3000}, X: 680, Y: 325},
		},
		Routes: []Route{
			{ID: "lr1", From: "2", To: "1", Cargo: "whiskey", Label: "Prohibition Liquor, Boston to NY", Status: "active"},
			{ID: "lr2", From: "1", To: "3", Cargo: "goods", Label: "Distribution Orders, HQ to Brooklyn", Status: "active"},
			{ID: "lr3", From: "4", To: "1", Cargo: "weapons", Label: "Weapons Cache, Estate to HQ", Status: "active"},
			{ID: "lr4", From: "1", To: "5", Cargo: "weapons", Label: "Thompson Guns, NY to Birmingham", Status: "disrupted"},
			{ID: "lr5", From: "6", To: "5", Cargo: "goods", Label: "Intelligence, London to Birmingham", Status: "active"},
		},
		Events: []Event{
			{ID: "le1", Text: "Luca arrived in Birmingham. Vendetta begins.", Type: "danger", When: "1 hour ago"},
			{ID: "le2", Text: "Matteo secured Thompson guns at the docks.", Type: "success", When: "3 hours ago"},
			{ID: "le3", Text: "Sabini intel confirms Arthur Shelby's location.", Type: "warning", When: "6 hours ago"},
			{ID: "le4", Text: "John Shelby eliminated. Christmas Day.", Type: "danger", When: "1 day ago"},
			{ID: "le5", Text: "New York sends 15 soldiers via Liverpool.", Type: "info", When: "2 days ago"},
			{ID: "le6", Text: "Changretta safehouses in Nechells secured.", Type: "success", When: "3 days ago"},
			{ID: "le7", Text: "Audrey demands accelerated vendetta timeline.", Type: "warning", When: "4 days ago"},
			{ID: "le8", Text: "Kitchen spy placed near Shelby properties.", Type: "info", When: "5 days ago"},
		},
		Eras: []Era{
			{Year: "1900", Title: "Sons of Little Italy", Season: "Ledger I", Mood: "alliance",
				Description: "Raised amidst the soot of industrial Birmingham.",
				Detail:      "Born into a tight-knit Italian immigrant enclave in the heart of Birmingham. Luca Changretta learns early that blood and loyalty are the only currencies that matter in a foreign, hostile city."},
			{Year: "1910", Title: "The Neapolitan Code", Season: "Ledger II", Mood: "victory",
				Description: "Vicente builds an underground empire behind legitimate storefronts.",
				Detail:      "While outsiders see charming Italian restaurants and tailors, the Changrettas steadily build an undeniable underground operation specializing in protection, extortion, and fierce territorial control."},
			{Year: "1916", Title: "Sent to the New World", Season: "Ledger III", Mood: "alliance",
				Description: "Across the Atlantic to learn the true nature of power.",
				Detail:      "To avoid the slaughter of the Great War, Vicente ships his promising son Luca off to relatives in New York City. There, Luca is forged in the fires of the American La Cosa Nostra, learning unparalleled discipline and brutality."},
			{Year: "1921", Title: "The Blood of a Brother", Season: "Ledger IV", Mood: "loss",
				Description: "The first horrific casualty of the Shelby dispute.",
				Quote:       `"My brother's blood cries from the ground."`,
				Detail:      "Angel Changretta makes the fatal mistake of threatening Shelby interests. Under Thomas's orders, the Peaky Blinders execute Angel, violently drawing the irreversible line between the two families."},
			{Year: "1922", Title: "A Patriarch Betrayed", Season: "Ledger V", Mood: "loss",
				Description: "The final, unforgivable insult.",
				Quote:       `"They killed my father in his own home."`,
				Detail:      "Trying to avenge his son, Vicente Changretta fails to assassinate Thomas Shelby. Instead, Vicente is captured and brutally murdered by Arthur. The Italian code now mandates complete and utter eradication of the Shelby line."},
			{Year: "1924", Title: "The Black Hand Arrives", Season: "Ledger VI", Mood: "war",
				Description: "Stepping off the boat with professional killers.",
				Quote:       `"Vendetta. It's the only thing I understand."`,
				Detail:      "Luca sails into Liverpool carrying the dreaded Black Hand. He doesn't bring street thugs; he brings disciplined, lethal mafia soldiers from Brooklyn, completely changing the rules of engagement in Birmingham."},
			{Year: "1924", Title: "Christmas Day Execution", Season: "Ledger VII", Mood: "victory",
				Description: "The first Shelby falls to the Mafia.",
				Quote:       `"One down."`,
				Detail:      "Luca strikes with terrifying precision. His men ambush and gun down John Shelby outside his rural estate on Christmas morning, delivering a paralyzing shock to the previously untouchable Peaky Blinders."},
			{Year: "1924", Title: "The Trap Closes", Season: "Ledger VIII", Mood: "loss",
				Description: "Betrayed by his own confidence and American rivals, Luca's vendetta meets its brutal end.",
				Detail:      "Believing he has Thomas cornered in a basement distillery, Luca discovers too late that Thomas has bought off his men using rival gang contacts in Chicago. Luca dies violently on the distillery floor, ending the vendetta forever. His quest for revenge consumed him, just as it consumed his family."},
		},
		Quotes: []string{
			"Vendetta. It's the only thing I understand.",
			"My father told me... never forget.",
			"The Changretta name means something in this country.",
			"First I will kill the brothers. Then I will kill Tommy Shelby.",
			"Arrivederci.",
		},
		Roster: []Profile{
			{ID: "luca", Name: "Luca Changretta", Role: "Don of the Changretta Family", Status: "Dead", Initials: "LC", Loyalty: 80, Danger: 90, Intelligence: 85,
				Quote:     "Vendetta. It's the only thing I understand.",
				Backstory: "Raised in Birmingham, hardened in New York. Luca returned to England with one purpose: to destroy every Shelby for the deaths of his father and brother. Methodical, patient, and driven by an unshakeable code of honor."},
			{ID: "angel", Name: "Angel Changretta", Role: "Eldest Brother", Status: "Dead", Initials: "AC", Loyalty: 85, Danger: 60, Intelligence: 45,
				Quote:     "Leave the Shelbys alone, they said. I should have listened.",
				Backstory: "Angel was the elder Changretta brother whose reckless pursuit of Lizzie Stark drew the ire of Thomas Shelby. His death was the first domino in a chain of violence that would consume both families."},
			{ID: "vicente", Name: "Vicente Changretta", Role: "Patriarch", Status: "Dead", Initials: "VC", Loyalty: 90, Danger: 55, Intelligence: 70,
				Quote:     "A man protects his family. That is the only law.",
				Backstory: "The respected patriarch of the Changretta family. Vicente tried to maintain peace in Birmingham while running a legitimate restaurant front. His assassination by the Peaky Blinders was the act that sent Luca on his path of vengeance."},
			{ID: "audrey", Name: "Audrey Changretta", Role: "Matriarch", Status: "Alive", Initials: "AU", Loyalty: 95, Danger: 20, Intelligence: 75,
				Quote:     "You must avenge your father. It is the only way.",
				Backstory: "A woman of quiet steel. After losing her husband and eldest son to the Shelbys, Audrey demanded vengeance from her surviving son Luca. She is the moral compass, or lack thereof, behind the vendetta."},
			{ID: "matteo", Name: "Matteo", Role: "Soldier & Bodyguard", Status: "Dead", Initials: "MT", Loyalty: 100, Danger: 80, Intelligence: 40,
				Quote:     "I follow Luca. That is enough.",
				Backstory: "A loyal Mafia soldier who accompanied Luca from New York. Matteo was the muscle behind the vendetta operations. Quiet, efficient, and completely devoted to the Changretta cause."},
		},
	}
}
