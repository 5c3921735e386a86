package generator

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew", "Nancy",
	"Anthony", "Sandra", "Mark", "Ashley", "Steven", "Emily", "Andrew", "Olivia",
	"Kenji", "Aiko", "Mateo", "Sofia", "Amara", "Kwame", "Priya", "Arjun",
	"Lucas", "Chloe", "Noah", "Zoe", "Ethan", "Maya", "Liam", "Nora",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
	"Tanaka", "Nakamura", "Okafor", "Mensah", "Patel", "Sharma", "Nguyen", "Kowalski",
	"Schmidt", "Rossi", "Dubois", "Larsen", "O'Brien", "Murphy", "Kim", "Chen",
}

// Architectural styles a property may be built in.
var propertyStyles = []string{
	"Modern", "Colonial", "Victorian", "Craftsman", "Mediterranean",
	"Ranch", "Contemporary", "Farmhouse", "Tudor", "Cape Cod",
	"Mid-Century Modern", "Bungalow", "Georgian", "Spanish Revival",
}

// Amenity catalog; a listing selects 4 to 8 of these.
var amenityCatalog = []string{
	"Hardwood floors throughout",
	"Granite kitchen countertops",
	"Stainless steel appliances",
	"Walk-in closets",
	"Central air conditioning",
	"Private backyard with patio",
	"Two-car attached garage",
	"Energy-efficient windows",
	"Open-concept living area",
	"Fireplace in the living room",
	"In-unit laundry",
	"Smart home thermostat",
	"Finished basement",
	"Rooftop terrace",
	"Home office nook",
}

var nameAdjectives = []string{
	"Elegant", "Charming", "Spacious", "Sunny", "Serene", "Stunning", "Cozy",
	"Grand", "Tranquil", "Luminous", "Stylish", "Refined", "Inviting", "Classic",
}

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Pine", "Elm", "Willow", "Birch", "Magnolia",
	"Lakeview", "Highland", "Sunset", "Riverside", "Park", "Hillcrest", "Meadow",
	"Chestnut", "Harbor", "Orchard", "Summit", "Greenwood",
}

var streetSuffixes = []string{
	"Street", "Avenue", "Boulevard", "Lane", "Drive", "Court", "Road", "Way", "Place", "Terrace",
}

type cityState struct {
	City  string
	State string
}

var cities = []cityState{
	{"Austin", "TX"}, {"Denver", "CO"}, {"Portland", "OR"}, {"Seattle", "WA"},
	{"Nashville", "TN"}, {"Charlotte", "NC"}, {"Phoenix", "AZ"}, {"San Diego", "CA"},
	{"Raleigh", "NC"}, {"Minneapolis", "MN"}, {"Columbus", "OH"}, {"Tampa", "FL"},
	{"Boise", "ID"}, {"Salt Lake City", "UT"}, {"Madison", "WI"}, {"Savannah", "GA"},
}

var parkNames = []string{
	"Riverside Park", "Willow Creek Park", "Heritage Green", "Lakeshore Commons",
	"Maple Grove Park", "Cedar Hollow Preserve", "Sunset Ridge Park", "Oak Meadow Park",
}

var shoppingCenters = []string{
	"Westfield Plaza", "Town Square Mall", "Harbor Point Shops", "Parkside Marketplace",
	"The Galleria", "Crossroads Center", "Summit Ridge Village", "Lakeside Promenade",
}

var leadInParagraphs = []string{
	"Welcome home to a residence that balances everyday comfort with thoughtful design. Natural light pours through generous windows and every room has been finished with care.",
	"Set on a quiet, tree-lined street, this property offers a rare combination of privacy and convenience. Mature landscaping frames the home from the moment you arrive.",
	"From the welcoming entry to the bright gathering spaces, this home was made for both relaxed weekdays and lively weekends with friends and family.",
	"Recently refreshed from top to bottom, the interior pairs clean lines with warm textures. The layout flows naturally from room to room.",
	"This well-kept home has been loved by its current owners and it shows. Fresh paint, updated fixtures and a sensible floor plan make it move-in ready.",
	"Tucked into one of the most sought-after neighborhoods in the area, the property puts schools, dining and recreation within easy reach.",
}

var closingParagraphs = []string{
	"Outside, the grounds offer plenty of room to garden, play or simply unwind at the end of the day.",
	"Storage is abundant throughout, and the mechanical systems have been well maintained.",
	"Every detail has been considered so you can settle in and start enjoying the home right away.",
	"Homes like this rarely stay available for long in this neighborhood.",
	"The flexible floor plan adapts easily to a growing household, guests or a dedicated workspace.",
}

var trailingParagraphs = []string{
	"Schedule a private tour today and see everything this home has to offer.",
	"Contact us to arrange a viewing before this opportunity is gone.",
	"Come experience the lifestyle this property makes possible. Showings are available by appointment.",
	"Reach out today for more details or to book your visit.",
}
