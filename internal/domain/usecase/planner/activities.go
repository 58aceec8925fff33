package planner

import (
	"strings"

	"weather-planner/internal/domain/entity"
)

// catalog maps category -> location key -> activities
type catalog map[entity.Category]map[string][]string

// locationKeys is the lookup order used when a location name is not itself a key
var locationKeys = []string{
	"new york", "los angeles", "chicago", "houston", "miami",
	"seattle", "san francisco", "denver", "truckee", "donner lake",
}

var indoorActivities = catalog{
	entity.CategoryMuseums: {
		"new york":      {"Metropolitan Museum of Art", "Museum of Modern Art (MoMA)", "American Museum of Natural History"},
		"los angeles":   {"Getty Center", "Los Angeles County Museum of Art", "The Broad"},
		"chicago":       {"Art Institute of Chicago", "Field Museum", "Museum of Science and Industry"},
		"houston":       {"Museum of Fine Arts", "Houston Museum of Natural Science", "Space Center Houston"},
		"miami":         {"Pérez Art Museum", "Vizcaya Museum and Gardens", "Phillip and Patricia Frost Museum of Science"},
		"seattle":       {"Museum of Pop Culture", "Chihuly Garden and Glass", "Seattle Art Museum"},
		"san francisco": {"de Young Museum", "California Academy of Sciences", "Exploratorium"},
		"denver":        {"Denver Art Museum", "Denver Museum of Nature & Science", "History Colorado Center"},
		"truckee":       {"Donner Memorial State Park Visitor Center", "Old Jail Museum", "Truckee Railroad Museum"},
		"donner lake":   {"Donner Memorial State Park Visitor Center", "KidZone Museum"},
	},
	entity.CategoryEntertainment: {
		"new york":      {"Broadway shows", "Comedy Cellar", "Escape rooms in Midtown"},
		"los angeles":   {"The Magic Castle", "Universal CityWalk", "Dinner theaters in Hollywood"},
		"chicago":       {"The Second City comedy", "Chicago Theatre shows", "CIBC Theatre performances"},
		"houston":       {"Space Center Houston", "Downtown Aquarium", "Escape rooms in Houston"},
		"miami":         {"Adrienne Arsht Center shows", "Coconut Grove Playhouse", "Frost Science Museum"},
		"seattle":       {"Pacific Science Center", "Seattle Aquarium", "Unexpected Productions Improv"},
		"san francisco": {"Escape rooms in SF", "Marrakech Magic Theater", "Exploratorium After Dark"},
		"denver":        {"Denver Center for the Performing Arts", "Forney Museum of Transportation", "Denver Botanic Gardens"},
		"truckee":       {"KidZone Museum", "Crystal Bay Casino (nearby)", "Movie theater in Truckee"},
		"donner lake":   {"Indoor recreation at Truckee Community Recreation Center", "Northstar California Resort activities"},
	},
	entity.CategoryDining: {
		"new york":      {"Fine dining in Manhattan", "Ethnic cuisine in Queens", "Famous delis and bakeries"},
		"los angeles":   {"Celebrity restaurants in Beverly Hills", "Food halls in Downtown LA", "Ethnic cuisine in Koreatown"},
		"chicago":       {"Deep dish pizza spots", "Fine dining in the Loop", "Ethnic restaurants in various neighborhoods"},
		"houston":       {"Tex-Mex restaurants", "Gulf Coast seafood", "Upscale dining in Uptown"},
		"miami":         {"Cuban restaurants in Little Havana", "Seafood in Miami Beach", "Fine dining in Brickell"},
		"seattle":       {"Seafood at Pike Place Market", "Coffee shops throughout city", "Asian cuisine in International District"},
		"san francisco": {"Seafood at Fisherman's Wharf", "Fine dining in SoMa", "Authentic dim sum in Chinatown"},
		"denver":        {"Steakhouses in Downtown", "Craft breweries with food", "Union Station food hall"},
		"truckee":       {"Moody's Bistro", "Pianeta Ristorante", "Jax at the Tracks", "Cottonwood Restaurant"},
		"donner lake":   {"Donner Lake Kitchen", "Nearby restaurants in Truckee"},
	},
	entity.CategoryShopping: {
		"new york":      {"5th Avenue boutiques", "SoHo shopping district", "Chelsea Market"},
		"los angeles":   {"Rodeo Drive in Beverly Hills", "The Grove", "Melrose Avenue shops"},
		"chicago":       {"Magnificent Mile", "Water Tower Place", "State Street shopping"},
		"houston":       {"The Galleria", "Highland Village", "River Oaks District"},
		"miami":         {"Bal Harbour Shops", "Dolphin Mall", "Lincoln Road Mall"},
		"seattle":       {"Pike Place Market shops", "Pacific Place", "University Village"},
		"san francisco": {"Union Square shops", "Westfield San Francisco Centre", "Hayes Valley boutiques"},
		"denver":        {"16th Street Mall", "Cherry Creek Shopping Center", "Larimer Square shops"},
		"truckee":       {"Historic Downtown Truckee shops", "Truckee Mercantile", "Bespoke Truckee"},
		"donner lake":   {"Shops in nearby Truckee", "Donner Lake Gift Shop"},
	},
}

var outdoorActivities = catalog{
	entity.CategoryParks: {
		"new york":      {"Central Park", "The High Line", "Brooklyn Bridge Park"},
		"los angeles":   {"Griffith Park", "Grand Park", "Will Rogers State Historic Park"},
		"chicago":       {"Millennium Park", "Grant Park", "Lincoln Park"},
		"houston":       {"Memorial Park", "Hermann Park", "Buffalo Bayou Park"},
		"miami":         {"South Pointe Park", "Bayfront Park", "Tropical Park"},
		"seattle":       {"Discovery Park", "Gas Works Park", "Kerry Park"},
		"san francisco": {"Golden Gate Park", "Dolores Park", "The Presidio"},
		"denver":        {"City Park", "Washington Park", "Cheesman Park"},
		"truckee":       {"Donner Memorial State Park", "Truckee River Regional Park", "Truckee Bike Park"},
		"donner lake":   {"Donner Memorial State Park", "Coldstream Canyon", "Donner Lake Memorial State Beach"},
	},
	entity.CategoryHikes: {
		"new york":      {"Fort Tryon Park trails", "Inwood Hill Park paths", "Van Cortlandt Park hiking"},
		"los angeles":   {"Runyon Canyon", "Griffith Park trails", "Topanga State Park hikes"},
		"chicago":       {"North Shore Channel Trail", "Lakefront Trail", "North Branch Trail"},
		"houston":       {"Memorial Park trails", "Buffalo Bayou Park trails", "Terry Hershey Park"},
		"miami":         {"Oleta River State Park trails", "Matheson Hammock Park paths", "Bill Baggs Cape trails"},
		"seattle":       {"Discovery Park Loop Trail", "Washington Park Arboretum", "Seward Park trails"},
		"san francisco": {"Lands End Trail", "Twin Peaks hike", "Mount Sutro trails"},
		"denver":        {"Red Rocks Trail", "Cherry Creek Trail", "Green Mountain Trail"},
		"truckee":       {"Pacific Crest Trail sections", "Donner Peak trail", "Emigrant Trail"},
		"donner lake":   {"Donner Lake Rim Trail", "Mount Judah Loop Trail", "Summit Lake Trail"},
	},
	entity.CategoryAttractions: {
		"new york":      {"Statue of Liberty", "Empire State Building observation deck", "Top of the Rock"},
		"los angeles":   {"Hollywood Sign hike", "Venice Beach Boardwalk", "Santa Monica Pier"},
		"chicago":       {"Navy Pier", "Buckingham Fountain", "360 Chicago observation deck"},
		"houston":       {"Gerald D. Hines Waterwall Park", "James Turrell Skyspace", "Market Square Park"},
		"miami":         {"Wynwood Walls", "Art Deco Historic District", "Bayside Marketplace"},
		"seattle":       {"Space Needle", "Pike Place Market", "Seattle Great Wheel"},
		"san francisco": {"Golden Gate Bridge", "Alcatraz Island", "Fisherman's Wharf"},
		"denver":        {"Red Rocks Amphitheatre", "Colorado State Capitol", "Union Station"},
		"truckee":       {"Historic Downtown Truckee", "Donner Summit Bridge", "Donner Pass"},
		"donner lake":   {"Donner Lake Vista Point", "China Wall", "Donner Summit"},
	},
	entity.CategoryWaterActivities: {
		"new york":      {"Hudson River kayaking", "Central Park rowboats", "NYC Water Taxi tours"},
		"los angeles":   {"Santa Monica Beach", "Malibu surfing", "Marina del Rey paddleboarding"},
		"chicago":       {"Lake Michigan beaches", "Chicago River kayaking", "Lake Michigan boat tours"},
		"houston":       {"Buffalo Bayou kayaking", "Galveston Beach (nearby)", "Clear Lake sailing"},
		"miami":         {"South Beach", "Miami Beach watersports", "Biscayne Bay sailing"},
		"seattle":       {"Lake Union kayaking", "Alki Beach", "Lake Washington activities"},
		"san francisco": {"Baker Beach", "Ocean Beach", "San Francisco Bay sailing"},
		"denver":        {"Cherry Creek Reservoir", "South Platte River kayaking", "Chatfield State Park"},
		"truckee":       {"Truckee River rafting", "Donner Lake swimming and paddleboarding", "West End Beach"},
		"donner lake":   {"Donner Lake Public Docks", "Donner Lake water sports", "Donner Lake beaches"},
	},
}

// activities returns the options for category at key; ok is false when either is unknown
func (c catalog) activities(category entity.Category, key string) ([]string, bool) {
	byLocation, ok := c[category]
	if !ok {
		return nil, false
	}
	options, ok := byLocation[key]
	return options, ok && len(options) > 0
}

// LocationKey reduces a display name like "Truckee, CA" to its catalog key.
// A name that is not a key maps to the first key it contains or that contains it.
func LocationKey(name string) string {
	key := strings.TrimSpace(strings.ToLower(strings.SplitN(name, ",", 2)[0]))
	for _, known := range locationKeys {
		if known == key {
			return key
		}
	}
	for _, known := range locationKeys {
		if strings.Contains(key, known) || strings.Contains(known, key) {
			return known
		}
	}
	return key
}
