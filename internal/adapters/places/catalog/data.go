package catalog

import "github.com/triply-travel/itinerary-api/internal/domain"

type entry struct {
	id          string
	name        string
	address     string
	description string
	placeID     string
	// types lists the categories the entry answers to; the first one is its category.
	types    []string
	rating   float64
	price    int
	lat, lng float64
	duration int
	outdoor  bool
}

type destination struct {
	place   placeRecord
	entries []entry
}

type placeRecord struct {
	id, name, address string
	location          domain.Coordinates
}

var destinations = []destination{
	{
		place: placeRecord{id: "place-paris", name: "Paris", address: "Paris, France", location: domain.Coordinates{Lat: 48.8566, Lng: 2.3522}},
		entries: []entry{
			{id: "eiffel-tower", name: "Eiffel Tower", address: "Champ de Mars, 5 Avenue Anatole France, 75007 Paris, France",
				description: "Iconic iron tower built in 1889 that defines the Paris skyline.", placeID: "ChIJLU7jZClu5kcR4PcOOO6p3I0",
				types: []string{"tourist_attraction"}, rating: 4.6, price: 2, lat: 48.8584, lng: 2.2945, duration: 120, outdoor: true},
			{id: "louvre-museum", name: "Louvre Museum", address: "Rue de Rivoli, 75001 Paris, France",
				description: "World's largest art museum and historic monument in Paris.", placeID: "ChIJD3uTd9hx5kcR1IQvGfr8dbk",
				types: []string{"museum"}, rating: 4.7, price: 2, lat: 48.8606, lng: 2.3376, duration: 180},
			{id: "notre-dame", name: "Notre-Dame Cathedral", address: "6 Parvis Notre-Dame - Pl. Jean-Paul II, 75004 Paris, France",
				description: "Medieval Catholic cathedral on the Île de la Cité.", placeID: "ChIJATr1n-Fx5kcRjQb6q6cdQDY",
				types: []string{"church", "tourist_attraction"}, rating: 4.7, price: 0, lat: 48.8530, lng: 2.3499, duration: 90},
			{id: "sacre-coeur", name: "Sacré-Cœur Basilica", address: "35 Rue du Chevalier de la Barre, 75018 Paris, France",
				description: "Roman Catholic basilica on the summit of Montmartre.", placeID: "ChIJbVDuPTRu5kcRoIgN2g0wUQQ",
				types: []string{"church", "tourist_attraction"}, rating: 4.8, price: 0, lat: 48.8867, lng: 2.3431, duration: 60},
			{id: "champs-elysees", name: "Champs-Élysées", address: "Champs-Élysées, 75008 Paris, France",
				description: "Avenue known for luxury shops and theaters.", placeID: "ChIJjx37cOxv5kcRPWQuEW5ntdk",
				types: []string{"clothing_store", "shopping_mall"}, rating: 4.6, price: 3, lat: 48.8698, lng: 2.3075, duration: 120, outdoor: true},
			{id: "musee-orsay", name: "Musée d'Orsay", address: "1 Rue de la Légion d'Honneur, 75007 Paris, France",
				description: "Impressionist masterpieces in a former railway station.",
				types: []string{"museum"}, rating: 4.8, price: 2, lat: 48.8600, lng: 2.3266, duration: 150},
			{id: "centre-pompidou", name: "Centre Pompidou", address: "Place Georges-Pompidou, 75004 Paris, France",
				description: "Modern and contemporary art in an inside-out building.",
				types: []string{"art_gallery", "museum"}, rating: 4.5, price: 1, lat: 48.8607, lng: 2.3522, duration: 120},
			{id: "le-comptoir", name: "Le Comptoir du Relais", address: "9 Carrefour de l'Odéon, 75006 Paris, France",
				description: "Bistro cooking near Odéon.",
				types: []string{"restaurant"}, rating: 4.4, price: 2, lat: 48.8519, lng: 2.3389, duration: 75},
			{id: "cafe-de-flore", name: "Café de Flore", address: "172 Boulevard Saint-Germain, 75006 Paris, France",
				description: "Historic Saint-Germain café.",
				types: []string{"cafe", "restaurant"}, rating: 4.1, price: 2, lat: 48.8541, lng: 2.3326, duration: 45},
			{id: "marche-des-enfants-rouges", name: "Marché des Enfants Rouges", address: "39 Rue de Bretagne, 75003 Paris, France",
				description: "Covered market with street-food stalls.",
				types: []string{"restaurant"}, rating: 4.5, price: 1, lat: 48.8627, lng: 2.3618, duration: 60},
			{id: "jardin-luxembourg", name: "Jardin du Luxembourg", address: "75006 Paris, France",
				description: "Formal gardens around the Luxembourg Palace.",
				types: []string{"park"}, rating: 4.7, price: 0, lat: 48.8462, lng: 2.3372, duration: 60, outdoor: true},
			{id: "jardin-tuileries", name: "Jardin des Tuileries", address: "Place de la Concorde, 75001 Paris, France",
				description: "Garden between the Louvre and Place de la Concorde.",
				types: []string{"park"}, rating: 4.6, price: 0, lat: 48.8635, lng: 2.3275, duration: 45, outdoor: true},
			{id: "le-syndicat", name: "Le Syndicat", address: "51 Rue du Faubourg Saint-Denis, 75010 Paris, France",
				description: "Cocktail bar pouring only French spirits.",
				types: []string{"bar"}, rating: 4.5, price: 2, lat: 48.8718, lng: 2.3540, duration: 90},
			{id: "le-bataclan", name: "Le Bataclan", address: "50 Boulevard Voltaire, 75011 Paris, France",
				description: "Concert hall and club nights.",
				types: []string{"night_club", "bar"}, rating: 4.4, price: 3, lat: 48.8631, lng: 2.3708, duration: 120},
			{id: "galeries-lafayette", name: "Galeries Lafayette Haussmann", address: "40 Boulevard Haussmann, 75009 Paris, France",
				description: "Department store under a glass and steel dome.",
				types: []string{"shopping_mall"}, rating: 4.5, price: 3, lat: 48.8738, lng: 2.3320, duration: 90},
		},
	},
	{
		place: placeRecord{id: "place-london", name: "London", address: "London, UK", location: domain.Coordinates{Lat: 51.5074, Lng: -0.1278}},
		entries: []entry{
			{id: "british-museum", name: "British Museum", address: "Great Russell St, London WC1B 3DG, UK",
				description: "Two million years of human history and culture.",
				types: []string{"museum"}, rating: 4.7, price: 0, lat: 51.5194, lng: -0.1270, duration: 150},
			{id: "national-gallery", name: "National Gallery", address: "Trafalgar Square, London WC2N 5DN, UK",
				description: "Western European painting from the 13th to the 19th century.",
				types: []string{"art_gallery", "museum"}, rating: 4.8, price: 0, lat: 51.5089, lng: -0.1283, duration: 120},
			{id: "borough-market", name: "Borough Market", address: "8 Southwark St, London SE1 1TL, UK",
				description: "Food market beside London Bridge.",
				types: []string{"restaurant"}, rating: 4.6, price: 1, lat: 51.5055, lng: -0.0910, duration: 75},
			{id: "dishoom-covent-garden", name: "Dishoom Covent Garden", address: "12 Upper St Martin's Ln, London WC2H 9FB, UK",
				description: "Bombay café-style dining.",
				types: []string{"restaurant"}, rating: 4.7, price: 2, lat: 51.5125, lng: -0.1269, duration: 75},
			{id: "monmouth-coffee", name: "Monmouth Coffee", address: "27 Monmouth St, London WC2H 9EU, UK",
				description: "Speciality coffee roaster.",
				types: []string{"cafe", "restaurant"}, rating: 4.5, price: 1, lat: 51.5143, lng: -0.1268, duration: 30},
			{id: "st-james-park", name: "St James's Park", address: "London SW1A 2BJ, UK",
				description: "Royal park with views of Buckingham Palace.",
				types: []string{"park"}, rating: 4.7, price: 0, lat: 51.5025, lng: -0.1348, duration: 60, outdoor: true},
			{id: "hyde-park", name: "Hyde Park", address: "London W2 2UH, UK",
				description: "Large royal park with the Serpentine lake.",
				types: []string{"park"}, rating: 4.7, price: 0, lat: 51.5073, lng: -0.1657, duration: 90, outdoor: true},
			{id: "gordons-wine-bar", name: "Gordon's Wine Bar", address: "47 Villiers St, London WC2N 6NE, UK",
				description: "Candle-lit cellar wine bar.",
				types: []string{"bar"}, rating: 4.5, price: 2, lat: 51.5081, lng: -0.1232, duration: 90},
			{id: "covent-garden-market", name: "Covent Garden Market", address: "The Market Building, London WC2E 8RF, UK",
				description: "Shops and street performers in the old market hall.",
				types: []string{"shopping_mall"}, rating: 4.6, price: 2, lat: 51.5120, lng: -0.1228, duration: 90},
			{id: "tower-of-london", name: "Tower of London", address: "London EC3N 4AB, UK",
				description: "Historic castle and home of the Crown Jewels.",
				types: []string{"tourist_attraction", "museum"}, rating: 4.6, price: 3, lat: 51.5081, lng: -0.0759, duration: 150},
		},
	},
}
