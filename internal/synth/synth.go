// Package synth deterministically derives a display identity for a
// complaint from its integer id.
//
// Two complaints with the same id always yield the same customer; that
// reproducibility is a behavioral requirement, so the seeded generator
// below must not be swapped for a general-purpose RNG. The identity is
// purely presentational and carries no guarantees beyond that: different ids
// may collide in name by chance.
package synth

import (
	"fmt"
	"math"
)

var firstNames = []string{
	"Marcus", "Jennifer", "Tyrone", "Ashley", "Carlos", "Emily", "Jamal", "Sarah",
	"Michael", "Jessica", "DeShawn", "Amanda", "Luis", "Brittany", "David", "Nicole",
	"Malik", "Lauren", "Roberto", "Megan", "Kevin", "Stephanie", "Terrell", "Rachel",
	"Jose", "Heather", "Brandon", "Kimberly", "Andre", "Christina", "Daniel", "Amber",
	"Darius", "Tiffany", "Miguel", "Michelle", "James", "Lisa", "Isaiah", "Angela",
	"Juan", "Maria", "Tyler", "Rebecca", "Jalen", "Laura", "Anthony", "Elizabeth",
	"Devin", "Samantha", "Christopher", "Vanessa", "Tremaine", "Melissa", "Ricardo", "Amy",
}

var lastNames = []string{
	"Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez",
	"Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor",
	"Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris", "Sanchez",
	"Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	"Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
}

// areaCodes lists real area codes per state so phone numbers look locally
// plausible. States not listed fall back to the 555 sentinel.
var areaCodes = map[string][]string{
	"CA": {"213", "310", "415", "619", "650", "714"},
	"TX": {"210", "214", "281", "512", "713", "817"},
	"FL": {"305", "321", "407", "561", "727", "813"},
	"NY": {"212", "315", "516", "518", "585", "718"},
	"IL": {"217", "312", "630", "708", "773", "815"},
	"PA": {"215", "267", "412", "484", "570", "610"},
	"AZ": {"480", "520", "602", "623", "928"},
	"NV": {"702", "725", "775"},
	"WA": {"206", "253", "360", "425", "509"},
	"MA": {"339", "413", "508", "617", "774", "781"},
	"GA": {"229", "404", "470", "678", "706", "770"},
	"CO": {"303", "719", "720", "970"},
	"MI": {"231", "248", "269", "313", "517", "586"},
	"OR": {"458", "503", "541", "971"},
	"TN": {"423", "615", "629", "731", "865", "901"},
	"NC": {"252", "336", "704", "828", "910", "919"},
	"OH": {"216", "234", "330", "419", "440", "513"},
	"IN": {"219", "260", "317", "574", "765", "812"},
}

// fallbackAreaCodes is used when the state has no entry above.
var fallbackAreaCodes = []string{"555"}

// Customer is a synthesized display identity.
type Customer struct {
	Name      string
	Phone     string
	State     string
	StateAbbr string
	City      string
}

// Rand returns a deterministic pseudo-random value in [0,1) for a seed.
// The same seed always produces the same value.
func Rand(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// Generate derives the customer identity for a complaint id. Distinct
// multipliers seed each field so the fields don't correlate trivially.
func Generate(id int, state, stateAbbr, city string) Customer {
	first := firstNames[int(Rand(id*7)*float64(len(firstNames)))]
	last := lastNames[int(Rand(id*13)*float64(len(lastNames)))]

	codes, ok := areaCodes[stateAbbr]
	if !ok {
		codes = fallbackAreaCodes
	}
	areaCode := codes[int(Rand(id*17)*float64(len(codes)))]

	exchange := int(Rand(id*23)*900) + 100
	line := int(Rand(id*31)*9000) + 1000

	return Customer{
		Name:      first + " " + last,
		Phone:     fmt.Sprintf("(%s) %d-%d", areaCode, exchange, line),
		State:     state,
		StateAbbr: stateAbbr,
		City:      city,
	}
}
