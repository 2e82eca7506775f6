package hints

// Static word tables. These are fixed configuration data, not runtime
// extensible; membership is checked against the exact uppercased answer.

type category struct {
	name     string
	sentence string
	words    map[string]struct{}
}

// categories are scanned in this fixed order so that a word belonging to
// more than one set always yields the same hint.
var categories = []category{
	{"animals", "This word names an animal.", set(
		"HORSE", "TIGER", "ZEBRA", "SNAKE", "MOUSE", "SHEEP", "WHALE", "SHARK",
		"EAGLE", "GOOSE", "CAMEL", "OTTER", "BISON", "HYENA", "KOALA", "PANDA",
		"RHINO", "MOOSE", "SKUNK", "LLAMA", "SLOTH", "RAVEN", "ROBIN", "TROUT")},
	{"colors", "This word is a color or shade.", set(
		"BLACK", "WHITE", "GREEN", "BROWN", "CORAL", "IVORY", "AMBER", "AZURE",
		"MAUVE", "OLIVE", "PEACH", "LILAC", "KHAKI", "EBONY")},
	{"nature", "This word relates to the natural world.", set(
		"RIVER", "OCEAN", "BEACH", "FIELD", "GRASS", "PLANT", "BLOOM", "STONE",
		"CLIFF", "SHORE", "WOODS", "CREEK", "MARSH", "RIDGE", "DELTA", "PETAL",
		"TRUNK", "EARTH", "CORAL")},
	{"objects", "This word names an everyday object.", set(
		"CHAIR", "TABLE", "KNIFE", "SPOON", "PLATE", "CLOCK", "BRUSH", "BENCH",
		"CRATE", "EASEL", "BROOM", "TORCH", "WAGON", "PIANO", "GLOBE")},
	{"actions", "This word describes an action.", set(
		"CLIMB", "DANCE", "THROW", "CATCH", "WRITE", "SPEAK", "DRINK", "SLEEP",
		"STAND", "CRAWL", "SWING", "CHASE", "BUILD", "TEACH", "LEARN", "SHOUT",
		"REACH", "CARRY")},
	{"emotions", "This word describes a feeling or emotion.", set(
		"HAPPY", "ANGRY", "PROUD", "EAGER", "JOLLY", "MOODY", "SORRY", "BRAVE",
		"DREAD", "WEARY", "TENSE", "GIDDY", "IRATE")},
	{"food", "This word names something you can eat.", set(
		"BREAD", "APPLE", "GRAPE", "LEMON", "MANGO", "ONION", "PIZZA", "SALAD",
		"HONEY", "CREAM", "STEAK", "TOAST", "BERRY", "CANDY", "BACON", "WHEAT")},
	{"body", "This word names a part of the body.", set(
		"HEART", "BRAIN", "ELBOW", "WRIST", "ANKLE", "THUMB", "SPINE", "CHEEK",
		"CHEST", "SKULL", "TORSO", "WAIST")},
	{"home", "This word relates to the home.", set(
		"HOUSE", "PORCH", "ATTIC", "FLOOR", "FENCE", "STOVE", "COUCH", "SHELF",
		"CABIN", "SUITE", "FOYER", "DECOR")},
	{"time", "This word relates to time.", set(
		"MONTH", "NIGHT", "HOURS", "YEARS", "EARLY", "EPOCH", "WEEKS", "TIMER")},
	{"weather", "This word relates to weather.", set(
		"STORM", "CLOUD", "FROST", "SUNNY", "RAINY", "WINDY", "HUMID", "FOGGY",
		"SLEET", "CHILL", "GUSTY")},
	{"technology", "This word relates to technology.", set(
		"ROBOT", "LASER", "MODEM", "PIXEL", "CABLE", "EMAIL", "DRONE", "SONAR",
		"RADAR", "BYTES")},
}

// commonWords lowers the difficulty score for answers most players see
// regularly.
var commonWords = set(
	"ABOUT", "AFTER", "AGAIN", "APPLE", "BEACH", "BREAD", "CHAIR", "CLEAN",
	"CLEAR", "CLOCK", "CLOSE", "DANCE", "DREAM", "DRINK", "EARLY", "EARTH",
	"FIRST", "FRESH", "GREAT", "GREEN", "HAPPY", "HEART", "HOUSE", "LARGE",
	"LEARN", "LIGHT", "MONEY", "MONTH", "MUSIC", "NIGHT", "OTHER", "PAPER",
	"PARTY", "PLACE", "PLANT", "POINT", "RIGHT", "RIVER", "SLEEP", "SMALL",
	"SMILE", "SOUND", "SPEAK", "STAND", "START", "STONE", "STORY", "TABLE",
	"TEACH", "THANK", "THING", "THINK", "VOICE", "WATER", "WHITE", "WOMAN",
	"WORLD", "WRITE", "YOUNG",
)

func categorySentence(word string) (string, bool) {
	for _, c := range categories {
		if _, ok := c.words[word]; ok {
			return c.sentence, true
		}
	}
	return "", false
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
