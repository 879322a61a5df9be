package crypto

// fingerprintWords is the 256-entry list used to render key fingerprints as
// human-comparable phrases. One byte of derived material selects one word,
// so a five-word phrase carries 40 bits. The words are short, common, and
// phonetically distinct to survive being read over the phone.
var fingerprintWords = [256]string{
	"acid", "actor", "adobe", "aim", "alarm", "album", "alien", "alley",
	"amber", "angle", "ankle", "apple", "april", "arena", "armor", "arrow",
	"atlas", "attic", "audio", "avoid", "bacon", "badge", "bagel", "baker",
	"bamboo", "banjo", "barrel", "basin", "beacon", "beak", "beaver", "bell",
	"bench", "berry", "bicycle", "bird", "bishop", "bison", "blade", "blanket",
	"blossom", "bolt", "bonnet", "border", "bottle", "boulder", "bracket", "brass",
	"bread", "brick", "bridge", "broom", "bucket", "bugle", "bunker", "butter",
	"cabin", "cactus", "camera", "canal", "candle", "canoe", "canyon", "carbon",
	"cargo", "carpet", "castle", "cattle", "cedar", "cello", "chalk", "chapel",
	"cherry", "chess", "chisel", "cider", "cinema", "circle", "citrus", "clay",
	"cliff", "clock", "cloud", "clover", "cobalt", "coffee", "collar", "comet",
	"compass", "copper", "coral", "cotton", "cradle", "crane", "crater", "crystal",
	"cypress", "daisy", "deck", "delta", "denim", "diesel", "dome", "donkey",
	"dragon", "drum", "dune", "eagle", "easel", "echo", "eclipse", "elbow",
	"ember", "engine", "envelope", "ferry", "fiddle", "flint", "flute", "forge",
	"fossil", "fountain", "fox", "frost", "galaxy", "garlic", "gazebo", "gecko",
	"geyser", "ginger", "glacier", "goblet", "granite", "grape", "gravel", "guitar",
	"hammer", "harbor", "hazel", "helmet", "heron", "hickory", "hinge", "holly",
	"hornet", "humming", "iceberg", "igloo", "indigo", "iron", "island", "ivory",
	"jacket", "jaguar", "jasmine", "jelly", "jigsaw", "jungle", "juniper", "kayak",
	"kettle", "kiwi", "knight", "lagoon", "lantern", "latch", "ledge", "lemon",
	"lily", "lizard", "llama", "lobster", "locket", "lotus", "lumber", "magnet",
	"mango", "mantis", "maple", "marble", "meadow", "melon", "mesa", "meteor",
	"mint", "mirror", "moss", "mustang", "napkin", "nectar", "nickel", "nutmeg",
	"oasis", "ocean", "olive", "onion", "opal", "orbit", "orchid", "otter",
	"oyster", "paddle", "pagoda", "panda", "pantry", "parrot", "peach", "pebble",
	"pelican", "pepper", "piano", "pigeon", "pillow", "pine", "planet", "plum",
	"pocket", "pond", "poppy", "prairie", "prism", "pumpkin", "quartz", "quill",
	"rabbit", "raccoon", "radar", "raft", "raisin", "raven", "reef", "ribbon",
	"river", "robin", "rocket", "saddle", "saffron", "salmon", "sandal", "sapphire",
	"satchel", "seagull", "shadow", "shelf", "sierra", "signal", "sketch", "slate",
	"sphere", "spiral", "spruce", "squash", "stable", "summit", "sunset", "tulip",
}
