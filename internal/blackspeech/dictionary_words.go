package blackspeech

// words maps normalized English words to Black Speech. An empty value
// means the word is dropped from the output.
var words = map[string]string{
	"one":       "ash",
	"ring":      "nazg",
	"to":        "",
	"rule":      "gimbatul",
	"them":      "agh",
	"all":       "burzum-ishi",
	"and":       "agh",
	"in":        "",
	"the":       "",
	"of":        "",
	"darkness":  "burzum",
	"bind":      "krimpatul",
	"lord":      "uzbad",
	"master":    "uzbad",
	"king":      "uzbad",
	"fire":      "gabil",
	"flame":     "gabil",
	"shadow":    "glob",
	"dark":      "burzum",
	"black":     "morn",
	"death":     "gûl",
	"evil":      "gûl",
	"mountain":  "gundu",
	"tower":     "barad",
	"fortress":  "barad",
	"iron":      "ang",
	"steel":     "ang",
	"sword":     "gurth",
	"blade":     "gurth",
	"hand":      "gabil",
	"eye":       "lugburz",
	"power":     "gash",
	"strength":  "gash",
	"great":     "uruk",
	"mighty":    "uruk",
	"servant":   "olog",
	"slave":     "snaga",
	"come":      "gû",
	"go":        "gû",
	"bring":     "thurkh",
	"take":      "thurkh",
	"kill":      "agh",
	"destroy":   "agh",
	"burn":      "gabil",
	"break":     "krith",
	"mine":      "khaz",
	"gold":      "khaz",
	"treasure":  "khaz",
	"doom":      "dûm",
	"fate":      "dûm",
	"war":       "gabil",
	"battle":    "gabil",
	"blood":     "gû",
	"pain":      "gash",
	"fear":      "gûl",
	"terror":    "gûl",
	"hate":      "goth",
	"anger":     "goth",
	"wrath":     "goth",
	"sorrow":    "nuin",
	"grief":     "nuin",
	"stone":     "khaz",
	"earth":     "khaz",
	"ground":    "khaz",
	"sky":       "menel",
	"star":      "gil",
	"moon":      "ithil",
	"sun":       "anor",
	"light":     "gal",
	"water":     "nen",
	"river":     "nen",
	"sea":       "gaer",
	"wind":      "gwaih",
	"storm":     "gwaih",
	"thunder":   "gabil",
	"lightning": "gabil",
	"cold":      "ring",
	"ice":       "ring",
	"snow":      "ring",
	"hot":       "gabil",
	"warm":      "gabil",
	"big":       "uruk",
	"large":     "uruk",
	"huge":      "uruk",
	"small":     "snaga",
	"little":    "snaga",
	"tiny":      "snaga",
	"good":      "gâl",
	"bad":       "gûl",
	"beautiful": "gâl",
	"ugly":      "goth",
	"strong":    "gash",
	"weak":      "snaga",
	"fast":      "thurkh",
	"slow":      "glob",
	"high":      "barad",
	"low":       "glob",
	"far":       "ungol",
	"near":      "gû",
	"old":       "iaur",
	"new":       "shin",
	"young":     "shin",
	"dead":      "gûl",
	"alive":     "cuio",
	"born":      "no",
	"die":       "gûl",
	"live":      "cuio",
	"eat":       "gor",
	"drink":     "sûl",
	"sleep":     "lûth",
	"wake":      "daw",
	"speak":     "lam",
	"hear":      "lasta",
	"see":       "tîr",
	"know":      "ista",
	"think":     "saed",
	"remember":  "min",
	"forget":    "delu",
	"love":      "mel",
	"like":      "mel",
	"want":      "min",
	"need":      "bane",
	"have":      "har",
	"give":      "anno",
	"receive":   "goth",
	"find":      "hir",
	"lose":      "delu",
	"win":       "tuv",
	"begin":     "edra",
	"end":       "teith",
	"stop":      "dar",
	"continue":  "minno",
	"change":    "wend",
	"stay":      "dar",
	"move":      "minno",
	"run":       "thurkh",
	"walk":      "minno",
	"fly":       "gwaih",
	"fall":      "dant",
	"rise":      "orch",
	"climb":     "orch",
	"jump":      "cab",
	"swim":      "luin",
	"work":      "bane",
	"rest":      "lûth",
	"play":      "telu",
	"fight":     "gabil",
	"attack":    "dagr",
	"defend":    "thang",
	"escape":    "rhosg",
	"hide":      "thurin",
	"show":      "tol",
	"open":      "edra",
	"close":     "thar",
	"build":     "thang",
	"create":    "caro",
	"make":      "caro",
	"repair":    "aeg",
	"cut":       "risk",
	"join":      "gwedh",
	"separate":  "palan",
	"mix":       "gwaed",
	"clean":     "glan",
	"dirty":     "gorth",
	"wash":      "luin",
	"wear":      "gwann",
	"remove":    "eitha",
	"put":       "gwaed",
	"place":     "gwaed",
	"turn":      "hwinion",
	"push":      "thaur",
	"pull":      "gwedh",
	"lift":      "orgon",
	"drop":      "dant",
	"throw":     "hab",
	"catch":     "rap",
	"hold":      "gabil",
	"release":   "leithia",
	"touch":     "lav",
	"hit":       "dagr",
	"kick":      "dag",
	"bite":      "nasg",
	"scratch":   "rasc",
	"freeze":    "ring",
	"melt":      "thaw",
	"boil":      "gabil",
	"cook":      "gabil",
	"raw":       "glass",
	"ripe":      "beren",
	"rotten":    "goth",
	"sharp":     "maeg",
	"dull":      "thind",
	"smooth":    "balan",
	"rough":     "gaern",
	"hard":      "sarn",
	"soft":      "lind",
	"heavy":     "luin",
	"thick":     "tiugh",
	"thin":      "nim",
	"wide":      "palan",
	"narrow":    "aeg",
	"deep":      "nunn",
	"shallow":   "taw",
	"empty":     "lhaw",
	"full":      "bell",
	"wet":       "nîn",
	"dry":       "rû",
}
