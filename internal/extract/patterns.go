package extract

import "regexp"

// name token: capitalised word or an all-caps word
const nameTok = `[A-Z][A-Za-z]+`

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i:this is to certify that|awarded to|presented to|certify that)[ \t]+(` + nameTok + `(?:[ \t]+` + nameTok + `){1,3})\b`),
	regexp.MustCompile(`\b(?:Mr|Ms|Mrs|Dr)\.[ \t]*(` + nameTok + `(?:[ \t]+` + nameTok + `){1,3})\b`),
	regexp.MustCompile(`\b(` + nameTok + `(?:[ \t]+` + nameTok + `){1,3})[ \t]+(?i:has successfully completed|has successfully|has participated|has attended|has completed|is awarded|was a participant)\b`),
}

// honorifics that must not start a captured name
var honorifics = []string{"mr", "ms", "mrs", "dr"}

const eventKinds = `workshop|conference|symposium|seminar|competition|hackathon|course|training|webinar|fest`

// fest patterns are tried before the generic ones
var festPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)arts[ \t]*fest[ \t]+of[ \t]+([A-Za-z \t]+)`),
	regexp.MustCompile(`(?i)([A-Za-z \t]+?)[ \t]*-[ \t]*the[ \t]*arts[ \t]*fest`),
	regexp.MustCompile(`(?i)\b(sargam[ \t]+chitram[ \t]+thalam[^\n]*?arts[ \t]+fest[^\n]*?(?:college|engineering|university))\b`),
	regexp.MustCompile(`(?i)\b(arts[ \t]+fest[^\n]*?(?:college|engineering|university))\b`),
	regexp.MustCompile(`(?i)\b((?:college|university|school|institute)[ \t]+arts[ \t]+fest)\b`),
}

var genericEventPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)certificate[ \t]+of[ \t]+([A-Za-z \t]+?)(?:[ \t]+(?:for|in|awarded|presented)\b|\n|$)`),
	regexp.MustCompile(`(?im)^([A-Z][A-Za-z \t]*(?:` + eventKinds + `)[^\n]*?)$`),
	regexp.MustCompile(`(?i)\b([A-Z][A-Za-z \t]*(?:` + eventKinds + `))[ \t]+(?:on|from|held on|conducted on)\b`),
}

// line scan fallback for the event name
var eventLineKeywords = []string{
	"workshop", "conference", "symposium", "seminar", "competition", "hackathon",
	"fest", "webinar", "training", "program", "course", "nptel", "collage", "art",
}

const (
	months    = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec`
	year      = `(?:19|20)\d{2}`
	dayOfMon  = `(?:0?[1-9]|[12][0-9]|3[01])`
	monthNum  = `(?:0?[1-9]|1[012])`
	dayMonYr  = `\d{1,2}(?:st|nd|rd|th)?[ \t]+(?:` + months + `)[,\s]+` + year
	dashChars = `[-–—]`
)

var datePatterns = []*regexp.Regexp{
	// DD/MM/YYYY, DD-MM-YY
	regexp.MustCompile(`\b` + dayOfMon + `[/\-]` + monthNum + `[/\-](?:` + year + `|\d{2})\b`),
	// YYYY-MM-DD
	regexp.MustCompile(`\b` + year + `[/\-]` + monthNum + `[/\-]` + dayOfMon + `\b`),
	// Month DD, YYYY
	regexp.MustCompile(`(?i)\b(?:` + months + `)[,\s]+\d{1,2}(?:st|nd|rd|th)?[,\s]+` + year + `\b`),
	// DD Month YYYY
	regexp.MustCompile(`(?i)\b` + dayMonYr + `\b`),
	// from X to Y
	regexp.MustCompile(`(?i)\bfrom[ \t]+[^\n]{3,30}?[ \t]+to[ \t]+[^\n]{3,30}?` + `(?:\b` + year + `|\b\d{1,2}\b)`),
	// DD Month YYYY – DD Month YYYY
	regexp.MustCompile(`(?i)\b` + dayMonYr + `[ \t]*` + dashChars + `[ \t]*` + dayMonYr + `\b`),
	// 5, 6, 7 March 2023
	regexp.MustCompile(`(?i)\b\d{1,2}(?:[, \t]+\d{1,2}){1,4}[ \t]+(?:` + months + `)[,\s]+` + year + `\b`),
}

var orgPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b((?:[A-Z][A-Za-z.&]*[ \t]+){0,6}(?:University|College|Institution|School|Institute|Academy))\b`),
	regexp.MustCompile(`\b((?:IIT|NIT|BITS|IIIT|MIT|IEEE|IET|ASME|SAE|NASA|ACM|AICTE|UGC|SCTCE)\b(?:[ \t]+[A-Z][A-Za-z]*){0,4})`),
	regexp.MustCompile(`\b((?i:university|college|institute)[ \t]+of(?:[ \t]+[A-Z][A-Za-z]*){1,4})`),
}

var orgLineKeywords = []string{
	"university", "college", "institute", "school", "academy", "organization",
	"organisation", "society", "association", "council", "club", "department",
}

// words that name a certificate type rather than an event
var achievementWords = []string{
	"completion", "achievement", "appreciation", "excellence", "participation",
	"recognition", "merit", "attendance",
}

var certificateTypePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(certificate[ \t]+of[ \t]+(?:completion|achievement|appreciation|excellence|participation|recognition|merit|attendance))\b`),
	regexp.MustCompile(`(?i)\b((?:completion|achievement|appreciation|excellence|participation|recognition|merit|attendance|training|internship)[ \t]+certificate)\b`),
}

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b\d+[ \t]+(?:days?|weeks?|months?|hours?|years?)\b`),
	regexp.MustCompile(`(?i)\b\d+-(?:day|week|month|hour|year)\b`),
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:held|conducted|organi[sz]ed)[ \t]+(?:at|in)[ \t]+([A-Za-z ,\t]+?)(?:[ \t]+(?:on|from)\b|\.|\n|$)`),
	regexp.MustCompile(`\b((?:University|College|Institute|School)[ \t]+(?:of|at|in)[ \t]+[A-Z][A-Za-z]+(?:[ \t]+[A-Z][A-Za-z]+)*)`),
}

const ordinal = `(?:first|second|third|1st|2nd|3rd|III|II|I|\d+(?:st|nd|rd|th))`

var prizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:securing|secured|won|achieved|awarded|bagged)[ \t]+(?:the[ \t]+)?(` + ordinal + `[ \t]+(?:place|position|prize|rank))\b`),
	regexp.MustCompile(`(?i)\b(` + ordinal + `[ \t]+(?:place|position|prize|rank))\b`),
	regexp.MustCompile(`(?i)\b(rank[ \t]+\d+)\b`),
	regexp.MustCompile(`(?i)\b(winners?|runners?[ \t-]*up)\b`),
}

// guess is one keyword-containment rule for the category and name guesses
type guess struct {
	label string
	any   []string
	all   []string // alternative: every term present
}

var categoryGuesses = []guess{
	{
		label: "Cultural Activities Participation",
		any:   []string{"arts fest", "sargam", "chitram", "thalam", "cultural", "collage competition"},
		all:   []string{"collage", "arts"},
	},
	{
		label: "Sports & Games Participation",
		any:   []string{"sports", "game", "games", "tournament", "athletic"},
	},
}

var nameGuesses = []guess{
	{label: "Literary Arts", any: []string{"collage", "literary", "essay", "poetry", "writing", "debate", "elocution"}},
	{label: "Performing Arts", any: []string{"music", "dance", "singing", "instrument", "band", "performance"}},
	{label: "NPTEL", any: []string{"nptel"}},
	{label: "Training Course", any: []string{"workshop", "training", "course"}},
}
