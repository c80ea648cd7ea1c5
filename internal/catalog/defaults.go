package catalog

import "certpoints/internal/model"

// DefaultVersion tags snapshots built from DefaultRules
const DefaultVersion = "ktu-builtin"

const winningNote = "Additional points can be provided for winning. The maximum limit for activity points is 60. But for Level IV and V winning, the maximum point limit is enhanced to 80."

func winningPrizes() *model.PrizePoints {
	return &model.PrizePoints{
		First:  model.LevelPoints{I: 10, II: 10, III: 10, IV: 20, V: 20},
		Second: model.LevelPoints{I: 8, II: 8, III: 8, IV: 16, V: 16},
		Third:  model.LevelPoints{I: 5, II: 5, III: 5, IV: 12, V: 12},
	}
}

// DefaultRules returns the built-in KTU activity points catalog
func DefaultRules() []model.ActivityRule {
	sports := model.LevelPoints{I: 8, II: 15, III: 25, IV: 40, V: 60}
	cultural := model.LevelPoints{I: 8, II: 12, III: 20, IV: 40, V: 60}
	societies := []string{"ieee", "iet", "asme", "sae", "nasa"}
	coordinator := []string{"core coordinator", "coordinator", "chairperson", "president"}

	return []model.ActivityRule{
		// National Initiatives Participation
		{
			Name: "NCC", ActivityHead: model.HeadNationalInitiatives, ActivityNumber: "1",
			Keywords:       []string{"ncc", "national cadet corps"},
			PointsPerLevel: model.Uniform(60), MaxPoints: 60,
			MinDuration: "2 Year", ApprovalDocuments: "a/b",
			HasSpecialRules: true,
			SpecialRules:    "For C certificate / outstanding performance supported by certification, additional marks upto 20 can be provided subjected to maximum limit of 80 points.",
		},
		{
			Name: "NSS", ActivityHead: model.HeadNationalInitiatives, ActivityNumber: "2",
			Keywords:       []string{"nss", "national service scheme"},
			PointsPerLevel: model.Uniform(60), MaxPoints: 60,
			MinDuration: "2 Year", ApprovalDocuments: "a/b",
			HasSpecialRules: true,
			SpecialRules:    "Best NSS Volunteer Awardee (University level) / National Integration Camp / Pre Republic Day Parade Camp: additional marks upto 10, maximum 70 points. Best NSS Volunteer Awardee (State / National level) / Republic Day Parade Camp / International Youth Exchange Programme: additional marks upto 20, maximum 80 points.",
		},

		// Sports & Games Participation
		{
			Name: "Sports", ActivityHead: model.HeadSportsGames, ActivityNumber: "3",
			Keywords:       []string{"sports", "athletics", "tournament", "football", "cricket", "basketball", "volleyball", "badminton", "tennis"},
			PointsPerLevel: sports, PrizePoints: winningPrizes(), MaxPoints: 60,
			MinDuration: "1 Year", ApprovalDocuments: "a",
			HasSpecialRules: true, SpecialRules: winningNote,
		},
		{
			Name: "Games", ActivityHead: model.HeadSportsGames, ActivityNumber: "4",
			Keywords:       []string{"games", "chess", "carrom", "table tennis"},
			PointsPerLevel: sports, PrizePoints: winningPrizes(), MaxPoints: 60,
			MinDuration: "1 Year", ApprovalDocuments: "a",
			HasSpecialRules: true, SpecialRules: winningNote,
		},

		// Cultural Activities Participation
		{
			Name: "Music", ActivityHead: model.HeadCultural, ActivityNumber: "5",
			Keywords:       []string{"music", "singing", "choir", "band", "orchestra"},
			PointsPerLevel: cultural, PrizePoints: winningPrizes(), MaxPoints: 60,
			MinDuration: "1 Year", ApprovalDocuments: "a",
			HasSpecialRules: true, SpecialRules: winningNote,
		},
		{
			Name: "Performing Arts", ActivityHead: model.HeadCultural, ActivityNumber: "6",
			Keywords:       []string{"performing arts", "dance", "drama", "theatre", "mime", "skit"},
			PointsPerLevel: cultural, PrizePoints: winningPrizes(), MaxPoints: 60,
			MinDuration: "1 Year", ApprovalDocuments: "a",
			HasSpecialRules: true, SpecialRules: winningNote,
		},
		{
			Name: "Literary Arts", ActivityHead: model.HeadCultural, ActivityNumber: "7",
			Keywords:       []string{"literary arts", "debate", "elocution", "essay", "poetry", "writing", "collage"},
			PointsPerLevel: cultural, PrizePoints: winningPrizes(), MaxPoints: 60,
			MinDuration: "1 Year", ApprovalDocuments: "a",
			HasSpecialRules: true, SpecialRules: winningNote,
		},

		// Professional Self Initiatives
		{
			Name: "Tech Fest, Tech Quiz", ActivityHead: model.HeadProfessional, ActivityNumber: "8",
			Keywords:       []string{"tech fest", "techfest", "tech quiz", "technical quiz", "technical festival"},
			PointsPerLevel: model.LevelPoints{I: 10, II: 20, III: 30, IV: 40, V: 50}, MaxPoints: 50,
			ApprovalDocuments: "a",
		},
		{
			Name: "MOOC with final assessment certificate", ActivityHead: model.HeadProfessional, ActivityNumber: "9",
			Keywords:       []string{"nptel", "mooc", "massive open online course", "online certification", "swayam", "online course certification", "nptel certification"},
			PointsPerLevel: model.Uniform(50), MaxPoints: 50,
			ApprovalDocuments: "a",
		},
		{
			Name: "Competitions by Professional Societies", ActivityHead: model.HeadProfessional, ActivityNumber: "10",
			Keywords:       []string{"ieee", "iet", "asme", "sae", "nasa", "competition", "hackathon", "codeathon"},
			PointsPerLevel: model.LevelPoints{I: 10, II: 15, III: 20, IV: 30, V: 40}, MaxPoints: 40,
			ApprovalDocuments: "a",
		},
		{
			Name: "Conference/Workshop/Training at IITs/NITs", ActivityHead: model.HeadProfessional, ActivityNumber: "11",
			Keywords:       []string{"workshop", "training", "course", "seminar", "conference", "webinar", "iit", "nit", "national institute of technology", "indian institute of technology"},
			PointsPerLevel: model.Uniform(15), MaxPoints: 30,
			ApprovalDocuments: "a",
		},
		{
			Name: "Conference/Workshop/Training at KTU or affiliated institutes", ActivityHead: model.HeadProfessional, ActivityNumber: "11a",
			Keywords:       []string{"course", "workshop", "training", "certificate of completion", "programming course", "python programming", "workshop certificate", "training certificate", "learning certificate", "techlearn"},
			PointsPerLevel: model.Uniform(6), MaxPoints: 12,
			ApprovalDocuments: "a",
		},
		{
			Name: "Paper Presentation/Publication at IITs/NITs", ActivityHead: model.HeadProfessional, ActivityNumber: "12",
			Keywords:       []string{"paper presentation", "paper publication", "research paper", "iit", "nit"},
			PointsPerLevel: model.Uniform(20), MaxPoints: 40,
			ApprovalDocuments: "a",
			HasSpecialRules:   true, SpecialRules: "Additional 10 points for certificate of recognition.",
		},
		{
			Name: "Paper Presentation/Publication at KTU", ActivityHead: model.HeadProfessional, ActivityNumber: "12a",
			Keywords:       []string{"paper presentation", "paper publication", "research paper", "ktu"},
			PointsPerLevel: model.Uniform(8), MaxPoints: 16,
			ApprovalDocuments: "a",
			HasSpecialRules:   true, SpecialRules: "Additional 2 points for certificate of recognition.",
		},
		{
			Name: "Poster Presentation at IITs/NITs", ActivityHead: model.HeadProfessional, ActivityNumber: "13",
			Keywords:       []string{"poster presentation", "poster", "iit", "nit"},
			PointsPerLevel: model.Uniform(10), MaxPoints: 20,
			ApprovalDocuments: "a",
			HasSpecialRules:   true, SpecialRules: "Additional 10 points for certificate of recognition.",
		},
		{
			Name: "Poster Presentation at KTU", ActivityHead: model.HeadProfessional, ActivityNumber: "13a",
			Keywords:       []string{"poster presentation", "poster", "ktu"},
			PointsPerLevel: model.Uniform(4), MaxPoints: 8,
			ApprovalDocuments: "a",
			HasSpecialRules:   true, SpecialRules: "Additional 2 points for certificate of recognition.",
		},
		{
			Name: "Industrial Training/Internship", ActivityHead: model.HeadProfessional, ActivityNumber: "14",
			Keywords:       []string{"industrial training", "internship", "training", "intern"},
			PointsPerLevel: model.Uniform(20), MaxPoints: 20,
			ApprovalDocuments: "a/b",
		},
		{
			Name: "Industrial/Exhibition Visits", ActivityHead: model.HeadProfessional, ActivityNumber: "15",
			Keywords:       []string{"industrial visit", "exhibition visit", "industry visit"},
			PointsPerLevel: model.Uniform(5), MaxPoints: 10,
			ApprovalDocuments: "a/b/d",
		},
		{
			Name: "Foreign Language Skill", ActivityHead: model.HeadProfessional, ActivityNumber: "16",
			Keywords:       []string{"toefl", "ielts", "bec", "foreign language", "language certification"},
			PointsPerLevel: model.Uniform(50), MaxPoints: 50,
			ApprovalDocuments: "a",
		},

		// Entrepreneurship and Innovation
		{
			Name: "Start-up Company - Registered legally", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "17",
			Keywords:       []string{"startup", "start-up", "registered company"},
			PointsPerLevel: model.Uniform(60), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Patent-Filed", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "18",
			Keywords:       []string{"patent filed", "patent application"},
			PointsPerLevel: model.Uniform(30), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Patent-Published", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "19",
			Keywords:       []string{"patent published", "published patent"},
			PointsPerLevel: model.Uniform(35), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Patent-Approved", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "20",
			Keywords:       []string{"patent approved", "approved patent", "patent granted"},
			PointsPerLevel: model.Uniform(50), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Patent-Licensed", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "21",
			Keywords:       []string{"patent licensed", "licensed patent"},
			PointsPerLevel: model.Uniform(80), MaxPoints: 80, ApprovalDocuments: "d",
		},
		{
			Name: "Prototype developed and tested", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "22",
			Keywords:       []string{"prototype", "prototype development", "product prototype"},
			PointsPerLevel: model.Uniform(60), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Awards for Products developed", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "23",
			Keywords:       []string{"product award", "award winning product", "product development award"},
			PointsPerLevel: model.Uniform(60), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Innovative technologies developed and used by industries/users", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "24",
			Keywords:       []string{"innovative technology", "technology development", "industry technology"},
			PointsPerLevel: model.Uniform(60), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Got venture capital funding for innovative ideas/products", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "25",
			Keywords:       []string{"venture capital", "funding", "investor funding", "seed funding"},
			PointsPerLevel: model.Uniform(80), MaxPoints: 80, ApprovalDocuments: "d",
		},
		{
			Name: "Startup Employment", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "26",
			Keywords:       []string{"startup employment", "startup jobs", "startup hiring"},
			PointsPerLevel: model.Uniform(80), MaxPoints: 80, ApprovalDocuments: "d",
		},
		{
			Name: "Societal innovations", ActivityHead: model.HeadEntrepreneurship, ActivityNumber: "27",
			Keywords:       []string{"societal innovation", "social innovation", "community innovation"},
			PointsPerLevel: model.Uniform(50), MaxPoints: 50, ApprovalDocuments: "d",
		},

		// Leadership & Management
		{
			Name: "Student Professional Societies - Core Coordinator", ActivityHead: model.HeadLeadership, ActivityNumber: "28",
			Keywords:       concat(societies, coordinator),
			PointsPerLevel: model.Uniform(15), MaxPoints: 40, ApprovalDocuments: "d",
		},
		{
			Name: "Student Professional Societies - Sub Coordinator", ActivityHead: model.HeadLeadership, ActivityNumber: "28",
			Keywords:       concat(societies, []string{"sub coordinator", "joint secretary", "vice president", "treasurer"}),
			PointsPerLevel: model.Uniform(10), MaxPoints: 40, ApprovalDocuments: "d",
		},
		{
			Name: "Student Professional Societies - Volunteer", ActivityHead: model.HeadLeadership, ActivityNumber: "28",
			Keywords:       concat(societies, []string{"volunteer", "member"}),
			PointsPerLevel: model.Uniform(5), MaxPoints: 40, ApprovalDocuments: "d",
		},
		{
			Name: "College Association Chapters - Core Coordinator", ActivityHead: model.HeadLeadership, ActivityNumber: "29",
			Keywords:       concat([]string{"college association", "chapter", "mechanical", "civil", "electrical"}, coordinator),
			PointsPerLevel: model.Uniform(15), MaxPoints: 40, ApprovalDocuments: "d",
		},
		{
			Name: "Festival & Technical Events - Core Coordinator", ActivityHead: model.HeadLeadership, ActivityNumber: "30",
			Keywords:       concat([]string{"festival", "technical event", "tech event"}, coordinator),
			PointsPerLevel: model.Uniform(15), MaxPoints: 40, ApprovalDocuments: "d",
		},
		{
			Name: "Hobby Clubs - Core Coordinator", ActivityHead: model.HeadLeadership, ActivityNumber: "31",
			Keywords:       concat([]string{"hobby club", "club"}, coordinator),
			PointsPerLevel: model.Uniform(15), MaxPoints: 40, ApprovalDocuments: "d",
		},
		{
			Name: "Elected Student Representatives - Chairman", ActivityHead: model.HeadLeadership, ActivityNumber: "32",
			Keywords:       []string{"elected student representative", "student representative", "chairman", "chairperson"},
			PointsPerLevel: model.Uniform(30), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Elected Student Representatives - Secretary", ActivityHead: model.HeadLeadership, ActivityNumber: "32",
			Keywords:       []string{"elected student representative", "student representative", "secretary"},
			PointsPerLevel: model.Uniform(25), MaxPoints: 60, ApprovalDocuments: "d",
		},
		{
			Name: "Elected Student Representatives - Council Member", ActivityHead: model.HeadLeadership, ActivityNumber: "32",
			Keywords:       []string{"elected student representative", "student representative", "council member", "committee member"},
			PointsPerLevel: model.Uniform(15), MaxPoints: 60, ApprovalDocuments: "d",
		},
	}
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
