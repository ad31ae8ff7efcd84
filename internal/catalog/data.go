package catalog

import "github.com/skillsmatch/careermatch/internal/quiz"

// careers is the reference table of high-demand careers, their entry
// requirements, and the universities known for them. RequiredSkills is
// left nil here; Load derives it.
var careers = []Entry{
	{
		Career:       "Software Engineer",
		Requirements: "programming, math, problem-solving",
		Universities: "MIT, Stanford, Carnegie Mellon",
		Image:        "/static/careers/software-engineer.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeTechEnthusiast, quiz.TypeAnalyticalMind},
	},
	{
		Career:       "Data Scientist",
		Requirements: "programming, statistics, data analysis",
		Universities: "UC Berkeley, Harvard, Stanford",
		Image:        "/static/careers/data-scientist.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeAnalyticalMind, quiz.TypeTechEnthusiast},
	},
	{
		Career:       "UX/UI Designer",
		Requirements: "design, creativity, user research",
		Universities: "Pratt Institute, USC, Carnegie Mellon",
		Image:        "/static/careers/ux-ui-designer.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeCreativeThinker},
	},
	{
		Career:       "Graphic Designer",
		Requirements: "design, art, software tools",
		Universities: "Pratt Institute, Rhode Island School of Design",
		Image:        "/static/careers/graphic-designer.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeCreativeThinker},
	},
	{
		Career:       "Digital Marketer",
		Requirements: "marketing, communication, analytics",
		Universities: "NYU, UPenn (Wharton), USC",
		Image:        "/static/careers/digital-marketer.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeCommunicativeLeader},
	},
	{
		Career:       "SEO Specialist",
		Requirements: "marketing, writing, data",
		Universities: "NYU, Boston University",
		Image:        "/static/careers/seo-specialist.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeCommunicativeLeader, quiz.TypeAnalyticalMind},
	},
	{
		Career:       "Biologist/Research Scientist",
		Requirements: "science, biology, lab work",
		Universities: "Harvard, Stanford, MIT",
		Image:        "/static/careers/research-scientist.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeAnalyticalMind},
	},
	{
		Career:       "Environmental Scientist",
		Requirements: "science, ecology, data",
		Universities: "Yale, UC Berkeley",
		Image:        "/static/careers/environmental-scientist.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeAnalyticalMind},
	},
	{
		Career:       "Product Manager",
		Requirements: "business, communication, tech",
		Universities: "Stanford, UPenn",
		Image:        "/static/careers/product-manager.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeCommunicativeLeader, quiz.TypeTechEnthusiast},
	},
	{
		Career:       "Web Developer",
		Requirements: "programming, design, frontend",
		Universities: "MIT, University of Washington",
		Image:        "/static/careers/web-developer.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeTechEnthusiast, quiz.TypeCreativeThinker},
	},
	{
		Career:       "AI Specialist",
		Requirements: "programming, machine learning, math",
		Universities: "Carnegie Mellon, Stanford",
		Image:        "/static/careers/ai-specialist.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeTechEnthusiast, quiz.TypeAnalyticalMind},
	},
	{
		Career:       "Content Creator",
		Requirements: "marketing, design, writing",
		Universities: "USC, NYU",
		Image:        "/static/careers/content-creator.jpg",
		FitTypes:     []quiz.PersonalityType{quiz.TypeCreativeThinker, quiz.TypeCommunicativeLeader},
	},
}
