package models

import "strings"

// Project statuses
const (
	ProjectCompleted  = "completed"
	ProjectInProgress = "in-progress"
	ProjectPlanned    = "planned"
)

// Skill categories
const (
	SkillCategoryAI             = "AI"
	SkillCategoryMLOps          = "MLOps"
	SkillCategoryInfrastructure = "Infrastructure"
	SkillCategorySoft           = "Soft Skills"
)

// Skill proficiency levels, lowest first
var SkillProficiencies = []string{"Beginner", "Intermediate", "Advanced", "Expert"}

// Education is one entry of the resume's education history
type Education struct {
	School          string   `json:"school" yaml:"school"`
	Degree          string   `json:"degree" yaml:"degree"`
	Field           string   `json:"field" yaml:"field"`
	StartDate       string   `json:"startDate" yaml:"startDate"`
	EndDate         string   `json:"endDate" yaml:"endDate"`
	GPA             float64  `json:"gpa,omitempty" yaml:"gpa"`
	Honors          []string `json:"honors,omitempty" yaml:"honors"`
	Location        string   `json:"location" yaml:"location"`
	Rank            string   `json:"rank,omitempty" yaml:"rank"`
	Thesis          string   `json:"thesis,omitempty" yaml:"thesis"`
	Activities      []string `json:"activities,omitempty" yaml:"activities"`
	RelevantCourses []string `json:"relevantCourses,omitempty" yaml:"relevantCourses"`
}

// Experience is one position in the work history
type Experience struct {
	Company      string   `json:"company" yaml:"company"`
	Title        string   `json:"title" yaml:"title"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
	Location     string   `json:"location" yaml:"location"`
	Position     string   `json:"position" yaml:"position"`
	Highlights   []string `json:"highlights" yaml:"highlights"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// Resume holds the biography and career facts shown on the site
type Resume struct {
	Name           string       `json:"name" yaml:"name"`
	Title          string       `json:"title" yaml:"title"`
	Summary        string       `json:"summary" yaml:"summary"`
	Location       string       `json:"location" yaml:"location"`
	Email          string       `json:"email" yaml:"email"`
	Bio            string       `json:"bio" yaml:"bio"`
	CurrentFocus   []string     `json:"currentFocus" yaml:"currentFocus"`
	PersonalValues []string     `json:"personalValues" yaml:"personalValues"`
	Education      []Education  `json:"education" yaml:"education"`
	Experience     []Experience `json:"experience" yaml:"experience"`
	Mission        string       `json:"mission,omitempty" yaml:"mission"`
	Skills         []string     `json:"skills" yaml:"skills"`
	LinkedIn       string       `json:"linkedin,omitempty" yaml:"linkedin"`
	GitHub         string       `json:"github,omitempty" yaml:"github"`
	Twitter        string       `json:"twitter,omitempty" yaml:"twitter"`
	Instagram      string       `json:"instagram,omitempty" yaml:"instagram"`
}

// Project is a portfolio project card
type Project struct {
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Impact       []string `json:"impact" yaml:"impact"`
	GitHub       string   `json:"github,omitempty" yaml:"github"`
	Demo         string   `json:"demo,omitempty" yaml:"demo"`
	Image        string   `json:"image,omitempty" yaml:"image"`
	Category     []string `json:"category" yaml:"category"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured"`
	Status       string   `json:"status" yaml:"status"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate,omitempty" yaml:"endDate"`
	Link         string   `json:"link,omitempty" yaml:"link"`
}

// HasCategory reports whether the project is tagged with category (case-insensitive)
func (p Project) HasCategory(category string) bool {
	for _, c := range p.Category {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}

// Skill is one entry of the skills grid
type Skill struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category" yaml:"category"`
	Proficiency string `json:"proficiency" yaml:"proficiency"`
	Description string `json:"description,omitempty" yaml:"description"`
	Tooltip     string `json:"tooltip,omitempty" yaml:"tooltip"`
}

// Social is a link to an external profile
type Social struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
	Icon     string `json:"icon" yaml:"icon"`
}

// Note is a short written post
type Note struct {
	Title       string `json:"title" yaml:"title"`
	Slug        string `json:"slug" yaml:"slug"`
	Summary     string `json:"summary" yaml:"summary"`
	Category    string `json:"category" yaml:"category"`
	Icon        string `json:"icon" yaml:"icon"`
	PublishedAt string `json:"publishedAt" yaml:"publishedAt"`
	Content     string `json:"content,omitempty" yaml:"content"`
}

// Publication is a paper or article
type Publication struct {
	Title    string   `json:"title" yaml:"title"`
	Authors  []string `json:"authors" yaml:"authors"`
	Venue    string   `json:"venue" yaml:"venue"`
	Year     int      `json:"year" yaml:"year"`
	Abstract string   `json:"abstract" yaml:"abstract"`
	DOI      string   `json:"doi,omitempty" yaml:"doi"`
	PDFLink  string   `json:"pdfLink,omitempty" yaml:"pdfLink"`
	Topics   []string `json:"topics" yaml:"topics"`
}

// HasTopic reports whether the publication covers topic (case-insensitive)
func (p Publication) HasTopic(topic string) bool {
	for _, t := range p.Topics {
		if strings.EqualFold(t, topic) {
			return true
		}
	}
	return false
}
