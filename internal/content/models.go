package content

import "github.com/ezmnysniper7/portfolio/internal/platform/i18n/datefmt"

// Category classifies a project.
type Category string

const (
	CategoryProfessional Category = "professional"
	CategoryPersonal     Category = "personal"
	CategoryOpenSource   Category = "open-source"
)

// Valid reports whether c is empty or a known category.
func (c Category) Valid() bool {
	switch c {
	case "", CategoryProfessional, CategoryPersonal, CategoryOpenSource:
		return true
	}
	return false
}

// Project is one portfolio entry. Slug is the identity shared across
// locales; every other field is localized.
type Project struct {
	Slug             string             `yaml:"slug"`
	Title            string             `yaml:"title"`
	Description      string             `yaml:"description"`
	LongDescription  string             `yaml:"long_description"`
	TechStack        []string           `yaml:"tech_stack"`
	Role             string             `yaml:"role"`
	Responsibilities []string           `yaml:"responsibilities"`
	Highlights       []string           `yaml:"highlights"`
	StartDate        *datefmt.YearMonth `yaml:"start_date"`
	EndDate          *datefmt.YearMonth `yaml:"end_date"`
	GitHubURL        string             `yaml:"github_url"`
	DemoURL          string             `yaml:"demo_url"`
	ImageURL         string             `yaml:"image_url"`
	Featured         bool               `yaml:"featured"`
	Tags             []string           `yaml:"tags"`
	Category         Category           `yaml:"category"`
	Metrics          []string           `yaml:"metrics"`
}

// EmploymentType classifies an experience entry.
type EmploymentType string

const (
	FullTime   EmploymentType = "full-time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "internship"
	Freelance  EmploymentType = "freelance"
)

// Valid reports whether t is empty or a known employment type.
func (t EmploymentType) Valid() bool {
	switch t {
	case "", FullTime, Contract, Internship, Freelance:
		return true
	}
	return false
}

// Experience is one position on the work timeline.
type Experience struct {
	ID               string            `yaml:"id"`
	Company          string            `yaml:"company"`
	CompanyURL       string            `yaml:"company_url"`
	Position         string            `yaml:"position"`
	Location         string            `yaml:"location"`
	StartDate        datefmt.YearMonth `yaml:"start_date"`
	EndDate          datefmt.YearMonth `yaml:"end_date"`
	Description      string            `yaml:"description"`
	Responsibilities []string          `yaml:"responsibilities"`
	Achievements     []string          `yaml:"achievements"`
	TechStack        []string          `yaml:"tech_stack"`
	Type             EmploymentType    `yaml:"type"`
}

// Level is a self-assessed skill level.
type Level string

const (
	Expert     Level = "expert"
	Proficient Level = "proficient"
	Familiar   Level = "familiar"
)

// Valid reports whether l is empty or a known level.
func (l Level) Valid() bool {
	switch l {
	case "", Expert, Proficient, Familiar:
		return true
	}
	return false
}

// Skill is one named skill.
type Skill struct {
	Name              string `yaml:"name"`
	Level             Level  `yaml:"level"`
	YearsOfExperience int    `yaml:"years_of_experience"`
}

// SkillGroup is a labelled list of skills.
type SkillGroup struct {
	Category string  `yaml:"category"`
	Skills   []Skill `yaml:"skills"`
}

// Social holds profile links; empty fields are omitted from pages.
type Social struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Twitter  string `yaml:"twitter"`
	Website  string `yaml:"website"`
}

// Education is the degree line on the about page.
type Education struct {
	School   string `yaml:"school"`
	Degree   string `yaml:"degree"`
	Location string `yaml:"location"`
}

// Profile is the per-locale site owner metadata.
type Profile struct {
	Name             string    `yaml:"name"`
	Title            string    `yaml:"title"`
	Tagline          string    `yaml:"tagline"`
	Description      string    `yaml:"description"`
	Email            string    `yaml:"email"`
	Location         string    `yaml:"location"`
	AvailableForWork bool      `yaml:"available_for_work"`
	Social           Social    `yaml:"social"`
	ResumeURL        string    `yaml:"resume_url"`
	Summary          []string  `yaml:"summary"`
	Focus            []string  `yaml:"focus"`
	Education        Education `yaml:"education"`
}

// ProjectStats summarizes one locale's projects.
type ProjectStats struct {
	Total        int
	Featured     int
	Professional int
	Technologies int
}
