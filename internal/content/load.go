package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezmnysniper7/portfolio/internal/content/data"
	"github.com/ezmnysniper7/portfolio/internal/platform/i18n"
)

// Dataset file names under each locale directory.
const (
	ProjectsFile   = "projects.yaml"
	ExperienceFile = "experience.yaml"
	SkillsFile     = "skills.yaml"
	ProfileFile    = "profile.yaml"
)

// LoadEmbedded loads the datasets compiled into the binary.
func LoadEmbedded() (*Resolver, error) {
	return Load(data.FS)
}

// Load decodes and validates every dataset for every supported locale.
// Any missing file, unknown field, or misaligned slug is an error.
func Load(fsys fs.FS) (*Resolver, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}

	projects := map[string][]Project{}
	experience := map[string][]Experience{}
	skills := map[string][]SkillGroup{}
	profiles := map[string]Profile{}

	for _, locale := range i18n.SupportedStrings() {
		var (
			p   []Project
			e   []Experience
			s   []SkillGroup
			pro Profile
		)
		if err := decodeFile(fsys, locale, ProjectsFile, &p); err != nil {
			return nil, err
		}
		if err := decodeFile(fsys, locale, ExperienceFile, &e); err != nil {
			return nil, err
		}
		if err := decodeFile(fsys, locale, SkillsFile, &s); err != nil {
			return nil, err
		}
		if err := decodeFile(fsys, locale, ProfileFile, &pro); err != nil {
			return nil, err
		}
		if err := validateLocale(locale, p, e, s, pro); err != nil {
			return nil, err
		}
		projects[locale] = p
		experience[locale] = e
		skills[locale] = s
		profiles[locale] = pro
	}

	defaultLocale := i18n.Default().String()
	r := &Resolver{}
	var err error
	if r.projects, err = NewLocalized(defaultLocale, projects); err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	if r.experience, err = NewLocalized(defaultLocale, experience); err != nil {
		return nil, fmt.Errorf("experience: %w", err)
	}
	if r.skills, err = NewLocalized(defaultLocale, skills); err != nil {
		return nil, fmt.Errorf("skills: %w", err)
	}
	if r.profiles, err = NewLocalized(defaultLocale, profiles); err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	if err := CheckKeys(r.projects, func(p Project) string { return p.Slug }); err != nil {
		return nil, fmt.Errorf("project slugs: %w", err)
	}
	if err := CheckKeys(r.experience, func(e Experience) string { return e.ID }); err != nil {
		return nil, fmt.Errorf("experience ids: %w", err)
	}
	return r, nil
}

func decodeFile(fsys fs.FS, locale, name string, target any) error {
	p := path.Join(locale, name)
	raw, err := fs.ReadFile(fsys, p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("decode %s: empty document", p)
		}
		return fmt.Errorf("decode %s: %w", p, err)
	}
	return nil
}

func validateLocale(locale string, projects []Project, experience []Experience, skills []SkillGroup, profile Profile) error {
	if len(projects) == 0 {
		return fmt.Errorf("locale %s: no projects", locale)
	}
	for _, p := range projects {
		if err := validateProject(p); err != nil {
			return fmt.Errorf("locale %s: project %q: %w", locale, p.Slug, err)
		}
	}
	for _, e := range experience {
		if err := validateExperience(e); err != nil {
			return fmt.Errorf("locale %s: experience %q: %w", locale, e.ID, err)
		}
	}
	for _, g := range skills {
		if strings.TrimSpace(g.Category) == "" {
			return fmt.Errorf("locale %s: skill group without category", locale)
		}
		for _, s := range g.Skills {
			if strings.TrimSpace(s.Name) == "" {
				return fmt.Errorf("locale %s: skill group %q: skill without name", locale, g.Category)
			}
			if !s.Level.Valid() {
				return fmt.Errorf("locale %s: skill %q: unknown level %q", locale, s.Name, s.Level)
			}
		}
	}
	if strings.TrimSpace(profile.Name) == "" {
		return fmt.Errorf("locale %s: profile name is required", locale)
	}
	return nil
}

func validateProject(p Project) error {
	if p.Slug != Slugify(p.Slug) || p.Slug == "" {
		return fmt.Errorf("slug must be lowercase words joined by hyphens")
	}
	if strings.TrimSpace(p.Title) == "" {
		return errors.New("title is required")
	}
	if !p.Category.Valid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	if p.StartDate != nil && p.StartDate.IsPresent() {
		return errors.New("start date cannot be Present")
	}
	if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(*p.EndDate) {
		return fmt.Errorf("end date %s precedes start date %s", p.EndDate, p.StartDate)
	}
	for _, link := range []string{p.GitHubURL, p.DemoURL} {
		if err := validateURL(link); err != nil {
			return err
		}
	}
	return nil
}

func validateExperience(e Experience) error {
	if strings.TrimSpace(e.Company) == "" || strings.TrimSpace(e.Position) == "" {
		return errors.New("company and position are required")
	}
	if e.StartDate.IsZero() || e.StartDate.IsPresent() {
		return errors.New("start date must be a concrete month")
	}
	if e.EndDate.IsZero() {
		return errors.New("end date is required")
	}
	if e.StartDate.After(e.EndDate) {
		return fmt.Errorf("end date %s precedes start date %s", e.EndDate, e.StartDate)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("unknown employment type %q", e.Type)
	}
	return validateURL(e.CompanyURL)
}

func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("invalid link %q", raw)
	}
	return nil
}
