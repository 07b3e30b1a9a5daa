// Package content resolves the portfolio datasets for a locale.
//
// Lookups never fail on locale: an unsupported or unknown locale receives
// the default locale's data. Strict locale validation belongs to routing.
package content

import "slices"

// Resolver serves immutable, validated datasets. It is safe for concurrent
// use once returned from Load.
type Resolver struct {
	projects   LocalizedCollection[Project]
	experience LocalizedCollection[Experience]
	skills     LocalizedCollection[SkillGroup]
	profiles   Localized[Profile]
}

// Projects returns the locale's projects in authored order.
func (r *Resolver) Projects(locale string) []Project {
	return slices.Clone(r.projects.Get(locale))
}

// Project returns the project with slug in the locale's dataset.
func (r *Resolver) Project(locale, slug string) (Project, bool) {
	for _, p := range r.projects.Get(locale) {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// FeaturedProjects returns the featured subset in authored order.
func (r *Resolver) FeaturedProjects(locale string) []Project {
	var out []Project
	for _, p := range r.projects.Get(locale) {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Stats summarizes the locale's projects.
func (r *Resolver) Stats(locale string) ProjectStats {
	projects := r.projects.Get(locale)
	stats := ProjectStats{Total: len(projects)}
	tech := map[string]struct{}{}
	for _, p := range projects {
		if p.Featured {
			stats.Featured++
		}
		if p.Category == CategoryProfessional {
			stats.Professional++
		}
		for _, name := range p.TechStack {
			tech[name] = struct{}{}
		}
	}
	stats.Technologies = len(tech)
	return stats
}

// Experience returns the locale's timeline in authored order.
func (r *Resolver) Experience(locale string) []Experience {
	return slices.Clone(r.experience.Get(locale))
}

// Skills returns the locale's skill groups.
func (r *Resolver) Skills(locale string) []SkillGroup {
	return slices.Clone(r.skills.Get(locale))
}

// Profile returns the locale's site owner metadata.
func (r *Resolver) Profile(locale string) Profile {
	return r.profiles.Get(locale)
}

// Slugs returns the default locale's project slugs. Load guarantees every
// locale has the same set.
func (r *Resolver) Slugs() []string {
	projects := r.projects.Get(r.projects.DefaultLocale())
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Slug)
	}
	return out
}

// IsFeatured reports whether slug is featured in the default locale.
func (r *Resolver) IsFeatured(slug string) bool {
	p, ok := r.Project(r.projects.DefaultLocale(), slug)
	return ok && p.Featured
}
