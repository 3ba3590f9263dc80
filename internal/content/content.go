// Package content serves the static portfolio tables: resume, projects,
// skills, socials, notes and publications.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/yelnady/personal-portfolio/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embedded []byte

// ErrNoteNotFound is returned when no note has the requested slug
var ErrNoteNotFound = errors.New("note not found")

// Portfolio holds every content table of the site
type Portfolio struct {
	Resume       models.Resume        `yaml:"resume"`
	Projects     []models.Project     `yaml:"projects"`
	Skills       []models.Skill       `yaml:"skills"`
	Socials      []models.Social      `yaml:"socials"`
	Notes        []models.Note        `yaml:"notes"`
	Publications []models.Publication `yaml:"publications"`
}

// ProjectFilter narrows FilterProjects. Zero values match everything.
type ProjectFilter struct {
	Category     string
	Status       string
	FeaturedOnly bool
}

// Load parses the content compiled into the binary
func Load() (*Portfolio, error) {
	return Parse(embedded)
}

// Parse decodes and validates a YAML portfolio document
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio content: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Portfolio) validate() error {
	statuses := []string{models.ProjectCompleted, models.ProjectInProgress, models.ProjectPlanned}
	for _, proj := range p.Projects {
		if !slices.Contains(statuses, proj.Status) {
			return fmt.Errorf("project %q: invalid status %q", proj.Title, proj.Status)
		}
	}

	categories := []string{models.SkillCategoryAI, models.SkillCategoryMLOps, models.SkillCategoryInfrastructure, models.SkillCategorySoft}
	for _, s := range p.Skills {
		if !slices.Contains(categories, s.Category) {
			return fmt.Errorf("skill %q: invalid category %q", s.Name, s.Category)
		}
		if !slices.Contains(models.SkillProficiencies, s.Proficiency) {
			return fmt.Errorf("skill %q: invalid proficiency %q", s.Name, s.Proficiency)
		}
	}

	seen := make(map[string]bool, len(p.Notes))
	for _, n := range p.Notes {
		if n.Slug == "" {
			return fmt.Errorf("note %q: empty slug", n.Title)
		}
		if seen[n.Slug] {
			return fmt.Errorf("duplicate note slug %q", n.Slug)
		}
		seen[n.Slug] = true
	}
	return nil
}

// FilterProjects returns the projects matching f, in their original order
func (p *Portfolio) FilterProjects(f ProjectFilter) []models.Project {
	out := make([]models.Project, 0, len(p.Projects))
	for _, proj := range p.Projects {
		if f.FeaturedOnly && !proj.Featured {
			continue
		}
		if f.Status != "" && proj.Status != f.Status {
			continue
		}
		if f.Category != "" && !proj.HasCategory(f.Category) {
			continue
		}
		out = append(out, proj)
	}
	return out
}

// SkillsByCategory returns all skills, or only those in category when set
func (p *Portfolio) SkillsByCategory(category string) []models.Skill {
	out := make([]models.Skill, 0, len(p.Skills))
	for _, s := range p.Skills {
		if category == "" || strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}

// RecentNotes returns notes newest first. limit <= 0 means all.
func (p *Portfolio) RecentNotes(limit int) []models.Note {
	notes := slices.Clone(p.Notes)
	// publishedAt is an ISO date, so string order is date order
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].PublishedAt > notes[j].PublishedAt
	})
	if limit > 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

// NoteBySlug looks up a single note
func (p *Portfolio) NoteBySlug(slug string) (models.Note, error) {
	for _, n := range p.Notes {
		if n.Slug == slug {
			return n, nil
		}
	}
	return models.Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, slug)
}

// PublicationsByTopic returns publications newest year first, optionally
// restricted to one topic
func (p *Portfolio) PublicationsByTopic(topic string) []models.Publication {
	out := make([]models.Publication, 0, len(p.Publications))
	for _, pub := range p.Publications {
		if topic == "" || pub.HasTopic(topic) {
			out = append(out, pub)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Year > out[j].Year
	})
	return out
}
