package content

import (
	"errors"
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Portfolio {
	t.Helper()
	p, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestLoadEmbeddedContent(t *testing.T) {
	p := mustLoad(t)

	if p.Resume.Name == "" || len(p.Resume.Experience) == 0 {
		t.Errorf("resume not populated: %+v", p.Resume)
	}
	if len(p.Projects) != 3 {
		t.Errorf("projects = %d, want 3", len(p.Projects))
	}
	if len(p.Socials) == 0 || len(p.Skills) == 0 || len(p.Notes) == 0 || len(p.Publications) == 0 {
		t.Error("a content table is empty")
	}
}

func TestFilterProjects(t *testing.T) {
	p := mustLoad(t)

	tests := []struct {
		name   string
		filter ProjectFilter
		want   []string
	}{
		{"all", ProjectFilter{}, []string{"AI-Powered Medical Image Analysis", "LLM-Powered Research Assistant", "MLOps Pipeline Framework"}},
		{"featured", ProjectFilter{FeaturedOnly: true}, []string{"AI-Powered Medical Image Analysis", "LLM-Powered Research Assistant"}},
		{"category case-insensitive", ProjectFilter{Category: "mlops"}, []string{"AI-Powered Medical Image Analysis", "MLOps Pipeline Framework"}},
		{"status", ProjectFilter{Status: "in-progress"}, []string{"LLM-Powered Research Assistant"}},
		{"no match", ProjectFilter{Category: "Gaming"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.FilterProjects(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d projects, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Title != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, got[i].Title, tt.want[i])
				}
			}
		})
	}
}

func TestSkillsByCategory(t *testing.T) {
	p := mustLoad(t)

	if got := p.SkillsByCategory(""); len(got) != len(p.Skills) {
		t.Errorf("empty category returned %d of %d skills", len(got), len(p.Skills))
	}
	for _, s := range p.SkillsByCategory("soft skills") {
		if s.Category != "Soft Skills" {
			t.Errorf("unexpected category %q", s.Category)
		}
	}
}

func TestRecentNotes(t *testing.T) {
	p := mustLoad(t)

	notes := p.RecentNotes(0)
	for i := 1; i < len(notes); i++ {
		if notes[i-1].PublishedAt < notes[i].PublishedAt {
			t.Fatalf("notes not newest first: %q before %q", notes[i-1].PublishedAt, notes[i].PublishedAt)
		}
	}
	if got := p.RecentNotes(2); len(got) != 2 || got[0].Slug != "css-shell" {
		t.Errorf("RecentNotes(2) = %+v", got)
	}
}

func TestNoteBySlug(t *testing.T) {
	p := mustLoad(t)

	n, err := p.NoteBySlug("ai-workflow")
	if err != nil || n.Category != "AI" {
		t.Fatalf("NoteBySlug(ai-workflow) = %+v, %v", n, err)
	}
	if _, err := p.NoteBySlug("missing"); !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("err = %v, want ErrNoteNotFound", err)
	}
}

func TestPublicationsByTopic(t *testing.T) {
	p := mustLoad(t)

	all := p.PublicationsByTopic("")
	if len(all) != 2 || all[0].Year < all[1].Year {
		t.Errorf("publications not newest first: %+v", all)
	}
	if got := p.PublicationsByTopic("education"); len(got) != 1 || got[0].Year != 2022 {
		t.Errorf("topic filter = %+v", got)
	}
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name, doc, wantErr string
	}{
		{"bad status", "projects:\n  - {title: X, status: abandoned}\n", "invalid status"},
		{"bad category", "skills:\n  - {name: Go, category: Languages, proficiency: Expert}\n", "invalid category"},
		{"bad proficiency", "skills:\n  - {name: Go, category: AI, proficiency: Guru}\n", "invalid proficiency"},
		{"empty slug", "notes:\n  - {title: X}\n", "empty slug"},
		{"duplicate slug", "notes:\n  - {title: A, slug: a}\n  - {title: B, slug: a}\n", "duplicate note slug"},
		{"malformed yaml", "projects: [\n", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
