package content

import (
	"strings"
	"testing"

	"github.com/verte-zerg/folio/internal/model"
)

func TestSkillLevelsInRange(t *testing.T) {
	if len(Skills) == 0 {
		t.Fatalf("expected skills")
	}
	for _, s := range Skills {
		if s.Level < 0 || s.Level > 100 {
			t.Fatalf("skill %q level %d out of range", s.Name, s.Level)
		}
	}
}

func TestExperienceStatuses(t *testing.T) {
	current := 0
	for _, e := range Experience {
		switch e.Status {
		case model.StatusCurrent:
			current++
		case model.StatusCompleted:
		default:
			t.Fatalf("unexpected status %q for %q", e.Status, e.Title)
		}
	}
	if current != 1 {
		t.Fatalf("expected exactly one current position, got %d", current)
	}
}

func TestLinksCoverEveryKind(t *testing.T) {
	prefixes := map[model.LinkKind]string{
		model.LinkMail:     "mailto:",
		model.LinkPhone:    "tel:",
		model.LinkGitHub:   "https://github.com/",
		model.LinkLinkedIn: "https://linkedin.com/",
	}
	for kind, prefix := range prefixes {
		link, ok := LinkFor(kind)
		if !ok {
			t.Fatalf("missing %s link", kind)
		}
		if !strings.HasPrefix(link.URL, prefix) {
			t.Fatalf("expected %s link to start with %q, got %q", kind, prefix, link.URL)
		}
	}
}
