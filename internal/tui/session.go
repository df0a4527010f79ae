package tui

import (
	"strings"

	"github.com/idomanteu/claude-code-launcher/internal/model"
)

// Mode is the selector's current input mode
type Mode int

const (
	ModeBrowse Mode = iota // numbered list of the most recent projects
	ModeFilter             // live search across every project
)

// MaxShortcuts is how many projects Browse mode lists and numbers
const MaxShortcuts = 9

// Session is the selector state. It is owned by a single Model and only
// changed in response to key input.
type Session struct {
	mode         Mode
	projects     []model.Project // newest first, never reordered
	filter       string
	filtered     []model.Project
	browseCursor int
	filterCursor int
	dangerous    bool
}

// NewSession creates a session in Browse mode over projects
func NewSession(projects []model.Project) Session {
	return Session{
		mode:     ModeBrowse,
		projects: projects,
		filtered: filterProjects(projects, ""),
	}
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Projects() []model.Project { return s.projects }

func (s *Session) FilterText() string { return s.filter }

func (s *Session) Filtered() []model.Project { return s.filtered }

func (s *Session) Dangerous() bool { return s.dangerous }

// ToggleDangerous flips which command variant a selection launches
func (s *Session) ToggleDangerous() { s.dangerous = !s.dangerous }

// HiddenCount is the number of projects Browse mode does not list
func (s *Session) HiddenCount() int { return len(s.projects) - s.shortcutCount() }

func (s *Session) shortcutCount() int { return min(MaxShortcuts, len(s.projects)) }

// Visible returns the list the cursor currently moves over
func (s *Session) Visible() []model.Project {
	if s.mode == ModeFilter {
		return s.filtered
	}
	return s.projects[:s.shortcutCount()]
}

// Cursor returns the cursor index into Visible
func (s *Session) Cursor() int {
	if s.mode == ModeFilter {
		return s.filterCursor
	}
	return s.browseCursor
}

func (s *Session) setCursor(i int) {
	if s.mode == ModeFilter {
		s.filterCursor = i
	} else {
		s.browseCursor = i
	}
}

// MoveUp moves the cursor one entry up, stopping at the top
func (s *Session) MoveUp() {
	if c := s.Cursor(); c > 0 {
		s.setCursor(c - 1)
	}
}

// MoveDown moves the cursor one entry down, stopping at the last entry
func (s *Session) MoveDown() {
	if c := s.Cursor(); c < len(s.Visible())-1 {
		s.setCursor(c + 1)
	}
}

// Current returns the project under the cursor, if any
func (s *Session) Current() (model.Project, bool) {
	visible := s.Visible()
	c := s.Cursor()
	if c < 0 || c >= len(visible) {
		return model.Project{}, false
	}
	return visible[c], true
}

// Shortcut picks the n-th (1-based) Browse entry and moves the cursor onto it.
// Out of range numbers leave the session untouched.
func (s *Session) Shortcut(n int) (model.Project, bool) {
	if s.mode != ModeBrowse || n < 1 || n > s.shortcutCount() {
		return model.Project{}, false
	}
	s.browseCursor = n - 1
	return s.projects[n-1], true
}

// StartFilter switches to Filter mode with an empty query
func (s *Session) StartFilter() {
	s.mode = ModeFilter
	s.filter = ""
	s.filterCursor = 0
	s.refilter()
}

// StopFilter returns to Browse mode and clears the query
func (s *Session) StopFilter() {
	s.mode = ModeBrowse
	s.filter = ""
	s.refilter()
}

// AppendFilter adds a printable ASCII character to the query.
// It reports whether the character was accepted.
func (s *Session) AppendFilter(r rune) bool {
	if s.mode != ModeFilter || r < ' ' || r > '~' {
		return false
	}
	s.filter += string(r)
	s.refilter()
	return true
}

// Backspace drops the last character of the query
func (s *Session) Backspace() {
	if s.mode != ModeFilter || s.filter == "" {
		return
	}
	s.filter = s.filter[:len(s.filter)-1]
	s.refilter()
}

// refilter recomputes the filtered list and clamps the filter cursor into it
func (s *Session) refilter() {
	s.filtered = filterProjects(s.projects, s.filter)
	switch {
	case len(s.filtered) == 0:
		s.filterCursor = 0
	case s.filterCursor >= len(s.filtered):
		s.filterCursor = len(s.filtered) - 1
	case s.filterCursor < 0:
		s.filterCursor = 0
	}
}

// filterProjects keeps the projects whose name contains query, ignoring case,
// in their original order. It always returns a new slice.
func filterProjects(projects []model.Project, query string) []model.Project {
	needle := strings.ToLower(query)
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
