package content

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/uuid"
)

func testFS(events, team, gallery string) fstest.MapFS {
	return fstest.MapFS{
		SiteFile:    {Data: []byte(`{"name":"Test Club","tagline":"t","mission":"m","about":["a"],"contact":{"email":"e@x","links":[]}}`)},
		EventsFile:  {Data: []byte(events)},
		TeamFile:    {Data: []byte(team)},
		GalleryFile: {Data: []byte(gallery)},
	}
}

// TestBundledContent verifies the embedded files load and validate cleanly
func TestBundledContent(t *testing.T) {
	c, err := Load(Bundled())
	if err != nil {
		t.Fatalf("Load bundled: %v", err)
	}
	if err := Validate(c); err != nil {
		t.Fatalf("Bundled content invalid: %v", err)
	}

	events, members, images := c.Counts()
	if events == 0 || members == 0 || images == 0 {
		t.Errorf("Expected non-empty collections, got %d events, %d members, %d images", events, members, images)
	}
	if c.Site.Name == "" || len(c.Site.Contact.Links) == 0 {
		t.Error("Expected site name and contact links")
	}
}

// TestLoadDirEmptyUsesBundled verifies an empty dir selects embedded content
func TestLoadDirEmptyUsesBundled(t *testing.T) {
	c, err := LoadDir("")
	if err != nil {
		t.Fatalf("LoadDir(\"\"): %v", err)
	}
	if len(c.Events) == 0 {
		t.Error("Expected bundled events")
	}
}

// TestLoadDirFromDisk verifies files on disk replace the bundled set
func TestLoadDirFromDisk(t *testing.T) {
	dir := t.TempDir()
	for name, f := range testFS(`[]`, `[]`, `[]`) {
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if c.Site.Name != "Test Club" {
		t.Errorf("Expected disk site name, got %q", c.Site.Name)
	}
	if len(c.Events) != 0 {
		t.Errorf("Expected no events, got %d", len(c.Events))
	}
}

// TestLoadDirMissing verifies a missing directory is an error
func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing dir")
	}
}

// TestLoadErrors verifies decode failures name the file
func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"malformed json", testFS(`[{`, `[]`, `[]`)},
		{"unknown field", testFS(`[{"titel":"typo"}]`, `[]`, `[]`)},
		{"bad uuid", testFS(`[]`, `[{"id":"not-a-uuid","name":"x"}]`, `[]`)},
		{"missing file", fstest.MapFS{SiteFile: {Data: []byte(`{}`)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.fsys); err == nil {
				t.Error("Expected load error")
			}
		})
	}
}

// TestValidateReportsEveryProblem verifies problems are joined, not first-only
func TestValidateReportsEveryProblem(t *testing.T) {
	id := uuid.New()
	c := &Content{
		Site: Site{Name: "Club"},
		Events: []Event{
			{ID: id, Title: "A", Date: "2025-01-01"},
			{ID: id, Title: "B", Date: "2025-01-02"},      // duplicate
			{ID: uuid.New(), Date: "2025-01-03"},          // no title
			{ID: uuid.New(), Title: "D", Date: "Jan 4th"}, // bad date
		},
		Team: []Member{
			{ID: id, Name: "Same id as an event is fine", Division: "X"},
			{Name: "No id", Division: "X"},
		},
		Gallery: []Image{
			{ID: uuid.New(), Title: "No image"},
		},
	}

	err := Validate(c)
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, ErrDuplicateID) {
		t.Error("Expected ErrDuplicateID")
	}
	if !errors.Is(err, ErrMissingField) {
		t.Error("Expected ErrMissingField")
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Error("Expected ErrInvalidDate")
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Expected joined error, got %T", err)
	}
                                               // duplicate, no title, bad date, nil member id, missing gallery image
	if n := len(joined.Unwrap()); n != 5 {
		t.Errorf("Expected 5 problems, got %d: %v", n, err)
	}
}

// TestValidateMissingSiteName verifies the site needs a name
func TestValidateMissingSiteName(t *testing.T) {
	if err := Validate(&Content{}); !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}
}

// TestUpcomingAndPast verifies partitioning and ordering around now
func TestUpcomingAndPast(t *testing.T) {
	c := &Content{Events: []Event{
		{Title: "past-old", Date: "2024-01-10", Time: "10:00"},
		{Title: "future-far", Date: "2026-03-01"},
		{Title: "past-recent", Date: "2025-05-31", Time: "23:00"},
		{Title: "future-near", Date: "2025-06-01", Time: "18:00"},
		{Title: "broken", Date: "someday"},
		{Title: "now", Date: "2025-06-01", Time: "12:00"},
	}}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	titles := func(es []Event) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Title)
		}
		return out
	}

	wantUp := []string{"now", "future-near", "future-far"}
	if got := titles(c.Upcoming(now)); !slices.Equal(got, wantUp) {
		t.Errorf("Upcoming = %v, want %v", got, wantUp)
	}
	wantPast := []string{"past-recent", "past-old"}
	if got := titles(c.Past(now)); !slices.Equal(got, wantPast) {
		t.Errorf("Past = %v, want %v", got, wantPast)
	}
}

// TestTeamByDivision verifies grouping keeps first-appearance order
func TestTeamByDivision(t *testing.T) {
	c := &Content{Team: []Member{
		{Name: "a", Division: "Rover"},
		{Name: "b", Division: "Orbiter"},
		{Name: "c", Division: "Rover"},
		{Name: "d", Division: "Skywatch"},
	}}

	got := c.TeamByDivision()
	if len(got) != 3 {
		t.Fatalf("Expected 3 divisions, got %d", len(got))
	}
	wantNames := []string{"Rover", "Orbiter", "Skywatch"}
	for i, d := range got {
		if d.Name != wantNames[i] {
			t.Errorf("Division %d = %q, want %q", i, d.Name, wantNames[i])
		}
	}
	if len(got[0].Members) != 2 || got[0].Members[1].Name != "c" {
		t.Errorf("Rover members = %+v", got[0].Members)
	}
}

// TestEventStartWithoutTime verifies a date-only event starts at midnight
func TestEventStartWithoutTime(t *testing.T) {
	start, err := Event{Date: "2025-02-14"}.Start(time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if !start.Equal(time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected start %v", start)
	}
}

// TestServiceInit verifies the service loads bundled content
func TestServiceInit(t *testing.T) {
	s := NewService("")
	if s.Content() != nil {
		t.Error("Content should be nil before Init")
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if s.Content() == nil || len(s.Content().Team) == 0 {
		t.Error("Expected loaded team")
	}
}

// TestServiceInitInvalid verifies invalid content fails Init
func TestServiceInitInvalid(t *testing.T) {
	dir := t.TempDir()
	files := testFS(`[{"title":"no id","date":"2025-01-01"}]`, `[]`, `[]`)
	for name, f := range files {
		if err := os.WriteFile(filepath.Join(dir, name), f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	err := NewService(dir).Init()
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}
}
