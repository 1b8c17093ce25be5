package content

import (
	"time"

	"github.com/google/uuid"
)

// Date and time layouts used by every content file
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Event is one announced club session
type Event struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Venue       string    `json:"venue"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
}

// Start parses Date and Time in loc; a missing time means start of day
func (e Event) Start(loc *time.Location) (time.Time, error) {
	if e.Time == "" {
		return time.ParseInLocation(DateLayout, e.Date, loc)
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, loc)
}

// Member is one person on the team page
type Member struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Division string    `json:"division"`
	Image    string    `json:"image"`
	Bio      string    `json:"bio"`
	Link     string    `json:"link,omitempty"`
	Tags     []string  `json:"tags,omitempty"`
}

// Image is one gallery entry; Image holds the asset path
type Image struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Image   string    `json:"image"`
	Caption string    `json:"caption"`
	Date    string    `json:"date"`
}

// Link is a labelled external URL
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Contact holds the club's contact details
type Contact struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Links   []Link `json:"links"`
}

// Site holds club-wide text
type Site struct {
	Name    string   `json:"name"`
	Tagline string   `json:"tagline"`
	Mission string   `json:"mission"`
	About   []string `json:"about"`
	Contact Contact  `json:"contact"`
}

// Content is everything the pages render
type Content struct {
	Site    Site
	Events  []Event
	Team    []Member
	Gallery []Image
}

// Counts summarises loaded collections
func (c *Content) Counts() (events, members, images int) {
	return len(c.Events), len(c.Team), len(c.Gallery)
}
