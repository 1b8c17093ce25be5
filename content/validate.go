package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDuplicateID  = errors.New("duplicate id")
	ErrMissingField = errors.New("missing required field")
	ErrInvalidDate  = errors.New("invalid date")
)

// Validate reports every problem in c joined into one error, nil when clean
func Validate(c *Content) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Site.Name == "" {
		fail("%s: name: %w", SiteFile, ErrMissingField)
	}

	ids := newIDSet()
	for i, e := range c.Events {
		where := fmt.Sprintf("%s[%d]", EventsFile, i)
		ids.check(where, e.ID, fail)
		if e.Title == "" {
			fail("%s: title: %w", where, ErrMissingField)
		}
		if e.Date == "" {
			fail("%s: date: %w", where, ErrMissingField)
		} else if _, err := e.Start(time.UTC); err != nil {
			fail("%s: %q %q: %w", where, e.Date, e.Time, ErrInvalidDate)
		}
	}

	ids = newIDSet()
	for i, m := range c.Team {
		where := fmt.Sprintf("%s[%d]", TeamFile, i)
		ids.check(where, m.ID, fail)
		if m.Name == "" {
			fail("%s: name: %w", where, ErrMissingField)
		}
		if m.Division == "" {
			fail("%s: division: %w", where, ErrMissingField)
		}
	}

	ids = newIDSet()
	for i, img := range c.Gallery {
		where := fmt.Sprintf("%s[%d]", GalleryFile, i)
		ids.check(where, img.ID, fail)
		if img.Title == "" {
			fail("%s: title: %w", where, ErrMissingField)
		}
		if img.Image == "" {
			fail("%s: image: %w", where, ErrMissingField)
		}
		if img.Date != "" {
			if _, err := time.Parse(DateLayout, img.Date); err != nil {
				fail("%s: %q: %w", where, img.Date, ErrInvalidDate)
			}
		}
	}

	return errors.Join(errs...)
}

// idSet tracks ids within one collection
type idSet map[uuid.UUID]string

func newIDSet() idSet { return make(idSet) }

func (s idSet) check(where string, id uuid.UUID, fail func(string, ...any)) {
	if id == uuid.Nil {
		fail("%s: id: %w", where, ErrMissingField)
		return
	}
	if first, ok := s[id]; ok {
		fail("%s: %s also used by %s: %w", where, id, first, ErrDuplicateID)
		return
	}
	s[id] = where
}
