package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
)

// File names read from a content directory
const (
	SiteFile    = "site.json"
	EventsFile  = "events.json"
	TeamFile    = "team.json"
	GalleryFile = "gallery.json"
)

//go:embed data/*.json
var bundled embed.FS

// Bundled returns the filesystem compiled into the binary
func Bundled() fs.FS {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// Only fails on a malformed path literal
		panic(err)
	}
	return sub
}

// LoadDir loads content files from a directory on disk, falling back to the
// bundled files when dir is empty
func LoadDir(dir string) (*Content, error) {
	if dir == "" {
		return Load(Bundled())
	}
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s: not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load decodes all content files from fsys; it does not validate
func Load(fsys fs.FS) (*Content, error) {
	c := &Content{}

	if err := decodeFile(fsys, SiteFile, &c.Site); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, EventsFile, &c.Events); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, TeamFile, &c.Team); err != nil {
		return nil, err
	}
	if err := decodeFile(fsys, GalleryFile, &c.Gallery); err != nil {
		return nil, err
	}

	events, members, images := c.Counts()
	log.Printf("content: loaded %d events, %d members, %d images", events, members, images)
	return c, nil
}

func decodeFile(fsys fs.FS, name string, v any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
