// Package db loads controller mapping databases (gamecontrollerdb.txt
// style files), feeds each line through the mapping parser and keeps a
// GUID-indexed set of compiled profiles with live reload.
package db

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/soar/ControllerMapDB/internal/gamepad"
	"github.com/soar/ControllerMapDB/internal/guid"
	"github.com/soar/ControllerMapDB/internal/mapping"
)

// Entry is one parsed database line.
type Entry struct {
	GUID     guid.GUID
	Name     string
	Platform string
	Profile  *gamepad.Profile
	// Issues holds the field-local parse errors of the line. The entry
	// is still usable; the affected fields are simply absent.
	Issues []*mapping.Error
	Source string
	Line   int
}

// DB is the mapping database. Safe for concurrent use.
type DB struct {
	mu       sync.RWMutex
	paths    []string
	platform string
	entries  []*Entry
	byGUID   map[guid.GUID]*Entry
}

// New returns an empty database. Entries carrying a platform tag are
// kept only when it matches platform (case-insensitive); an empty
// platform keeps everything.
func New(paths []string, platform string) *DB {
	return &DB{
		paths:    paths,
		platform: platform,
		byGUID:   make(map[guid.GUID]*Entry),
	}
}

// Load reads all configured database files. Lines that fail fatally are
// logged and skipped; the rest of the file is still loaded.
func (d *DB) Load() error {
	var entries []*Entry
	for _, path := range d.paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		loaded, err := parseAll(f, path, d.platform)
		f.Close()
		if err != nil {
			return err
		}
		entries = append(entries, loaded...)
	}

	byGUID := make(map[guid.GUID]*Entry, len(entries))
	for _, e := range entries {
		// Later files and lines win, same as SDL's own loading order.
		byGUID[e.GUID] = e
	}

	d.mu.Lock()
	d.entries = entries
	d.byGUID = byGUID
	d.mu.Unlock()

	log.Printf("Mapping database loaded: %d entries from %d file(s)", len(entries), len(d.paths))
	return nil
}

func parseAll(r io.Reader, source, platform string) ([]*Entry, error) {
	var entries []*Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := ParseLine(line)
		if err != nil {
			log.Printf("%s:%d: skipping mapping: %v", source, lineNo, err)
			continue
		}
		entry.Source = source
		entry.Line = lineNo

		if entry.Platform != "" && platform != "" &&
			!strings.EqualFold(entry.Platform, platform) {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("db: reading %s: %w", source, err)
	}
	return entries, nil
}

// ParseLine runs the tokenizer over one mapping line and compiles the
// result. Fatal parse errors abort the line; field-local errors are
// collected on the entry.
func ParseLine(line string) (*Entry, error) {
	p := mapping.NewParser(line)
	entry := &Entry{Profile: &gamepad.Profile{}}

	for {
		tok, err := p.Next()
		if err != nil {
			perr, ok := err.(*mapping.Error)
			if !ok || perr.Fatal() {
				return nil, err
			}
			entry.Issues = append(entry.Issues, perr)
			continue
		}
		if tok == nil {
			break
		}

		switch t := tok.(type) {
		case mapping.GUID:
			entry.GUID = t.ID
		case mapping.Name:
			entry.Name = t.Value
		case mapping.Platform:
			entry.Platform = t.Value
		case mapping.AxisMapping:
			entry.Profile.Axes = append(entry.Profile.Axes, gamepad.AxisBinding{
				Index:    int32(t.Source),
				Target:   t.Target,
				Input:    t.Input,
				Output:   t.Output,
				Inverted: t.Inverted,
			})
		case mapping.ButtonMapping:
			entry.Profile.Buttons = append(entry.Profile.Buttons, gamepad.ButtonBinding{
				Index:  int32(t.Source),
				Target: t.Target,
			})
		case mapping.HatMapping:
			entry.Profile.Hats = append(entry.Profile.Hats, gamepad.HatBinding{
				Hat:       int32(t.Hat),
				Direction: t.Direction,
				Target:    t.Target,
			})
		}
	}

	entry.Profile.Name = entry.Name
	return entry, nil
}

// Lookup returns the entry for an exact GUID match, or nil.
func (d *DB) Lookup(id guid.GUID) *Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.byGUID[id]
}

// LookupText parses a textual GUID and looks it up.
func (d *DB) LookupText(s string) (*Entry, error) {
	id, err := guid.Parse(s)
	if err != nil {
		return nil, err
	}
	return d.Lookup(id), nil
}

// Match returns an entry whose GUID carries the given vendor/product
// ids, used when a device reports ids but no full GUID.
func (d *DB) Match(vendor, product uint16) *Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, e := range d.entries {
		if e.GUID.Vendor() == vendor && e.GUID.Product() == product {
			return e
		}
	}
	return nil
}

// Resolve implements the device reader's Resolver: exact GUID match
// first, then
// vendor/product, nil when the database has nothing for the device.
func (d *DB) Resolve(id guid.GUID, name string) *gamepad.Profile {
	if e := d.Lookup(id); e != nil {
		return e.Profile
	}
	if v, p := id.Vendor(), id.Product(); v != 0 || p != 0 {
		if e := d.Match(v, p); e != nil {
			return e.Profile
		}
	}
	return nil
}

// Entries returns a snapshot of the loaded entries.
func (d *DB) Entries() []*Entry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Len returns the number of loaded entries.
func (d *DB) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}
