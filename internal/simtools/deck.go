package simtools

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File-reference keywords. Only INCLUDE targets are text decks that can
// reference further files.
var deckKeywords = map[string]bool{
	"INCLUDE": true,
	"IMPORT":  true,
	"GDFILE":  true,
}

// DeckRef is a file referenced from a deck.
type DeckRef struct {
	Keyword    string
	Path       string // as resolved on disk
	ReferredBy string
}

// Deck is the dependency closure of one or more DATA files.
type Deck struct {
	Root    string // directory relative references resolve against
	Main    []string
	Found   []DeckRef
	Missing []DeckRef
}

// Files returns the main decks followed by every referenced file that exists.
func (d *Deck) Files() []string {
	files := append([]string(nil), d.Main...)
	for _, r := range d.Found {
		files = append(files, r.Path)
	}
	return files
}

// parseRefs returns the keyword and path of every file reference in a deck.
func parseRefs(r io.Reader) ([][2]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var refs [][2]string
	pending := ""
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if pending == "" {
			fields := strings.Fields(line)
			kw := strings.ToUpper(fields[0])
			if !deckKeywords[kw] {
				continue
			}
			pending = kw
			line = strings.TrimSpace(line[len(fields[0]):])
			if line == "" {
				continue
			}
		}
		if p := refPath(line); p != "" {
			refs = append(refs, [2]string{pending, p})
		}
		pending = ""
	}
	return refs, sc.Err()
}

// refPath extracts a quoted or bare file name from a record terminated by
// '/'. Bare names end at the first blank.
func refPath(line string) string {
	if q := line[0]; q == '\'' || q == '"' {
		if end := strings.IndexByte(line[1:], q); end >= 0 {
			return line[1 : end+1]
		}
		return strings.Trim(line, `'"/ `)
	}
	return strings.TrimSuffix(strings.Fields(line)[0], "/")
}

// ScanDeck follows file references from the DATA files in decks. Relative
// references resolve against the directory of the first deck. allowed
// reports whether a resolved path may be read.
func ScanDeck(decks []string, allowed func(string) bool) (*Deck, error) {
	d := &Deck{Root: filepath.Dir(decks[0]), Main: decks}
	seen := make(map[string]bool)
	listed := make(map[string]bool)
	for _, m := range decks {
		listed[m] = true
	}

	var visit func(file string) error
	visit = func(file string) error {
		if seen[file] {
			return nil
		}
		seen[file] = true
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		refs, err := parseRefs(f)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		for _, ref := range refs {
			p := filepath.FromSlash(strings.ReplaceAll(ref[1], `\`, "/"))
			if !filepath.IsAbs(p) {
				p = filepath.Join(d.Root, p)
			}
			r := DeckRef{Keyword: ref[0], Path: p, ReferredBy: file}
			if !allowed(p) {
				d.Missing = append(d.Missing, r)
				continue
			}
			if _, err := os.Stat(p); err != nil {
				d.Missing = append(d.Missing, r)
				continue
			}
			if !listed[p] {
				listed[p] = true
				d.Found = append(d.Found, r)
			}
			if ref[0] == "INCLUDE" {
				if err := visit(p); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, m := range decks {
		if err := visit(m); err != nil {
			return nil, err
		}
	}
	sort.SliceStable(d.Found, func(i, j int) bool { return d.Found[i].Path < d.Found[j].Path })
	return d, nil
}

// WriteZip archives the deck to dst, storing paths relative to the deck root.
func (d *Deck) WriteZip(dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(out)

	for _, file := range d.Files() {
		if err := d.addFile(zw, file); err != nil {
			zw.Close()
			out.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (d *Deck) addFile(zw *zip.Writer, file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	name, err := filepath.Rel(d.Root, file)
	if err != nil || strings.HasPrefix(name, "..") {
		name = filepath.Base(file)
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = filepath.ToSlash(name)
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
