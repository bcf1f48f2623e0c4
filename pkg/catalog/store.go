package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// The library file is plain text, one name per line, newline terminated.
// No header, no escaping: a name containing a literal newline cannot round
// trip, which the normalizer rules out anyway. Import re-normalizes every
// line, so hand-edited raw names are fine.

// WriteNames writes every indexed name to w, one per line, in trie walk
// order (depth-first, letters ascending). Order falls out of letter values,
// not insertion order.
func (c *Catalog) WriteNames(w io.Writer) error {
	c.ensure()
	bw := bufio.NewWriter(w)
	err := c.index.walkNames(func(name string) error {
		_, werr := fmt.Fprintln(bw, name)
		return werr
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// ReadNames feeds every non-blank line of r to AddName, stripping trailing
// CR/LF. Play counts are untouched; only names persist.
func (c *Catalog) ReadNames(r io.Reader) error {
	c.ensure()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		c.AddName(line)
	}
	return scanner.Err()
}

// SaveFile exports the indexed names to path. Failure to open or write the
// file is the one fault class the catalog reports instead of swallowing.
func (c *Catalog) SaveFile(path string) error {
	if path == "" {
		return fmt.Errorf("save: empty path")
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer file.Close()
	if err := c.WriteNames(file); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.Debugf("Saved %d names to %s", c.NameCount(), path)
	return nil
}

// LoadFile imports names from path into the index. Names already present
// stay present; the file adds, it does not replace.
func (c *Catalog) LoadFile(path string) error {
	if path == "" {
		return fmt.Errorf("load: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer file.Close()
	if err := c.ReadNames(file); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	log.Debugf("Library now holds %d names after loading %s", c.NameCount(), path)
	return nil
}
