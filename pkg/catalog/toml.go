package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// fileSchema is the on-disk TOML layout of a catalog.
type fileSchema struct {
	LineTypes []lineTypeEntry `toml:"linetype"`
	Blocks    []blockEntry    `toml:"block"`
}

type lineTypeEntry struct {
	Handle      string    `toml:"handle"`
	Name        string    `toml:"name"`
	Description string    `toml:"description"`
	Pattern     []float64 `toml:"pattern"`
}

type blockEntry struct {
	Handle string `toml:"handle"`
	Name   string `toml:"name"`
}

// LoadFile reads a TOML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a TOML catalog from r.
func Decode(r io.Reader) (*Catalog, error) {
	var schema fileSchema
	if _, err := toml.NewDecoder(r).Decode(&schema); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := New()
	for i, e := range schema.LineTypes {
		h, err := ParseHandle(e.Handle)
		if err != nil {
			return nil, fmt.Errorf("linetype[%d]: %w", i, err)
		}
		lt := &LineType{Handle: h, Name: e.Name, Description: e.Description, Pattern: e.Pattern}
		if err := c.AddLineType(lt); err != nil {
			return nil, fmt.Errorf("linetype[%d]: %w", i, err)
		}
	}
	for i, e := range schema.Blocks {
		h, err := ParseHandle(e.Handle)
		if err != nil {
			return nil, fmt.Errorf("block[%d]: %w", i, err)
		}
		if err := c.AddBlockRecord(&BlockRecord{Handle: h, Name: e.Name}); err != nil {
			return nil, fmt.Errorf("block[%d]: %w", i, err)
		}
	}
	return c, nil
}

// Encode writes c as TOML, records sorted by handle.
func Encode(w io.Writer, c *Catalog) error {
	var schema fileSchema
	for _, lt := range c.LineTypes() {
		schema.LineTypes = append(schema.LineTypes, lineTypeEntry{
			Handle:      lt.Handle.String(),
			Name:        lt.Name,
			Description: lt.Description,
			Pattern:     lt.Pattern,
		})
	}
	for _, b := range c.BlockRecords() {
		schema.Blocks = append(schema.Blocks, blockEntry{Handle: b.Handle.String(), Name: b.Name})
	}
	if err := toml.NewEncoder(w).Encode(schema); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}
