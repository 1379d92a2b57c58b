// Package catalogs loads the species and item definitions that world
// generation and the action systems draw from. Catalogs are data, not code:
// the simulation core only ever sees the decoded defs.
package catalogs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"wildgrid/internal/sim/tuning"
)

type Catalogs struct {
	Species map[string]SpeciesDef
	Items   map[string]ItemDef
}

type SpeciesDef struct {
	ID       string  `yaml:"id"`
	Glyph    string  `yaml:"glyph"`
	Diet     string  `yaml:"diet"` // "herbivore" or "carnivore"
	Strength int     `yaml:"strength"`
	Agility  int     `yaml:"agility"`
	Speed    float64 `yaml:"speed"` // delay units per unit step; lower is faster
	Sight    int     `yaml:"sight"`
	Health   float64 `yaml:"health"`
	Stamina  float64 `yaml:"stamina"`
	Armor    int     `yaml:"armor"`
	// GroupSize 0 means solitary; flocking needs at least 2.
	GroupSize int `yaml:"group_size"`
}

type ItemDef struct {
	ID        string     `yaml:"id"`
	Glyph     string     `yaml:"glyph"`
	Weapon    *WeaponDef `yaml:"weapon,omitempty"`
	Obstacle  bool       `yaml:"obstacle"`
	Crushable bool       `yaml:"crushable"`
	Choppable bool       `yaml:"choppable"`
	Health    float64    `yaml:"health"`
	// Byproducts are the item IDs spawned when the obstacle is destroyed.
	Byproducts []string `yaml:"byproducts,omitempty"`
}

type WeaponDef struct {
	Class string `yaml:"class"` // "blunt", "slash" or "point"
	Power int    `yaml:"power"`
}

type speciesFile struct {
	Species []SpeciesDef `yaml:"species"`
}

type itemsFile struct {
	Items []ItemDef `yaml:"items"`
}

// Load reads species.yaml and items.yaml from configDir, validating each
// against its schema in schemaDir.
func Load(configDir, schemaDir string) (*Catalogs, error) {
	c := &Catalogs{
		Species: map[string]SpeciesDef{},
		Items:   map[string]ItemDef{},
	}

	var sf speciesFile
	if err := loadYAML(filepath.Join(configDir, "species.yaml"), filepath.Join(schemaDir, "species.schema.json"), &sf); err != nil {
		return nil, err
	}
	for _, def := range sf.Species {
		if _, dup := c.Species[def.ID]; dup {
			return nil, fmt.Errorf("species.yaml: duplicate id %q", def.ID)
		}
		c.Species[def.ID] = def
	}

	var itf itemsFile
	if err := loadYAML(filepath.Join(configDir, "items.yaml"), filepath.Join(schemaDir, "items.schema.json"), &itf); err != nil {
		return nil, err
	}
	for _, def := range itf.Items {
		if _, dup := c.Items[def.ID]; dup {
			return nil, fmt.Errorf("items.yaml: duplicate id %q", def.ID)
		}
		c.Items[def.ID] = def
	}

	// Byproducts must resolve; a dangling reference would only surface when
	// an obstacle is first destroyed.
	for _, def := range c.Items {
		for _, bp := range def.Byproducts {
			if _, ok := c.Items[bp]; !ok {
				return nil, fmt.Errorf("items.yaml: %s: unknown byproduct %q", def.ID, bp)
			}
		}
	}
	return c, nil
}

// SpeciesIDs returns the species identifiers in sorted order, for
// deterministic world seeding.
func (c *Catalogs) SpeciesIDs() []string {
	ids := make([]string, 0, len(c.Species))
	for id := range c.Species {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func loadYAML(path, schemaPath string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := tuning.ValidateYAML(raw, schemaPath); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
