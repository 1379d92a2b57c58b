// Command sim runs a headless demo world: a wolf pack, a deer herd and some
// scenery, driven by the utility-behavior controller for a fixed number of
// turns. Configuration comes from the environment; rendering, input and
// persistence live elsewhere.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"wildgrid/internal/ecs"
	"wildgrid/internal/journal"
	"wildgrid/internal/sim/catalogs"
	"wildgrid/internal/sim/tuning"
	"wildgrid/internal/sim/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

func run() error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	configDir := envOr("WILDGRID_CONFIG_DIR", "configs")
	schemaDir := envOr("WILDGRID_SCHEMA_DIR", "schemas")
	seed := envInt64("WILDGRID_SEED", 1337)
	turns := int(envInt64("WILDGRID_TURNS", 2000))

	tun, err := tuning.Load(filepath.Join(configDir, "tuning.yaml"), filepath.Join(schemaDir, "tuning.schema.json"))
	if err != nil {
		return err
	}
	cats, err := catalogs.Load(configDir, schemaDir)
	if err != nil {
		return err
	}

	w, err := world.New(world.Config{Width: 64, Height: 64, Seed: seed, Logger: log}, tun)
	if err != nil {
		return err
	}
	w.SetCatalogs(cats)

	if dir := os.Getenv("WILDGRID_JOURNAL_DIR"); dir != "" {
		jw := journal.NewWriter(dir, "actions")
		defer func() { _ = jw.Close() }()
		w.SetJournal(jw)
	}

	rng := rand.New(rand.NewSource(seed + 1))
	population, err := seedWorld(w, cats, rng)
	if err != nil {
		return err
	}
	log.Info("world seeded",
		zap.Int64("seed", seed),
		zap.Int("creatures", len(population)),
	)

	ctrl := world.NewController(w)
	ctrl.Register(world.NewFleeBehavior(w))
	ctrl.Register(world.NewHuntBehavior(w))
	ctrl.Register(world.NewFlockBehavior(w))
	ctrl.Register(world.NewGrazeBehavior(w))

	w.RunTurns(ctrl, turns)

	alive := 0
	for _, id := range population {
		if w.Alive(id) {
			alive++
		}
	}
	log.Info("simulation finished",
		zap.Uint64("turns", w.Turns()),
		zap.Float64("clock", w.Clock()),
		zap.Int("alive", alive),
		zap.Int("dead", len(population)-alive),
	)
	return nil
}

// seedWorld scatters scenery and spawns one group per social species plus a
// few solitary creatures.
func seedWorld(w *world.World, cats *catalogs.Catalogs, rng *rand.Rand) ([]ecs.ID, error) {
	for i := 0; i < 60; i++ {
		def := cats.Items["oak"]
		if i%4 == 0 {
			def = cats.Items["boulder"]
		}
		// Occupied cells are simply retried elsewhere.
		_, _ = w.SpawnObstacle(def, rng.Intn(w.Width()), rng.Intn(w.Height()))
	}

	var population []ecs.ID
	groupID := 1
	for _, speciesID := range cats.SpeciesIDs() {
		def := cats.Species[speciesID]
		if def.GroupSize >= 2 {
			cx, cy := rng.Intn(w.Width()), rng.Intn(w.Height())
			ids := spawnHerd(w, def, cx, cy, rng)
			for _, id := range ids {
				w.JoinGroup(groupID, id)
			}
			population = append(population, ids...)
			groupID++
			continue
		}
		for i := 0; i < 3; i++ {
			id, err := spawnNear(w, def, rng.Intn(w.Width()), rng.Intn(w.Height()), rng)
			if err != nil {
				continue
			}
			population = append(population, id)
		}
	}
	if len(population) == 0 {
		return nil, fmt.Errorf("seed: no creatures spawned")
	}
	return population, nil
}

func spawnHerd(w *world.World, def catalogs.SpeciesDef, cx, cy int, rng *rand.Rand) []ecs.ID {
	ids := make([]ecs.ID, 0, def.GroupSize)
	for len(ids) < def.GroupSize {
		id, err := spawnNear(w, def, cx, cy, rng)
		if err != nil {
			// The neighbourhood is full; settle for a smaller herd.
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// spawnNear tries the given cell and then random cells in a widening spiral
// of attempts around it.
func spawnNear(w *world.World, def catalogs.SpeciesDef, x, y int, rng *rand.Rand) (ecs.ID, error) {
	var err error
	for attempt := 0; attempt < 32; attempt++ {
		r := attempt/4 + 1
		nx := x + rng.Intn(2*r+1) - r
		ny := y + rng.Intn(2*r+1) - r
		var id ecs.ID
		if id, err = w.SpawnCreature(def, nx, ny); err == nil {
			return id, nil
		}
	}
	return ecs.None, err
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("WILDGRID_ENV") == "production" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
