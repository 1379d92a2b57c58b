// Package tuning loads the numeric knobs of the simulation from YAML and
// validates them against a JSON Schema before use. The defaults here are the
// canonical action-economy constants; the config file exists so operators
// can rebalance without a rebuild.
package tuning

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Combat    Combat    `yaml:"combat" json:"combat"`
	Crush     Crush     `yaml:"crush" json:"crush"`
	Movement  Movement  `yaml:"movement" json:"movement"`
	Scheduler Scheduler `yaml:"scheduler" json:"scheduler"`
}

type Combat struct {
	// Hit chance is clamp((atkAgility - defAgility + ToHitBonus) / ToHitDivisor,
	// MinHitChance, MaxHitChance).
	ToHitBonus   float64 `yaml:"to_hit_bonus" json:"to_hit_bonus"`
	ToHitDivisor float64 `yaml:"to_hit_divisor" json:"to_hit_divisor"`
	MinHitChance float64 `yaml:"min_hit_chance" json:"min_hit_chance"`
	MaxHitChance float64 `yaml:"max_hit_chance" json:"max_hit_chance"`

	// Damage is max((atkStrength + DamageBonus) - defArmor, MinDamage).
	DamageBonus float64 `yaml:"damage_bonus" json:"damage_bonus"`
	MinDamage   float64 `yaml:"min_damage" json:"min_damage"`

	// AttackCost is the attacker's stamina debit; DefenderFee is the small
	// fixed fee a struck defender pays whether or not the blow lands.
	AttackCost  float64 `yaml:"attack_cost" json:"attack_cost"`
	DefenderFee float64 `yaml:"defender_fee" json:"defender_fee"`
}

type Crush struct {
	// Crush cost is actorSpeed / (actorStrength + StrengthOffset); delay is
	// the actor's speed.
	StrengthOffset float64 `yaml:"strength_offset" json:"strength_offset"`
	// Byproducts is how many items a destroyed obstacle leaves behind.
	Byproducts int `yaml:"byproducts" json:"byproducts"`
}

type Movement struct {
	StepCost       float64 `yaml:"step_cost" json:"step_cost"`
	DiagonalFactor float64 `yaml:"diagonal_factor" json:"diagonal_factor"`
}

type Scheduler struct {
	// RetryDelay re-queues an agent whose turn produced no committed action,
	// so a stuck agent cannot starve the queue.
	RetryDelay float64 `yaml:"retry_delay" json:"retry_delay"`
}

// Defaults returns the canonical constants. configs/tuning.yaml ships with
// exactly these values; a test guards against drift.
func Defaults() Tuning {
	return Tuning{
		Combat: Combat{
			ToHitBonus:   4,
			ToHitDivisor: 8,
			MinHitChance: 0.05,
			MaxHitChance: 0.95,
			DamageBonus:  2,
			MinDamage:    1,
			AttackCost:   1.5,
			DefenderFee:  0.25,
		},
		Crush: Crush{
			StrengthOffset: 3,
			Byproducts:     3,
		},
		Movement: Movement{
			StepCost:       1.0,
			DiagonalFactor: 1.5,
		},
		Scheduler: Scheduler{
			RetryDelay: 1.0,
		},
	}
}

// Load reads a tuning YAML file and validates it against the schema at
// schemaPath before decoding.
func Load(path, schemaPath string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := ValidateYAML(raw, schemaPath); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ValidateYAML checks a YAML document against a JSON Schema. The document is
// round-tripped through encoding/json so the validator sees canonical JSON
// types.
func ValidateYAML(raw []byte, schemaPath string) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compile %s: %w", schemaPath, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
