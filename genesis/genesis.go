// Package genesis bootstraps a fresh deployment: it loads the launch
// parameters from YAML and writes the initial singleton records.
package genesis

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/skillprotocol/skill/board"
	"github.com/skillprotocol/skill/engine"
	"github.com/skillprotocol/skill/skill"
)

// Params are the launch parameters. Zero fields fall back to the
// protocol defaults, so a params file only needs to name what it
// overrides.
type Params struct {
	Admin        string `yaml:"admin"`
	FeeCollector string `yaml:"fee_collector"`

	RoundDuration     uint64 `yaml:"round_duration"`
	ClaimWindow       uint64 `yaml:"claim_window"`
	EmissionPerRound  uint64 `yaml:"emission_per_round"`
	BonusEmission     uint64 `yaml:"bonus_emission"`
	MaxRewardPerRound uint64 `yaml:"max_reward_per_round"`
	MaxSupply         uint64 `yaml:"max_supply"`
}

// LoadParams reads launch parameters from a YAML file and applies
// defaults. A missing file yields pure defaults.
func LoadParams(path string) (*Params, error) {
	p := &Params{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "read params")
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, errors.Wrap(err, "parse params")
		}
	}

	// Defaults
	if p.RoundDuration == 0 {
		p.RoundDuration = skill.RoundDuration
	}
	if p.ClaimWindow == 0 {
		p.ClaimWindow = skill.ClaimWindow
	}
	if p.EmissionPerRound == 0 {
		p.EmissionPerRound = skill.EmissionPerRound
	}
	if p.BonusEmission == 0 {
		p.BonusEmission = skill.BonusEmission
	}
	if p.MaxRewardPerRound == 0 {
		p.MaxRewardPerRound = skill.MaxRewardPerRound
	}
	if p.MaxSupply == 0 {
		p.MaxSupply = skill.MaxSupply
	}
	return p, nil
}

// Validate checks that the required fields are set.
func (p *Params) Validate() error {
	if p.Admin == "" {
		return errors.New("admin is required")
	}
	if p.FeeCollector == "" {
		return errors.New("fee_collector is required")
	}
	if _, err := skill.ParseAddress(p.Admin); err != nil {
		return errors.Wrap(err, "admin")
	}
	if _, err := skill.ParseAddress(p.FeeCollector); err != nil {
		return errors.Wrap(err, "fee_collector")
	}
	if p.ClaimWindow < p.RoundDuration {
		return errors.New("claim_window must cover at least one round")
	}
	return nil
}

// Build initializes a fresh deployment from the parameters.
func Build(e *engine.Engine, p *Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	admin, _ := skill.ParseAddress(p.Admin)
	collector, _ := skill.ParseAddress(p.FeeCollector)

	cfg := &board.Config{
		Admin:             admin,
		FeeCollector:      collector,
		RoundDuration:     p.RoundDuration,
		ClaimWindow:       p.ClaimWindow,
		EmissionPerRound:  p.EmissionPerRound,
		BonusEmission:     p.BonusEmission,
		MaxRewardPerRound: p.MaxRewardPerRound,
	}
	return e.Initialize(cfg, p.MaxSupply)
}
