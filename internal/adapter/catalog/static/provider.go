// Package staticcatalog serves the static configuration tables: mining
// targets, launch providers, crew types, security firms, competitors. A YAML
// file can override the compiled-in defaults.
package staticcatalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"orebound/internal/app/ports"
	"orebound/internal/domain/combat"
	"orebound/internal/domain/market"
)

type targetYAML struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	DiameterM    float64 `yaml:"diameter_m"`
	TaxClass     string  `yaml:"tax_class"`
	DistanceAU   float64 `yaml:"distance_au"`
	Resource     string  `yaml:"resource"`
	YieldTonnes  float64 `yaml:"yield_tonnes"`
	OutboundDays float64 `yaml:"outbound_days"`
	MiningDays   float64 `yaml:"mining_days"`
	ReturnDays   float64 `yaml:"return_days"`
}

type providerYAML struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Cost        float64 `yaml:"cost"`
	Reliability float64 `yaml:"reliability"`
	CadenceDays float64 `yaml:"cadence_days"`
}

type crewYAML struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Cost        float64 `yaml:"cost"`
	Efficiency  float64 `yaml:"efficiency"`
	Reliability float64 `yaml:"reliability"`
}

type securityYAML struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Cost    float64 `yaml:"cost"`
	Attack  float64 `yaml:"attack"`
	Defense float64 `yaml:"defense"`
}

type catalogYAML struct {
	Targets     []targetYAML   `yaml:"targets"`
	Providers   []providerYAML `yaml:"providers"`
	Crews       []crewYAML     `yaml:"crews"`
	Security    []securityYAML `yaml:"security"`
	Competitors []string       `yaml:"competitors"`
}

type Provider struct {
	targets     []ports.MiningTarget
	targetIdx   map[string]ports.MiningTarget
	providerIdx map[string]ports.LaunchProvider
	crewIdx     map[string]ports.CrewType
	securityIdx map[string]ports.SecurityFirm
	competitors []string
}

// Load reads the catalog from path, or the compiled-in defaults when path is
// empty.
func Load(path string) (*Provider, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		raw = catalogYAML{}
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	}
	return build(raw)
}

func build(raw catalogYAML) (*Provider, error) {
	p := &Provider{
		targetIdx:   map[string]ports.MiningTarget{},
		providerIdx: map[string]ports.LaunchProvider{},
		crewIdx:     map[string]ports.CrewType{},
		securityIdx: map[string]ports.SecurityFirm{},
		competitors: raw.Competitors,
	}
	for _, t := range raw.Targets {
		resource, ok := market.CommodityFromString(t.Resource)
		if !ok {
			return nil, fmt.Errorf("catalog target %s: unknown resource %q", t.ID, t.Resource)
		}
		target := ports.MiningTarget{
			ID:           t.ID,
			Name:         t.Name,
			DiameterM:    t.DiameterM,
			TaxClass:     t.TaxClass,
			DistanceAU:   t.DistanceAU,
			Resource:     resource,
			YieldTonnes:  t.YieldTonnes,
			OutboundDays: t.OutboundDays,
			MiningDays:   t.MiningDays,
			ReturnDays:   t.ReturnDays,
		}
		p.targets = append(p.targets, target)
		p.targetIdx[t.ID] = target
	}
	for _, lp := range raw.Providers {
		if lp.Reliability < 0 || lp.Reliability > 1 {
			return nil, fmt.Errorf("catalog provider %s: reliability %v outside [0,1]", lp.ID, lp.Reliability)
		}
		p.providerIdx[lp.ID] = ports.LaunchProvider{
			ID: lp.ID, Name: lp.Name, Cost: lp.Cost,
			Reliability: lp.Reliability, CadenceDays: lp.CadenceDays,
		}
	}
	for _, c := range raw.Crews {
		if c.Reliability < 0 || c.Reliability > 1 {
			return nil, fmt.Errorf("catalog crew %s: reliability %v outside [0,1]", c.ID, c.Reliability)
		}
		p.crewIdx[c.ID] = ports.CrewType{
			ID: c.ID, Name: c.Name, Cost: c.Cost,
			Efficiency: c.Efficiency, Reliability: c.Reliability,
		}
	}
	for _, sec := range raw.Security {
		p.securityIdx[sec.ID] = ports.SecurityFirm{
			ID: sec.ID, Name: sec.Name, Cost: sec.Cost,
			Rating: combat.SecurityRating{Attack: sec.Attack, Defense: sec.Defense},
		}
	}
	return p, nil
}

func (p *Provider) Targets() []ports.MiningTarget {
	out := make([]ports.MiningTarget, len(p.targets))
	copy(out, p.targets)
	return out
}

func (p *Provider) TargetByID(id string) (ports.MiningTarget, bool) {
	t, ok := p.targetIdx[id]
	return t, ok
}

func (p *Provider) ProviderByID(id string) (ports.LaunchProvider, bool) {
	lp, ok := p.providerIdx[id]
	return lp, ok
}

func (p *Provider) CrewByID(id string) (ports.CrewType, bool) {
	c, ok := p.crewIdx[id]
	return c, ok
}

func (p *Provider) SecurityByID(id string) (ports.SecurityFirm, bool) {
	s, ok := p.securityIdx[id]
	return s, ok
}

func (p *Provider) Competitors() []string {
	out := make([]string, len(p.competitors))
	copy(out, p.competitors)
	return out
}
