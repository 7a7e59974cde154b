// SPDX-License-Identifier: MIT

package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/scheme"
	"gopkg.in/yaml.v3"
)

// FamilyCatalog selects the whole built-in Catalog in a schemes entry.
const FamilyCatalog = "catalog"

// Config is the YAML form of a verification table.
type Config struct {
	// Concurrency bounds Run; 0 keeps the default.
	Concurrency int `yaml:"concurrency,omitempty"`

	// Tolerance overrides the checker tolerances when set.
	Tolerance *ToleranceConfig `yaml:"tolerance,omitempty"`

	// Domains to check on; empty means StandardDomains.
	Domains []DomainConfig `yaml:"domains,omitempty"`

	// Schemes to check; empty means Catalog.
	Schemes []SchemeConfig `yaml:"schemes,omitempty"`
}

// ToleranceConfig holds the checker's relative and absolute tolerances.
type ToleranceConfig struct {
	Relative float64 `yaml:"relative"`
	Absolute float64 `yaml:"absolute"`
}

// DomainConfig declares exactly one of Rectangle or Quadrilateral.
type DomainConfig struct {
	Name          string           `yaml:"name"`
	Rectangle     *RectangleConfig `yaml:"rectangle,omitempty"`
	Quadrilateral []PointConfig    `yaml:"quadrilateral,omitempty"`
}

// PointConfig is one quadrilateral vertex.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectangleConfig is [x0,x1]×[y0,y1].
type RectangleConfig struct {
	X0 float64 `yaml:"x0"`
	X1 float64 `yaml:"x1"`
	Y0 float64 `yaml:"y0"`
	Y1 float64 `yaml:"y1"`
}

// SchemeConfig names a family and one index, a list of indices, or neither
// for unindexed families.
type SchemeConfig struct {
	Family  string `yaml:"family"`
	Index   *int   `yaml:"index,omitempty"`
	Indices []int  `yaml:"indices,omitempty"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig(%s): %w", path, err)
	}

	return cfg, nil
}

// ParseConfig decodes YAML strictly (unknown keys are errors) and validates
// the result by resolving it once.
// Errors: ErrConfig wrapping the decode or resolution failure.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// an empty document leaves the zero Config: standard domains, full catalog
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if _, err := cfg.Cases(); err != nil {
		return nil, err
	}
	if _, err := cfg.Options(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Marshal encodes the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Cases resolves the config into the cross product schemes × domains.
func (c *Config) Cases() ([]Case, error) {
	domains, err := c.domains()
	if err != nil {
		return nil, err
	}
	schemes, err := c.schemes()
	if err != nil {
		return nil, err
	}

	return Cases(schemes, domains), nil
}

// Options returns the harness options the config implies.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.Concurrency < 0 {
		return nil, fmt.Errorf("%w: concurrency %d", ErrConfig, c.Concurrency)
	}
	if c.Concurrency > 0 {
		opts = append(opts, WithConcurrency(c.Concurrency))
	}
	if t := c.Tolerance; t != nil {
		if !validTol(t.Relative) || !validTol(t.Absolute) {
			return nil, fmt.Errorf("%w: tolerance %+v", ErrConfig, *t)
		}
		opts = append(opts, WithTolerance(t.Relative, t.Absolute))
	}

	return opts, nil
}

func (c *Config) domains() ([]Domain, error) {
	if len(c.Domains) == 0 {
		return StandardDomains(), nil
	}
	out := make([]Domain, 0, len(c.Domains))
	seen := make(map[string]bool, len(c.Domains))
	for i, dc := range c.Domains {
		if dc.Name == "" {
			return nil, fmt.Errorf("%w: domain %d: missing name", ErrConfig, i)
		}
		if seen[dc.Name] {
			return nil, fmt.Errorf("%w: domain %q declared twice", ErrConfig, dc.Name)
		}
		seen[dc.Name] = true

		var d Domain
		switch {
		case dc.Rectangle != nil && dc.Quadrilateral != nil:
			return nil, fmt.Errorf("%w: domain %q: both rectangle and quadrilateral", ErrConfig, dc.Name)
		case dc.Rectangle != nil:
			r := domain.Rectangle{X0: dc.Rectangle.X0, X1: dc.Rectangle.X1, Y0: dc.Rectangle.Y0, Y1: dc.Rectangle.Y1}
			if err := r.Validate(); err != nil {
				return nil, fmt.Errorf("%w: domain %q: %w", ErrConfig, dc.Name, err)
			}
			d = RectangleDomain(dc.Name, r)
		case len(dc.Quadrilateral) == 4:
			var q domain.Quadrilateral
			for k, v := range dc.Quadrilateral {
				q[k] = domain.Point{X: v.X, Y: v.Y}
			}
			if err := q.Validate(); err != nil {
				return nil, fmt.Errorf("%w: domain %q: %w", ErrConfig, dc.Name, err)
			}
			d = QuadDomain(dc.Name, q)
		default:
			return nil, fmt.Errorf("%w: domain %q: need a rectangle or 4 quadrilateral vertices", ErrConfig, dc.Name)
		}
		out = append(out, d)
	}

	return out, nil
}

func (c *Config) schemes() ([]*scheme.Scheme, error) {
	if len(c.Schemes) == 0 {
		return Catalog()
	}
	var out []*scheme.Scheme
	for _, sc := range c.Schemes {
		if sc.Family == FamilyCatalog {
			all, err := Catalog()
			if err != nil {
				return nil, err
			}
			out = append(out, all...)
			continue
		}
		indices := sc.Indices
		if sc.Index != nil {
			indices = append([]int{*sc.Index}, indices...)
		}
		if len(indices) == 0 {
			indices = []int{0}
		}
		for _, idx := range indices {
			s, err := scheme.Lookup(sc.Family, idx)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConfig, err)
			}
			out = append(out, s)
		}
	}

	return out, nil
}

func validTol(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 0) && !math.IsNaN(tol)
}
