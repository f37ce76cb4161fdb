// Package library is the embedded pure-component and single carbon number
// property table, with cubic equation of state constants.
package library

import (
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/oil"
)

//go:embed components.yaml
var componentsYAML []byte

// Cubic equations of state
const (
	EOSPR79 = "PR79"
	EOSPR77 = "PR77"
	EOSSRK  = "SRK"
	EOSRK   = "RK"
)

// Component kinds
const (
	KindPure = "pure"
	KindSCN  = "scn"
)

const gasConstant = 10.732 // psia·cuft/(lbmol·°R)

// Component holds the critical and physical properties of one component.
// Temperatures in °R, pressure in psia, volume in cuft/lbmol.
type Component struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
	MW      float64  `yaml:"mw"`
	Tc      float64  `yaml:"tc"`
	Pc      float64  `yaml:"pc"`
	Omega   float64  `yaml:"omega"`
	Vc      float64  `yaml:"vc"`
	Tb      float64  `yaml:"tb"`
	SG      float64  `yaml:"sg"`
	Zc      float64  `yaml:"zc"`
	Kind    string   `yaml:"-"`
}

// EOSConstants are the cubic EOS parameters of a component: Ωa, Ωb and the
// alpha-function slope κ (m for SRK, zero for RK).
type EOSConstants struct {
	OmegaA float64
	OmegaB float64
	Kappa  float64
}

type table struct {
	Components []Component `yaml:"components"`
	SCN        []Component `yaml:"scn"`
}

// Library indexes components by normalized name and alias.
type Library struct {
	byKey map[string]*Component
	names []string
}

var (
	loadOnce sync.Once
	loaded   *Library
	loadErr  error
)

// Default returns the library parsed from the embedded table. Parsing and
// SCN characterization happen once.
func Default() (*Library, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(componentsYAML)
	})
	return loaded, loadErr
}

// Parse builds a Library from a YAML component table. SCN rows need only
// mw, sg and tb; their critical properties come from Twu and their acentric
// factor from Kesler-Lee.
func Parse(data []byte) (*Library, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse component table: %w", err)
	}

	lib := &Library{byKey: make(map[string]*Component)}
	for i := range t.Components {
		c := &t.Components[i]
		c.Kind = KindPure
		if c.Zc == 0 && c.Tc > 0 {
			c.Zc = c.Pc * c.Vc / (gasConstant * c.Tc)
		}
		if err := lib.add(c); err != nil {
			return nil, err
		}
	}
	for i := range t.SCN {
		c := &t.SCN[i]
		c.Kind = KindSCN
		p, err := oil.TwuFromTb(c.Tb, c.SG)
		if err != nil {
			return nil, fmt.Errorf("failed to characterize %s: %w", c.Name, err)
		}
		c.Tc, c.Pc, c.Vc = p.Tc, p.Pc, p.Vc
		c.Zc = c.Pc * c.Vc / (gasConstant * c.Tc)
		c.Omega = KeslerLeeOmega(c.Tb, c.Tc, c.Pc, c.SG)
		if err := lib.add(c); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

func (l *Library) add(c *Component) error {
	for _, key := range append([]string{c.Name}, c.Aliases...) {
		k := normalize(key)
		if prev, ok := l.byKey[k]; ok {
			return fmt.Errorf("component key %q used by both %s and %s", key, prev.Name, c.Name)
		}
		l.byKey[k] = c
	}
	l.names = append(l.names, c.Name)
	return nil
}

// Names returns the canonical component names in table order.
func (l *Library) Names() []string {
	return l.names
}

// Lookup finds a component by name or alias, ignoring case, spaces, hyphens
// and underscores. An unknown name gives a NotFoundError carrying the
// closest known name.
func (l *Library) Lookup(name string) (Component, error) {
	if c, ok := l.byKey[normalize(name)]; ok {
		return *c, nil
	}
	return Component{}, &apierrors.NotFoundError{
		Source:     "component library",
		EntityType: "component",
		Identifier: name,
		Suggestion: l.closest(name),
	}
}

// closest returns the canonical name whose key is nearest to name by edit
// distance, or "" when nothing is reasonably close.
func (l *Library) closest(name string) string {
	target := normalize(name)
	if target == "" {
		return ""
	}
	keys := make([]string, 0, len(l.byKey))
	for k := range l.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, bestDist := "", math.MaxInt
	for _, k := range keys {
		if d := editDistance(target, k); d < bestDist {
			best, bestDist = l.byKey[k].Name, d
		}
	}
	if bestDist > max(2, len(target)/2) {
		return ""
	}
	return best
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

// KeslerLeeOmega estimates the acentric factor from Tb and Tc (°R), Pc
// (psia) and specific gravity.
func KeslerLeeOmega(tb, tc, pc, sg float64) float64 {
	th := tb / tc
	if th < 0.8 {
		th6 := math.Pow(th, 6)
		return (-math.Log(pc/14.696) - 5.92714 + 6.09648/th + 1.28862*math.Log(th) - 0.169347*th6) /
			(15.2518 - 15.6875/th - 13.4721*math.Log(th) + 0.43577*th6)
	}
	kw := math.Cbrt(tb) / sg
	return -7.904 + 0.1352*kw - 0.007465*kw*kw + 8.359*th + (1.408-0.01063*kw)/th
}

// EOS returns the cubic EOS constants for acentric factor omega. PR79
// switches to the heavy-component κ above ω = 0.49.
func EOS(model string, omega float64) (EOSConstants, error) {
	w := omega
	switch model {
	case EOSPR79:
		if w > 0.49 {
			return EOSConstants{0.45724, 0.07780, 0.379642 + 1.48503*w - 0.164423*w*w + 0.016666*w*w*w}, nil
		}
		return EOSConstants{0.45724, 0.07780, 0.37464 + 1.54226*w - 0.26992*w*w}, nil
	case EOSPR77:
		return EOSConstants{0.45724, 0.07780, 0.37464 + 1.54226*w - 0.26992*w*w}, nil
	case EOSSRK:
		return EOSConstants{0.42748, 0.08664, 0.480 + 1.574*w - 0.176*w*w}, nil
	case EOSRK:
		return EOSConstants{0.42748, 0.08664, 0}, nil
	}
	return EOSConstants{}, apierrors.NewValidationError("eos", model, "must be one of PR79, PR77, SRK, RK")
}
