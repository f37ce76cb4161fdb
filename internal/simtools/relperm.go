// Package simtools builds reservoir simulator inputs and inspects simulator
// files: relative permeability and aquifer influence tables, Rachford-Rice
// flash, PRT problem-cell extraction and deck dependency checks.
package simtools

import (
	"fmt"
	"math"
	"strings"

	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Relative permeability table keywords
const (
	TableSWOF  = "SWOF"
	TableSGOF  = "SGOF"
	TableSGWFN = "SGWFN"
)

// Relative permeability families
const (
	FamilyCorey = "COR"
	FamilyLET   = "LET"
)

// Curve describes one relative permeability curve: its end point and the
// Corey exponent or LET parameters.
type Curve struct {
	KrMax   float64
	N       float64 // Corey exponent
	L, E, T float64 // LET shape
}

// Kr evaluates the curve at normalized saturation s.
func (c Curve) Kr(family string, s float64) float64 {
	if s <= 1e-12 {
		return 0
	}
	if s >= 1 {
		return c.KrMax
	}
	if family == FamilyCorey {
		return c.KrMax * math.Pow(s, c.N)
	}
	sl := math.Pow(s, c.L)
	return c.KrMax * sl / (sl + c.E*math.Pow(1-s, c.T))
}

// RelPermSpec holds the end points and curves of a table.
type RelPermSpec struct {
	Table  string
	Family string
	Rows   int

	Swc, Swcr, Sorw, Sorg, Sgc float64

	Oil, Water, Gas Curve
}

// RelPermTable is a generated saturation table. Columns name the values in
// each row, saturation first and capillary pressure (zero) last.
type RelPermTable struct {
	Table   string
	Columns []string
	Rows    [][]float64
}

func normalized(s, lo, span float64) float64 {
	return num.Clamp((s-lo)/span, 0, 1)
}

// MakeRelPermTable generates a SWOF, SGOF or SGWFN table.
func MakeRelPermTable(sp RelPermSpec) (*RelPermTable, error) {
	if sp.Rows < 2 {
		return nil, apierrors.NewValidationError("rows", fmt.Sprintf("%d", sp.Rows), "must be at least 2")
	}
	if sp.Family != FamilyCorey && sp.Family != FamilyLET {
		return nil, apierrors.NewValidationError("krfamily", sp.Family, "must be one of: COR, LET")
	}

	span := func(field string, v float64) error {
		if v <= 0 {
			return apierrors.NewValidationError(field, fmt.Sprintf("%g", v), "end points leave no mobile saturation range")
		}
		return nil
	}

	t := &RelPermTable{Table: sp.Table}
	switch sp.Table {
	case TableSWOF:
		so := 1 - sp.Swc - sp.Sorw
		sw := 1 - sp.Swcr - sp.Sorw
		if err := span("sorw", math.Min(so, sw)); err != nil {
			return nil, err
		}
		t.Columns = []string{"Sw", "Krw", "Krow", "Pcow"}
		for _, s := range num.Linspace(sp.Swc, 1-sp.Sorw, sp.Rows) {
			t.Rows = append(t.Rows, []float64{
				s,
				sp.Water.Kr(sp.Family, normalized(s, sp.Swcr, sw)),
				sp.Oil.Kr(sp.Family, normalized(1-s-sp.Sorw, 0, so)),
				0,
			})
		}
	case TableSGOF:
		so := 1 - sp.Swc - sp.Sorg
		sg := so - sp.Sgc
		if err := span("sorg", math.Min(so, sg)); err != nil {
			return nil, err
		}
		t.Columns = []string{"Sg", "Krg", "Krog", "Pcog"}
		for _, s := range num.Linspace(0, so, sp.Rows) {
			t.Rows = append(t.Rows, []float64{
				s,
				sp.Gas.Kr(sp.Family, normalized(s, sp.Sgc, sg)),
				sp.Oil.Kr(sp.Family, normalized(so-s, 0, so)),
				0,
			})
		}
	case TableSGWFN:
		sg := 1 - sp.Swc - sp.Sgc
		sw := 1 - sp.Swcr
		if err := span("sgc", math.Min(sg, sw)); err != nil {
			return nil, err
		}
		t.Columns = []string{"Sg", "Krg", "Krw", "Pcgw"}
		for _, s := range num.Linspace(0, 1-sp.Swc, sp.Rows) {
			t.Rows = append(t.Rows, []float64{
				s,
				sp.Gas.Kr(sp.Family, normalized(s, sp.Sgc, sg)),
				sp.Water.Kr(sp.Family, normalized(1-s, sp.Swcr, sw)),
				0,
			})
		}
	default:
		return nil, apierrors.NewValidationError("krtable", sp.Table, "must be one of: SWOF, SGOF, SGWFN")
	}
	return t, nil
}

// Keyword renders the table as ECLIPSE keyword text.
func (t *RelPermTable) Keyword() string {
	var b strings.Builder
	b.WriteString(t.Table + "\n")
	fmt.Fprintf(&b, "-- %s\n", strings.Join(t.Columns, "  "))
	for _, r := range t.Rows {
		fmt.Fprintf(&b, "  %8.6f  %10.8f  %10.8f  %4.1f\n", r[0], r[1], r[2], r[3])
	}
	b.WriteString("/\n")
	return b.String()
}
