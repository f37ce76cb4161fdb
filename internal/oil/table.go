package oil

import (
	"fmt"
	"slices"
	"strings"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/gas"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/num"
)

// Table limits
const (
	DefaultTableRows = 50
	MaxTableRows     = 200
	StandardWaterDen = 62.367 // lb/cuft at standard conditions
	StandardAirDen   = 0.0764 // lb/cuft at standard conditions
)

// TableColumns names the black oil table columns in row order.
var TableColumns = []string{"pressure_psia", "rs_scf_stb", "bo_rb_stb", "uo_cp", "density_lb_cuft", "co_1_psi", "bg_rb_mscf", "ug_cp"}

// TableRow is one pressure level of a black oil table.
type TableRow struct {
	Pressure float64 `json:"pressure_psia"`
	Rs       float64 `json:"rs_scf_stb"`
	Bo       float64 `json:"bo_rb_stb"`
	Uo       float64 `json:"uo_cp"`
	Density  float64 `json:"density_lb_cuft"`
	Co       float64 `json:"co_1_psi"`
	Bg       float64 `json:"bg_rb_mscf"`
	Ug       float64 `json:"ug_cp"`
}

// BlackOilTable is a complete black oil PVT table with its bubble point.
// Rows run from the highest pressure down.
type BlackOilTable struct {
	Rows []TableRow
	Pb   float64
	Rsb  float64
	Bob  float64
	Uob  float64
	Denb float64
	SGg  float64
}

// TablePressures returns n evenly spaced pressures from pmax down to
// atmospheric with pb inserted when it falls strictly inside the range.
func TablePressures(pmax, pb float64, n int) []float64 {
	ps := num.Linspace(Patm, pmax, n)
	if pb > Patm && pb < pmax {
		dup := false
		for _, p := range ps {
			if p == pb {
				dup = true
				break
			}
		}
		if !dup {
			ps = append(ps, pb)
			slices.Sort(ps)
		}
	}
	slices.Reverse(ps)
	return ps
}

// MakeTable evaluates the oil and its liberated gas at n pressures up to pmax.
func MakeTable(o *Oil, pmax float64, n int) (*BlackOilTable, error) {
	gf, err := gas.NewFluid(o.SGg, o.DegF, gas.Composition{}, gas.ZMethodDAK)
	if err != nil {
		return nil, err
	}

	t := &BlackOilTable{Pb: o.Pb, Rsb: o.Rsb, SGg: o.SGg}
	for _, p := range TablePressures(pmax, o.Pb, n) {
		rs, err := o.Rs(p)
		if err != nil {
			return nil, err
		}
		bo, err := o.Bo(p, rs)
		if err != nil {
			return nil, err
		}
		bg, err := gf.FVF(p)
		if err != nil {
			return nil, err
		}
		ug, err := gf.Viscosity(p)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, TableRow{
			Pressure: p,
			Rs:       rs,
			Bo:       bo,
			Uo:       o.Viscosity(p, rs),
			Density:  Density(o.SG(), rs, o.SGg, bo),
			Co:       o.Compressibility(p),
			Bg:       bg * 1000 / 5.615,
			Ug:       ug,
		})
	}

	bob, err := o.Bo(o.Pb, o.Rsb)
	if err != nil {
		return nil, err
	}
	t.Bob = bob
	t.Uob = o.Viscosity(o.Pb, o.Rsb)
	t.Denb = Density(o.SG(), o.Rsb, o.SGg, bob)
	return t, nil
}

// PVTO renders the live oil table as an ECLIPSE PVTO keyword. Saturated
// records run up to the bubble point; the last record carries the
// undersaturated rows above it.
func (t *BlackOilTable) PVTO() string {
	var b strings.Builder
	b.WriteString("PVTO\n")
	b.WriteString("-- Rs(Mscf/stb)  Pbub(psia)  Bo(rb/stb)  Uo(cP)\n")

	rows := t.ascending()
	var above []TableRow
	for _, r := range rows {
		if r.Pressure > t.Pb {
			above = append(above, r)
		}
	}
	for _, r := range rows {
		if r.Pressure > t.Pb {
			break
		}
		fmt.Fprintf(&b, "  %10.5f  %10.2f  %10.5f  %10.5f", r.Rs/1000, r.Pressure, r.Bo, r.Uo)
		if r.Pressure == t.Pb {
			for _, u := range above {
				fmt.Fprintf(&b, "\n  %10s  %10.2f  %10.5f  %10.5f", "", u.Pressure, u.Bo, u.Uo)
			}
		}
		b.WriteString(" /\n")
	}
	b.WriteString("/\n")
	return b.String()
}

// PVDG renders the free gas table as an ECLIPSE PVDG keyword.
func (t *BlackOilTable) PVDG() string {
	var b strings.Builder
	b.WriteString("PVDG\n")
	b.WriteString("-- Pg(psia)  Bg(rb/Mscf)  Ug(cP)\n")
	for _, r := range t.ascending() {
		fmt.Fprintf(&b, "  %10.2f  %12.6f  %10.6f\n", r.Pressure, r.Bg, r.Ug)
	}
	b.WriteString("/\n")
	return b.String()
}

// ascending returns the rows in increasing pressure, the order ECLIPSE
// tables are read in.
func (t *BlackOilTable) ascending() []TableRow {
	rows := slices.Clone(t.Rows)
	slices.Reverse(rows)
	return rows
}

// DensityKeyword renders stock tank oil, water and gas densities as an
// ECLIPSE DENSITY keyword.
func (t *BlackOilTable) DensityKeyword(api float64) string {
	return fmt.Sprintf("DENSITY\n-- Oil  Water  Gas (lb/cuft)\n  %.4f  %.4f  %.5f /\n",
		SGFromAPI(api)*StandardWaterDen, StandardWaterDen, t.SGg*StandardAirDen)
}
