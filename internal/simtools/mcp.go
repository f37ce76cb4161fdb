package simtools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
	"github.com/olgasafonova/restoolbox-mcp-server/internal/validate"
	"github.com/olgasafonova/restoolbox-mcp-server/metrics"
)

// Number of most frequent cells reported
const topCells = 10

// RelPermTableMCP is the MCP wrapper for MakeRelPermTable
func (s *Service) RelPermTableMCP(ctx context.Context, args RelPermArgs) (RelPermResult, error) {
	if err := validate.Args(&args); err != nil {
		return RelPermResult{}, err
	}
	t, err := MakeRelPermTable(RelPermSpec{
		Table:  args.KrTable,
		Family: args.KrFamily,
		Rows:   args.Rows,
		Swc:    args.Swc,
		Swcr:   args.Swcr,
		Sorw:   args.Sorw,
		Sorg:   args.Sorg,
		Sgc:    args.Sgc,
		Oil:    Curve{KrMax: *args.KroMax, N: *args.No, L: *args.Lo, E: *args.Eo, T: *args.To},
		Water:  Curve{KrMax: *args.KrwMax, N: *args.Nw, L: *args.Lw, E: *args.Ew, T: *args.Tw},
		Gas:    Curve{KrMax: *args.KrgMax, N: *args.Ng, L: *args.Lg, E: *args.Eg, T: *args.Tg},
	})
	if err != nil {
		return RelPermResult{}, err
	}

	rows := make([]map[string]float64, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = make(map[string]float64, len(t.Columns))
		for j, c := range t.Columns {
			rows[i][c] = r[j]
		}
	}
	return RelPermResult{
		Table:       rows,
		Columns:     t.Columns,
		Rows:        len(rows),
		TableType:   args.KrTable,
		Correlation: args.KrFamily,
		Keyword:     t.Keyword(),
		Note:        "Table formatted for ECLIPSE/Intersect simulation input; capillary pressure is zero",
		Inputs:      args,
	}, nil
}

// AquiferInfluenceMCP is the MCP wrapper for MakeInfluenceTable. Tables are
// memoised.
func (s *Service) AquiferInfluenceMCP(ctx context.Context, args InfluenceArgs) (InfluenceResult, error) {
	if err := validate.Args(&args); err != nil {
		return InfluenceResult{}, err
	}
	return base.Memo(ctx, s.Engine, "aquifer_influence", args, func() (InfluenceResult, error) {
		t, err := MakeInfluenceTable(AquiferSpec{
			ReD:       args.Res,
			Start:     args.Start,
			End:       args.End,
			Rows:      args.Rows,
			Influence: args.Infl,
			ExpInt:    *args.Ei,
			Piston:    args.Piston,
			TDScale:   args.TDScale,
			AquNum:    args.AquNum,
		})
		if err != nil {
			return InfluenceResult{}, err
		}
		method := "van Everdingen-Hurst, Stehfest (N=8) Laplace inversion, no-flow outer boundary"
		if args.Piston {
			method = "van Everdingen-Hurst, Stehfest (N=8) Laplace inversion, constant-pressure outer boundary"
		}
		return InfluenceResult{
			TD:        t.TD,
			Values:    t.Values,
			Rows:      len(t.TD),
			ReD:       args.Res,
			TimeRange: TimeRange{Start: args.Start, End: args.End},
			Keyword:   t.Keyword(),
			Method:    method,
			Note:      "AQUTAB keyword for ECLIPSE/Intersect; reference the table from AQUCT",
			Inputs:    args,
		}, nil
	})
}

// RachfordRiceMCP is the MCP wrapper for Flash
func (s *Service) RachfordRiceMCP(ctx context.Context, args FlashArgs) (FlashResponse, error) {
	if err := validate.Args(&args); err != nil {
		return FlashResponse{}, err
	}
	if sum := floats.Sum(args.Zis); sum < 0.99 || sum > 1.01 {
		return FlashResponse{}, apierrors.NewValidationError("zis", fmt.Sprintf("sum %g", sum), "must sum to 1")
	}
	r, err := Flash(args.Zis, args.Kis)
	if err != nil {
		return FlashResponse{}, err
	}
	note := "Vapor fraction ranges from 0 (all liquid) to 1 (all vapor)"
	if r.Phase != PhaseTwo {
		note = "No root in (0, 1): the feed is " + r.Phase + "; the other composition is the incipient phase"
	}
	return FlashResponse{
		VaporFraction: r.Beta,
		Liquid:        r.X,
		Vapor:         r.Y,
		Iterations:    r.Iterations,
		Phase:         r.Phase,
		Method:        "Rachford-Rice (safeguarded Newton)",
		Note:          note,
		Inputs:        args,
	}, nil
}

// ProblemCellsMCP is the MCP wrapper for ScanProblemCells
func (s *Service) ProblemCellsMCP(ctx context.Context, args ProblemCellsArgs) (ProblemCellsResult, error) {
	if err := validate.Args(&args); err != nil {
		return ProblemCellsResult{}, err
	}
	path, err := s.resolve("extract_eclipse_problem_cells", "filename", args.Filename)
	if err != nil {
		return ProblemCellsResult{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return ProblemCellsResult{}, err
	}
	defer f.Close()

	cells, err := ScanProblemCells(f)
	if err != nil {
		return ProblemCellsResult{}, fmt.Errorf("failed to read %s: %w", args.Filename, err)
	}

	res := ProblemCellsResult{
		ProblemCells:  make([]ProblemCellJSON, len(cells)),
		TotalProblems: len(cells),
		TopCells:      []CellCountJSON{},
		ByType:        make(map[string]int),
		File:          path,
		Method:        "ECLIPSE/Intersect PRT file parsing",
		Message:       "No convergence problems detected",
		Inputs:        args,
	}
	for i, c := range cells {
		res.ProblemCells[i] = ProblemCellJSON(c)
		res.ByType[c.ErrorType]++
	}
	for _, c := range TopCells(cells, topCells) {
		res.TopCells = append(res.TopCells, CellCountJSON(c))
	}
	if len(cells) > 0 {
		top := res.TopCells[0]
		res.Message = fmt.Sprintf("%d problem cell references; most frequent (%d,%d,%d) with %d",
			len(cells), top.I, top.J, top.K, top.Count)
	}
	if !*args.Silent {
		s.Logger.Info("Problem cells extracted", "file", path, "problems", len(cells), "by_type", res.ByType)
	}
	return res, nil
}

// ValidateDeckMCP is the MCP wrapper for ScanDeck
func (s *Service) ValidateDeckMCP(ctx context.Context, args DeckArgs) (DeckResult, error) {
	if err := validate.Args(&args); err != nil {
		return DeckResult{}, err
	}
	decks := make([]string, len(args.Files2Scrape))
	for i, name := range args.Files2Scrape {
		p, err := s.resolve("validate_simulation_deck", fmt.Sprintf("files2scrape[%d]", i), name)
		if err != nil {
			return DeckResult{}, err
		}
		decks[i] = p
	}

	deck, err := ScanDeck(decks, s.allowed)
	if err != nil {
		return DeckResult{}, err
	}

	res := DeckResult{
		Validation: DeckValidation{
			MainFiles:    decks,
			FilesFound:   len(deck.Found),
			FilesMissing: len(deck.Missing),
			Status:       "VALID",
		},
		Found:   make([]DeckFile, len(deck.Found)),
		Missing: make([]DeckFile, len(deck.Missing)),
		Method:  "Recursive INCLUDE/IMPORT/GDFILE reference parsing",
		Note:    "All referenced files must exist for a successful simulation run",
		Inputs:  args,
	}
	for i, r := range deck.Found {
		res.Found[i] = DeckFile(r)
	}
	for i, r := range deck.Missing {
		res.Missing[i] = DeckFile(r)
	}
	if len(deck.Missing) > 0 {
		res.Validation.Status = "INCOMPLETE"
	}

	if args.ToZip {
		stem := strings.TrimSuffix(filepath.Base(decks[0]), filepath.Ext(decks[0]))
		dst := filepath.Join(deck.Root, stem+".zip")
		if !s.allowed(dst) {
			metrics.PathRejections.WithLabelValues("validate_simulation_deck").Inc()
			return DeckResult{}, apierrors.NewValidationError("tozip", dst, "archive must be inside the data directory")
		}
		if err := deck.WriteZip(dst); err != nil {
			return DeckResult{}, fmt.Errorf("failed to write %s: %w", dst, err)
		}
		res.ZipArchive = dst
	}
	if *args.ConsoleSummary {
		s.Logger.Info("Deck checked", "deck", decks[0], "found", len(deck.Found),
			"missing", len(deck.Missing), "status", res.Validation.Status)
	}
	return res, nil
}
