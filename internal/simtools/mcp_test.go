package simtools

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olgasafonova/restoolbox-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/restoolbox-mcp-server/internal/errors"
)

func newTestService(t *testing.T, dataDir string) *Service {
	t.Helper()
	e := base.NewEngine()
	t.Cleanup(e.Close)
	return NewService(e, dataDir)
}

func TestRelPermTableMCP_Defaults(t *testing.T) {
	s := newTestService(t, "")
	res, err := s.RelPermTableMCP(context.Background(), RelPermArgs{})
	if err != nil {
		t.Fatalf("RelPermTableMCP() error = %v", err)
	}
	if res.Rows != 25 || res.TableType != TableSWOF || res.Correlation != FamilyLET {
		t.Errorf("defaults: rows %d, table %s, family %s", res.Rows, res.TableType, res.Correlation)
	}
	if res.Table[0]["Sw"] != 0 || res.Table[0]["Krow"] != 1 {
		t.Errorf("first row = %v", res.Table[0])
	}
	if !strings.HasPrefix(res.Keyword, "SWOF") {
		t.Errorf("Keyword = %q", res.Keyword)
	}

	if _, err := s.RelPermTableMCP(context.Background(), RelPermArgs{KrTable: "SOF2"}); !apierrors.IsValidation(err) {
		t.Errorf("SOF2 error = %v, want ValidationError", err)
	}
}

func TestRelPermTableMCP_ExplicitZero(t *testing.T) {
	s := newTestService(t, "")
	zero := 0.0

	res, err := s.RelPermTableMCP(context.Background(), RelPermArgs{KrFamily: FamilyCorey, KroMax: &zero})
	if err != nil {
		t.Fatalf("RelPermTableMCP() error = %v", err)
	}
	for i, row := range res.Table {
		if row["Krow"] != 0 {
			t.Fatalf("row %d Krow = %g, want 0 with kromax=0", i, row["Krow"])
		}
	}
	if *res.Inputs.KroMax != 0 || *res.Inputs.KrwMax != 1 {
		t.Errorf("inputs kromax=%g krwmax=%g, want 0 and default 1", *res.Inputs.KroMax, *res.Inputs.KrwMax)
	}

	tests := []struct {
		name  string
		args  RelPermArgs
		field string
	}{
		{"Corey exponent", RelPermArgs{KrFamily: FamilyCorey, Nw: &zero}, "nw"},
		{"LET L", RelPermArgs{Lo: &zero}, "Lo"},
		{"LET E", RelPermArgs{Eg: &zero}, "Eg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.RelPermTableMCP(context.Background(), tt.args)
			var verr *apierrors.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestAquiferInfluenceMCP(t *testing.T) {
	s := newTestService(t, "")
	ctx := context.Background()
	res, err := s.AquiferInfluenceMCP(ctx, InfluenceArgs{})
	if err != nil {
		t.Fatalf("AquiferInfluenceMCP() error = %v", err)
	}
	if res.Rows != 25 || res.ReD != 10 || !*res.Inputs.Ei {
		t.Errorf("defaults: rows %d, reD %g, ei %v", res.Rows, res.ReD, *res.Inputs.Ei)
	}
	assertClose(t, "pD(0.01)", res.Values[0], 0.10810388835371518, 1e-7)
	if !strings.HasPrefix(res.Keyword, "AQUTAB") {
		t.Errorf("Keyword = %q", res.Keyword)
	}

	size := s.Cache.Stats().Size
	if _, err := s.AquiferInfluenceMCP(ctx, InfluenceArgs{}); err != nil {
		t.Fatal(err)
	}
	if s.Cache.Stats().Size != size {
		t.Error("repeat call should be served from the cache")
	}

	if _, err := s.AquiferInfluenceMCP(ctx, InfluenceArgs{Res: 60}); !apierrors.IsValidation(err) {
		t.Errorf("res 60 error = %v, want ValidationError", err)
	}
}

func TestRachfordRiceMCP(t *testing.T) {
	s := newTestService(t, "")
	res, err := s.RachfordRiceMCP(context.Background(), FlashArgs{Zis: []float64{0.5, 0.3, 0.2}, Kis: []float64{1.5, 0.9, 0.3}})
	if err != nil {
		t.Fatalf("RachfordRiceMCP() error = %v", err)
	}
	assertClose(t, "beta", res.VaporFraction, 0.3357852420268216, 1e-10)

	if _, err := s.RachfordRiceMCP(context.Background(), FlashArgs{Zis: []float64{0.5, 0.3}, Kis: []float64{1.5, 0.9}}); !apierrors.IsValidation(err) {
		t.Errorf("sum 0.8 error = %v, want ValidationError", err)
	}
}

func TestProblemCellsMCP(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "CASE.PRT"), []byte(samplePRT), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestService(t, dir)
	ctx := context.Background()

	res, err := s.ProblemCellsMCP(ctx, ProblemCellsArgs{Filename: "CASE.PRT"})
	if err != nil {
		t.Fatalf("ProblemCellsMCP() error = %v", err)
	}
	if res.TotalProblems != 3 || res.ByType["convergence"] != 1 || res.TopCells[0].Count != 2 {
		t.Errorf("unexpected result %+v", res)
	}

	if _, err := s.ProblemCellsMCP(ctx, ProblemCellsArgs{Filename: "OTHER.PRT"}); !apierrors.IsNotFound(err) {
		t.Errorf("missing file error = %v, want NotFoundError", err)
	}
	if _, err := s.ProblemCellsMCP(ctx, ProblemCellsArgs{Filename: "../escape.PRT"}); !apierrors.IsValidation(err) {
		t.Errorf("escaping path error = %v, want ValidationError", err)
	}
}

func TestValidateDeckMCP(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir)
	s := newTestService(t, dir)

	res, err := s.ValidateDeckMCP(context.Background(), DeckArgs{Files2Scrape: []string{"CASE.DATA"}, ToZip: true})
	if err != nil {
		t.Fatalf("ValidateDeckMCP() error = %v", err)
	}
	if res.Validation.Status != "INCOMPLETE" || res.Validation.FilesFound != 4 || res.Validation.FilesMissing != 1 {
		t.Errorf("validation = %+v", res.Validation)
	}
	if res.ZipArchive != filepath.Join(s.DataDir, "CASE.zip") {
		t.Errorf("ZipArchive = %q", res.ZipArchive)
	}
	if _, err := os.Stat(res.ZipArchive); err != nil {
		t.Errorf("archive not written: %v", err)
	}
}

func TestValidateDeckMCP_ConfinedToDataDir(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "outside.inc"), []byte("PORO\n/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deck := "INCLUDE\n '../outside.inc' /\n"
	if err := os.WriteFile(filepath.Join(data, "CASE.DATA"), []byte(deck), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestService(t, data)

	res, err := s.ValidateDeckMCP(context.Background(), DeckArgs{Files2Scrape: []string{"CASE.DATA"}})
	if err != nil {
		t.Fatalf("ValidateDeckMCP() error = %v", err)
	}
	if res.Validation.FilesFound != 0 || res.Validation.FilesMissing != 1 {
		t.Errorf("a reference outside the data directory must be reported missing: %+v", res.Validation)
	}
}

func TestResolve_Symlinks(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatal(err)
	}
	secret := filepath.Join(root, "secret.PRT")
	inside := filepath.Join(data, "CASE.PRT")
	for _, f := range []string{secret, inside} {
		if err := os.WriteFile(f, []byte(samplePRT), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Symlink(secret, filepath.Join(data, "link.PRT")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(inside, filepath.Join(data, "alias.PRT")); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(root, filepath.Join(data, "up")); err != nil {
		t.Fatal(err)
	}
	s := newTestService(t, data)

	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{"regular file", "CASE.PRT", false},
		{"link inside data dir", "alias.PRT", false},
		{"link to a file outside", "link.PRT", true},
		{"through a linked directory", "up/secret.PRT", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.resolve("extract_eclipse_problem_cells", "filename", tt.file)
			if tt.wantErr && !apierrors.IsValidation(err) {
				t.Errorf("resolve(%q) error = %v, want ValidationError", tt.file, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("resolve(%q) error = %v", tt.file, err)
			}
		})
	}
}

func TestValidateDeckMCP_SymlinkedInclude(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "outside.inc"), []byte("PORO\n/\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(root, "outside.inc"), filepath.Join(data, "grid.inc")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	deck := "INCLUDE\n 'grid.inc' /\n"
	if err := os.WriteFile(filepath.Join(data, "CASE.DATA"), []byte(deck), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestService(t, data)

	res, err := s.ValidateDeckMCP(context.Background(), DeckArgs{Files2Scrape: []string{"CASE.DATA"}})
	if err != nil {
		t.Fatalf("ValidateDeckMCP() error = %v", err)
	}
	if res.Validation.FilesFound != 0 || res.Validation.FilesMissing != 1 {
		t.Errorf("an include linked outside the data directory must be reported missing: %+v", res.Validation)
	}
}
