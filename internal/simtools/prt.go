package simtools

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	cellParen   = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)
	cellBracket = regexp.MustCompile(`\[\s*(\d+)\s+(\d+)\s+(\d+)\s*\]`)
	stepRe      = regexp.MustCompile(`(?i)\b(?:time\s*)?step\s*(?:no\.?|number|#|=|:)?\s*(\d+)`)
	iterRe      = regexp.MustCompile(`(?i)\b(?:iterations?|iters?|it)\s*[=:#]?\s*(\d+)\b`)
)

// problemKinds maps line keywords to error types, most specific first.
var problemKinds = []struct {
	kind     string
	keywords []string
}{
	{"material_balance", []string{"material balance", "mb error", "mass balance"}},
	{"convergence", []string{"converg", "non-linear", "nonlinear"}},
	{"timestep_chop", []string{"chop", "timestep cut", "step cut", "reducing time"}},
	{"max_residual", []string{"residual"}},
	{"negative_value", []string{"negative"}},
	{"other", []string{"problem", "error", "warning"}},
}

// contextLines is how many lines after a problem header still attribute
// cell references to it.
const contextLines = 5

// ProblemCell is one cell reference found in a problem message.
type ProblemCell struct {
	Timestep  int // 0 when not reported
	Iteration int
	I, J, K   int
	ErrorType string
	Message   string
}

// CellCount counts occurrences of one cell.
type CellCount struct {
	I, J, K int
	Count   int
}

func classify(line string) string {
	l := strings.ToLower(line)
	for _, p := range problemKinds {
		for _, kw := range p.keywords {
			if strings.Contains(l, kw) {
				return p.kind
			}
		}
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ScanProblemCells reads a PRT or log stream and returns every cell reference
// on or just after a convergence problem line.
func ScanProblemCells(r io.Reader) ([]ProblemCell, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var (
		out       []ProblemCell
		step, it  int
		lastKind  string
		sinceKind = contextLines + 1
	)
	for sc.Scan() {
		line := sc.Text()
		if m := stepRe.FindStringSubmatch(line); m != nil {
			step, it = atoi(m[1]), 0
		}
		if m := iterRe.FindStringSubmatch(line); m != nil {
			it = atoi(m[1])
		}

		kind := classify(line)
		if kind != "" {
			lastKind, sinceKind = kind, 0
		} else {
			sinceKind++
			if sinceKind <= contextLines {
				kind = lastKind
			}
		}
		if kind == "" {
			continue
		}

		cells := append(cellParen.FindAllStringSubmatch(line, -1), cellBracket.FindAllStringSubmatch(line, -1)...)
		msg := strings.TrimSpace(line)
		if len(msg) > 200 {
			msg = msg[:200]
		}
		for _, c := range cells {
			out = append(out, ProblemCell{
				Timestep:  step,
				Iteration: it,
				I:         atoi(c[1]),
				J:         atoi(c[2]),
				K:         atoi(c[3]),
				ErrorType: kind,
				Message:   msg,
			})
		}
	}
	return out, sc.Err()
}

// TopCells returns the n most frequently reported cells, most frequent first.
func TopCells(cells []ProblemCell, n int) []CellCount {
	counts := make(map[[3]int]int)
	for _, c := range cells {
		counts[[3]int{c.I, c.J, c.K}]++
	}
	out := make([]CellCount, 0, len(counts))
	for ijk, c := range counts {
		out = append(out, CellCount{I: ijk[0], J: ijk[1], K: ijk[2], Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		if out[a].K != out[b].K {
			return out[a].K < out[b].K
		}
		if out[a].J != out[b].J {
			return out[a].J < out[b].J
		}
		return out[a].I < out[b].I
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
