package evals

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/olgasafonova/restoolbox-mcp-server/tools"
)

// KeywordSelector is a deterministic ToolSelector that scores tools by word
// overlap with their names and titles. It gives the suites a baseline that
// needs no model.
type KeywordSelector struct {
	index []indexedTool
}

type indexedTool struct {
	name     string
	category string
	weights  map[string]int
	// targets are the words a conversion tool produces: the ones before
	// "from" or after "to" in its name or title.
	targets map[string]bool
}

var stopWords = wordSet(`a an the of for from to at in on with and or by
	what is are me my it this that how much do does i we
	calculate compute get find give estimate need want given using convert
	into please can you our be
	psia psi degf ft md cp ppg stb scf`)

// aliases expand shorthand into the words tool titles use
var aliases = map[string][]string{
	"bg":      {"gas", "formation", "volume", "factor"},
	"bo":      {"oil", "formation", "volume", "factor"},
	"rs":      {"solution", "gor"},
	"pb":      {"bubble", "point"},
	"swof":    {"relative", "permeability"},
	"sgof":    {"relative", "permeability"},
	"sgwfn":   {"relative", "permeability"},
	"relperm": {"relative", "permeability"},
	"aqutab":  {"aquifer", "influence"},
	"pvto":    {"black", "oil", "table"},
	"pvdg":    {"black", "oil", "table"},
	"prt":     {"problem", "cell"},
	"include": {"simulation", "deck"},
	"lot":     {"leak", "off"},
	"z":       {"factor"},
}

// NewKeywordSelector indexes the given tool specs.
func NewKeywordSelector(specs []tools.ToolSpec) *KeywordSelector {
	ks := &KeywordSelector{index: make([]indexedTool, 0, len(specs))}
	for _, spec := range specs {
		it := indexedTool{
			name:     spec.Name,
			category: spec.Category,
			weights:  make(map[string]int),
			targets:  make(map[string]bool),
		}
		nameWords := rawWords(strings.ReplaceAll(spec.Name, "_", " "))
		titleWords := rawWords(spec.Title)
		for _, w := range keywords(nameWords) {
			it.weights[w] = 2
		}
		for _, w := range keywords(titleWords) {
			it.weights[w]++
		}
		for _, words := range [][]string{nameWords, titleWords} {
			for _, w := range conversionTargets(words) {
				it.targets[w] = true
			}
		}
		ks.index = append(ks.index, it)
	}
	return ks
}

// SelectTool picks the highest scoring tool. Ties go to the tool declared first.
func (ks *KeywordSelector) SelectTool(input string) (string, map[string]any, error) {
	words := rawWords(input)
	terms := make(map[string]bool)
	for _, w := range keywords(words) {
		terms[w] = true
		for _, a := range aliases[w] {
			terms[a] = true
		}
	}
	wanted := conversionTargets(words)

	best, bestScore := -1, 0
	for i, it := range ks.index {
		score := 0
		for term := range terms {
			score += it.weights[term]
		}
		for _, w := range wanted {
			if it.targets[w] {
				score += 2
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return "", nil, fmt.Errorf("no tool matches %q", input)
	}

	chosen := ks.index[best]
	return chosen.name, extractArgs(input, chosen), nil
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// rawWords lowercases s and splits it into letter/digit runs
func rawWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// keywords drops stop words and numbers and folds plurals
func keywords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if stopWords[w] || unicode.IsDigit(rune(w[0])) {
			continue
		}
		out = append(out, stem(w))
	}
	return out
}

func stem(w string) string {
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") {
		return w[:len(w)-1]
	}
	return w
}

// conversionTargets returns the two words after each "to" and the two
// words before each "from".
func conversionTargets(words []string) []string {
	var out []string
	add := func(i int) {
		if i >= 0 && i < len(words) && !stopWords[words[i]] {
			out = append(out, stem(words[i]))
		}
	}
	for i, w := range words {
		switch w {
		case "to", "into":
			add(i + 1)
			add(i + 2)
		case "from":
			add(i - 1)
			add(i - 2)
		}
	}
	return out
}

const numberPattern = `(-?\d+(?:\.\d+)?)`

var (
	pressureRe      = regexp.MustCompile(numberPattern + `\s*psia?\b`)
	temperatureRe   = regexp.MustCompile(numberPattern + `\s*(?:°\s*f|deg\s*f|degf|f)\b`)
	apiAfterRe      = regexp.MustCompile(numberPattern + `\s*(?:°\s*)?api\b`)
	apiBeforeRe     = regexp.MustCompile(`\bapi\s*(?:of\s*|=\s*|gravity\s*)?` + numberPattern)
	gasGravityRe    = regexp.MustCompile(`\bgas\s+(?:specific\s+)?(?:gravity|sg)\s*(?:of\s*|=\s*)?(\d*\.\d+)`)
	gravityRe       = regexp.MustCompile(`\b(?:sg|specific\s+gravity)\s*(?:of\s*|=\s*)?(\d*\.\d+)`)
	depthRe         = regexp.MustCompile(numberPattern + `\s*(?:ft|feet)\b`)
	gorRe           = regexp.MustCompile(numberPattern + `\s*scf/stb\b`)
	methodCodeRe    = regexp.MustCompile(`\b(DAK|HY|PMC|SUT|STAN|VALMC|VELAR|MCAIN|BR)\b`)
	correlationTool = map[string]bool{"gas": true, "oil": true}
)

// extractArgs pulls field-unit quantities out of the request and names them
// the way the chosen tool expects.
func extractArgs(input string, tool indexedTool) map[string]any {
	args := make(map[string]any)
	lower := strings.ToLower(input)

	if vals := allNumbers(pressureRe, lower); len(vals) == 1 {
		args["p"] = vals[0]
	} else if len(vals) > 1 {
		list := make([]any, len(vals))
		for i, v := range vals {
			list[i] = v
		}
		args["p"] = list
	}
	if v, ok := firstNumber(temperatureRe, lower); ok {
		args["degf"] = v
	}
	if v, ok := firstNumber(apiAfterRe, lower); ok {
		args["api"] = v
	} else if v, ok := firstNumber(apiBeforeRe, lower); ok {
		args["api"] = v
	}

	if v, ok := firstNumber(gasGravityRe, lower); ok {
		if tool.category == "gas" {
			args["sg"] = v
		} else {
			args["sg_g"] = v
		}
	} else if v, ok := firstNumber(gravityRe, lower); ok {
		args["sg"] = v
	}

	if v, ok := firstNumber(gorRe, lower); ok {
		args["rsb"] = v
	}
	if tool.category == "geomech" {
		if v, ok := firstNumber(depthRe, lower); ok {
			args["depth"] = v
		}
	}
	if correlationTool[tool.category] {
		if m := methodCodeRe.FindStringSubmatch(input); m != nil {
			args["method"] = m[1]
		}
	}
	return args
}

func firstNumber(re *regexp.Regexp, s string) (float64, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	return v, err == nil
}

func allNumbers(re *regexp.Regexp, s string) []float64 {
	var out []float64
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
