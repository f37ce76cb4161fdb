package simtools

// RelPermResult is a generated saturation table
type RelPermResult struct {
	Table       []map[string]float64 `json:"table"`
	Columns     []string             `json:"columns"`
	Rows        int                  `json:"rows"`
	TableType   string               `json:"table_type"`
	Correlation string               `json:"correlation"`
	Keyword     string               `json:"eclipse_keyword" jsonschema:"ECLIPSE include text"`
	Note        string               `json:"note"`
	Inputs      RelPermArgs          `json:"inputs"`
}

// TimeRange is the tD span of an influence table
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// InfluenceResult is an aquifer influence table
type InfluenceResult struct {
	TD        []float64     `json:"dimensionless_time"`
	Values    []float64     `json:"dimensionless_pressures" jsonschema:"pD for infl=pot, WD for infl=press"`
	Rows      int           `json:"rows"`
	ReD       float64       `json:"dimensionless_radius"`
	TimeRange TimeRange     `json:"time_range"`
	Keyword   string        `json:"eclipse_keyword" jsonschema:"AQUTAB include text"`
	Method    string        `json:"method"`
	Note      string        `json:"note"`
	Inputs    InfluenceArgs `json:"inputs"`
}

// FlashResponse is a Rachford-Rice flash result
type FlashResponse struct {
	VaporFraction float64   `json:"vapor_fraction"`
	Liquid        []float64 `json:"liquid_composition"`
	Vapor         []float64 `json:"vapor_composition"`
	Iterations    int       `json:"iterations"`
	Phase         string    `json:"phase_state"`
	Method        string    `json:"method"`
	Note          string    `json:"note"`
	Inputs        FlashArgs `json:"inputs"`
}

// ProblemCellJSON is one reported problem cell
type ProblemCellJSON struct {
	Timestep  int    `json:"timestep" jsonschema:"0 when not reported"`
	Iteration int    `json:"iteration" jsonschema:"0 when not reported"`
	I         int    `json:"i"`
	J         int    `json:"j"`
	K         int    `json:"k"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

// CellCountJSON counts the problems reported for one cell
type CellCountJSON struct {
	I     int `json:"i"`
	J     int `json:"j"`
	K     int `json:"k"`
	Count int `json:"count"`
}

// ProblemCellsResult lists problem cells found in a PRT file
type ProblemCellsResult struct {
	ProblemCells  []ProblemCellJSON `json:"problem_cells"`
	TotalProblems int               `json:"total_problems"`
	TopCells      []CellCountJSON   `json:"most_frequent_cells"`
	ByType        map[string]int    `json:"problems_by_type"`
	File          string            `json:"file"`
	Method        string            `json:"method"`
	Message       string            `json:"message"`
	Inputs        ProblemCellsArgs  `json:"inputs"`
}

// DeckValidation summarises a deck check
type DeckValidation struct {
	MainFiles    []string `json:"main_files"`
	FilesFound   int      `json:"total_files_found"`
	FilesMissing int      `json:"total_files_missing"`
	Status       string   `json:"status" jsonschema:"VALID or INCOMPLETE"`
}

// DeckFile is a referenced deck file
type DeckFile struct {
	Keyword    string `json:"keyword"`
	Path       string `json:"path"`
	ReferredBy string `json:"referred_by"`
}

// DeckResult is the result of a deck check
type DeckResult struct {
	Validation DeckValidation `json:"deck_validation"`
	Found      []DeckFile     `json:"found_files"`
	Missing    []DeckFile     `json:"missing_files"`
	ZipArchive string         `json:"zip_archive,omitempty"`
	Method     string         `json:"method"`
	Note       string         `json:"note"`
	Inputs     DeckArgs       `json:"inputs"`
}
