package simtools

// RelPermArgs contains parameters for relative permeability tables
type RelPermArgs struct {
	Rows     int      `json:"rows,omitempty" jsonschema:"Number of table rows, 2-100 (default 25)" validate:"gte=2,lte=100"`
	KrTable  string   `json:"krtable,omitempty" jsonschema:"Table keyword: SWOF (default), SGOF or SGWFN" validate:"oneof=SWOF SGOF SGWFN"`
	KrFamily string   `json:"krfamily,omitempty" jsonschema:"Curve family: LET (default) or COR (Corey)" validate:"oneof=COR LET"`
	KroMax   *float64 `json:"kromax,omitempty" jsonschema:"Oil relative permeability end point (default 1)" validate:"omitempty,gte=0,lte=1"`
	KrwMax   *float64 `json:"krwmax,omitempty" jsonschema:"Water relative permeability end point (default 1)" validate:"omitempty,gte=0,lte=1"`
	KrgMax   *float64 `json:"krgmax,omitempty" jsonschema:"Gas relative permeability end point (default 1)" validate:"omitempty,gte=0,lte=1"`
	Swc      float64  `json:"swc,omitempty" jsonschema:"Connate water saturation (default 0)" validate:"gte=0,lt=1"`
	Swcr     float64  `json:"swcr,omitempty" jsonschema:"Critical water saturation (default swc)" validate:"gte=0,lt=1"`
	Sorg     float64  `json:"sorg,omitempty" jsonschema:"Residual oil saturation to gas (default 0)" validate:"gte=0,lt=1"`
	Sorw     float64  `json:"sorw,omitempty" jsonschema:"Residual oil saturation to water (default 0)" validate:"gte=0,lt=1"`
	Sgc      float64  `json:"sgc,omitempty" jsonschema:"Critical gas saturation (default 0)" validate:"gte=0,lt=1"`
	No       *float64 `json:"no,omitempty" jsonschema:"Oil Corey exponent (default 2)" validate:"omitempty,gt=0"`
	Nw       *float64 `json:"nw,omitempty" jsonschema:"Water Corey exponent (default 2)" validate:"omitempty,gt=0"`
	Ng       *float64 `json:"ng,omitempty" jsonschema:"Gas Corey exponent (default 2)" validate:"omitempty,gt=0"`
	Lo       *float64 `json:"Lo,omitempty" jsonschema:"Oil LET L (default 2)" validate:"omitempty,gt=0"`
	Eo       *float64 `json:"Eo,omitempty" jsonschema:"Oil LET E (default 1)" validate:"omitempty,gt=0"`
	To       *float64 `json:"To,omitempty" jsonschema:"Oil LET T (default 2)" validate:"omitempty,gt=0"`
	Lw       *float64 `json:"Lw,omitempty" jsonschema:"Water LET L (default 2)" validate:"omitempty,gt=0"`
	Ew       *float64 `json:"Ew,omitempty" jsonschema:"Water LET E (default 1)" validate:"omitempty,gt=0"`
	Tw       *float64 `json:"Tw,omitempty" jsonschema:"Water LET T (default 2)" validate:"omitempty,gt=0"`
	Lg       *float64 `json:"Lg,omitempty" jsonschema:"Gas LET L (default 2)" validate:"omitempty,gt=0"`
	Eg       *float64 `json:"Eg,omitempty" jsonschema:"Gas LET E (default 1)" validate:"omitempty,gt=0"`
	Tg       *float64 `json:"Tg,omitempty" jsonschema:"Gas LET T (default 2)" validate:"omitempty,gt=0"`
}

func (a *RelPermArgs) ApplyDefaults() {
	if a.Rows == 0 {
		a.Rows = 25
	}
	if a.KrTable == "" {
		a.KrTable = TableSWOF
	}
	if a.KrFamily == "" {
		a.KrFamily = FamilyLET
	}
	if a.Swcr < a.Swc {
		a.Swcr = a.Swc
	}
	for _, d := range []struct {
		v   **float64
		def float64
	}{
		{&a.KroMax, 1}, {&a.KrwMax, 1}, {&a.KrgMax, 1},
		{&a.No, 2}, {&a.Nw, 2}, {&a.Ng, 2},
		{&a.Lo, 2}, {&a.Eo, 1}, {&a.To, 2},
		{&a.Lw, 2}, {&a.Ew, 1}, {&a.Tw, 2},
		{&a.Lg, 2}, {&a.Eg, 1}, {&a.Tg, 2},
	} {
		if *d.v == nil {
			def := d.def
			*d.v = &def
		}
	}
}

// InfluenceArgs contains parameters for aquifer influence tables
type InfluenceArgs struct {
	Start   float64 `json:"start,omitempty" jsonschema:"First dimensionless time (default 0.01)" validate:"gt=0"`
	End     float64 `json:"end,omitempty" jsonschema:"Last dimensionless time (default 1000)" validate:"gt=0"`
	Rows    int     `json:"rows,omitempty" jsonschema:"Number of table rows, 2-200 (default 25)" validate:"gte=2,lte=200"`
	Res     float64 `json:"res,omitempty" jsonschema:"Dimensionless aquifer radius reD = re/rw, above 1 and up to 50 (default 10)" validate:"gt=1,lte=50"`
	AquNum  int     `json:"aqunum,omitempty" jsonschema:"Aquifer influence table number, 1-10 (default 1)" validate:"gte=1,lte=10"`
	Infl    string  `json:"infl,omitempty" jsonschema:"pot: dimensionless pressure (default); press: dimensionless cumulative influx" validate:"oneof=pot press"`
	Ei      *bool   `json:"ei,omitempty" jsonschema:"Use the line-source exponential integral while infinite acting (default true)"`
	Piston  bool    `json:"piston,omitempty" jsonschema:"Constant-pressure outer boundary instead of no-flow"`
	TDScale float64 `json:"td_scale,omitempty" jsonschema:"Multiplier applied to the tabulated dimensionless times (default 1)" validate:"gte=0"`
}

func (a *InfluenceArgs) ApplyDefaults() {
	if a.Start == 0 {
		a.Start = 0.01
	}
	if a.End == 0 {
		a.End = 1000
	}
	if a.Rows == 0 {
		a.Rows = 25
	}
	if a.Res == 0 {
		a.Res = 10
	}
	if a.AquNum == 0 {
		a.AquNum = 1
	}
	if a.Infl == "" {
		a.Infl = InfluencePotential
	}
	if a.Ei == nil {
		t := true
		a.Ei = &t
	}
	if a.TDScale == 0 {
		a.TDScale = 1
	}
}

// FlashArgs contains the feed and K-values of a Rachford-Rice flash
type FlashArgs struct {
	Zis []float64 `json:"zis" jsonschema:"Feed mole fractions, summing to 1" validate:"required,min=2,dive,gte=0"`
	Kis []float64 `json:"Kis" jsonschema:"Equilibrium ratios yi/xi, one per component" validate:"required,min=2,dive,gt=0"`
}

// ProblemCellsArgs names a PRT or log file
type ProblemCellsArgs struct {
	Filename string `json:"filename" jsonschema:"Path to the ECLIPSE PRT or Intersect log file" validate:"required"`
	Silent   *bool  `json:"silent,omitempty" jsonschema:"Skip the server-side log summary (default true)"`
}

func (a *ProblemCellsArgs) ApplyDefaults() {
	if a.Silent == nil {
		t := true
		a.Silent = &t
	}
}

// DeckArgs names the DATA files of a simulation deck
type DeckArgs struct {
	Files2Scrape   []string `json:"files2scrape" jsonschema:"Main DATA files, for example [\"CASE.DATA\"]" validate:"required,min=1,dive,required"`
	ToZip          bool     `json:"tozip,omitempty" jsonschema:"Write a zip archive of the complete deck next to the first DATA file"`
	ConsoleSummary *bool    `json:"console_summary,omitempty" jsonschema:"Log a summary on the server (default true)"`
}

func (a *DeckArgs) ApplyDefaults() {
	if a.ConsoleSummary == nil {
		t := true
		a.ConsoleSummary = &t
	}
}
