package oil

import "github.com/olgasafonova/restoolbox-mcp-server/internal/num"

// BubblePointArgs contains parameters for the bubble point calculation
type BubblePointArgs struct {
	API    float64 `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF   float64 `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	Rsb    float64 `json:"rsb" jsonschema:"Solution GOR at bubble point (scf/stb)" validate:"gt=0"`
	SGg    float64 `json:"sg_g" jsonschema:"Gas specific gravity (air=1); separator gas for VALMC and VELAR" validate:"gt=0,lte=3"`
	Method string  `json:"method,omitempty" jsonschema:"Correlation: VALMC (default), STAN or VELAR" validate:"oneof=STAN VALMC VELAR"`
}

func (a *BubblePointArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = MethodValkoMcCain
	}
}

// RsAtBubblePointArgs contains parameters for pairing pb and rsb
type RsAtBubblePointArgs struct {
	API    float64 `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF   float64 `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	Pb     float64 `json:"pb,omitempty" jsonschema:"Bubble point pressure (psia); when set rsb is solved for" validate:"gte=0"`
	Rsb    float64 `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb); used when pb is 0" validate:"gte=0"`
	SGg    float64 `json:"sg_g" jsonschema:"Gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Method string  `json:"method,omitempty" jsonschema:"Correlation: VALMC (default), STAN or VELAR" validate:"oneof=STAN VALMC VELAR"`
}

func (a *RsAtBubblePointArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = MethodValkoMcCain
	}
}

// SolutionGORArgs contains parameters for solution GOR
type SolutionGORArgs struct {
	API    float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF   float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	P      num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	SGg    float64    `json:"sg_g" jsonschema:"Separator gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Pb     float64    `json:"pb,omitempty" jsonschema:"Bubble point pressure (psia), 0 to derive from rsb" validate:"gte=0"`
	Rsb    float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to derive from pb" validate:"gte=0"`
	Method string     `json:"method,omitempty" jsonschema:"Correlation: VELAR (default), STAN or VALMC" validate:"oneof=STAN VALMC VELAR"`
}

func (a *SolutionGORArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = MethodVelarde
	}
}

// FVFArgs contains parameters for oil formation volume factor
type FVFArgs struct {
	API    float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF   float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	P      num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	SGg    float64    `json:"sg_g" jsonschema:"Gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Pb     float64    `json:"pb,omitempty" jsonschema:"Bubble point pressure (psia), 0 to derive from rsb" validate:"gte=0"`
	Rs     num.Values `json:"rs,omitempty" jsonschema:"Solution GOR at p (scf/stb), scalar or array; computed when omitted" validate:"omitempty,dive,gte=0"`
	Rsb    float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to derive from pb" validate:"gte=0"`
	Method string     `json:"method,omitempty" jsonschema:"Correlation: MCAIN (default) or STAN" validate:"oneof=MCAIN STAN"`
}

func (a *FVFArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = BoMcCain
	}
}

// ViscosityArgs contains parameters for oil viscosity
type ViscosityArgs struct {
	API    float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF   float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	P      num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	SGg    float64    `json:"sg_g,omitempty" jsonschema:"Gas specific gravity (air=1), default 0.75; only used to derive pb or rs" validate:"gte=0,lte=3"`
	Pb     float64    `json:"pb,omitempty" jsonschema:"Bubble point pressure (psia), 0 to derive from rsb" validate:"gte=0"`
	Rs     num.Values `json:"rs,omitempty" jsonschema:"Solution GOR at p (scf/stb), scalar or array; computed when omitted" validate:"omitempty,dive,gte=0"`
	Rsb    float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to derive from pb" validate:"gte=0"`
	Method string     `json:"method,omitempty" jsonschema:"Correlation: BR (Beggs-Robinson, default)" validate:"oneof=BR"`
}

func (a *ViscosityArgs) ApplyDefaults() {
	if a.Method == "" {
		a.Method = ViscBeggsRobinson
	}
	if a.SGg == 0 {
		a.SGg = DefaultGasSG
	}
}

// DensityArgs contains parameters for live oil density
type DensityArgs struct {
	P    num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	API  float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=-460,lt=1000"`
	Rs   num.Values `json:"rs" jsonschema:"Solution GOR (scf/stb), scalar or array matching p" validate:"required,dive,gte=0"`
	SGg  float64    `json:"sg_g" jsonschema:"Gas specific gravity (air=1)" validate:"gte=0,lte=3"`
	Bo   num.Values `json:"bo" jsonschema:"Oil FVF (rb/stb), scalar or array matching p" validate:"required,dive,gt=0"`
}

// CompressibilityArgs contains parameters for oil compressibility
type CompressibilityArgs struct {
	P    num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	API  float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	Pb   float64    `json:"pb" jsonschema:"Bubble point pressure (psia), 0 to derive from rsb" validate:"gte=0"`
	SGg  float64    `json:"sg_g" jsonschema:"Gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Rsb  float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to derive from pb" validate:"gte=0"`
}

// SGToAPIArgs contains parameters for API gravity from specific gravity
type SGToAPIArgs struct {
	SG num.Values `json:"sg" jsonschema:"Oil specific gravity (water=1), 0.1-1.5, scalar or array" validate:"required,dive,gte=0.1,lte=1.5"`
}

// APIToSGArgs contains parameters for specific gravity from API gravity
type APIToSGArgs struct {
	API num.Values `json:"api" jsonschema:"Oil API gravity (degrees), 0-100, scalar or array" validate:"required,dive,gt=0,lte=100"`
}

// BlackOilTableArgs contains parameters for black oil table generation
type BlackOilTableArgs struct {
	Pi       float64 `json:"pi" jsonschema:"Initial reservoir pressure (psia)" validate:"gt=0"`
	API      float64 `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF     float64 `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	SGg      float64 `json:"sg_g" jsonschema:"Separator gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Pmax     float64 `json:"pmax,omitempty" jsonschema:"Maximum table pressure (psia), default 1.5 x pi" validate:"gte=0"`
	Pb       float64 `json:"pb,omitempty" jsonschema:"Bubble point pressure (psia), 0 to calculate" validate:"gte=0"`
	Rsb      float64 `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), 0 to calculate" validate:"gte=0"`
	NRows    int     `json:"nrows,omitempty" jsonschema:"Number of table rows (default 50, max 200)" validate:"gt=0,lte=200"`
	Export   bool    `json:"export,omitempty" jsonschema:"Include ECLIPSE PVTO, PVDG and DENSITY keyword text"`
	PbMethod string  `json:"pb_method,omitempty" jsonschema:"Bubble point method: VALMC (default), STAN or VELAR" validate:"oneof=STAN VALMC VELAR"`
	RsMethod string  `json:"rs_method,omitempty" jsonschema:"Solution GOR method: VELAR (default), STAN or VALMC" validate:"oneof=STAN VALMC VELAR"`
	BoMethod string  `json:"bo_method,omitempty" jsonschema:"Oil FVF method: MCAIN (default) or STAN" validate:"oneof=MCAIN STAN"`
	UoMethod string  `json:"uo_method,omitempty" jsonschema:"Oil viscosity method: BR (default)" validate:"oneof=BR"`
}

func (a *BlackOilTableArgs) ApplyDefaults() {
	if a.Pmax == 0 {
		a.Pmax = 1.5 * a.Pi
	}
	if a.NRows == 0 {
		a.NRows = DefaultTableRows
	}
	if a.PbMethod == "" {
		a.PbMethod = MethodValkoMcCain
	}
	if a.RsMethod == "" {
		a.RsMethod = MethodVelarde
	}
	if a.BoMethod == "" {
		a.BoMethod = BoMcCain
	}
	if a.UoMethod == "" {
		a.UoMethod = ViscBeggsRobinson
	}
}

// EvolvedGasSGArgs contains parameters for evolved gas gravity below pb
type EvolvedGasSGArgs struct {
	API  float64    `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	DegF float64    `json:"degf" jsonschema:"Reservoir temperature (degF)" validate:"gt=0,lt=1000"`
	SGg  float64    `json:"sg_g" jsonschema:"Separator gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	P    num.Values `json:"p" jsonschema:"Pressure (psia), scalar or array" validate:"required,dive,gt=0"`
	Psep float64    `json:"psep,omitempty" jsonschema:"Separator pressure (psia), default 100" validate:"gt=0"`
	Rsb  float64    `json:"rsb,omitempty" jsonschema:"Solution GOR at bubble point (scf/stb), default 800" validate:"gt=0"`
}

func (a *EvolvedGasSGArgs) ApplyDefaults() {
	if a.Psep == 0 {
		a.Psep = DefaultSeparatorP
	}
	if a.Rsb == 0 {
		a.Rsb = DefaultRsb
	}
}

// StockTankGasSGArgs contains parameters for stock tank gas gravity
type StockTankGasSGArgs struct {
	API    float64 `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
	SGg    float64 `json:"sg_g" jsonschema:"Separator gas specific gravity (air=1)" validate:"gt=0,lte=3"`
	Psep   float64 `json:"psep,omitempty" jsonschema:"Separator pressure (psia), default 100" validate:"gt=0"`
	Rsp    float64 `json:"rsp,omitempty" jsonschema:"Separator GOR (scf/stb), default 720" validate:"gt=0"`
	DegFSp float64 `json:"degf_sp,omitempty" jsonschema:"Separator temperature (degF), default 100" validate:"gt=0,lt=1000"`
}

func (a *StockTankGasSGArgs) ApplyDefaults() {
	if a.Psep == 0 {
		a.Psep = DefaultSeparatorP
	}
	if a.Rsp == 0 {
		a.Rsp = SeparatorGORFraction * DefaultRsb
	}
	if a.DegFSp == 0 {
		a.DegFSp = DefaultSeparatorDegF
	}
}

// JacobyArgs contains parameters for the Jacoby aromaticity SG
type JacobyArgs struct {
	MW num.Values `json:"mw" jsonschema:"Molecular weight (lb/lbmol), scalar or array" validate:"required,dive,gt=0"`
	JA num.Values `json:"ja" jsonschema:"Jacoby aromaticity factor (0 paraffinic to 1 aromatic), scalar or array" validate:"required,dive,gte=0,lte=1"`
}

// TwuArgs contains parameters for Twu critical properties
type TwuArgs struct {
	MW   num.Values `json:"mw,omitempty" jsonschema:"Molecular weight (lb/lbmol), scalar or array; required unless tb is given" validate:"omitempty,dive,gt=0"`
	SG   num.Values `json:"sg" jsonschema:"Specific gravity (water=1), scalar or array" validate:"required,dive,gt=0"`
	Tb   num.Values `json:"tb,omitempty" jsonschema:"Normal boiling point (degR), scalar or array; used instead of mw when given" validate:"omitempty,dive,gt=0"`
	Damp float64    `json:"damp,omitempty" jsonschema:"Newton step scale for the Tb solve, 0-1 (0 means full step)" validate:"gte=0,lte=1"`
}

// WeightedGasSGArgs contains parameters for GOR-weighted gas gravity
type WeightedGasSGArgs struct {
	SGsp float64 `json:"sg_sp" jsonschema:"Separator gas specific gravity" validate:"gt=0"`
	Rsp  float64 `json:"rsp" jsonschema:"Separator GOR (scf/stb)" validate:"gte=0"`
	SGst float64 `json:"sg_st" jsonschema:"Stock tank gas specific gravity" validate:"gt=0"`
	Rst  float64 `json:"rst" jsonschema:"Stock tank GOR (scf/stb)" validate:"gte=0"`
}

// StockTankGORArgs contains parameters for the incremental stock tank GOR
type StockTankGORArgs struct {
	Psp    float64 `json:"psp" jsonschema:"Separator pressure (psia)" validate:"gt=0"`
	DegFSp float64 `json:"degf_sp" jsonschema:"Separator temperature (degF)" validate:"gt=0,lt=1000"`
	API    float64 `json:"api" jsonschema:"Oil API gravity (degrees), 0-100" validate:"gt=0,lte=100"`
}

// CheckGasSGsArgs contains parameters for gas gravity consistency checks
type CheckGasSGsArgs struct {
	SGg  float64 `json:"sg_g,omitempty" jsonschema:"Weighted average gas SG; 0 or omitted to derive" validate:"gte=0"`
	SGsp float64 `json:"sg_sp,omitempty" jsonschema:"Separator gas SG; 0 or omitted to derive" validate:"gte=0"`
	Rst  float64 `json:"rst" jsonschema:"Stock tank GOR (scf/stb)" validate:"gte=0"`
	Rsp  float64 `json:"rsp" jsonschema:"Separator GOR (scf/stb)" validate:"gte=0"`
	SGst float64 `json:"sg_st" jsonschema:"Stock tank gas SG" validate:"gt=0"`
}
