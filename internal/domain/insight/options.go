package insight

// Climate normals used when no location specific baseline is configured.
const (
	DefaultNormalTempC       = 28.5
	DefaultNormalSwingC      = 9.0
	DefaultNormalHumidityPct = 70.0
)

// Options tunes the evaluators for a location.
type Options struct {
	Acclimatization   float64 `json:"acclimatization" yaml:"acclimatization"`
	NormalTempC       float64 `json:"normalTempC" yaml:"normalTempC"`
	NormalSwingC      float64 `json:"normalSwingC" yaml:"normalSwingC"`
	NormalHumidityPct float64 `json:"normalHumidityPct" yaml:"normalHumidityPct"`
	NormalWindKmh     float64 `json:"normalWindKmh" yaml:"normalWindKmh"`
}

// DefaultOptions returns the built in normals with no acclimatization.
func DefaultOptions() Options {
	return Options{
		NormalTempC:       DefaultNormalTempC,
		NormalSwingC:      DefaultNormalSwingC,
		NormalHumidityPct: DefaultNormalHumidityPct,
		NormalWindKmh:     DefaultNormalWindKmh,
	}
}

// WithDefaults fills zero normals from DefaultOptions. Acclimatization is kept as is.
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	if o.NormalTempC == 0 {
		o.NormalTempC = def.NormalTempC
	}
	if o.NormalSwingC == 0 {
		o.NormalSwingC = def.NormalSwingC
	}
	if o.NormalHumidityPct == 0 {
		o.NormalHumidityPct = def.NormalHumidityPct
	}
	if o.NormalWindKmh == 0 {
		o.NormalWindKmh = def.NormalWindKmh
	}
	return o
}
