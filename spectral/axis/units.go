package axis

// Unit identifies the physical unit of an axis.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitNanometre
	UnitMicrometre
	UnitElectronVolt
	UnitInverseCm
	UnitPicosecond
	UnitNanosecond
	UnitMicrosecond
	UnitMillisecond
	UnitSecond
)

// Kind classifies units by the physical quantity they measure.
type Kind int

const (
	KindUnknown Kind = iota
	KindLength
	KindEnergy
	KindWavenumber
	KindTime
)

var unitNames = map[Unit]string{
	UnitNanometre:    "nm",
	UnitMicrometre:   "µm",
	UnitElectronVolt: "eV",
	UnitInverseCm:    "1/cm",
	UnitPicosecond:   "ps",
	UnitNanosecond:   "ns",
	UnitMicrosecond:  "µs",
	UnitMillisecond:  "ms",
	UnitSecond:       "s",
}

// String returns the conventional symbol for the unit.
func (u Unit) String() string {
	if s, ok := unitNames[u]; ok {
		return s
	}
	return "<undefined>"
}

// Kind returns the physical quantity the unit measures.
func (u Unit) Kind() Kind {
	switch u {
	case UnitNanometre, UnitMicrometre:
		return KindLength
	case UnitElectronVolt:
		return KindEnergy
	case UnitInverseCm:
		return KindWavenumber
	case UnitPicosecond, UnitNanosecond, UnitMicrosecond, UnitMillisecond, UnitSecond:
		return KindTime
	default:
		return KindUnknown
	}
}

// NanometresPerUnit returns the length of one axis unit in nanometres.
// It is 1 for nm, 1000 for µm and 0 for non-length units.
func (u Unit) NanometresPerUnit() float64 {
	switch u {
	case UnitNanometre:
		return 1
	case UnitMicrometre:
		return 1000
	default:
		return 0
	}
}
