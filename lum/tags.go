package lum

// SignalType is the capability descriptor carried by a Signal. The set is
// closed: dispatch happens by tag, not by type hierarchy.
type SignalType int

const (
	// TypeGeneric marks a signal with no specific luminescence semantics,
	// e.g. the untyped result of an external reduction before ResolveType
	// has run.
	TypeGeneric SignalType = iota
	TypeLuminescence
	TypeCL
	TypeCLSEM
	TypeCLSTEM
	TypeEL
	TypePL
	TypeTransient
	TypeTransientSpectrum
)

var typeNames = map[SignalType]string{
	TypeGeneric:           "Generic",
	TypeLuminescence:      "Luminescence",
	TypeCL:                "CL",
	TypeCLSEM:             "CL_SEM",
	TypeCLSTEM:            "CL_STEM",
	TypeEL:                "EL",
	TypePL:                "PL",
	TypeTransient:         "Transient",
	TypeTransientSpectrum: "TransientSpectrum",
}

// String returns the conventional name of the signal type.
func (t SignalType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "Generic"
}
