package option

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies the values a field Type accepts.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks an unset Type

	KindString
	KindNumber
	KindInteger
	KindBool
	KindEnum
	KindColor
	KindEntity
	KindList
	KindCallback
	KindRaw
	KindUnion

	// KindTotal is the number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether values of the kind are single JSON primitives.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindNumber, KindInteger, KindBool, KindEnum, KindCallback:
		return true
	default:
		return false
	}
}

// IsContainer reports whether values of the kind may hold nested mappings or
// sequences.
func (k Kind) IsContainer() bool {
	switch k {
	case KindEntity, KindList, KindRaw, KindUnion, KindColor:
		return true
	default:
		return false
	}
}
