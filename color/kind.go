package color

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind tags the variant held by a Color.
type Kind int

const (
	_ Kind = iota

	KindPlain
	KindGradient
	KindPattern
)
