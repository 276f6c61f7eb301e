// Package measure maps continuous semantic body and face measurements to
// morph channel weights through piecewise-linear curves.
package measure

// Source selects a semantic measurement on the external parameter object.
// All sources are continuous 0-1 values; gender and age use the same
// convention (0 = one extreme, 1 = the other) so a single linear mapping
// can interpolate between, e.g., masculine and feminine base shapes.
type Source int

const (
	SourceHeight Source = iota
	SourceWeight
	SourceMuscle
	SourceBreastSize
	SourceEyeSpacing
	SourceJawWidth
	SourceArmLength
	SourceLegLength
	SourceGender
	SourceAge

	sourceCount
)

var sourceNames = [...]string{
	"height",
	"weight",
	"muscle",
	"breast_size",
	"eye_spacing",
	"jaw_width",
	"arm_length",
	"leg_length",
	"gender",
	"age",
}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return "unknown"
	}
	return sourceNames[s]
}

// ParseSource resolves a source by its serialized name.
func ParseSource(name string) (Source, bool) {
	for i, n := range sourceNames {
		if n == name {
			return Source(i), true
		}
	}
	return 0, false
}

// Sources returns all defined sources, in declaration order.
func Sources() []Source {
	out := make([]Source, sourceCount)
	for i := range out {
		out[i] = Source(i)
	}
	return out
}
