package domain

// Direction selects which of the two languages is shown as the card prompt.
type Direction string

const (
	// SourceToTarget shows the English term and expects its translation.
	SourceToTarget Direction = "source_target"
	// TargetToSource shows the translation and expects the English term.
	TargetToSource Direction = "target_source"
)

// DefaultDirection is assigned to users on first contact.
const DefaultDirection = SourceToTarget

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == SourceToTarget {
		return TargetToSource
	}
	return SourceToTarget
}

// ParseDirection maps a stored string to a Direction, falling back to the
// default for unknown values.
func ParseDirection(s string) Direction {
	if Direction(s) == TargetToSource {
		return TargetToSource
	}
	return SourceToTarget
}
