package trace

import "strconv"

var rotationNames = [...]string{
	RotationNone:      "none",
	RotationLeft:      "left",
	RotationRight:     "right",
	RotationLeftRight: "left-right",
	RotationRightLeft: "right-left",
}

var rotationDisplayNames = [...]string{
	RotationNone:      "",
	RotationLeft:      "Left Rotation",
	RotationRight:     "Right Rotation",
	RotationLeftRight: "Left-Right Rotation",
	RotationRightLeft: "Right-Left Rotation",
}

func (r Rotation) String() string {
	if r >= _rotationMax {
		return "Rotation(" + strconv.Itoa(int(r)) + ")"
	}
	return rotationNames[r]
}

// DisplayName is the label shown next to an animated rebalance.
// Empty for RotationNone.
func (r Rotation) DisplayName() string {
	if r >= _rotationMax {
		return ""
	}
	return rotationDisplayNames[r]
}

func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRotation is the inverse of Rotation.String.
func ParseRotation(s string) (Rotation, bool) {
	for i, name := range rotationNames {
		if name == s {
			return Rotation(i), true
		}
	}
	return RotationNone, false
}
