package models

// Padding is the inner spacing of a box, in one of three concrete forms.
type Padding interface{ isPadding() }

// EvenPadding pads all four sides by the same amount.
type EvenPadding struct {
	All float32
}

// CenterPadding pads the horizontal and vertical sides independently.
type CenterPadding struct {
	H, V float32
}

// CustomPadding pads each side independently.
type CustomPadding struct {
	Top, Right, Bottom, Left float32
}

func (EvenPadding) isPadding()   {}
func (CenterPadding) isPadding() {}
func (CustomPadding) isPadding() {}

// Size is a horizontal/vertical pair in pixels.
type Size struct {
	H, V float32
}
