package layout

// RawLayout is the unvalidated on-disk shape. Numeric fields are pointers so a
// missing value can be told apart from an explicit zero
type RawLayout struct {
	Name          string        `yaml:"name,omitempty"`
	FloorSize     *RawSize      `yaml:"floor_size,omitempty"`
	WallHeight    *float64      `yaml:"wall_height,omitempty"`
	WallThickness *float64      `yaml:"wall_thickness,omitempty"`
	Corridors     []RawCorridor `yaml:"corridors,omitempty"`
	Rooms         []RawRoom     `yaml:"rooms"`
	Groups        []RawGroup    `yaml:"groups,omitempty"`
}

type RawSize struct {
	W *float64 `yaml:"w,omitempty"`
	H *float64 `yaml:"h,omitempty"`
}

type RawRoom struct {
	Key       string         `yaml:"key,omitempty"`
	Name      string         `yaml:"name,omitempty"`
	X         *float64       `yaml:"x,omitempty"`
	Z         *float64       `yaml:"z,omitempty"`
	W         *float64       `yaml:"w,omitempty"`
	H         *float64       `yaml:"h,omitempty"`
	Doors     []RawDoor      `yaml:"doors,omitempty"`
	Furniture []RawFurniture `yaml:"furniture,omitempty"`
}

type RawDoor struct {
	Side   string   `yaml:"side,omitempty"`
	Offset *float64 `yaml:"offset,omitempty"`
	Width  *float64 `yaml:"width,omitempty"`
}

type RawFurniture struct {
	Type  string   `yaml:"type"`
	X     *float64 `yaml:"x,omitempty"`
	Z     *float64 `yaml:"z,omitempty"`
	W     *float64 `yaml:"w,omitempty"`
	H     *float64 `yaml:"h,omitempty"`
	Y     *float64 `yaml:"y,omitempty"`
	Label string   `yaml:"label,omitempty"`
}

type RawCorridor struct {
	X *float64 `yaml:"x,omitempty"`
	Z *float64 `yaml:"z,omitempty"`
	W *float64 `yaml:"w,omitempty"`
	H *float64 `yaml:"h,omitempty"`
}

type RawGroup struct {
	Name  string   `yaml:"name,omitempty"`
	Salt  *uint32  `yaml:"salt,omitempty"`
	Rooms []string `yaml:"rooms"`
}

// F returns a pointer to v, shorthand for building raw data in code
func F(v float64) *float64 { return &v }

// Raw converts a sanitized layout back to its raw form. Sanitize(l.Raw()) == l
func (l *Layout) Raw() RawLayout {
	raw := RawLayout{
		Name:          l.Name,
		FloorSize:     &RawSize{W: F(l.FloorSize.W), H: F(l.FloorSize.H)},
		WallHeight:    F(l.WallHeight),
		WallThickness: F(l.WallThickness),
	}

	for _, c := range l.Corridors {
		raw.Corridors = append(raw.Corridors, RawCorridor{X: F(c.X), Z: F(c.Z), W: F(c.W), H: F(c.H)})
	}

	for _, r := range l.Rooms {
		rr := RawRoom{
			Key:  r.Key,
			Name: r.Name,
			X:    F(r.X),
			Z:    F(r.Z),
			W:    F(r.W),
			H:    F(r.H),
		}
		for _, d := range r.Doors {
			rr.Doors = append(rr.Doors, RawDoor{Side: d.Side.String(), Offset: F(d.Offset), Width: F(d.Width)})
		}
		for _, f := range r.Furniture {
			rr.Furniture = append(rr.Furniture, RawFurniture{
				Type:  f.Kind.String(),
				X:     F(f.X),
				Z:     F(f.Z),
				W:     F(f.W),
				H:     F(f.H),
				Y:     F(f.Y),
				Label: f.Label,
			})
		}
		raw.Rooms = append(raw.Rooms, rr)
	}

	for _, g := range l.Groups {
		salt := g.Salt
		raw.Groups = append(raw.Groups, RawGroup{
			Name:  g.Name,
			Salt:  &salt,
			Rooms: append([]string(nil), g.Rooms...),
		})
	}

	return raw
}
