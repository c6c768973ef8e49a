package pymote

import "fmt"

// Region describes one simulator region as reported by "show regions".
//
// Port and ExternalHostname are pointers because the console does not
// always report them; a nil pointer means "not reported", which is
// distinct from a zero value.
type Region struct {
	Name             string
	UUID             string
	LocationX        int
	LocationY        int
	SizeX            int
	SizeY            int
	ExternalHostname *string
	Port             *int
}

// Location returns the region's grid coordinates as an (x, y) pair.
func (r Region) Location() (x, y int) {
	return r.LocationX, r.LocationY
}

// String implements fmt.Stringer.
func (r Region) String() string {
	return fmt.Sprintf("Region(%s at %d,%d)", r.Name, r.LocationX, r.LocationY)
}

// Vector3 is a position in region coordinates.
type Vector3 struct {
	X, Y, Z float64
}

// User describes one avatar as reported by "show users".
type User struct {
	FirstName string
	LastName  string
	UUID      *string
	Region    *string
	Position  *Vector3
	Online    bool
	Level     int
}

// FullName returns "FirstName LastName".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// String implements fmt.Stringer.
func (u User) String() string {
	status := "offline"
	if u.Online {
		status = "online"
	}
	return fmt.Sprintf("User(%s, %s)", u.FullName(), status)
}

// Stats holds the metrics extracted from "show stats" output. Every field
// is a pointer: nil means the metric did not appear in the output.
type Stats struct {
	FPS        *float64
	PhysicsFPS *float64
	Agents     *int
	Objects    *int
	Scripts    *int
	MemoryMB   *float64
	Uptime     *string
}

// TerrainInfo holds the height summary extracted from "terrain stats".
type TerrainInfo struct {
	MinHeight float64
	MaxHeight float64
	AvgHeight float64
}

// String implements fmt.Stringer.
func (t TerrainInfo) String() string {
	return fmt.Sprintf("TerrainInfo(min=%.2f, max=%.2f, avg=%.2f)", t.MinHeight, t.MaxHeight, t.AvgHeight)
}
