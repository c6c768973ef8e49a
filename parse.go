package pymote

import (
	"regexp"
	"strconv"
	"strings"
)

// Output parsers for the structured console commands.
//
// All parsers share the same tolerant-line policy: blank lines, header
// lines and separator lines are skipped, and a line that fails numeric
// conversion is dropped without aborting the rest of the input. A parser
// never returns an error; malformed input yields a shorter result.

var (
	// floatPattern matches the first non-negative decimal number in a line.
	floatPattern = regexp.MustCompile(`(\d+\.?\d*)`)

	// intPattern matches the first non-negative integer in a line.
	intPattern = regexp.MustCompile(`(\d+)`)

	// positionPattern matches an avatar position of the form <x, y, z>.
	positionPattern = regexp.MustCompile(`<(\d+\.?\d*),\s*(\d+\.?\d*),\s*(\d+\.?\d*)>`)
)

// ParseRegions parses "show regions" output into Region records.
//
// The input is a whitespace-column table:
//
//	Region Name    Region UUID            Location   Size     Port
//	DefaultRegion  1234-5678-90ab-cdef    1000,1000  256x256  9000
//
// A line contributes a region only if it has at least three columns and
// every present numeric field converts cleanly; otherwise the whole line
// is dropped. A missing or single-token location defaults to 0,0 and a
// missing size defaults to 256x256.
func ParseRegions(output string) []Region {
	var regions []Region

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.TrimSpace(line) == "" ||
			strings.Contains(line, "Region Name") ||
			strings.Contains(line, "---") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}

		region := Region{
			Name:  parts[0],
			UUID:  parts[1],
			SizeX: 256,
			SizeY: 256,
		}

		// Location column, "X,Y". Anything that does not split into two
		// tokens falls back to 0,0; tokens that fail integer conversion
		// drop the line.
		if locParts := strings.Split(parts[2], ","); len(locParts) == 2 {
			x, errX := strconv.Atoi(locParts[0])
			y, errY := strconv.Atoi(locParts[1])
			if errX != nil || errY != nil {
				continue
			}
			region.LocationX = x
			region.LocationY = y
		}

		// Size column, "WxH".
		if len(parts) > 3 {
			if sizeParts := strings.Split(parts[3], "x"); len(sizeParts) == 2 {
				w, errW := strconv.Atoi(sizeParts[0])
				h, errH := strconv.Atoi(sizeParts[1])
				if errW != nil || errH != nil {
					continue
				}
				region.SizeX = w
				region.SizeY = h
			}
		}

		// Port column, absent on short lines.
		if len(parts) > 4 {
			port, err := strconv.Atoi(parts[4])
			if err != nil {
				continue
			}
			region.Port = &port
		}

		regions = append(regions, region)
	}

	return regions
}

// ParseUsers parses "show users" output into User records.
//
// The input is a whitespace-column table:
//
//	Name                 Region          Position
//	John Doe             DefaultRegion   <128, 128, 25>
//
// The position is extracted independently of column splitting by matching
// the literal <x, y, z> form anywhere in the line. Every parsed user is
// online: the console only lists currently-connected avatars.
func ParseUsers(output string) []User {
	var users []User

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.TrimSpace(line) == "" ||
			strings.Contains(line, "Name") ||
			strings.Contains(line, "---") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		user := User{
			FirstName: parts[0],
			LastName:  parts[1],
			Online:    true,
		}

		if len(parts) > 2 {
			region := parts[2]
			user.Region = &region
		}

		if len(parts) > 3 {
			if m := positionPattern.FindStringSubmatch(line); m != nil {
				x, errX := strconv.ParseFloat(m[1], 64)
				y, errY := strconv.ParseFloat(m[2], 64)
				z, errZ := strconv.ParseFloat(m[3], 64)
				if errX == nil && errY == nil && errZ == nil {
					user.Position = &Vector3{X: x, Y: y, Z: z}
				}
			}
		}

		users = append(users, user)
	}

	return users
}

// statRule maps a line predicate to a field extractor. The rules form an
// ordered list: for each line the first matching rule wins, which keeps
// the precedence between overlapping keywords ("physics fps" vs "fps",
// "agents" vs "child agents") explicit.
type statRule struct {
	match func(line string) bool
	apply func(stats *Stats, line string)
}

var statRules = []statRule{
	{
		match: func(l string) bool { return strings.Contains(l, "physics fps") },
		apply: func(s *Stats, l string) { s.PhysicsFPS = firstFloat(l) },
	},
	{
		match: func(l string) bool { return strings.Contains(l, "fps") && !strings.Contains(l, "physics") },
		apply: func(s *Stats, l string) { s.FPS = firstFloat(l) },
	},
	{
		match: func(l string) bool { return strings.Contains(l, "agents") && !strings.Contains(l, "child") },
		apply: func(s *Stats, l string) { s.Agents = firstInt(l) },
	},
	{
		match: func(l string) bool { return strings.Contains(l, "objects") },
		apply: func(s *Stats, l string) { s.Objects = firstInt(l) },
	},
	{
		match: func(l string) bool { return strings.Contains(l, "scripts") },
		apply: func(s *Stats, l string) { s.Scripts = firstInt(l) },
	},
	{
		match: func(l string) bool { return strings.Contains(l, "memory") },
		apply: func(s *Stats, l string) { s.MemoryMB = firstFloat(l) },
	},
}

// ParseStats parses "show stats" output into a single Stats record.
//
// Matching is case-insensitive, one metric per line. An input with no
// recognizable lines yields a record with every field unset.
func ParseStats(output string) Stats {
	var stats Stats

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		lowered := strings.ToLower(strings.TrimSpace(line))
		for _, rule := range statRules {
			if rule.match(lowered) {
				rule.apply(&stats, lowered)
				break
			}
		}
	}

	return stats
}

// ParseTerrainStats parses "terrain stats" output into a height summary.
// Unrecognized fields stay at zero.
func ParseTerrainStats(output string) TerrainInfo {
	var info TerrainInfo

	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		lowered := strings.ToLower(line)
		switch {
		case strings.Contains(lowered, "min"):
			if v := firstFloat(lowered); v != nil {
				info.MinHeight = *v
			}
		case strings.Contains(lowered, "max"):
			if v := firstFloat(lowered); v != nil {
				info.MaxHeight = *v
			}
		case strings.Contains(lowered, "avg"), strings.Contains(lowered, "average"):
			if v := firstFloat(lowered); v != nil {
				info.AvgHeight = *v
			}
		}
	}

	return info
}

// firstFloat extracts the first decimal number in a line, or nil when the
// line has none.
func firstFloat(line string) *float64 {
	m := floatPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// firstInt extracts the first integer in a line, or nil when the line has
// none.
func firstInt(line string) *int {
	m := intPattern.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &v
}
