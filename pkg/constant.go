package pkg

// enum of path_weight. selects which precomputed edge attribute the
// shortest path search uses as its weight.
type PathWeight uint8

const (
	DISTANCE PathWeight = iota
	TIME
	ENERGY
)

func (w PathWeight) String() string {
	switch w {
	case DISTANCE:
		return "distance"
	case TIME:
		return "time"
	case ENERGY:
		return "energy"
	default:
		return "unknown"
	}
}

const (
	INF_WEIGHT float64 = 1e15

	KPH_TO_MPH      = 0.621371
	METERS_TO_MILES = 0.0006213712

	DEFAULT_MODEL_KEY = "Gasoline"
)

const (
	DEBUG = false
)

type OsmHighwayType uint8

// enum buat osm highway buat routing: https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
const (
	MOTORWAY       OsmHighwayType = 0
	TRUNK          OsmHighwayType = 1
	PRIMARY        OsmHighwayType = 2
	SECONDARY      OsmHighwayType = 3
	TERTIARY       OsmHighwayType = 4
	RESIDENTIAL    OsmHighwayType = 5
	SERVICE        OsmHighwayType = 6
	UNCLASSIFIED   OsmHighwayType = 7
	MOTORWAY_LINK  OsmHighwayType = 8
	TRUNK_LINK     OsmHighwayType = 9
	PRIMARY_LINK   OsmHighwayType = 10
	SECONDARY_LINK OsmHighwayType = 11
	TERTIARY_LINK  OsmHighwayType = 12
	LIVING_STREET  OsmHighwayType = 13
	ROAD           OsmHighwayType = 14
	UNKNOWN        OsmHighwayType = 15
)

func GetHighwayType(roadType string) OsmHighwayType {
	switch roadType {
	case "motorway":
		return MOTORWAY
	case "trunk":
		return TRUNK
	case "primary":
		return PRIMARY
	case "secondary":
		return SECONDARY
	case "tertiary":
		return TERTIARY
	case "unclassified":
		return UNCLASSIFIED
	case "residential":
		return RESIDENTIAL
	case "service":
		return SERVICE
	case "motorway_link":
		return MOTORWAY_LINK
	case "trunk_link":
		return TRUNK_LINK
	case "primary_link":
		return PRIMARY_LINK
	case "secondary_link":
		return SECONDARY_LINK
	case "tertiary_link":
		return TERTIARY_LINK
	case "living_street":
		return LIVING_STREET
	case "road":
		return ROAD
	default:
		return UNKNOWN
	}
}

// GetDefaultSpeed. default free-flow speed (kph) per highway class, used when
// a way carries no maxspeed tag.
func GetDefaultSpeed(hwType OsmHighwayType) float64 {
	switch hwType {
	case MOTORWAY:
		return 100
	case TRUNK, MOTORWAY_LINK:
		return 70
	case PRIMARY, TRUNK_LINK:
		return 60
	case SECONDARY, PRIMARY_LINK:
		return 50
	case TERTIARY, SECONDARY_LINK, TERTIARY_LINK:
		return 40
	case UNCLASSIFIED, RESIDENTIAL, ROAD:
		return 30
	case LIVING_STREET, SERVICE:
		return 15
	default:
		return 30
	}
}
