package flightparser

// CityRecord. one line of the city coordinates file
type CityRecord struct {
	Name string
	Lat  float64
	Lon  float64
}

func NewCityRecord(name string, lat, lon float64) CityRecord {
	return CityRecord{Name: name, Lat: lat, Lon: lon}
}

// RouteRecord. one observed flight, origin and destination as written in the flights file
type RouteRecord struct {
	Origin      string
	Destination string
}

func NewRouteRecord(origin, destination string) RouteRecord {
	return RouteRecord{Origin: origin, Destination: destination}
}

const (
	ORIGIN_COLUMN      = "ORIGEN"
	DESTINATION_COLUMN = "DESTINO"
	FIELD_DELIMITER    = ';'
)
