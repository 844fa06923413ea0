package dataset

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"arachnid/internal/randgen"
)

// Flight manifest: a SQLite artifact recording where every agent of interest
// was between 2025-09-01 and 2025-11-13. The victim's stay and a guaranteed
// quorum of other agents in the death city at the death instant are the
// cross-checkable alibi layer of the puzzle.
const (
	FlightSeed  = 42
	FlightsFile = "data.sqlite"

	VictimSSN = "002-05-1849"

	minOthersPresent = 5
	maxTripsPerAgent = 12
)

// Death instant: 2025-10-08 15:37 CDT, i.e. 20:37 UTC.
var victimDeathUTC = time.Date(2025, 10, 8, 20, 37, 0, 0, time.UTC)

type flightStay struct {
	SSN       string
	City      string
	Arrival   time.Time
	Departure time.Time
}

type worldCity struct {
	Name    string
	Country string
	Lat     float64
	Lon     float64
}

var worldCities = []worldCity{
	{"New York", "United States", 40.7128, -74.0060},
	{"London", "United Kingdom", 51.5074, -0.1278},
	{"Paris", "France", 48.8566, 2.3522},
	{"Moscow", "Russia", 55.7558, 37.6173},
	{"Beijing", "China", 39.9042, 116.4074},
	{"Shanghai", "China", 31.2304, 121.4737},
	{"Dubai", "United Arab Emirates", 25.2048, 55.2708},
	{"Istanbul", "Turkey", 41.0082, 28.9784},
	{"Tokyo", "Japan", 35.6895, 139.6917},
	{"Hong Kong", "China", 22.3193, 114.1694},
	{"Sao Paulo", "Brazil", -23.5505, -46.6333},
	{"Mexico City", "Mexico", 19.4326, -99.1332},
	{"Los Angeles", "United States", 34.0522, -118.2437},
	{"Mumbai", "India", 19.0760, 72.8777},
	{"Cairo", "Egypt", 30.0444, 31.2357},
	{"Berlin", "Germany", 52.5200, 13.4050},
	{"Singapore", "Singapore", 1.3521, 103.8198},
	{"Sydney", "Australia", -33.8688, 151.2093},
	{"Rome", "Italy", 41.9028, 12.4964},
	{"Seoul", "South Korea", 37.5665, 126.9780},
}

var (
	flightWindowStart = time.UnixMilli(windowStartMS).UTC()
	flightWindowEnd   = time.UnixMilli(windowEndMS).UTC()
)

// FlightSSNs is the manifest population: the clearance pool, the linkage SSN
// from the special weapon, and the victim last.
func FlightSSNs() []string {
	out := append([]string(nil), AgentSSNPool...)
	out = append(out, LinkageSSN, VictimSSN)
	return out
}

// GenerateFlights writes the manifest to a SQLite database at path. The
// output is fully determined by FlightSeed.
func GenerateFlights(path string) error {
	stays := generateFlightStays(randgen.New(FlightSeed))
	return writeFlightDB(path, stays)
}

func generateFlightStays(rng *randgen.Source) []flightStay {
	var stays []flightStay
	byAgent := map[string][]flightStay{}
	for _, ssn := range FlightSSNs() {
		itinerary := generateItinerary(rng, ssn)
		byAgent[ssn] = itinerary
	}

	deathCity := cityLabel(worldCities[rng.NextInt(0, len(worldCities)-1)])

	// The victim is always in the death city when it happens.
	byAgent[VictimSSN] = placeAtDeath(rng, VictimSSN, byAgent[VictimSSN], deathCity)

	// Guarantee a suspect quorum: at least minOthersPresent other agents in
	// the death city at the death instant.
	present := 0
	var absent []string
	for _, ssn := range FlightSSNs() {
		if ssn == VictimSSN {
			continue
		}
		if presentAt(byAgent[ssn], deathCity, victimDeathUTC) {
			present++
		} else {
			absent = append(absent, ssn)
		}
	}
	absent = rng.Shuffle(absent)
	for i := 0; present < minOthersPresent && i < len(absent); i++ {
		byAgent[absent[i]] = placeAtDeath(rng, absent[i], byAgent[absent[i]], deathCity)
		present++
	}

	for _, ssn := range FlightSSNs() {
		stays = append(stays, byAgent[ssn]...)
	}

	// Sort by a jittered arrival key so the manifest reads roughly
	// chronological without grouping neatly by agent.
	jitter := make(map[int]time.Duration, len(stays))
	for i := range stays {
		hours := (rng.Next()*2 - 1) * 48
		jitter[i] = time.Duration(hours * float64(time.Hour))
	}
	keys := make([]int, len(stays))
	for i := range keys {
		keys[i] = i
	}
	sort.SliceStable(keys, func(a, b int) bool {
		return stays[keys[a]].Arrival.Add(jitter[keys[a]]).Before(stays[keys[b]].Arrival.Add(jitter[keys[b]]))
	})
	ordered := make([]flightStay, len(stays))
	for i, k := range keys {
		ordered[i] = stays[k]
	}
	return ordered
}

func generateItinerary(rng *randgen.Source, ssn string) []flightStay {
	var itinerary []flightStay
	current := flightWindowStart.Add(hoursDur(rng.Next() * 240))
	city := worldCities[rng.NextInt(0, len(worldCities)-1)]

	for trips := 0; trips < maxTripsPerAgent; trips++ {
		stay := hoursDur(float64(rng.NextInt(1, 14)*24) + rng.Next()*20)
		departure := current.Add(stay)
		if departure.After(flightWindowEnd) {
			departure = flightWindowEnd.Add(-hoursDur(rng.Next() * 6))
			if !departure.After(current) {
				break
			}
			itinerary = append(itinerary, flightStay{SSN: ssn, City: cityLabel(city), Arrival: current, Departure: departure})
			break
		}
		itinerary = append(itinerary, flightStay{SSN: ssn, City: cityLabel(city), Arrival: current, Departure: departure})

		next := worldCities[rng.NextInt(0, len(worldCities)-1)]
		for attempts := 0; next.Name == city.Name && attempts < 5; attempts++ {
			next = worldCities[rng.NextInt(0, len(worldCities)-1)]
		}
		travel := travelHours(rng, city, next) + 2 + rng.Next()*34
		arrival := departure.Add(hoursDur(travel))
		if arrival.After(flightWindowEnd) {
			break
		}
		city = next
		current = arrival
	}
	return itinerary
}

// placeAtDeath drops any stay overlapping the death instant and inserts one in
// the death city that spans it.
func placeAtDeath(rng *randgen.Source, ssn string, itinerary []flightStay, deathCity string) []flightStay {
	out := itinerary[:0:0]
	for _, s := range itinerary {
		if s.Arrival.Before(victimDeathUTC) && victimDeathUTC.Before(s.Departure) {
			continue
		}
		out = append(out, s)
	}
	arrival := victimDeathUTC.Add(-hoursDur(6 + rng.Next()*42))
	if arrival.Before(flightWindowStart) {
		arrival = flightWindowStart
	}
	departure := victimDeathUTC.Add(hoursDur(6 + rng.Next()*42))
	if departure.After(flightWindowEnd) {
		departure = flightWindowEnd
	}
	out = append(out, flightStay{SSN: ssn, City: deathCity, Arrival: arrival, Departure: departure})
	sort.SliceStable(out, func(a, b int) bool { return out[a].Arrival.Before(out[b].Arrival) })
	return out
}

func presentAt(itinerary []flightStay, city string, at time.Time) bool {
	for _, s := range itinerary {
		if s.City == city && !s.Arrival.After(at) && at.Before(s.Departure) {
			return true
		}
	}
	return false
}

func travelHours(rng *randgen.Source, from, to worldCity) float64 {
	const avgAirKMH = 900.0
	d := haversineKM(from.Lat, from.Lon, to.Lat, to.Lon)
	h := d/avgAirKMH + (rng.Next()*2 - 0.5)
	if h < 0.5 {
		h = 0.5
	}
	return h
}

func haversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKM = 6371.0
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) + math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusKM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func cityLabel(c worldCity) string {
	return fmt.Sprintf("%s, %s", c.Name, c.Country)
}

func hoursDur(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func writeFlightDB(path string, stays []flightStay) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(`DROP TABLE IF EXISTS fly`); err != nil {
		return fmt.Errorf("reset fly table: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE fly (
		agent_ssn TEXT NOT NULL,
		city TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		departure_time TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("create fly table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO fly (agent_ssn, city, arrival_time, departure_time) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range stays {
		if _, err := stmt.Exec(s.SSN, s.City, isoSeconds(s.Arrival), isoSeconds(s.Departure)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert stay for %s: %w", s.SSN, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit manifest: %w", err)
	}
	return nil
}

func isoSeconds(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
