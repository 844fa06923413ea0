// Package dataset holds the fixed fixture catalogs, the seeded generators
// that materialize them, and the read-only store the server loads at start.
//
// The generators are deterministic: a fixed seed plus the fixed catalog order
// below yields byte-identical fixtures on every run, so the clues land in the
// same place across regenerations. The declared order of Suspects feeds the
// random stream and must not change.
package dataset

// Seeds for the fixture generators. The surveillance stream and the weapon
// stream are independent so regenerating one does not move the other's clues.
const (
	SurveillanceSeed = 42
	WeaponSeed       = 1337
)

const EntriesPerPage = 10

// Surveillance generation window, 2025-09-01T00:00:00Z .. 2025-11-13T23:59:59Z,
// as epoch milliseconds.
const (
	windowStartMS = 1756684800000
	windowEndMS   = 1763078399000
)

const (
	minPages = 12
	maxPages = 18
)

// Suspect is a surveillance target. The UUID is the sole lookup key; the name
// is display-only.
type Suspect struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// SurveillanceEntry is one observed activity. Manufacturer is present only on
// the single suspicious entry per suspect.
type SurveillanceEntry struct {
	Timestamp    string `json:"timestamp"`
	Activity     string `json:"activity"`
	Suspicious   bool   `json:"suspicious"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

// SurveillanceRecord is the full log for one suspect. len(Entries) is always
// Pages * EntriesPerPage.
type SurveillanceRecord struct {
	Name    string              `json:"name"`
	Pages   int                 `json:"pages"`
	Entries []SurveillanceEntry `json:"entries"`
}

// WeaponData is one inventory record. Clearance lists the agent SSNs
// authorized for it, deduplicated.
type WeaponData struct {
	WeaponType string   `json:"weapon_type"`
	Clearance  []string `json:"clearance"`
}

// InventoryItem is the derived, per-request view of a weapon record: a
// synthetic city-scoped id plus the base64-encoded record. Never persisted.
type InventoryItem struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

// Suspects in generation order.
var Suspects = []Suspect{
	{UUID: "5e2cb2bd-477c-41e5-a1e2-200f5d5bbd8a", Name: "Alice Johnson"},
	{UUID: "21d04141-0934-4066-b832-c66c674bcbb5", Name: "Jacob Smith"},
	{UUID: "d278c792-e153-4b73-8c84-a9a732c04d50", Name: "Sarah Johnson"},
	{UUID: "a581c267-a027-4599-abef-7c8f4fd4bbbb", Name: "Emma Ingraham"},
	{UUID: "20008085-019b-41f3-87f1-8e4db70a691d", Name: "David Wilson"},
	{UUID: "ee4038bd-0b9c-4a95-971d-08d14fd01852", Name: "Emily Davis"},
	{UUID: "7c62549c-3f57-4bd6-a176-ec48d43c2b34", Name: "Tunnel Bob"},
}

// Manufacturers, one per suspect position. Never reused across suspects.
var Manufacturers = []string{
	"Phantom Arms Ltd",
	"Shadow Tech Industries",
	"Obsidian Defense Corp",
	"Nightfall Armaments",
	"Apex Tactical Solutions",
	"Viper Munitions Group",
	"Eclipse Security Systems",
}

const suspiciousActivity = "weapons transaction"

var Activities = []string{
	"jogging in park",
	"reading newspaper",
	"buying coffee",
	"checking mailbox",
	"walking dog",
	"grocery shopping",
	"pumping gas",
	"at gym",
	"eating lunch",
	"library visit",
	"bank transaction",
	"phone call",
	"watching movie",
	"restaurant dinner",
	"hair appointment",
	"dry cleaning pickup",
	"pharmacy visit",
	"park bench sitting",
	"window shopping",
	"subway commute",
	"taxi ride",
	"waiting bus",
	"car wash",
	"post office",
	"doctor appointment",
	"meeting friend",
	"browsing bookstore",
	"buying flowers",
	"picking up mail",
	"street vendor purchase",
	"market browsing",
	"parking car",
	"entering building",
	"exiting building",
	"crossing street",
	"waiting intersection",
	"smoking cigarette",
	"making phone call",
	"hailing taxi",
	"sitting cafe",
}

var WeaponTypes = []string{
	"Particle Beam Pistol",
	"Plasma Rifle",
	"EMP Grenade",
	"Sonic Disruptor",
	"Neural Stunner",
	"Photon Blade",
	"Quantum Disintegrator",
	"Cryogenic Projector",
	"Gravity Wave Emitter",
	"Neurotoxin Dart Gun",
	"Electromagnetic Pulse Device",
	"Laser Carbine",
	"Molecular Destabilizer",
	"Phase Shifter",
	"Kinetic Accelerator",
	"Bio-Electric Stunner",
	"Microwave Emitter",
	"Railgun Pistol",
	"Antimatter Charge",
	"Holographic Decoy Projector",
	"Nano-Swarm Launcher",
	"Temporal Displacer",
	"Ion Cannon",
	"Stealth Field Generator",
	"Mind Control Device",
	"Atomic Disassembler",
	"Vortex Generator",
	"Energy Shield Breaker",
	"Subspace Bomb",
	"Dark Matter Injector",
}

// AgentSSNPool feeds weapon clearance lists. It deliberately excludes the
// triggered agents so clearance hits stay ambiguous.
var AgentSSNPool = []string{
	"111-11-1111",
	"222-22-2222",
	"333-33-3333",
	"444-44-4444",
	"555-55-5555",
	"666-66-6666",
	"777-77-7777",
	"888-88-8888",
	"999-99-9999",
	"100-20-3040",
	"200-30-4050",
	"300-40-5060",
	"400-50-6070",
	"500-60-7080",
	"600-70-8090",
	"700-80-9010",
	"800-90-0120",
	"900-10-1230",
	"123-98-7654",
	"234-87-6543",
	"345-76-5432",
	"456-65-4321",
	"567-54-3210",
	"678-43-2109",
	"789-32-1098",
	"890-21-0987",
	"901-10-9876",
}

// Cities with inventory data, in catalog order.
var Cities = []string{"New York", "Seattle", "Portland", "San Francisco", "Los Angeles"}

const (
	// SpecialWeaponCity is the one city whose inventory carries the injected
	// special weapon.
	SpecialWeaponCity = "New York"
	// SpecialWeaponIndex is the zero-based splice offset: page 16, 6th item.
	SpecialWeaponIndex = 155
	// LinkageSSN appears both in the special weapon's clearance and in the
	// flight manifest; it is the cross-dataset clue.
	LinkageSSN = "324-26-8712"
)

// SpecialWeapon is the murder weapon. It is not part of the base catalog and
// is spliced into the New York inventory at request time.
var SpecialWeapon = WeaponData{
	WeaponType: "Nano-Toxin Injector",
	Clearance:  []string{LinkageSSN, "555-12-3456", "789-01-2345"},
}
