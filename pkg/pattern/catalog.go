package pattern

// Canonical catalog entry names.
const (
	Block      = "block"
	Beehive    = "beehive"
	Loaf       = "loaf"
	Boat       = "boat"
	Tub        = "tub"
	Pond       = "pond"
	Ship       = "ship"
	Blinker    = "blinker"
	Toad       = "toad"
	Beacon     = "beacon"
	Pulsar     = "pulsar"
	Glider     = "glider"
	LWSS       = "lwss"
	Copperhead = "copperhead"
	Dragon     = "dragon"

	// Derived orientations, registered from the canonical entries at init.
	LWSSVertical         = "lwss-vertical"
	CopperheadHorizontal = "copperhead-horizontal"
	GliderNorthwest      = "glider-northwest"
)

func init() {
	// Still lifes.
	register(fromRows(Block, 1, StillLife,
		"OO",
		"OO",
	))
	register(fromRows(Beehive, 1, StillLife,
		".OO.",
		"O..O",
		".OO.",
	))
	register(fromRows(Loaf, 1, StillLife,
		".OO.",
		"O..O",
		".O.O",
		"..O.",
	))
	register(fromRows(Boat, 1, StillLife,
		"OO.",
		"O.O",
		".O.",
	))
	register(fromRows(Tub, 1, StillLife,
		".O.",
		"O.O",
		".O.",
	))
	register(fromRows(Pond, 1, StillLife,
		".OO.",
		"O..O",
		"O..O",
		".OO.",
	))
	register(fromRows(Ship, 1, StillLife,
		"OO.",
		"O.O",
		".OO",
	))

	// Oscillators.
	register(fromRows(Blinker, 2, Oscillator,
		"OOO",
	))
	register(fromRows(Toad, 2, Oscillator,
		".OOO",
		"OOO.",
	))
	register(fromRows(Beacon, 2, Oscillator,
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	))
	register(fromRows(Pulsar, 3, Oscillator,
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	))

	// Spaceships.
	register(fromRows(Glider, 4, Spaceship,
		".O.",
		"..O",
		"OOO",
	))
	register(fromRows(LWSS, 4, Spaceship,
		"O..O.",
		"....O",
		"O...O",
		".OOOO",
	))
	register(fromRows(Copperhead, 10, Spaceship,
		".OO..OO.",
		"...OO...",
		"...OO...",
		"O.O..O.O",
		"O......O",
		"........",
		"O......O",
		".OO..OO.",
		"..OOOO..",
		"........",
		"...OO...",
		"...OO...",
	))
	register(fromRows(Dragon, 7, Spaceship,
		".O............O.",
		".O............O.",
		"O.O..........O.O",
		".O............O.",
		".O............O.",
		"..O...OOOO...O..",
		"......OOOO......",
		"..OOOO....OOOO..",
		"................",
		"....O......O....",
		".....OO..OO.....",
	))

	// Orientation variants: the library defines spaceships in one travel axis,
	// the variants cover the other.
	register(renamed(Rotate90(MustGet(LWSS)), LWSSVertical))
	register(renamed(Rotate90(MustGet(Copperhead)), CopperheadHorizontal))
	register(renamed(FlipHorizontal(FlipVertical(MustGet(Glider))), GliderNorthwest))
}
