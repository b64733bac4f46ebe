package levels

import "github.com/milk9111/leveleditor/common"

// SanitizeImport enforces the document invariants that imported data may
// violate: only the first player spawn survives and stacked tiles collapse
// to the newest one per cell. The input is not modified.
func SanitizeImport(level *Level) *Level {
	out := Clone(level)

	spawns := make([]Entity, 0, len(out.SpawnPoints))
	seenPlayer := false
	for _, s := range out.SpawnPoints {
		if s.Type == TypePlayer {
			if seenPlayer {
				continue
			}
			seenPlayer = true
		}
		spawns = append(spawns, s)
	}
	out.SpawnPoints = spawns
	out.Tiles = RemoveOverlappingTiles(out.Tiles)
	return out
}

// RemoveOverlappingTiles keeps the last tile placed on each cell. A door stays
// underneath a button placed on top of it.
func RemoveOverlappingTiles(tiles []Entity) []Entity {
	newest := make(map[common.Point]int, len(tiles))
	for i, t := range tiles {
		newest[t.Position] = i
	}

	out := make([]Entity, 0, len(tiles))
	for i, t := range tiles {
		top := newest[t.Position]
		if i == top || (t.Type == TypeDoor && tiles[top].Type == TypeButton) {
			out = append(out, t)
		}
	}
	return out
}

// PlaceTile returns tiles with tile appended and whatever it covers removed.
func PlaceTile(tiles []Entity, tile Entity) []Entity {
	out := make([]Entity, 0, len(tiles)+1)
	for _, t := range tiles {
		if t.Position == tile.Position && !(tile.Type == TypeButton && t.Type == TypeDoor) {
			continue
		}
		out = append(out, t)
	}
	return append(out, tile)
}
