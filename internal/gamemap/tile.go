package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
)

func (k TileKind) String() string {
	if k == TileFloor {
		return "floor"
	}
	return "wall"
}
