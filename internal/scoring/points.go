package scoring

// PointsTable is the fixed award per finishing position, top ten places only.
// Changing the scheme is a code change, there is no configuration surface.
var PointsTable = [...]int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// PointsForRank returns the points awarded for a 1-based finishing rank.
// Ranks beyond the table, 11th place and worse, score zero.
func PointsForRank(rank int) int {
	if rank < 1 || rank > len(PointsTable) {
		return 0
	}
	return PointsTable[rank-1]
}
