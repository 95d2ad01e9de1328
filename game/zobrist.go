package game

import "golang.org/x/exp/rand"

// MaxBoardSize is the largest supported board extent.
const MaxBoardSize = 19

// EmptyBoard is the hash of a board without stones.
const EmptyBoard uint64 = 0

const zobristSeed = 0x5eed_90ba

const max63 = 1<<63 - 1

// hashCodes holds one random 63-bit code per (point, color) pair.
// Hash collisions are possible and are not detected.
var hashCodes [MaxBoardSize * MaxBoardSize][2]uint64

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for i := range hashCodes {
		hashCodes[i][0] = r.Uint64() & max63
		hashCodes[i][1] = r.Uint64() & max63
	}
}

// HashCode returns the code XORed into a board hash while player has a stone on point.
func HashCode(point Point, player Player) uint64 {
	if point.Row < 1 || point.Row > MaxBoardSize || point.Col < 1 || point.Col > MaxBoardSize {
		panic("hash code requested for point outside the supported extent")
	}
	i := (point.Row-1)*MaxBoardSize + point.Col - 1
	switch player {
	case Black:
		return hashCodes[i][0]
	case White:
		return hashCodes[i][1]
	default:
		panic("hash code requested for empty player")
	}
}
