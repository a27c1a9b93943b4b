// Package dice simulates die rolls that move a token around a board perimeter.
//
// Rolls are drawn from an injectable [RNG] so games can be replayed
// deterministically in tests or with a fixed seed.
package dice

import "math/rand/v2"

// SmallBoardLength is the largest perimeter that uses the short die.
const SmallBoardLength = 12

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Result is the outcome of one roll.
type Result struct {
	Roll     int `json:"roll"`
	From     int `json:"from"`
	Position int `json:"position"`
}

// MaxRoll returns the highest face of the die used on a perimeter of the
// given length: 3 for boards of up to 12 tiles, 6 otherwise.
func MaxRoll(perimeterLength int) int {
	if perimeterLength <= SmallBoardLength {
		return 3
	}
	return 6
}

// Roll draws a value uniformly from [1, MaxRoll(perimeterLength)].
func Roll(rng RNG, perimeterLength int) int {
	return rng.Intn(MaxRoll(perimeterLength)) + 1
}

// Advance moves current forward by roll tiles, wrapping around the perimeter.
func Advance(current, roll, perimeterLength int) int {
	if perimeterLength <= 0 {
		return current
	}
	return ((current+roll)%perimeterLength + perimeterLength) % perimeterLength
}

// RollAndAdvance rolls the die and moves the token from current.
//
// perimeterLength must be positive. A non-positive length is a caller bug:
// the token stays where it is and the returned roll is 0.
func RollAndAdvance(rng RNG, perimeterLength, current int) Result {
	if perimeterLength <= 0 {
		return Result{From: current, Position: current}
	}
	roll := Roll(rng, perimeterLength)
	return Result{
		Roll:     roll,
		From:     current,
		Position: Advance(current, roll, perimeterLength),
	}
}

type autoRNG struct{}

func (autoRNG) Intn(n int) int { return rand.IntN(n) }

// NewRNG returns an automatically seeded RNG backed by math/rand/v2.
func NewRNG() RNG { return autoRNG{} }

type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// NewSeededRNG returns a reproducible RNG. It is not safe for concurrent use.
func NewSeededRNG(seed uint64) RNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed))}
}
