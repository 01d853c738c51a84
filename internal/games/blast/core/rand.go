package core

// Rand is the random source used for tile colors and shuffles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// randomColor picks a uniformly random regular color.
func randomColor(r Rand) Color {
	return Color(r.Intn(int(ColorCount)))
}
