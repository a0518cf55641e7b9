package store

import (
	"fmt"
	"math/rand"
)

// DefaultGallery lists the local fallback images assigned to
// recommendation cards that have no real photo.
func DefaultGallery(size int) []string {
	images := make([]string, 0, size)
	for i := 1; i <= size; i++ {
		images = append(images, fmt.Sprintf("/assets/apartment/room%d.png", i))
	}
	return images
}

// ShuffleGallery returns a random permutation of the gallery. The
// permutation is drawn once per conversation and then reused, so a row
// keeps its image across re-renders of the same response.
func ShuffleGallery(images []string, rng *rand.Rand) []string {
	out := append([]string(nil), images...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
