package javarandom

// Shuffle permutes n elements in the order java.util.Collections.shuffle
// does: walking down from the last index, each element is swapped with one
// drawn from the indices at or below it. It panics if n exceeds
// math.MaxInt32.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	for i := n; i > 1; i-- {
		j, err := r.NextIntn(i)
		if err != nil {
			panic(err)
		}
		swap(i-1, int(j))
	}
}
