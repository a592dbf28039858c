package evaluator

// combinationsInt32 returns every r-length subsequence of s, in the
// standard lexicographic-by-index order (matching itertools.combinations).
func combinationsInt32(s []int32, r int) [][]int32 {
	n := len(s)
	if r < 0 || r > n {
		return nil
	}
	if r == 0 {
		return [][]int32{{}}
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int32
	for {
		combo := make([]int32, r)
		for i, j := range idx {
			combo[i] = s[j]
		}
		out = append(out, combo)

		i := r - 1
		for i >= 0 && idx[i] == i+n-r {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// permutationsInt32 returns every r-length ordered selection without
// repetition from s, in the same order itertools.permutations(s, r) would
// produce: index tuples visited in ascending lexicographic order subject
// to "no index reused".
func permutationsInt32(s []int32, r int) [][]int32 {
	n := len(s)
	if r < 0 || r > n {
		return nil
	}
	var out [][]int32
	used := make([]bool, n)
	cur := make([]int32, 0, r)

	var rec func()
	rec = func() {
		if len(cur) == r {
			combo := make([]int32, r)
			copy(combo, cur)
			out = append(out, combo)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, s[i])
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
