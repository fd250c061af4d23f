package scoring

// Jaccard returns |a ∩ b| / |a ∪ b| over the two term lists treated as sets.
// Defined as 0 when both sets are empty.
func Jaccard(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	inter := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

func toSet(items []string) map[string]struct{} {
	s := make(map[string]struct{}, len(items))
	for _, t := range items {
		if t != "" {
			s[t] = struct{}{}
		}
	}
	return s
}
