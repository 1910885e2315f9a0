package samplesheet

var complement = map[rune]rune{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
}

// ReverseComplement reverses seq and complements A, C, G and T.
// Any other character, lowercase bases included, is kept as is.
func ReverseComplement(seq string) string {
	bases := []rune(seq)
	n := len(bases)
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		b := bases[n-1-i]
		if c, ok := complement[b]; ok {
			out[i] = c
		} else {
			out[i] = b
		}
	}
	return string(out)
}
