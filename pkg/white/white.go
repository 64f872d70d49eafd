// Removing white space happens on every buffer the fasta lexer reads,
// so it has to work in place and must not allocate.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove takes a byte slice and squeezes out all the white space, in
// place. The length is adjusted, the capacity is untouched.
func Remove(p *[]byte) {
	s := *p
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*p = s[:n]
}
