package dictionary

// FilterLatin keeps words made only of the 26 upper-case Latin letters.
func FilterLatin(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}
