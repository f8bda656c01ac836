package format

// FindMarker returns the index of the first occurrence of RootMarker in b.
//
// Only the first match is ever considered. The format offers no other anchor
// for the root bone, so if the byte sequence "root" appears earlier in the
// file for an unrelated reason (a string table entry, an attachment path, a
// coincidental run of bytes) that earlier position is returned and the wrong
// bytes get patched. Callers that want to detect this situation can use
// FindAllMarkers; FindMarker itself stays first-match.
func FindMarker(b []byte) (int, bool) {
	return findFrom(b, 0)
}

// FindAllMarkers returns the index of every occurrence of RootMarker in b, in
// ascending order. Overlapping matches cannot occur for this marker.
func FindAllMarkers(b []byte) []int {
	var out []int
	for start := 0; ; {
		i, ok := findFrom(b, start)
		if !ok {
			return out
		}
		out = append(out, i)
		start = i + MarkerSize
	}
}

func findFrom(b []byte, start int) (int, bool) {
	for i := start; i <= len(b)-MarkerSize; i++ {
		match := true
		for j := 0; j < MarkerSize; j++ {
			if b[i+j] != RootMarker[j] {
				match = false
				break
			}
		}
		if match {
			return i, true
		}
	}
	return -1, false
}
