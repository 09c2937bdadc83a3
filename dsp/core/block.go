package core

// A block is a plain []S slice whose length is fixed by the caller and
// never resized during processing. The helpers below manage block storage
// without growing it behind the caller's back.

// EnsureLen returns a slice with the requested length, reusing buf
// capacity if possible. Intended for construction time only; processing
// paths must pass pre-sized blocks.
func EnsureLen[S Value](buf []S, n int) []S {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]S, n)
}

// Zero sets all values in buf to the zero sample.
func Zero[S Value](buf []S) {
	var zero S
	for i := range buf {
		buf[i] = zero
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[S Value](dst, src []S) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
