package rawvec

// check panics when cond is false in builds tagged rawvec_debug.
// Release builds compile it away, so a violated contract is undefined behavior there.
func check(cond bool, msg string) {
	if debug && !cond {
		panic("rawvec: " + msg)
	}
}
