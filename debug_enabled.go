//go:build rawvec_debug

package rawvec

const debug = true
