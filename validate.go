package slab

// Debug aids — state assertions, payload poisoning, and the ownership scan
// in Destroy — are compiled in only under the slab_debug build tag. They
// never run on the hot path in a release build; see validate_debug.go and
// validate_prod.go.
