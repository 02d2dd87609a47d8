package ecs

import "sort"

// signature is the sorted component-id list that uniquely names an
// archetype. Sorting is by idLess, the purely numeric IdCodec ordering.
type signature []EntityId

func newSignature(ids ...EntityId) signature {
	sig := append(signature(nil), ids...)
	sort.Slice(sig, func(i, j int) bool { return idLess(sig[i], sig[j]) })
	return dedupSorted(sig)
}

func dedupSorted(sig signature) signature {
	if len(sig) < 2 {
		return sig
	}
	out := sig[:1]
	for _, id := range sig[1:] {
		if out[len(out)-1] != id {
			out = append(out, id)
		}
	}
	return out
}

// with returns the signature with c inserted, preserving sort order. It is a
// no-op (same signature, by value) if c is already present.
func (s signature) with(c EntityId) signature {
	idx := sort.Search(len(s), func(i int) bool { return !idLess(s[i], c) })
	if idx < len(s) && s[idx] == c {
		return s
	}
	out := make(signature, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, c)
	out = append(out, s[idx:]...)
	return out
}

// without returns the signature with c removed, if present.
func (s signature) without(c EntityId) signature {
	idx := sort.Search(len(s), func(i int) bool { return !idLess(s[i], c) })
	if idx >= len(s) || s[idx] != c {
		return s
	}
	out := make(signature, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}

func (s signature) contains(c EntityId) bool {
	idx := sort.Search(len(s), func(i int) bool { return !idLess(s[i], c) })
	return idx < len(s) && s[idx] == c
}

func (s signature) equal(o signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// intersectInto appends the components common to s and o to dst, using a
// two-pointer merge over both sorted signatures.
func intersectInto(dst []EntityId, s, o signature) []EntityId {
	a, b := s, o
	if len(a) > len(b) {
		a, b = b, a
	}
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			dst = append(dst, a[i])
			i++
			j++
		case idLess(a[i], b[j]):
			i++
		default:
			j++
		}
	}
	return dst
}

// splitmix64 mixes a raw id into a well-distributed 64-bit value so the
// rolling hash below doesn't inherit whatever patterns component ids happen
// to have (e.g. small sequential integers).
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func idHash(id EntityId) uint64 { return splitmix64(uint64(id)) }

// signatureHash is the TypeIndex rolling hash. It is defined as the XOR of
// each member's mixed hash, which makes hash(S ∪ {c}) and hash(S \ {c})
// computable in O(1) from hash(S) and c alone (XOR is its own inverse),
// without ever materializing the new signature.
func signatureHash(s signature) uint64 {
	var h uint64
	for _, id := range s {
		h ^= idHash(id)
	}
	return h
}

func hashWith(h uint64, c EntityId) uint64    { return h ^ idHash(c) }
func hashWithout(h uint64, c EntityId) uint64 { return h ^ idHash(c) }
