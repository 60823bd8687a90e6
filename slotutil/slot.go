package slotutil

import "strings"

// NumSlots is the number of hash slots in a Redis Cluster.
const NumSlots = 16384

// Slot maps a key to one of NumSlots hash slots, honoring the `{hashtag}`
// convention: when the key contains a non-empty `{...}` substring, only the
// bytes strictly between the first `{` and the following `}` are hashed.
func Slot(key string) int {
	return int(HashTagged(key) & (NumSlots - 1))
}

// HashTagged returns the raw CRC16 of the portion of key that routing should
// hash: the hashtag if one is present and non-empty, otherwise the whole key.
func HashTagged(key string) uint16 {
	if start := strings.IndexByte(key, '{'); start >= 0 {
		if end := strings.IndexByte(key[start+1:], '}'); end >= 0 && end > 0 {
			return CRC16([]byte(key[start+1 : start+1+end]))
		}
	}
	return CRC16([]byte(key))
}
