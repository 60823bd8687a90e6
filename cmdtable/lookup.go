package cmdtable

import "sort"

// Lookup finds the table entry for a command, matching arg0 case-insensitively
// against Name. If the matching entry carries a SubName, arg1 must also match
// it case-insensitively — a command with subcommands is not found unless its
// subcommand is also given. If the matching entry carries no SubName, arg1 is
// ignored (and may be empty).
func Lookup(arg0, arg1 string) (Entry, bool) {
	name := upper(arg0)
	lo := sort.Search(len(table), func(i int) bool { return table[i].Name >= name })
	if lo == len(table) || table[lo].Name != name {
		return Entry{}, false
	}
	hi := lo
	for hi < len(table) && table[hi].Name == name {
		hi++
	}
	group := table[lo:hi]

	// A single-entry group with no subname is the common case: plain commands.
	if len(group) == 1 && !group[0].HasSubcommand() {
		return group[0], true
	}

	sub := upper(arg1)
	for _, e := range group {
		if !e.HasSubcommand() {
			continue
		}
		if e.SubName == sub {
			return e, true
		}
	}
	return Entry{}, false
}

func upper(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}
