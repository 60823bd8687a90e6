package cmdparse

import (
	"strconv"
	"strings"

	"github.com/kevwan/rcluster/cmdtable"
)

// streamsStartFrom gives the argument index (0-based, command name at 0) at
// or after which the UNKNOWN-method keyword search may find "STREAMS".
// XREADGROUP's "GROUP <name> <consumer>" prefix occupies argv[1..3], so its
// search must not match a STREAMS-named consumer or group there.
var streamsStartFrom = map[string]int{
	"XREAD":      1,
	"XREADGROUP": 4,
}

// Parse decodes a single complete RESP multi-bulk request. raw must contain
// exactly one request; Parse does not frame a stream of requests.
func Parse(id int64, raw []byte) *Command {
	c := &Command{ID: id, Raw: raw, Slot: -1}

	p := &cursor{buf: raw}
	n, ok := p.readMultiBulkHeader()
	if !ok || n <= 0 {
		return fail(c, "Command parse error")
	}
	c.Argc = n

	arg0, ok := p.readBulk()
	if !ok {
		return fail(c, "Command parse error")
	}
	name := string(raw[arg0.Start:arg0.End])

	var arg1Pos KeyPos
	var hasArg1 bool
	var subName string
	if n > 1 {
		arg1Pos, ok = p.readBulk()
		if !ok {
			return fail(c, "Command parse error")
		}
		subName = string(raw[arg1Pos.Start:arg1Pos.End])
		hasArg1 = true
	}

	entry, ok := cmdtable.Lookup(name, subName)
	if !ok {
		if hasArg1 {
			return fail(c, "Unknown command "+strings.ToUpper(name)+" "+strings.ToUpper(subName))
		}
		return fail(c, "Unknown command "+strings.ToUpper(name))
	}
	c.Name = entry.Name
	c.SubName = entry.SubName

	if entry.Arity >= 0 {
		if n != entry.Arity {
			return fail(c, "Command parse error")
		}
	} else if n < -entry.Arity {
		return fail(c, "Command parse error")
	}

	// argIdx tracks the 0-based argument index of the next bulk readBulk
	// will hand back; arg0 and (if read) arg1 are already consumed.
	argIdx := 1
	if hasArg1 {
		argIdx = 2
	}

	switch entry.KeyMethod {
	case cmdtable.KeyNone:
		c.Status = StatusOK
		return c

	case cmdtable.KeyUnknown:
		startFrom := streamsStartFrom[entry.Name]
		found := -1
		// arg1 (e.g. XREAD's minimal "XREAD STREAMS key id" form) was
		// already consumed above to probe for a subcommand; the keyword
		// search below only sees arg2 onward, so check it here first.
		if hasArg1 && 1 >= startFrom && strings.EqualFold(string(raw[arg1Pos.Start:arg1Pos.End]), "STREAMS") {
			found = 1
		}
		for found < 0 {
			pos, ok := p.readBulk()
			if !ok {
				break
			}
			if argIdx >= startFrom && strings.EqualFold(string(raw[pos.Start:pos.End]), "STREAMS") {
				found = argIdx
				break
			}
			argIdx++
		}
		if found < 0 {
			return fail(c, "Failed to find keys of command "+entry.Name)
		}
		keyPos, ok := p.readBulk()
		if !ok {
			return fail(c, "Command parse error")
		}
		c.Keys = []KeyPos{keyPos}
		c.Status = StatusOK
		return c

	case cmdtable.KeyIndex:
		var firstKey KeyPos
		if hasArg1 && entry.KeyPos == 1 {
			// The first key is arg1, already consumed above.
			firstKey = arg1Pos
		} else {
			for argIdx < entry.KeyPos {
				if _, ok := p.readBulk(); !ok {
					return fail(c, "Command parse error")
				}
				argIdx++
			}
			firstKey, ok = p.readBulk()
			if !ok {
				return fail(c, "Command parse error")
			}
			argIdx++
		}

		if isVectorKeyCommand(entry.Name) {
			return parseVectorKeys(c, p, entry.Name, firstKey)
		}
		if entry.Name == "MIGRATE" && firstKey.Start == firstKey.End {
			return fail(c, "Command parse error")
		}
		c.Keys = []KeyPos{firstKey}
		c.Status = StatusOK
		return c

	case cmdtable.KeyNum:
		var numKeysArg KeyPos
		if hasArg1 && entry.KeyPos == 1 {
			// The key count is arg1, already consumed above.
			numKeysArg = arg1Pos
		} else {
			for argIdx < entry.KeyPos {
				if _, ok := p.readBulk(); !ok {
					return fail(c, "Command parse error")
				}
				argIdx++
			}
			numKeysArg, ok = p.readBulk()
			if !ok {
				return fail(c, "Command parse error")
			}
		}
		if string(raw[numKeysArg.Start:numKeysArg.End]) == "0" {
			c.Status = StatusOK
			return c
		}
		firstKey, ok := p.readBulk()
		if !ok {
			return fail(c, "Command parse error")
		}
		c.Keys = []KeyPos{firstKey}
		c.Status = StatusOK
		return c
	}

	return fail(c, "Command parse error")
}

func isVectorKeyCommand(name string) bool {
	switch name {
	case "MGET", "DEL", "EXISTS", "MSET":
		return true
	}
	return false
}

// parseVectorKeys handles the "every remaining bulk is a key" rule for
// MGET/DEL/EXISTS, and the "odd positions are keys, even positions are
// values" rule for MSET, after firstKey has already been consumed.
func parseVectorKeys(c *Command, p *cursor, name string, firstKey KeyPos) *Command {
	keys := []KeyPos{firstKey}

	if name != "MSET" {
		for {
			pos, ok := p.readBulk()
			if !ok {
				break
			}
			keys = append(keys, pos)
		}
		c.Keys = keys
		c.Status = StatusOK
		return c
	}

	// MSET: firstKey's value comes next, then alternating key, value, key...
	// expectValue tracks which half of a k/v pair the next bulk must be.
	expectValue := true
	for {
		pos, ok := p.readBulk()
		if !ok {
			break
		}
		if expectValue {
			keys[len(keys)-1].RemainLen = pos.End - pos.Start
			keys[len(keys)-1].ValueStart = pos.Start
		} else {
			keys = append(keys, pos)
		}
		expectValue = !expectValue
	}
	if expectValue {
		// Ended mid-pair: a key with no paired value, i.e. an even total
		// argument count.
		return fail(c, "Command parse error")
	}
	c.Keys = keys
	c.Status = StatusOK
	return c
}

func fail(c *Command, msg string) *Command {
	c.Status = StatusProtocolError
	c.Err = msg
	return c
}

// cursor reads successive RESP bulk strings out of a multi-bulk request
// buffer, tracking its position as it goes.
type cursor struct {
	buf []byte
	pos int
}

func (p *cursor) readMultiBulkHeader() (int, bool) {
	if p.pos >= len(p.buf) || p.buf[p.pos] != '*' {
		return 0, false
	}
	p.pos++
	n, ok := p.readLineInt()
	return n, ok
}

func (p *cursor) readBulk() (KeyPos, bool) {
	if p.pos >= len(p.buf) || p.buf[p.pos] != '$' {
		return KeyPos{}, false
	}
	p.pos++
	length, ok := p.readLineInt()
	if !ok || length < 0 {
		return KeyPos{}, false
	}
	start := p.pos
	end := start + length
	if end+2 > len(p.buf) {
		return KeyPos{}, false
	}
	if p.buf[end] != '\r' || p.buf[end+1] != '\n' {
		return KeyPos{}, false
	}
	p.pos = end + 2
	return KeyPos{Start: start, End: end}, true
}

// readLineInt reads a decimal integer terminated by CRLF starting at the
// cursor's current position.
func (p *cursor) readLineInt() (int, bool) {
	start := p.pos
	for p.pos < len(p.buf) && p.buf[p.pos] != '\r' {
		p.pos++
	}
	if p.pos+1 >= len(p.buf) || p.buf[p.pos] != '\r' || p.buf[p.pos+1] != '\n' {
		return 0, false
	}
	n, err := strconv.Atoi(string(p.buf[start:p.pos]))
	if err != nil {
		return 0, false
	}
	p.pos += 2
	return n, true
}
