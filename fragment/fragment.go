// Package fragment splits a multi-key command whose keys span more than one
// shard into one sub-command per shard, and recombines their replies into
// the single reply the caller expects.
package fragment

import (
	"errors"
	"fmt"

	"github.com/kevwan/rcluster/cmdparse"
	"github.com/kevwan/rcluster/redis"
)

// SubCommand is one per-shard piece of a fragmented command.
type SubCommand struct {
	Slot int
	Args []string
	Raw  []byte
}

// Result is the outcome of fragmenting a multi-key command.
type Result struct {
	SubCommands []*SubCommand
	// FragmentSeq[i] is the index into SubCommands that original key i was
	// routed to — the parallel pointer §4.7 describes.
	FragmentSeq []int
}

// SlotFunc maps a key to its slot number.
type SlotFunc func(key []byte) int

// ErrNotMultiKey is returned when Fragment is called on a command that
// resolves to a single slot; the caller should use cmd.Slot directly
// instead of fragmenting.
var ErrNotMultiKey = errors.New("fragment: command maps to a single slot")

// Fragment splits cmd's keys across shards per slotFn. If every key lands in
// the same slot, Fragment sets cmd.Slot and returns ErrNotMultiKey — the
// degenerate no-op rewrite §4.7 step 4 describes.
func Fragment(cmd *cmdparse.Command, slotFn SlotFunc) (*Result, error) {
	if len(cmd.Keys) < 2 {
		return nil, fmt.Errorf("fragment: command has %d keys, need at least 2", len(cmd.Keys))
	}

	slotOf := make([]int, len(cmd.Keys))
	bySlot := map[int]int{} // slot -> index into subs
	var subs []*SubCommand
	seq := make([]int, len(cmd.Keys))

	for i, k := range cmd.Keys {
		slot := slotFn(k.Bytes(cmd.Raw))
		slotOf[i] = slot
		subIdx, ok := bySlot[slot]
		if !ok {
			subIdx = len(subs)
			bySlot[slot] = subIdx
			subs = append(subs, &SubCommand{Slot: slot, Args: []string{cmd.Name}})
		}
		sub := subs[subIdx]
		sub.Args = append(sub.Args, string(k.Bytes(cmd.Raw)))
		if cmd.Name == "MSET" && k.RemainLen > 0 {
			sub.Args = append(sub.Args, string(cmd.Raw[k.ValueStart:k.ValueStart+k.RemainLen]))
		}
		seq[i] = subIdx
	}

	if len(subs) == 1 {
		cmd.Slot = slotOf[0]
		return nil, ErrNotMultiKey
	}

	for _, sub := range subs {
		sub.Raw = redis.RawRequest(sub.Args...)
	}

	return &Result{SubCommands: subs, FragmentSeq: seq}, nil
}

// Reassemble combines one reply per sub-command (in the same order as
// Result.SubCommands) back into the single reply the original command
// expects. replies[i] corresponds to SubCommands[i].
func Reassemble(cmdName string, result *Result, replies []interface{}) (interface{}, error) {
	if len(replies) != len(result.SubCommands) {
		return nil, fmt.Errorf("fragment: got %d replies for %d sub-commands", len(replies), len(result.SubCommands))
	}
	for _, r := range replies {
		if err, ok := r.(error); ok {
			return nil, err
		}
	}

	switch cmdName {
	case "MGET":
		return reassembleMGet(result, replies)
	case "DEL", "EXISTS":
		return reassembleSum(replies)
	case "MSET":
		return reassembleMSet(replies)
	default:
		return nil, fmt.Errorf("fragment: %s is not a fragmentable command", cmdName)
	}
}

// reassembleMGet walks the original key list in reverse, consuming from the
// tail of each sub-reply array — preserving original key order without
// needing to track each key's position within its sub-command.
func reassembleMGet(result *Result, replies []interface{}) (interface{}, error) {
	arrays := make([][]interface{}, len(replies))
	cursors := make([]int, len(replies))
	for i, r := range replies {
		arr, ok := r.([]interface{})
		if !ok {
			return nil, fmt.Errorf("fragment: MGET sub-reply is not an array")
		}
		arrays[i] = arr
		cursors[i] = len(arr) - 1
	}

	n := len(result.FragmentSeq)
	out := make([]interface{}, n)
	for i := n - 1; i >= 0; i-- {
		subIdx := result.FragmentSeq[i]
		c := cursors[subIdx]
		if c < 0 {
			return nil, fmt.Errorf("fragment: MGET sub-reply exhausted for key %d", i)
		}
		out[i] = arrays[subIdx][c]
		cursors[subIdx]--
	}
	return out, nil
}

func reassembleSum(replies []interface{}) (interface{}, error) {
	var sum int64
	for _, r := range replies {
		n, ok := r.(int64)
		if !ok {
			return nil, fmt.Errorf("reply type error")
		}
		sum += n
	}
	return sum, nil
}

func reassembleMSet(replies []interface{}) (interface{}, error) {
	for _, r := range replies {
		s, ok := r.(string)
		if !ok || s != "OK" {
			return nil, fmt.Errorf("reply type error")
		}
	}
	return "OK", nil
}
