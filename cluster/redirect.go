package cluster

import (
	"strings"

	"github.com/kevwan/rcluster/redis"
)

type redirectKind int

const (
	redirectNone redirectKind = iota
	redirectMoved
	redirectAsk
	redirectTryAgain
	redirectClusterDown
	redirectOther
)

// classifyReplyError inspects a *redis.ReplyError's leading token and, for
// MOVED/ASK, parses the trailing "<slot> <host:port>" fields.
func classifyReplyError(e *redis.ReplyError) (kind redirectKind, slot int, addr string) {
	fields := strings.Fields(e.Message)
	if len(fields) == 0 {
		return redirectOther, 0, ""
	}
	switch fields[0] {
	case "MOVED":
		if len(fields) < 3 {
			return redirectOther, 0, ""
		}
		n, err := parseSlot(fields[1])
		if err != nil {
			return redirectOther, 0, ""
		}
		return redirectMoved, n, fields[2]
	case "ASK":
		if len(fields) < 3 {
			return redirectOther, 0, ""
		}
		n, err := parseSlot(fields[1])
		if err != nil {
			return redirectOther, 0, ""
		}
		return redirectAsk, n, fields[2]
	case "TRYAGAIN":
		return redirectTryAgain, 0, ""
	case "CLUSTERDOWN":
		return redirectClusterDown, 0, ""
	default:
		return redirectOther, 0, ""
	}
}
