// Package cmdtable is the static, lexicographically sorted catalog of every
// known Redis command: name, optional subname, arity, and first-key
// descriptor. It answers one question only — "where, if anywhere, does this
// command's first key live" — and leaves parsing the wire request to
// cmdparse.
//
// The table mirrors the Redis command reference's key-spec metadata: each
// entry records the same arity and first-key position Redis itself
// publishes for that command.
package cmdtable

// FirstKeyMethod describes how to locate a command's first key argument.
type FirstKeyMethod int

const (
	// KeyNone means the command carries no key argument.
	KeyNone FirstKeyMethod = iota
	// KeyIndex means the first key sits at the fixed argument position KeyPos.
	KeyIndex
	// KeyNum means the argument at KeyPos holds a decimal count of keys; the
	// keys themselves start at the following argument.
	KeyNum
	// KeyUnknown means the first key's position can only be found by a
	// keyword search over the remaining arguments (XREAD/XREADGROUP).
	KeyUnknown
)

// Entry is one row of the command table: a command (or subcommand) together
// with its arity and first-key descriptor. Arity is a signed argument count
// including the command name itself: positive is exact, negative is a
// minimum (-Arity).
type Entry struct {
	Name      string
	SubName   string
	Arity     int
	KeyMethod FirstKeyMethod
	KeyPos    int
}

// HasSubcommand reports whether this entry requires a subcommand argument.
func (e Entry) HasSubcommand() bool {
	return e.SubName != ""
}

// table is sorted by (Name, SubName) so Lookup can binary search it. Keep it
// sorted if you add entries.
var table = []Entry{
	{Name: "ACL", SubName: "CAT", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "DELUSER", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "DRYRUN", Arity: -4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "GENPASS", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "GETUSER", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "LIST", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "LOAD", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "LOG", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "SAVE", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "SETUSER", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "USERS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "ACL", SubName: "WHOAMI", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "APPEND", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ASKING", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "AUTH", SubName: "", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "BGREWRITEAOF", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "BGSAVE", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "BITCOUNT", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BITFIELD", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BITFIELD_RO", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BITOP", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "BITPOS", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BLMOVE", SubName: "", Arity: 6, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BLMPOP", SubName: "", Arity: -5, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "BLPOP", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BRPOP", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BRPOPLPUSH", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BZMPOP", SubName: "", Arity: -5, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "BZPOPMAX", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "BZPOPMIN", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "CLIENT", SubName: "CACHING", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "GETNAME", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "GETREDIR", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "ID", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "INFO", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "KILL", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "LIST", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "NO-EVICT", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "PAUSE", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "REPLY", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "SETNAME", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "TRACKING", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "TRACKINGINFO", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "UNBLOCK", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLIENT", SubName: "UNPAUSE", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "ADDSLOTS", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "ADDSLOTSRANGE", Arity: -4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "BUMPEPOCH", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "COUNT-FAILURE-REPORTS", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "COUNTKEYSINSLOT", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "DELSLOTS", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "DELSLOTSRANGE", Arity: -4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "FAILOVER", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "FLUSHSLOTS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "FORGET", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "GETKEYSINSLOT", Arity: 4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "INFO", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "KEYSLOT", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "LINKS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "MEET", Arity: -4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "MYID", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "MYSHARDID", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "NODES", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "REPLICAS", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "REPLICATE", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "RESET", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "SAVECONFIG", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "SET-CONFIG-EPOCH", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "SETSLOT", Arity: -4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "SHARDS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "SLAVES", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CLUSTER", SubName: "SLOTS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "COUNT", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "DOCS", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "GETKEYS", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "GETKEYSANDFLAGS", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "INFO", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COMMAND", SubName: "LIST", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CONFIG", SubName: "GET", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CONFIG", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CONFIG", SubName: "RESETSTAT", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CONFIG", SubName: "REWRITE", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "CONFIG", SubName: "SET", Arity: -4, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "COPY", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "DBSIZE", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "DEBUG", SubName: "", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "DECR", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "DECRBY", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "DEL", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "DISCARD", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "DUMP", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ECHO", SubName: "", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "EVAL", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "EVALSHA", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "EVALSHA_RO", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "EVAL_RO", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "EXEC", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "EXISTS", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "EXPIRE", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "EXPIREAT", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "EXPIRETIME", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "FAILOVER", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FCALL", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "FCALL_RO", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 2},
	{Name: "FLUSHALL", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FLUSHDB", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "DELETE", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "DUMP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "FLUSH", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "KILL", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "LIST", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "LOAD", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "RESTORE", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "FUNCTION", SubName: "STATS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "GEOADD", SubName: "", Arity: -5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEODIST", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEOHASH", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEOPOS", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEORADIUS", SubName: "", Arity: -6, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEORADIUSBYMEMBER", SubName: "", Arity: -5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEORADIUSBYMEMBER_RO", SubName: "", Arity: -5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEORADIUS_RO", SubName: "", Arity: -6, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEOSEARCH", SubName: "", Arity: -7, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GEOSEARCHSTORE", SubName: "", Arity: -8, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GET", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GETBIT", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GETDEL", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GETEX", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GETRANGE", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "GETSET", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HDEL", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HELLO", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "HEXISTS", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HGET", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HGETALL", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HINCRBY", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HINCRBYFLOAT", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HKEYS", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HLEN", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HMGET", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HMSET", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HRANDFIELD", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HSCAN", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HSET", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HSETNX", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HSTRLEN", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "HVALS", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "INCR", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "INCRBY", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "INCRBYFLOAT", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "INFO", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "KEYS", SubName: "", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LASTSAVE", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "DOCTOR", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "GRAPH", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "HISTOGRAM", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "HISTORY", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "LATEST", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LATENCY", SubName: "RESET", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LCS", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LINDEX", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LINSERT", SubName: "", Arity: 5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LLEN", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LMOVE", SubName: "", Arity: 5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LMPOP", SubName: "", Arity: -4, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "LOLWUT", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "LPOP", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LPOS", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LPUSH", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LPUSHX", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LRANGE", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LREM", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LSET", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "LTRIM", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "MEMORY", SubName: "DOCTOR", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MEMORY", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MEMORY", SubName: "MALLOC-STATS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MEMORY", SubName: "PURGE", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MEMORY", SubName: "STATS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MEMORY", SubName: "USAGE", Arity: -3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "MGET", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "MIGRATE", SubName: "", Arity: -6, KeyMethod: KeyIndex, KeyPos: 3},
	{Name: "MODULE", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MODULE", SubName: "LIST", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MODULE", SubName: "LOAD", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MODULE", SubName: "LOADEX", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MODULE", SubName: "UNLOAD", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MONITOR", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "MOVE", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "MSET", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "MSETNX", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "MULTI", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "OBJECT", SubName: "ENCODING", Arity: 3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "OBJECT", SubName: "FREQ", Arity: 3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "OBJECT", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "OBJECT", SubName: "IDLETIME", Arity: 3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "OBJECT", SubName: "REFCOUNT", Arity: 3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "PERSIST", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PEXPIRE", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PEXPIREAT", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PEXPIRETIME", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PFADD", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PFCOUNT", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PFDEBUG", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "PFMERGE", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PFSELFTEST", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PING", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PSETEX", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PSUBSCRIBE", SubName: "", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PSYNC", SubName: "", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PTTL", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "PUBLISH", SubName: "", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUBSUB", SubName: "CHANNELS", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUBSUB", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUBSUB", SubName: "NUMPAT", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUBSUB", SubName: "NUMSUB", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUBSUB", SubName: "SHARDCHANNELS", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUBSUB", SubName: "SHARDNUMSUB", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "PUNSUBSCRIBE", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "QUIT", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "RANDOMKEY", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "READONLY", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "READWRITE", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "RENAME", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "RENAMENX", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "REPLCONF", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "REPLICAOF", SubName: "", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "RESET", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "RESTORE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "RESTORE-ASKING", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ROLE", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "RPOP", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "RPOPLPUSH", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "RPUSH", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "RPUSHX", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SADD", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SAVE", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCAN", SubName: "", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCARD", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SCRIPT", SubName: "DEBUG", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCRIPT", SubName: "EXISTS", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCRIPT", SubName: "FLUSH", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCRIPT", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCRIPT", SubName: "KILL", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SCRIPT", SubName: "LOAD", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SDIFF", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SDIFFSTORE", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SELECT", SubName: "", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "CKQUORUM", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "CONFIG", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "DEBUG", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "FAILOVER", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "FLUSHCONFIG", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "GET-MASTER-ADDR-BY-NAME", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "INFO-CACHE", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "IS-MASTER-DOWN-BY-ADDR", Arity: 6, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "MASTER", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "MASTERS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "MONITOR", Arity: 6, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "MYID", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "PENDING-SCRIPTS", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "REMOVE", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "REPLICAS", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "RESET", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "SENTINELS", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "SET", Arity: -5, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "SIMULATE-FAILURE", Arity: -3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SENTINEL", SubName: "SLAVES", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SET", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SETBIT", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SETEX", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SETNX", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SETRANGE", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SHUTDOWN", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SINTER", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SINTERCARD", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "SINTERSTORE", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SISMEMBER", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SLAVEOF", SubName: "", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SLOWLOG", SubName: "GET", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SLOWLOG", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SLOWLOG", SubName: "LEN", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SLOWLOG", SubName: "RESET", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SMEMBERS", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SMISMEMBER", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SMOVE", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SORT", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SORT_RO", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SPOP", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SPUBLISH", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SRANDMEMBER", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SREM", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SSCAN", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SSUBSCRIBE", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "STRLEN", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SUBSCRIBE", SubName: "", Arity: -2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SUBSTR", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SUNION", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SUNIONSTORE", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SUNSUBSCRIBE", SubName: "", Arity: -1, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "SWAPDB", SubName: "", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "SYNC", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "TIME", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "TOUCH", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "TTL", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "TYPE", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "UNLINK", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "UNSUBSCRIBE", SubName: "", Arity: -1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "UNWATCH", SubName: "", Arity: 1, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "WAIT", SubName: "", Arity: 3, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "WATCH", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XACK", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XADD", SubName: "", Arity: -5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XAUTOCLAIM", SubName: "", Arity: -6, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XCLAIM", SubName: "", Arity: -6, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XDEL", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XGROUP", SubName: "CREATE", Arity: -5, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XGROUP", SubName: "CREATECONSUMER", Arity: 5, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XGROUP", SubName: "DELCONSUMER", Arity: 5, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XGROUP", SubName: "DESTROY", Arity: 4, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XGROUP", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "XGROUP", SubName: "SETID", Arity: -5, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XINFO", SubName: "CONSUMERS", Arity: 4, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XINFO", SubName: "GROUPS", Arity: 3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XINFO", SubName: "HELP", Arity: 2, KeyMethod: KeyNone, KeyPos: 0},
	{Name: "XINFO", SubName: "STREAM", Arity: -3, KeyMethod: KeyIndex, KeyPos: 2},
	{Name: "XLEN", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XPENDING", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XRANGE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XREAD", SubName: "", Arity: -4, KeyMethod: KeyUnknown, KeyPos: 0},
	{Name: "XREADGROUP", SubName: "", Arity: -7, KeyMethod: KeyUnknown, KeyPos: 0},
	{Name: "XREVRANGE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XSETID", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "XTRIM", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZADD", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZCARD", SubName: "", Arity: 2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZCOUNT", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZDIFF", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "ZDIFFSTORE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZINCRBY", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZINTER", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "ZINTERCARD", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "ZINTERSTORE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZLEXCOUNT", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZMPOP", SubName: "", Arity: -4, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "ZMSCORE", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZPOPMAX", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZPOPMIN", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZRANDMEMBER", SubName: "", Arity: -2, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZRANGE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZRANGEBYLEX", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZRANGEBYSCORE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZRANGESTORE", SubName: "", Arity: -5, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZRANK", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREM", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREMRANGEBYLEX", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREMRANGEBYRANK", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREMRANGEBYSCORE", SubName: "", Arity: 4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREVRANGE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREVRANGEBYLEX", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREVRANGEBYSCORE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZREVRANK", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZSCAN", SubName: "", Arity: -3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZSCORE", SubName: "", Arity: 3, KeyMethod: KeyIndex, KeyPos: 1},
	{Name: "ZUNION", SubName: "", Arity: -3, KeyMethod: KeyNum, KeyPos: 1},
	{Name: "ZUNIONSTORE", SubName: "", Arity: -4, KeyMethod: KeyIndex, KeyPos: 1},
}
