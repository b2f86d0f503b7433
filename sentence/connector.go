// Package sentence defines the data model consumed by the counting engine:
// connectors, disjuncts, words and sentences. Construction of these values
// (tokenization, dictionary expansion, disjunct generation) is the job of
// upstream stages; this package only defines the shapes and a small Arena
// that assigns the stable identity connectors need for memoization.
package sentence

// Priority governs which wildcard rules apply when matching a connector's
// lowercase suffix against its partner.
type Priority int

const (
	// Thin is the ordinary priority: wildcards are symmetric, '*' matches
	// any single byte on either side and '^' matches only '*'.
	Thin Priority = iota
	// Up connectors give way to a Down connector's '^' wildcard and may
	// themselves use '*' to match anything on the Down side.
	Up
	// Down connectors accept a Up side's '*' and may use '^' to match
	// anything on the Up side.
	Down
)

// String renders the priority for diagnostics.
func (p Priority) String() string {
	switch p {
	case Thin:
		return "thin"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "invalid"
	}
}

// Connector describes one half of a potential link: a label, an uppercase
// head compared for exact equality, a lowercase (possibly wildcarded) tail,
// and the knobs that govern how far and how often it may link.
//
// Connector identity for memoization purposes is the arena slot it occupies,
// captured in id at construction time by Arena.NewConnector. Two connectors
// with identical Label/Head/Tail are still distinct if built in different
// slots; do not compare connectors by content.
type Connector struct {
	id int

	// Label identifies the connector class (e.g. "S", "O"); matching
	// requires exact label equality before anything else is considered.
	Label int

	// Head is the uppercase prefix, compared byte-for-byte with no
	// wildcards.
	Head string

	// Tail is the lowercase (possibly wildcarded) suffix.
	Tail string

	// Multi marks a connector that remains available to link again after
	// being linked once.
	Multi bool

	// LengthLimit bounds the inter-word distance (1-based) this connector
	// may span. There is no default: a limit of zero rejects every link,
	// so callers use a large sentinel (e.g. math.MaxInt) to mean
	// "unbounded".
	LengthLimit int

	// Priority selects the wildcard rule used for suffix matching.
	Priority Priority

	// Word is the index of the word this connector sits on. A boundary
	// connector passed into the counter always sits on the boundary word
	// it names (le on lw, re on rw), so the counter's split range is
	// always (lw, rw) and never derived from Word; this field is
	// informational identity, not a bounds hint.
	Word int

	// Next is the following connector on the same side of the same
	// disjunct, ordered from innermost to outermost. nil ends the list.
	Next *Connector
}

// ID returns the connector's stable arena slot, used as the memo key
// component instead of a raw pointer or content hash.
func (c *Connector) ID() int {
	if c == nil {
		return -1
	}
	return c.id
}

// Arena assigns connectors stable, monotonically increasing identities so
// the memo table can key on small integers rather than addresses or content
// hashes. Mirrors the way the teacher's nfa.Builder hands out sequential
// StateIDs.
type Arena struct {
	connectors []*Connector
}

// NewArena creates an empty connector arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewConnector allocates and returns a connector with the next available
// arena slot.
func (a *Arena) NewConnector(label int, head, tail string, multi bool, lengthLimit int, priority Priority, word int) *Connector {
	c := &Connector{
		id:          len(a.connectors),
		Label:       label,
		Head:        head,
		Tail:        tail,
		Multi:       multi,
		LengthLimit: lengthLimit,
		Priority:    priority,
		Word:        word,
	}
	a.connectors = append(a.connectors, c)
	return c
}

// Len returns the number of connectors the arena has handed out.
func (a *Arena) Len() int {
	return len(a.connectors)
}
