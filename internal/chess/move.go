package chess

import "fmt"

// Candidate is one legal destination produced by move generation.
type Candidate struct {
	Target Address
	Type   MoveType
}

// String returns the candidate as "row-col/Type".
func (c Candidate) String() string {
	return c.Target.String() + "/" + c.Type.String()
}

// Move is a classified relocation chosen by the caller.
// The Type must be the one generation produced for To.
type Move struct {
	From Address
	To   Address
	Type MoveType
}

// String returns the move as "from->to (Type)".
func (m Move) String() string {
	return fmt.Sprintf("%s->%s (%s)", m.From, m.To, m.Type)
}

// LastMove records the most recent relocation. For castling it is the king's.
type LastMove struct {
	From Address
	To   Address
}

// PendingPromotion is the state left by a Promotion move until a
// replacement piece type is chosen.
type PendingPromotion struct {
	Address     Address
	Coordinates *Coordinates
	Colour      Colour
}

// CastlingOffsets gives, from a king's home square, the relative column of
// the kingside and queenside castling destinations.
type CastlingOffsets struct {
	Kingside  int
	Queenside int
}

// Targets returns the target addresses of a candidate list, in order.
func Targets(cands []Candidate) []Address {
	addrs := make([]Address, len(cands))
	for i, c := range cands {
		addrs[i] = c.Target
	}
	return addrs
}

// Lookup returns the candidate targeting to, if present.
func Lookup(cands []Candidate, to Address) (Candidate, bool) {
	for _, c := range cands {
		if c.Target == to {
			return c, true
		}
	}
	return Candidate{}, false
}
