package syntax

type (
	// NodeID identifies a node in a Tree's node arena.
	NodeID uint32
	// TokenID identifies a token in a Tree's token arena. Token IDs are
	// allocated in source order, so id+1 is the next token in the file.
	TokenID uint32
)

const (
	NoNodeID  NodeID  = 0
	NoTokenID TokenID = 0
)

func (id NodeID) IsValid() bool  { return id != NoNodeID }
func (id TokenID) IsValid() bool { return id != NoTokenID }
