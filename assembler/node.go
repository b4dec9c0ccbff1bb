package assembler

// NodeType defines the kind of a source line.
type NodeType int

const (
	// NodeRaw is any line passed through verbatim as base instruction text.
	NodeRaw NodeType = iota
	// NodeBlank is an empty line.
	NodeBlank
	// NodeComment starts with '#'.
	NodeComment
	// NodeLabel is a label definition, '@name'.
	NodeLabel
	// NodeReference is a label reference on its own line, '$name'.
	NodeReference
	// NodeGoto is the goto macro.
	NodeGoto
	// NodeJneq is the branch-if-not-equal macro.
	NodeJneq
	// NodeJeq is the branch-if-equal macro.
	NodeJeq
	// NodeAdd is the add macro.
	NodeAdd
	// NodeSub is the sub macro.
	NodeSub
)

// Node represents one classified line of source or expanded text.
type Node struct {
	Type     NodeType
	Label    string
	Mnemonic string
	Operands []string
	Raw      string
}

// OccupiesSlot reports whether the line takes an instruction index in the final listing.
// Blank lines, comments and label definitions don't; references do.
func (n Node) OccupiesSlot() bool {
	switch n.Type {
	case NodeBlank, NodeComment, NodeLabel:
		return false
	}
	return true
}
