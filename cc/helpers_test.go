package cc

// Shared Tracer implementations used across this package's tests.

// simpleLeaf is a tracked value with no owned edges.
type simpleLeaf struct {
	Name string
}

func (simpleLeaf) IsTypeTracked() bool { return true }
func (simpleLeaf) Trace(Visitor)       {}

// untrackedValue never participates in cycle collection.
type untrackedValue struct {
	N int
}

func (untrackedValue) IsTypeTracked() bool { return false }
func (untrackedValue) Trace(Visitor)       {}

// chainNode links to at most one other chainNode, forming lists or, if
// wired that way, cycles.
type chainNode struct {
	Name string
	Next Cc[chainNode]
}

func (chainNode) IsTypeTracked() bool { return true }
func (c chainNode) Trace(v Visitor)   { c.Next.Trace(v) }

// finalizingNode additionally reports whether Finalize ran.
type finalizingNode struct {
	Name      string
	Next      Cc[finalizingNode]
	Finalized *bool
}

func (finalizingNode) IsTypeTracked() bool { return true }
func (n finalizingNode) Trace(v Visitor)   { n.Next.Trace(v) }
func (n finalizingNode) Finalize() {
	if n.Finalized != nil {
		*n.Finalized = true
	}
}

// weakHolder owns a Weak, never a Cc, over a chainNode — weak edges are
// never reported to Trace (§1: a Weak is a non-owning handle).
type weakHolder struct {
	Ref Weak[chainNode]
}

func (weakHolder) IsTypeTracked() bool { return false }
func (weakHolder) Trace(Visitor)       {}

// doubleVisitNode deliberately violates the Trace contract by reporting
// its one owned edge twice in a single call, to exercise the collector's
// double-visit diagnostic (§7).
type doubleVisitNode struct {
	Child Cc[simpleLeaf]
}

func (doubleVisitNode) IsTypeTracked() bool { return true }
func (d doubleVisitNode) Trace(v Visitor) {
	d.Child.Trace(v)
	d.Child.Trace(v)
}

// multiNode is a directed-multigraph node: any number of outgoing edges,
// including repeats and self-edges, and a per-instance tracking opt-out
// (IsTypeTracked reads m.Tracked rather than answering a fixed constant
// for the type, which §8's fuzz property needs to vary tracking per
// node). Used by the §8 arbitrary-multigraph boundary test.
type multiNode struct {
	Name     string
	Tracked  bool
	Children []Cc[multiNode]
}

func (m multiNode) IsTypeTracked() bool { return m.Tracked }
func (m multiNode) Trace(v Visitor) {
	for _, c := range m.Children {
		c.Trace(v)
	}
}
