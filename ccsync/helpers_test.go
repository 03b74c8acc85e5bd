package ccsync

// Shared Tracer implementations used across this package's tests,
// mirroring cc/helpers_test.go's fixtures.

type simpleLeaf struct {
	Name string
}

func (simpleLeaf) IsTypeTracked() bool { return true }
func (simpleLeaf) Trace(Visitor)       {}

type untrackedValue struct {
	N int
}

func (untrackedValue) IsTypeTracked() bool { return false }
func (untrackedValue) Trace(Visitor)       {}

// chainNode links to at most one other chainNode, forming lists or, if
// wired that way, cycles.
type chainNode struct {
	Name string
	Next Acc[chainNode]
}

func (chainNode) IsTypeTracked() bool { return true }
func (c chainNode) Trace(v Visitor)   { c.Next.Trace(v) }

type finalizingNode struct {
	Name      string
	Next      Acc[finalizingNode]
	Finalized *bool
}

func (finalizingNode) IsTypeTracked() bool { return true }
func (n finalizingNode) Trace(v Visitor)   { n.Next.Trace(v) }
func (n finalizingNode) Finalize() {
	if n.Finalized != nil {
		*n.Finalized = true
	}
}

// doubleVisitNode deliberately violates the Trace contract, to exercise
// the collector's double-visit diagnostic (§7).
type doubleVisitNode struct {
	Child Acc[simpleLeaf]
}

func (doubleVisitNode) IsTypeTracked() bool { return true }
func (d doubleVisitNode) Trace(v Visitor) {
	d.Child.Trace(v)
	d.Child.Trace(v)
}

// setNext rewires n's Next field, mirroring cc/collect_test.go's helper.
func setNext(n *Acc[chainNode], next Acc[chainNode]) {
	b := n.Borrow()
	b.Value().Next = next
	b.Release()
}

// multiNode mirrors cc's fixture of the same name for the §8 arbitrary-
// multigraph boundary test: any number of outgoing edges, including
// repeats and self-edges, and a per-instance tracking opt-out.
type multiNode struct {
	Name     string
	Tracked  bool
	Children []Acc[multiNode]
}

func (m multiNode) IsTypeTracked() bool { return m.Tracked }
func (m multiNode) Trace(v Visitor) {
	for _, c := range m.Children {
		c.Trace(v)
	}
}
