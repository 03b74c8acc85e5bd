package ccsync

import "testing"

func TestWeakUpgradeWhileStrongAlive(t *testing.T) {
	space := NewSpace(SpaceConfig{})
	c := NewIn(space, simpleLeaf{Name: "a"})
	w := c.Downgrade()

	if w.StrongCount() != 1 || w.WeakCount() != 1 {
		t.Fatalf("strong/weak = %d/%d, want 1/1", w.StrongCount(), w.WeakCount())
	}

	up, ok := w.Upgrade()
	if !ok {
		t.Fatal("expected Upgrade to succeed while a strong reference is alive")
	}
	if up.StrongCount() != 2 {
		t.Fatalf("strong after upgrade = %d, want 2", up.StrongCount())
	}

	up.Drop()
	c.Drop()
	w.Drop()
	if space.CountTracked() != 0 {
		t.Fatalf("tracked = %d, want 0", space.CountTracked())
	}
}

// TestWeakOutlivesStrong exercises §8 scenario 4 under ccsync: dropping
// the last strong reference destroys the value and disables further
// upgrades, but the block's storage survives until the last WeakAcc also
// drops.
func TestWeakOutlivesStrong(t *testing.T) {
	space := NewSpace(SpaceConfig{})
	c := NewIn(space, simpleLeaf{Name: "a"})
	w := c.Downgrade()

	c.Drop()
	if space.CountTracked() != 1 {
		t.Fatalf("tracked while a WeakAcc survives = %d, want 1", space.CountTracked())
	}

	if _, ok := w.Upgrade(); ok {
		t.Fatal("Upgrade should fail once the strong count has reached zero")
	}

	w.Drop()
	if space.CountTracked() != 0 {
		t.Fatalf("tracked after the last WeakAcc drops = %d, want 0", space.CountTracked())
	}
}

func TestWeakPtrEq(t *testing.T) {
	c := New(simpleLeaf{Name: "a"})
	w1 := c.Downgrade()
	w2 := c.Downgrade()
	if !w1.PtrEq(w2) {
		t.Fatal("weaks to the same block should PtrEq")
	}
	w1.Drop()
	w2.Drop()
	c.Drop()
}
