package sentence

import "testing"

func TestArenaAssignsSequentialIDs(t *testing.T) {
	a := NewArena()
	c0 := a.NewConnector(0, "", "s", false, 10, Thin, 0)
	c1 := a.NewConnector(0, "", "s", false, 10, Thin, 1)
	c2 := a.NewConnector(1, "", "o", true, 10, Down, 2)

	if c0.ID() != 0 || c1.ID() != 1 || c2.ID() != 2 {
		t.Fatalf("got ids %d, %d, %d; want 0, 1, 2", c0.ID(), c1.ID(), c2.ID())
	}
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
}

func TestConnectorIDNilSafe(t *testing.T) {
	var c *Connector
	if got := c.ID(); got != -1 {
		t.Fatalf("nil Connector.ID() = %d, want -1", got)
	}
}

func TestArenaDistinctIdentityForEqualContent(t *testing.T) {
	a := NewArena()
	c0 := a.NewConnector(0, "", "s", false, 10, Thin, 0)
	c1 := a.NewConnector(0, "", "s", false, 10, Thin, 0)
	if c0.ID() == c1.ID() {
		t.Fatalf("two distinct NewConnector calls with identical content got the same id %d", c0.ID())
	}
}

func TestPriorityString(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{Thin, "thin"},
		{Up, "up"},
		{Down, "down"},
		{Priority(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
