package ratelimit

import "testing"

func TestAllow_BurstThenDeny(t *testing.T) {
	l := New()

	for i := 0; i < 3; i++ {
		if !l.Allow("conn", 3, 0) {
			t.Fatalf("call %d should be allowed within burst", i+1)
		}
	}
	if l.Allow("conn", 3, 0) {
		t.Fatal("burst exhausted, should deny")
	}
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := New()

	if !l.Allow("a", 1, 0) {
		t.Fatal("first call for a should pass")
	}
	if l.Allow("a", 1, 0) {
		t.Fatal("a is exhausted")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatal("b has its own bucket")
	}
}

func TestForget_ResetsBucket(t *testing.T) {
	l := New()

	l.Allow("conn", 1, 0)
	if l.Allow("conn", 1, 0) {
		t.Fatal("exhausted")
	}

	l.Forget("conn")
	if !l.Allow("conn", 1, 0) {
		t.Fatal("forget should restore a full bucket")
	}
}
