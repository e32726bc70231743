package doby

import "testing"

func TestAuthStateSplitUpdatesSameTag(t *testing.T) {
	key := make([]byte, authenticationKeySize)
	a1 := newAuthState(key)
	a1.update([]byte("hello"))
	a1.update([]byte("world"))

	a2 := newAuthState(key)
	a2.update([]byte("helloworld"))

	if string(a1.finalize()) != string(a2.finalize()) {
		t.Fatal("splitting update calls should not change the finalized tag for identical total input")
	}
}

func TestAuthStateReordersChangeTag(t *testing.T) {
	key := make([]byte, authenticationKeySize)
	a1 := newAuthState(key)
	a1.update([]byte("world"))
	a1.update([]byte("hello"))

	a2 := newAuthState(key)
	a2.update([]byte("hello"))
	a2.update([]byte("world"))

	if string(a1.finalize()) == string(a2.finalize()) {
		t.Fatal("different update order should produce a different tag")
	}
}

func TestAuthStateFinalizeLength(t *testing.T) {
	a := newAuthState(make([]byte, authenticationKeySize))
	a.update([]byte("anything"))
	if got := len(a.finalize()); got != tagSize {
		t.Fatalf("tag length = %d, want %d", got, tagSize)
	}
}

func TestAuthStateVerify(t *testing.T) {
	key := make([]byte, authenticationKeySize)
	for i := range key {
		key[i] = byte(i)
	}

	a := newAuthState(key)
	a.update([]byte("payload"))
	tag := a.finalize()

	verifier := newAuthState(key)
	verifier.update([]byte("payload"))
	if !verifier.verify(tag) {
		t.Fatal("verify should succeed against the correct tag")
	}

	tampered := append([]byte(nil), tag...)
	tampered[0] ^= 0xFF
	verifier2 := newAuthState(key)
	verifier2.update([]byte("payload"))
	if verifier2.verify(tampered) {
		t.Fatal("verify should fail against a tampered tag")
	}
}

func TestAuthStateDifferentKeysDifferentTags(t *testing.T) {
	k1 := make([]byte, authenticationKeySize)
	k2 := make([]byte, authenticationKeySize)
	k2[0] = 1

	a1 := newAuthState(k1)
	a1.update([]byte("same message"))
	a2 := newAuthState(k2)
	a2.update([]byte("same message"))

	if string(a1.finalize()) == string(a2.finalize()) {
		t.Fatal("different keys should produce different tags for the same message")
	}
}
