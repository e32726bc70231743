package doby

import "testing"

// lowCosts keeps Argon2id cheap enough for tests to run in milliseconds.
func lowCosts() KDFCostParameters {
	return KDFCostParameters{TimeCost: 1, MemoryCost: 64, Parallelism: 1}
}

func TestKeyScheduleDeterministic(t *testing.T) {
	params, err := NewEncryptionParameters(CipherAESCTR, lowCosts())
	if err != nil {
		t.Fatal(err)
	}

	cs1, as1, err := keySchedule([]byte("correct horse battery staple"), params)
	if err != nil {
		t.Fatal(err)
	}
	cs2, as2, err := keySchedule([]byte("correct horse battery staple"), params)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("deterministic across calls")
	b1 := append([]byte(nil), plaintext...)
	b2 := append([]byte(nil), plaintext...)
	cs1.applyKeystream(b1)
	cs2.applyKeystream(b2)
	if string(b1) != string(b2) {
		t.Fatal("same password+params should derive the same keystream")
	}

	as1.update([]byte("x"))
	as2.update([]byte("x"))
	if string(as1.finalize()) != string(as2.finalize()) {
		t.Fatal("same password+params should derive the same authentication key")
	}
}

func TestKeyScheduleDifferentPasswordsDiverge(t *testing.T) {
	params, err := NewEncryptionParameters(CipherAESCTR, lowCosts())
	if err != nil {
		t.Fatal(err)
	}

	cs1, _, err := keySchedule([]byte("password one"), params)
	if err != nil {
		t.Fatal(err)
	}
	cs2, _, err := keySchedule([]byte("password two"), params)
	if err != nil {
		t.Fatal(err)
	}

	plaintext := []byte("same plaintext, different passwords")
	b1 := append([]byte(nil), plaintext...)
	b2 := append([]byte(nil), plaintext...)
	cs1.applyKeystream(b1)
	cs2.applyKeystream(b2)
	if string(b1) == string(b2) {
		t.Fatal("different passwords should diverge in keystream output")
	}
}

func TestKeyScheduleZeroesPassword(t *testing.T) {
	params, err := NewEncryptionParameters(CipherAESCTR, lowCosts())
	if err != nil {
		t.Fatal(err)
	}
	password := []byte("zero me please")
	if _, _, err := keySchedule(password, params); err != nil {
		t.Fatal(err)
	}
	for i, b := range password {
		if b != 0 {
			t.Fatalf("password byte %d = %d, want 0 after keySchedule", i, b)
		}
	}
}

func TestKeyScheduleAuthStateIsKeyed(t *testing.T) {
	params, err := NewEncryptionParameters(CipherXChaCha20, lowCosts())
	if err != nil {
		t.Fatal(err)
	}
	_, as, err := keySchedule([]byte("pw"), params)
	if err != nil {
		t.Fatal(err)
	}

	headerBuf := make([]byte, headerSize)
	params.marshal(headerBuf)

	fresh := newAuthState(make([]byte, authenticationKeySize))
	fresh.update(headerBuf)
	// Different auth keys, so tags must differ even though both were
	// fed the same header bytes — this only checks that keySchedule's
	// authState is non-trivially seeded, not bit-for-bit equality.
	if string(as.finalize()) == string(fresh.finalize()) {
		t.Fatal("keySchedule's auth state should be keyed, not match an all-zero-key state")
	}
}
