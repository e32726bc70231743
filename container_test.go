package doby

import (
	"bytes"
	"errors"
	"testing"
)

func testCosts() KDFCostParameters {
	return KDFCostParameters{TimeCost: 10, MemoryCost: 4096, Parallelism: 4}
}

func TestNewEncryptionParametersRejectsBadCipher(t *testing.T) {
	if _, err := NewEncryptionParameters(CipherKind(99), testCosts()); err == nil {
		t.Fatal("expected error for unknown cipher kind")
	}
}

func TestNewEncryptionParametersRejectsBadCosts(t *testing.T) {
	bad := KDFCostParameters{TimeCost: 0, MemoryCost: 4096, Parallelism: 4}
	if _, err := NewEncryptionParameters(CipherAESCTR, bad); err == nil {
		t.Fatal("expected ConfigError for zero time cost")
	}
}

func TestNewEncryptionParametersDrawsDistinctSalts(t *testing.T) {
	p1, err := NewEncryptionParameters(CipherAESCTR, testCosts())
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewEncryptionParameters(CipherAESCTR, testCosts())
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(p1.Salt, p2.Salt) {
		t.Fatal("two calls produced the same salt")
	}
	if len(p1.Salt) != saltSize {
		t.Fatalf("salt length = %d, want %d", len(p1.Salt), saltSize)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	params, err := NewEncryptionParameters(CipherXChaCha20, testCosts())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := params.writeHeader(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != headerSize {
		t.Fatalf("header length = %d, want %d", buf.Len(), headerSize)
	}

	_, got, err := readHeaderBytes(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got.Salt, params.Salt) {
		t.Fatal("salt mismatch after round trip")
	}
	if got.Costs != params.Costs {
		t.Fatal("costs mismatch after round trip")
	}
	if got.Kind != params.Kind {
		t.Fatal("cipher kind mismatch after round trip")
	}
}

func TestUnmarshalHeaderUnknownCipherIsRecoverable(t *testing.T) {
	params, err := NewEncryptionParameters(CipherAESCTR, testCosts())
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, headerSize)
	params.marshal(buf)
	buf[headerSize-1] = 0xFF // not a valid cipher id

	_, err = unmarshalHeader(buf)
	if err == nil {
		t.Fatal("expected error for unknown cipher id")
	}
	if !IsFormatErrorOrNotRecognized(err) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}
}

func TestUnmarshalHeaderBadCostsIsRecoverable(t *testing.T) {
	params, err := NewEncryptionParameters(CipherAESCTR, testCosts())
	if err != nil {
		t.Fatal(err)
	}
	params.Costs.TimeCost = 0
	buf := make([]byte, headerSize)
	params.marshal(buf)

	_, err = unmarshalHeader(buf)
	if err == nil {
		t.Fatal("expected error for zero time cost")
	}
	if !IsFormatErrorOrNotRecognized(err) {
		t.Fatalf("expected ErrNotRecognized, got %v", err)
	}
}

func TestPeekMagicRecognizesContainer(t *testing.T) {
	r := bytes.NewReader([]byte("DOBYrest"))
	peeked, isMagic, err := peekMagic(r)
	if err != nil {
		t.Fatal(err)
	}
	if !isMagic {
		t.Fatal("expected magic to be recognized")
	}
	if string(peeked) != "DOBY" {
		t.Fatalf("peeked = %q, want %q", peeked, "DOBY")
	}
}

func TestPeekMagicRejectsShortStream(t *testing.T) {
	r := bytes.NewReader([]byte("DO"))
	peeked, isMagic, err := peekMagic(r)
	if err != nil {
		t.Fatal(err)
	}
	if isMagic {
		t.Fatal("fewer than 4 bytes can never match the magic")
	}
	if string(peeked) != "DO" {
		t.Fatalf("peeked = %q, want %q", peeked, "DO")
	}
}

func TestPeekMagicRejectsMismatch(t *testing.T) {
	r := bytes.NewReader([]byte("not a container at all"))
	peeked, isMagic, err := peekMagic(r)
	if err != nil {
		t.Fatal(err)
	}
	if isMagic {
		t.Fatal("expected mismatch")
	}
	if string(peeked) != "not " {
		t.Fatalf("peeked = %q, want %q", peeked, "not ")
	}
}

// IsFormatErrorOrNotRecognized is a test helper checking that err wraps
// ErrNotRecognized, which is how unmarshalHeader reports the two
// recoverable header-parse conditions before the mode selector wraps
// them in a FormatError.
func IsFormatErrorOrNotRecognized(err error) bool {
	return errors.Is(err, ErrNotRecognized)
}
