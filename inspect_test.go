package doby

import (
	"bytes"
	"testing"
)

func TestInspectHeaderOnRecognizedContainer(t *testing.T) {
	params, err := NewEncryptionParameters(CipherXChaCha20, lowCosts())
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := Encrypt(bytes.NewReader([]byte("payload")), &out, []byte("pw"), params, 65536, nil); err != nil {
		t.Fatal(err)
	}

	got, err := InspectHeader(bytes.NewReader(out.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != CipherXChaCha20 {
		t.Fatalf("cipher kind = %v, want %v", got.Kind, CipherXChaCha20)
	}
	if got.Costs != params.Costs {
		t.Fatalf("costs = %+v, want %+v", got.Costs, params.Costs)
	}
}

func TestInspectHeaderRejectsNonContainer(t *testing.T) {
	if _, err := InspectHeader(bytes.NewReader([]byte("not a container"))); err == nil {
		t.Fatal("expected an error for non-container input")
	} else if !IsFormatError(err) {
		t.Fatalf("expected *FormatError, got %T", err)
	}
}
