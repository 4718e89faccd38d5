package ntru

import "testing"

func TestKeyPairRoundTripHelloWorld(t *testing.T) {
	par := TestParams()
	keyRNG := NewRNG([]byte("keygen-seed"))
	kp, err := GenerateKeyPair(par, keyRNG)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	encRNG := NewRNG([]byte("encrypt-seed"))
	msg := []byte("Hello World")
	ct, err := kp.Encrypt(msg, encRNG)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	pt, err := kp.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if string(pt[:len(msg)]) != string(msg) {
		t.Fatalf("round trip mismatch: got %q want %q", pt, msg)
	}
}

func TestKeyPairRoundTripEmptyMessage(t *testing.T) {
	par := TestParams()
	keyRNG := NewRNG([]byte("keygen-seed-empty"))
	kp, err := GenerateKeyPair(par, keyRNG)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	encRNG := NewRNG([]byte("encrypt-seed-empty"))
	ct, err := kp.Encrypt(nil, encRNG)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := kp.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	// DecryptToBytes always returns a ring-sized byte slice; an empty input
	// message round trips to an all-zero slice, not a zero-length one (the
	// real message length is agreed out of band, per spec §6).
	for i, b := range pt {
		if b != 0 {
			t.Fatalf("round trip of empty message produced non-zero byte %d at index %d", b, i)
		}
	}
}

func TestKeyPairRoundTripRandomMessages(t *testing.T) {
	par := TestParams()
	keyRNG := NewRNG([]byte("keygen-seed-2"))
	kp, err := GenerateKeyPair(par, keyRNG)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	lenRNG := NewRNG([]byte("msg-length-seed"))
	encRNG := NewRNG([]byte("msg-encrypt-seed"))
	for i := 0; i < 100; i++ {
		n := lenRNG.Intn(par.N/digitsPerByte + 1)
		msg := make([]byte, n)
		for j := range msg {
			msg[j] = byte(lenRNG.Intn(128))
		}

		ct, err := kp.Encrypt(msg, encRNG)
		if err != nil {
			t.Fatalf("message %d (%q): Encrypt: %v", i, msg, err)
		}
		pt, err := kp.Decrypt(ct)
		if err != nil {
			t.Fatalf("message %d (%q): Decrypt: %v", i, msg, err)
		}
		if string(pt[:n]) != string(msg) {
			t.Fatalf("message %d: round trip mismatch: got %q want %q", i, pt[:n], msg)
		}
	}
}

func TestGenerateKeyPairProducesDistinctKeys(t *testing.T) {
	par := TinyParams()
	rng := NewRNG([]byte("distinct-keys"))
	kp1, err := GenerateKeyPair(par, rng)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	kp2, err := GenerateKeyPair(par, rng)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if kp1.Public.H.EqualTrimmed(kp2.Public.H) {
		t.Fatal("two successive key pairs produced the same public key")
	}
}

func TestEncryptRejectsOversizedMessage(t *testing.T) {
	par := TinyParams() // N=11, so at most 2 bytes (5 trits/byte) fit
	rng := NewRNG([]byte("oversized-keygen"))
	kp, err := GenerateKeyPair(par, rng)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	encRNG := NewRNG([]byte("oversized-encrypt"))
	if _, err := kp.Encrypt([]byte("way too long for this tiny ring"), encRNG); err == nil {
		t.Fatal("expected ErrInvalidInput for an oversized message")
	}
}

func TestInvertModQDispatch(t *testing.T) {
	// DefaultParams/TestParams/TinyParams all use a power-of-two Q, so
	// invertModQ must take the Hensel-lifting path and still satisfy the
	// inversion contract f * f^-1 == 1 (mod Q).
	par := TinyParams()
	rng := NewRNG([]byte("invertmodq-dispatch"))
	f, err := TernaryPolynomial(rng, par.N, par.D+1, par.D)
	if err != nil {
		t.Fatal(err)
	}
	inv, err := invertModQ(f, par)
	if err != nil {
		t.Skip("sampled f not invertible mod Q, skipping")
	}
	product := f.Mul(inv, par.N).Modulo(par.Q)
	if !product.EqualTrimmed(Constant(1, par.N)) {
		t.Fatalf("f*invertModQ(f)=%v want 1", product.Coeffs)
	}
}
