package token

import "testing"

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken(32)
	if err != nil {
		t.Fatalf("GenerateRandomToken: %v", err)
	}
	b, err := GenerateRandomToken(32)
	if err != nil {
		t.Fatalf("GenerateRandomToken: %v", err)
	}
	if a == b {
		t.Fatal("two generated tokens are identical")
	}
	if len(a) == 0 {
		t.Fatal("empty token")
	}
}

func TestHashSHA256Deterministic(t *testing.T) {
	if HashSHA256("abc") != HashSHA256("abc") {
		t.Fatal("hash is not deterministic")
	}
	if HashSHA256("abc") == HashSHA256("abd") {
		t.Fatal("different inputs hash equal")
	}
	if len(HashSHA256("abc")) != 64 {
		t.Fatal("unexpected hash length")
	}
}
