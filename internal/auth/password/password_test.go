package password

import "testing"

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}
	if err := Compare(hash, "s3cret-password"); err != nil {
		t.Fatalf("Compare with correct password: %v", err)
	}
	if err := Compare(hash, "wrong-password"); err == nil {
		t.Fatal("Compare accepted wrong password")
	}
}
