package process

import (
	"os"
	"testing"
)

func TestID(t *testing.T) {
	if ID() != os.Getpid() {
		t.Fatalf("Expected %d; got %d", os.Getpid(), ID())
	}

	if Group() <= 0 {
		t.Fatalf("Expected a positive group ID; got %d", Group())
	}
}
