package middleware

import (
	"testing"
	"time"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 0.0001)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d denied before bucket was empty", i+1)
		}
	}
	if tb.Allow() {
		t.Fatal("request allowed after bucket was exhausted")
	}
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 10) // 10 tokens/sec

	if !tb.Allow() {
		t.Fatal("first request denied")
	}
	if tb.Allow() {
		t.Fatal("second request allowed immediately")
	}

	// Backdate the last refill so a token is available again
	tb.mu.Lock()
	tb.lastRefillTime = time.Now().Add(-time.Second)
	tb.mu.Unlock()

	if !tb.Allow() {
		t.Fatal("request denied after refill window elapsed")
	}
}

func TestRateLimiterIndependentKeys(t *testing.T) {
	rl := NewRateLimiter(1, 3600)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first client denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("first client allowed past its limit")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("second client denied by first client's bucket")
	}
}
