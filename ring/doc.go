// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package ring implements a fixed-capacity, lock-free single-producer
// single-consumer byte ring buffer.
//
// A Buffer owns one power-of-two sized allocation and two free-running
// position counters. The producer goroutine advances the write position,
// the consumer goroutine advances the read position, and the atomic
// load/store pairing on those counters is the only synchronization. No
// operation blocks: writes and reads return short or zero counts when the
// ring is full or empty, and callers poll at their own pace.
//
// Violating the one-producer/one-goroutine, one-consumer/one-goroutine
// contract is a data race; the hot path carries no detection.
package ring
