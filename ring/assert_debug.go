// File: ring/assert_debug.go
//go:build ringdebug

// Package ring: commit overrun checks, enabled by the ringdebug build tag.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "fmt"

func (b *Buffer) checkCommitWrite(n uint64) {
	if free := b.FreeSpace(); n > free {
		panic(fmt.Sprintf("ring: CommitWrite(%d) exceeds free space %d", n, free))
	}
}

func (b *Buffer) checkCommitRead(n uint64) {
	if avail := b.AvailableBytes(); n > avail {
		panic(fmt.Sprintf("ring: CommitRead(%d) exceeds available data %d", n, avail))
	}
}
