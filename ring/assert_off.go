// File: ring/assert_off.go
//go:build !ringdebug

// Package ring: commit checks compile away outside ringdebug builds.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

func (b *Buffer) checkCommitWrite(n uint64) {}

func (b *Buffer) checkCommitRead(n uint64) {}
