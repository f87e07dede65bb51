package service

import (
	"context"
)

// ScanLocker guards a follow-up scan so that only one process runs it at a time.
type ScanLocker interface {
	// TryLock acquires the scan lock. ok is false when another holder owns it.
	// release must be called once the scan finishes when ok is true.
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}
