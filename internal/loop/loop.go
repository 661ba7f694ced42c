// Package loop provides frame requesters: the host-side half of a game loop
// that runs one registered callback per displayed frame.
package loop

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// FrameRequester schedules callbacks for the next frame.
//
// A callback registered with RequestFrame runs at most once. CancelFrame on
// an ID that already ran or was already cancelled is a no-op.
type FrameRequester interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}
