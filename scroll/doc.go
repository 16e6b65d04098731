// Package scroll implements the scroll activity state machine: the
// component that decides, frame by frame, how a scrollable offset moves.
//
// # Activities
//
// At any moment a scroll position is governed by exactly one [Activity]:
//
//   - [IdleActivity]: nothing is happening.
//   - [HoldActivity]: a finger is down but has not moved far enough to
//     count as a drag; hit-testing stays live.
//   - [DragActivity]: a finger is dragging; a [DragController] converts
//     pointer deltas into offset deltas.
//   - [BallisticActivity]: the offset follows a physics simulation,
//     typically after a fling release.
//   - [DrivenActivity]: the offset tweens to an explicit target over a
//     fixed duration and curve.
//
// Transitions are always initiated through the [ActivityDelegate]
// (GoIdle, GoBallistic) or by the position's own entry points (Drag,
// Hold, JumpTo, AnimateTo); the old activity is disposed as part of the
// hand-off, so the delegate never observes two current activities.
//
// # Positions and Controllers
//
// [Position] is the concrete delegate: it owns the current activity,
// the pixel offset, and the content/viewport dimensions, and routes
// offsets through a [Physics] policy ([ClampingPhysics] hard edges,
// [BouncingPhysics] rubber-banding). [Controller] is the application
// facade: it fans JumpTo and AnimateTo out across however many
// positions are attached to it.
//
// # Notifications
//
// Activities report lifecycle events (start, update, overscroll, end)
// through a [NotificationHandler] supplied at construction. There is no
// ambient dispatch: whoever builds the position decides where
// notifications go.
//
// # Errors
//
// API misuse — double attach, offset queries with no attachment,
// non-positive durations or thresholds — panics. Overscroll is not an
// error: it is the signal activities use to yield control back to the
// delegate.
package scroll
