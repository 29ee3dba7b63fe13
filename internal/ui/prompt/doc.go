// Package prompt implements a modal single-line text prompt.
//
// A [Request] describes the prompt: a title, an optional initial value,
// and up to three buttons. The primary button is always shown, the
// alternate button only when OnAlternate is set, and the cancel button
// always (its label falls back to [WithDefaultCancelLabel]).
//
// A [Modal] is a Bubble Tea component. It is created with [New], becomes
// interactive after [Modal.Show], and closes on the first of:
//   - enter on the text field (same as the primary button)
//   - enter or space on a focused button
//   - a left click on a button
//   - esc or ctrl+c (dismiss: no handler, OnClosed still fires)
//   - [Modal.Activate] or [Modal.Close] from the host
//
// Exactly one of OnPrimary, OnAlternate or OnCancel runs per modal, at
// most once, followed by OnClosed. Later triggers are ignored.
//
// [Run] hosts a single modal as a full-screen program on stderr.
package prompt
