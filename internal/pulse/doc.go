// SPDX-License-Identifier: EPL-2.0

// Package pulse creates and removes virtual audio devices by driving the
// pactl control utility.
//
// A virtual microphone is two server-side modules:
//
//	module-null-sink    <name>_sink   receives the decoded audio
//	module-remap-source <name>        exposes <name>_sink.monitor as an input
//
// The remap-source is what makes browsers and conferencing tools list the
// device as a real microphone rather than a monitor stream. In monitor
// mode a third module, module-loopback, additionally plays the sink
// through the default output.
//
// All routing, mixing and buffering stays inside the audio server; this
// package only issues configuration commands and remembers module ids so
// Teardown can undo everything.
package pulse
