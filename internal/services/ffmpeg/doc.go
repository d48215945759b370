// Package ffmpeg abstracts external tool execution behind a narrow Runner
// interface so the marking pipelines can be exercised in tests with a fake
// process runner. It is the only environment-dependent code path in the
// marking core.
//
// Invocations suppress standard output and capture standard error; a non-zero
// exit surfaces as a *CommandError carrying the full argv and the captured
// diagnostics.
package ffmpeg
