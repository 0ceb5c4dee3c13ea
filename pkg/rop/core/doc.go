// Package core contains the plumbing shared by the future substrate and the
// rop packages: options carried through context (worker count, queue size,
// shutdown policy, logger), the Logger interface, and the locomotive that
// drives pool workers. It holds no Result semantics of its own.
package core
