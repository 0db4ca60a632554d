// Package errors provides error handling conventions for the promptpack CLI.
//
// It defines sentinel errors for the installer's failure taxonomy, an
// ExitError type carrying an exit code and optional suggestion, and the exit
// code constants themselves.
//
// # Failure taxonomy
//
// Three classes of failure exist:
//
//   - Generation failures ([ErrGeneration]): a source document is missing a
//     required metadata key or two documents collide on a name. These are
//     fatal at `promptpack generate` time and never surface during install,
//     because the registry is a pre-built, validated artifact.
//   - Resolution failures ([ErrUnknownContentUnit], [ErrAmbiguousSelection]):
//     the requested installation cannot be fully specified. These abort the
//     invocation before any filesystem mutation begins.
//   - Flush failures ([ErrFlushIncomplete]): individual writes failed during
//     apply. Remaining independent writes still proceed; the invocation exits
//     non-zero and the manifest records only what succeeded.
//
// Callers check conditions with [errors.Is]:
//
//	if errors.Is(err, pperrors.ErrUnknownContentUnit) {
//	    // report offenders and the valid name set
//	}
package errors
