// Package emit renders IR into one of the QSGAL output encodings.
//
// Targets:
//   - manifest: the ordered command list as indented JSON
//   - obj: a dual-cube mesh as OBJ vertex lines
//   - wasm: reserved; currently produces the manifest output unchanged
//
// The manifest and mesh emitters produce fixed demonstration payloads and
// do not read the IR they are given.
package emit
