// Package selection computes rectangular multi-region cell selections.
//
// A host reports input as modifier, pointer and text-selection events. The
// Engine turns them into an effective selection (committed regions plus the
// rectangle currently being dragged) and keeps the host's visual markers equal
// to it through a Grid, marking and unmarking only what changed.
//
// The package never assigns cell ids and never touches a UI toolkit; the host
// owns both.
package selection
