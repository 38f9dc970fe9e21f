// Package report turns a search.Result into robot instructions and a
// printable summary.
//
// Instructions are title-cased action labels ("Up", "Down", "Left", "Right").
// A bidirectional result stores the goal-side half as moves toward the goal,
// seen from the goal; those labels are mirrored (up↔down, left↔right) and
// replayed from the meeting point outward so the whole list reads as one
// start-to-goal route.
package report
