// Package ui contains the Bubble Tea program that hosts a cascading menu in
// the terminal. The menu engine in internal/menu owns every open, close and
// focus decision; this package feeds it input and draws what it reports.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - Key presses are translated through a bubbles/key map into menu keys
//     and delivered to the root menu, which routes them to the focused node.
//     Mouse motion, presses and releases become pointer events.
//   - After every message finishUpdate lays the open popovers out with
//     internal/layout, turns activated items into commands on the command
//     bus, and arms a tick for the earliest pending menu timer.
//
// Time:
//   - Hover intent and typeahead timers live on a menu.Clock. The model
//     schedules tea.Tick commands for the clock's next deadline and advances
//     the clock when the tick arrives, so timer callbacks only ever run
//     inside Update. Tests use a manual clock and Harness.Advance instead.
//
// Rendering:
//   - View composes the trigger and each open popover, in stacking order, on
//     a cell canvas. Popover rows are formatted into label and sub menu
//     marker columns by internal/format/table.
//
// Backend interactions:
//   - When the menu comes from a file, a backend.Watcher reports changes. A
//     successful reload unmounts the current root and mounts the new
//     definition; a failed reload keeps the menu and shows the error.
package ui
