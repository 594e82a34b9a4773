// Package menu implements the interaction engine behind nested dropdown menus.
// It is independent of any rendering surface: hosts feed it keys and pointer
// positions, give it the rectangles they laid out, and read back open state,
// the active item and focus.
//
// Structure:
//   - A Tree is created for every root Menu. Each mounted node (the root and
//     every Sub) registers its id and parent id there, and subscribes to the
//     two broadcasts that keep the tree consistent: EventMenuOpened closes
//     siblings of the node that opened, EventItemActivated collapses the
//     whole tree.
//   - A Menu owns its open flag (either self-owned or delegated to a
//     controlling owner), the active item index and the List of entries
//     registered by its Popover.
//   - Popover content is mounted only while the node is open. Closing a node
//     unmounts its popover, which unregisters its items and unmounts every
//     Sub declared inside it, so descendants close with their ancestor.
//
// Time:
//   - Hover intent and typeahead use a Scheduler. Clock is a deterministic
//     implementation that fires callbacks only when the host advances it, so
//     every transition runs on the host's event loop.
//
// Components handed to callers (Trigger, Popover, Item, SubTrigger) are thin
// handles onto their owning Menu. Using a handle outside a mounted menu is a
// programming error and panics with a *ConfigError.
package menu
