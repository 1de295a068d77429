// Package ui contains the Bubble Tea model for the application shell: a top
// bar, a collapsible navigation drawer, the routed content region and an
// optional bottom bar.
//
// Message flow:
//   - Model.Update dispatches through a typed handler registry. Key presses
//     are offered to the shell first (drawer, dark-mode toggle, bottom bar
//     shortcuts) and reach the content only when the shell does not consume
//     them. Every other message is forwarded to the content.
//   - Window size messages reclassify the viewport (mobile below the
//     configured breakpoint, desktop otherwise) and the content receives a
//     size message describing only the region it owns.
//   - NavigateMsg asks the Router for the page at a path. The page is
//     mounted inside a Boundary so a panic in the page is contained and
//     reported while the chrome keeps working.
//
// State ownership:
//   - Drawer navigation state lives in internal/ui/state.List.
//   - Dark mode lives in the state.AppStore handed in through Config; the
//     shell reads it on every render and only writes it through the top bar
//     toggle.
package ui
