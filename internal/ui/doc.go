// Package ui contains the Bubble Tea program that powers the pager.
// Model focuses on message orchestration; the tab manager in internal/ui/tabs
// owns documents, cursors and dialogs.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses go to the tab manager, which forwards them to the active
//     tab. A tab hands the key to its live dialog or, without one, moves the
//     selector or opens a dialog. Submitted dialogs become intents (open a
//     tab, close this tab, cycle) that the manager applies.
//   - Resize messages recompute the page region and hand it to every tab.
//     A region too small to hold a page is rejected and the previous layout
//     stays in place until a usable size arrives.
//
// Rendering: a banner row with the active tab's position and title, a dashed
// separator, the page or live dialog, a status line and an optional footer.
package ui
