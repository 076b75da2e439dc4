// Package ui implements the widgetlab screens on top of Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update, view (Elm-style)
//   - AppModel: root model; owns the active screen and the keybind system
//   - RequestState: lifecycle of one remote fetch (idle, loading, success, failed)
//   - FocusManager: rotates focus across the fields of a form
//
// Screens: comments, counter, hover, news, search. Each screen is mounted
// fresh when selected and unmounted when left.
package ui
