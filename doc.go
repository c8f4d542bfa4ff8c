// Package glade is a lightweight 2D scene-graph and entity-physics runtime
// for [Ebitengine].
//
// Glade sits between a host rendering surface and application logic: it owns
// entity lifecycle, per-frame physics integration (gravity, velocity, AABB
// ground detection), scene composition and switching with back-navigation
// history, clickable buttons, and UI overlay planes. Drawing primitives,
// text, and raw input devices stay behind small collaborator interfaces
// ([Renderer], [PointerSource], [Camera]) with ebiten-backed defaults.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	rt := glade.NewRuntime()
//	menu := glade.NewScene(rt, "menu")
//	rt.SetActiveScene("menu")
//	// ... spawn entities and buttons ...
//	glade.Run(rt, glade.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Runtime.Update] and [Runtime.Draw] directly.
//
// # Entities and scenes
//
// Every simulation object is an [Entity], created through [Runtime.Spawn]
// and owned by the runtime's registry. Entities declare membership in one
// or more scenes by id; each frame the scene manager activates exactly one
// scene and cascades the active flag to its members. Entity physics runs
// from the registry across all entities; rendering is restricted to the
// active scene's members.
//
//	ball := rt.Spawn(320, 40, 16, 16, "level1")
//	ball.Gravity = true
//	ball.SetBounce(0.6)
//
// [Button] layers a hover/press/click statechart on an entity; [Scene]
// transitions (fade, slide) animate via [gween].
//
// The runtime is single-threaded: drive Update and Draw from the host loop
// only.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package glade
