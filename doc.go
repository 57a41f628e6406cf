// Package frontmap is an interactive geospatial scenario editor core built
// on [Ebitengine].
//
// Frontmap provides the scene engine behind a map annotation editor: Web
// Mercator projection math, an asynchronous slippy-map tile cache, a
// pointer-driven interaction state machine (select, drag, pan, rectangle
// select, control-point edit), and a per-day timeline that records and
// interpolates the evolving state of every annotation.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := frontmap.NewScene(1280, 720)
//	scene.SetTileFetcher(frontmap.OSMTileFetcher("https://tile.openstreetmap.org/{z}/{x}/{y}.png"))
//	frontmap.Run(scene, frontmap.RunConfig{
//		Title: "Scenario Editor", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Objects and days
//
// Annotations are [Object] values: [UnitMarker], [BattleMarker],
// [DefenseLine], and [BattleLine]. Line-shaped kinds expose their control
// polygon through [AsLine]. Each object lives over a closed day interval
// and carries a [Timeline] of per-day keyframes; [Scene.AdvanceDay] freezes
// the current state and opens a new authoring day, and [LerpFrame]
// produces the blended transient frame used during playback.
//
// # Coordinate spaces
//
// Four spaces exist and never mix implicitly: geodetic ([GeoPoint]), tile
// ([TilePoint]), world (the scene's local Cartesian plane), and screen
// ([ScreenPoint]). All conversions go through [GeoToTile], [TileToGeo], and
// the [Viewport] methods.
//
// [Ebitengine]: https://ebitengine.org
package frontmap
