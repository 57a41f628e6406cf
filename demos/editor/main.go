// editor opens an interactive scenario editor over an OSM basemap, seeded
// with a handful of unit markers and a defense line. Left-drag pans or
// moves selections, right-drag rectangle-selects, the wheel zooms to the
// cursor, N advances the day, and Space plays the timeline back.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Mouse314/frontmap"
)

const (
	screenW = 1280
	screenH = 720
)

type editor struct {
	scene *frontmap.Scene
}

func (e *editor) Update() error {
	e.scene.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		e.scene.AdvanceDay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if e.scene.Playback().Playing() {
			e.scene.Stop()
		} else {
			e.scene.Play()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		e.scene.AddObject(frontmap.NewUnitMarker("unit", frontmap.GeoPoint{}, 1, frontmap.ColorRed))
	}
	return nil
}

func (e *editor) Draw(screen *ebiten.Image) {
	e.scene.Draw(screen)
}

func (e *editor) Layout(w, h int) (int, int) {
	e.scene.Resize(float64(w), float64(h))
	return w, h
}

func main() {
	scene := frontmap.NewScene(screenW, screenH)
	scene.SetTileFetcher(frontmap.OSMTileFetcher("https://tile.openstreetmap.org/{z}/{x}/{y}.png"))

	units := []frontmap.Object{
		frontmap.NewUnitMarker("11", frontmap.GeoPoint{Lng: 36.5, Lat: 55.2}, 1, frontmap.ColorRed),
		frontmap.NewUnitMarker("12", frontmap.GeoPoint{Lng: 37.2, Lat: 55.5}, 2, frontmap.ColorRed),
		frontmap.NewUnitMarker("13", frontmap.GeoPoint{Lng: 38.0, Lat: 55.9}, 3, frontmap.ColorBlue),
		frontmap.NewBattleMarker("b1", frontmap.GeoPoint{Lng: 37.6, Lat: 55.7}, 2, frontmap.ColorOrange),
		frontmap.NewDefenseLine("line", frontmap.GeoPoint{Lng: 36, Lat: 54}, 1,
			[4]frontmap.GeoPoint{
				{Lng: 36.0, Lat: 54.0},
				{Lng: 36.5, Lat: 54.6},
				{Lng: 37.5, Lat: 54.4},
				{Lng: 38.2, Lat: 54.9},
			}, frontmap.ColorBlue),
	}
	scene.SetObjects(units)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("frontmap editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&editor{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
