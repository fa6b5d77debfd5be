package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lunarpitch/voidfall/config"
	"github.com/lunarpitch/voidfall/regiondata"
	"github.com/lunarpitch/voidfall/scenes"
	"github.com/lunarpitch/voidfall/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(region *regiondata.RegionData) *Game {
	return &Game{scene: scenes.NewWorldScene(region)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	regionPath := flag.String("region", "", "path to a region .tmx file (default: built-in demo region)")
	flag.Parse()

	region := regiondata.DemoRegion()
	if *regionPath != "" {
		loaded, err := regiondata.LoadRegion(os.DirFS("."), *regionPath)
		if err != nil {
			log.Fatalf("load region: %v", err)
		}
		region = loaded
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("voidfall")

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame(region)); err != nil {
		log.Fatal(err)
	}
}
