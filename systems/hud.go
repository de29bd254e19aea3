package systems

import (
	"fmt"

	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const bannerStroke = 3

var (
	bannerImage *ebiten.Image
	bannerText  string
	hudDrawOp   = &ebiten.DrawImageOptions{}
)

// DrawHUD renders score and lives in screen space.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	state := GetGameState(ecs)
	if state == nil {
		return
	}
	drawLine(screen, fmt.Sprintf("%s: %d", cfg.HUD.ScoreLabel, state.Score), fonts.Score.Get(), cfg.HUD.ScoreX, cfg.HUD.ScoreY)
	drawLine(screen, fmt.Sprintf("%s: %d", cfg.HUD.LivesLabel, state.Lives), fonts.Lives.Get(), cfg.HUD.LivesX, cfg.HUD.LivesY)
}

// drawLine draws s with its top-left corner at (x, y).
func drawLine(screen *ebiten.Image, s string, face font.Face, x, y int) {
	text.Draw(screen, s, face, x, y+face.Metrics().Ascent.Ceil(), cfg.Colors.Text)
}

// DrawBanner renders the level-complete message centred near the top of the
// screen, scaled by its pop-in tween.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if !banner.Visible || banner.Scale <= 0 {
		return
	}

	img := renderBanner(banner.Text)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	hudDrawOp.GeoM.Scale(banner.Scale, banner.Scale)
	hudDrawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy())/4)
	screen.DrawImage(img, hudDrawOp)
}

// renderBanner draws the outlined banner text once and reuses it.
func renderBanner(s string) *ebiten.Image {
	if bannerImage != nil && bannerText == s {
		return bannerImage
	}

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, s)
	w := bounds.Dx() + bannerStroke*2
	h := bounds.Dy() + bannerStroke*2
	x := -bounds.Min.X + bannerStroke
	y := -bounds.Min.Y + bannerStroke

	img := ebiten.NewImage(w, h)
	for dx := -bannerStroke; dx <= bannerStroke; dx++ {
		for dy := -bannerStroke; dy <= bannerStroke; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(img, s, face, x+dx, y+dy, cfg.Colors.BannerStroke)
		}
	}
	text.Draw(img, s, face, x, y, cfg.Colors.Banner)

	bannerImage = img
	bannerText = s
	return img
}
