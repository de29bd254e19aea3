package systems

import (
	"image/color"

	"github.com/automoto/flagpole/assets"
	"github.com/automoto/flagpole/components"
	cfg "github.com/automoto/flagpole/config"
	"github.com/automoto/flagpole/fonts"
	"github.com/automoto/flagpole/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	pipeLipHeight = 20
	strokeWidth   = 2
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whitePixel *ebiten.Image
)

// DrawLevel renders the sky, the tile layers and the decorative geometry.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Sky)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	ox, oy := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	if bg := level.Background(); bg != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(ox, oy)
		screen.DrawImage(bg, drawOp)
	} else if len(level.Solids) > 0 {
		ground := level.Solids[0]
		fillStroked(screen, ground.X+ox, ground.Y+oy, ground.Width, ground.Height, cfg.Colors.Ground, cfg.Colors.GroundStroke)
	}

	for _, b := range level.Bricks {
		fillStroked(screen, b.X+ox, b.Y+oy, b.Width, b.Height, cfg.Colors.Brick, cfg.Colors.BrickStroke)
	}
	for _, q := range level.QuestionBlocks {
		fillStroked(screen, q.X+ox, q.Y+oy, q.Width, q.Height, cfg.Colors.Question, cfg.Colors.QuestionEdge)
	}
	for _, p := range level.Pipes {
		vector.FillRect(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Width), float32(p.Height), cfg.Colors.Pipe, false)
		vector.FillRect(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Width), pipeLipHeight, cfg.Colors.PipeTop, false)
	}
	for _, c := range level.Castles {
		drawCastle(screen, c, ox, oy)
	}

	if flagEntry, ok := tags.Flag.First(ecs.World); ok {
		drawFlag(screen, components.Flag.Get(flagEntry), ox, oy)
	}

	face := fonts.Sign.Get()
	ascent := face.Metrics().Ascent.Ceil()
	for _, s := range level.Signs {
		text.Draw(screen, s.Text, face, int(s.X+ox), int(s.Y+oy)+ascent, cfg.Colors.Sign)
	}
}

// drawCastle stacks rows of blocks, each row one block shorter and shifted
// half a block right of the one below.
func drawCastle(screen *ebiten.Image, c assets.Castle, ox, oy float64) {
	half := c.Block / 2
	for r := 0; r < c.Rows; r++ {
		for col := 0; col < c.Rows-r; col++ {
			bx := c.X + float64(col)*c.Block + float64(r)*half
			by := c.Y - float64(r)*half
			fillStroked(screen, bx+ox, by+oy, c.Block, c.Block, cfg.Colors.Castle, cfg.Colors.CastleStroke)
		}
	}
}

// drawFlag draws the pole hanging down from (X, Y) with the pennant on its right.
func drawFlag(screen *ebiten.Image, flag *components.FlagData, ox, oy float64) {
	poleX := flag.X - cfg.Flag.PoleWidth/2
	vector.FillRect(screen, float32(poleX+ox), float32(flag.Y+oy), float32(cfg.Flag.PoleWidth), float32(cfg.Flag.PoleHeight), cfg.Colors.Pole, false)

	left := flag.X + cfg.Flag.PoleWidth/2
	top := flag.Y + 10
	fillTriangle(screen,
		left+ox, top+oy,
		left+64+ox, top+16+oy,
		left+ox, top+32+oy,
		cfg.Colors.Flag)
}

func fillTriangle(screen *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	vs := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x1), DstY: float32(y1), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel, nil)
}

func fillStroked(screen *ebiten.Image, x, y, w, h float64, fill, stroke color.RGBA) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), strokeWidth, stroke, false)
}

// DrawShapes renders primitive-bodied entities: coins, plain enemies and the
// fallback player.
func DrawShapes(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Shape.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Sprite) && components.Sprite.Get(e).Image != nil {
			return
		}
		if e.HasComponent(components.Animation) && components.Animation.Get(e).Sheet != nil {
			return
		}

		shape := components.Shape.Get(e)
		obj := components.Object.Get(e)
		clr := shape.Color
		if e.HasComponent(components.Flash) {
			if flash := components.Flash.Get(e); flash.Active {
				clr = flash.Color
			}
		}

		switch shape.Kind {
		case components.ShapeCircle:
			cx, cy := obj.Center()
			r := obj.W / 2
			if e.HasComponent(components.Coin) {
				coin := components.Coin.Get(e)
				r = coin.Radius
				cy += coin.OffsetY
			}
			vector.FillCircle(screen, float32(cx+ox), float32(cy+oy), float32(r), clr, true)
		default:
			vector.FillRect(screen, float32(obj.X+ox), float32(obj.Y+oy), float32(obj.W), float32(obj.H), clr, false)
		}
	})
}

// DrawSprites renders the player sprite and sheet-animated enemies.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	ox, oy := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Sheet == nil || anim.Current == nil {
			return
		}
		img := assets.Frame(anim.Sheet, anim.SheetPath, anim.Current.Frame(), anim.FrameWidth, anim.FrameHeight)
		cx, cy := components.Object.Get(e).Center()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight)/2)
		if components.Physics.Get(e).VelX < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(cx+ox, cy+oy)
		screen.DrawImage(img, drawOp)
	})

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		cx, cy := components.Object.Get(e).Center()
		bounds := sprite.Image.Bounds()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		if sprite.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Scale(sprite.Scale, sprite.Scale)
		drawOp.GeoM.Translate(cx+ox, cy+oy)

		if e.HasComponent(components.Flash) {
			if flash := components.Flash.Get(e); flash.Active {
				drawOp.ColorScale.ScaleWithColor(flash.Color)
			}
		}
		screen.DrawImage(sprite.Image, drawOp)
	})
}
