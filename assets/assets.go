package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ErrNoPlayerSpawn is returned for a level without a PlayerSpawn object.
var ErrNoPlayerSpawn = errors.New("no player spawn points defined in map")

// Rect is an axis-aligned area in world pixels, anchored top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Point is a world position.
type Point struct {
	X, Y float64
}

type EnemySpawn struct {
	X, Y       float64
	MinX, MaxX float64
	Kind       string
}

type Castle struct {
	X, Y  float64
	Rows  int
	Block float64
}

type Sign struct {
	X, Y float64
	Text string
}

type Level struct {
	Map            *tiled.Map
	Name           string
	Width          int
	Height         int
	Solids         []Rect
	Bricks         []Rect
	QuestionBlocks []Rect
	Pipes          []Rect
	Castles        []Castle
	Coins          []Point
	EnemySpawns    []EnemySpawn
	PlayerSpawns   []Point
	Flags          []Point
	Signs          []Sign

	background *ebiten.Image
}

// LoadLevel parses a Tiled map from the embedded levels directory.
func LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(levelFS))
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", levelPath, err)
	}

	level := &Level{
		Map:    levelMap,
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			level.Solids = appendRects(level.Solids, og.Objects)
		case "Bricks":
			level.Bricks = appendRects(level.Bricks, og.Objects)
		case "QuestionBlocks":
			level.QuestionBlocks = appendRects(level.QuestionBlocks, og.Objects)
		case "Pipes":
			level.Pipes = appendRects(level.Pipes, og.Objects)
		case "Castle":
			for _, o := range og.Objects {
				level.Castles = append(level.Castles, Castle{
					X:     o.X,
					Y:     o.Y,
					Rows:  o.Properties.GetInt("rows"),
					Block: o.Properties.GetFloat("block"),
				})
			}
		case "Coins":
			level.Coins = appendPoints(level.Coins, og.Objects)
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:    o.X,
					Y:    o.Y,
					MinX: o.Properties.GetFloat("minX"),
					MaxX: o.Properties.GetFloat("maxX"),
					Kind: o.Name,
				})
			}
		case "PlayerSpawn":
			level.PlayerSpawns = appendPoints(level.PlayerSpawns, og.Objects)
		case "Flag":
			level.Flags = appendPoints(level.Flags, og.Objects)
		case "Signs":
			for _, o := range og.Objects {
				level.Signs = append(level.Signs, Sign{
					X:    o.X,
					Y:    o.Y,
					Text: o.Properties.GetString("text"),
				})
			}
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("%s: %w", levelPath, ErrNoPlayerSpawn)
	}

	return level, nil
}

// MustLoadLevel is LoadLevel for embedded levels that are known to exist.
func MustLoadLevel(levelPath string) *Level {
	level, err := LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

func appendRects(dst []Rect, objects []*tiled.Object) []Rect {
	for _, o := range objects {
		dst = append(dst, Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height})
	}
	return dst
}

func appendPoints(dst []Point, objects []*tiled.Object) []Point {
	for _, o := range objects {
		dst = append(dst, Point{X: o.X, Y: o.Y})
	}
	return dst
}

// Background returns the tile layers marked with the "render" property,
// rendered once into a level-sized image.
func (l *Level) Background() *ebiten.Image {
	if l.background != nil {
		return l.background
	}

	l.background = ebiten.NewImage(l.Width, l.Height)

	renderer, err := render.NewRendererWithFileSystem(l.Map, levelFS)
	if err != nil {
		log.Printf("Failed to create level renderer: %v", err)
		return l.background
	}

	for i, layer := range l.Map.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		l.background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return l.background
}

// ImageLoader caches decoded images and frame sub-images.
type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage decodes an embedded image, returning a cached copy on repeat calls.
func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Frame returns the cached sub-image for frame index of a horizontal strip.
func (l *ImageLoader) Frame(sheet *ebiten.Image, path string, index, w, h int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", path, index)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	frame := sheet.SubImage(image.Rect(index*w, 0, (index+1)*w, h)).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame
}

var imageLoader = NewImageLoader()

// LoadImage loads an image from the shared loader.
func LoadImage(path string) (*ebiten.Image, error) {
	return imageLoader.LoadImage(path)
}

// Frame slices a frame from a sheet through the shared loader.
func Frame(sheet *ebiten.Image, path string, index, w, h int) *ebiten.Image {
	return imageLoader.Frame(sheet, path, index, w, h)
}

const (
	PlayerImage  = "images/player.png"
	EnemiesSheet = "images/enemies.png"
)
