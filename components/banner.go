package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a screen-space message that pops in and stays.
type BannerData struct {
	Text    string
	Visible bool
	Scale   float64
	Tween   *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()
