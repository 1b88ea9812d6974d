package config

import (
	"image/color"

	"github.com/Captaln/bp-control/internal/types"
)

// MipmapSizes is walked in order: mdpi first, xxxhdpi last.
var MipmapSizes = []types.MipmapTarget{
	{Folder: "mipmap-mdpi", Size: types.Size{Width: 48, Height: 48}},
	{Folder: "mipmap-hdpi", Size: types.Size{Width: 72, Height: 72}},
	{Folder: "mipmap-xhdpi", Size: types.Size{Width: 96, Height: 96}},
	{Folder: "mipmap-xxhdpi", Size: types.Size{Width: 144, Height: 144}},
	{Folder: "mipmap-xxxhdpi", Size: types.Size{Width: 192, Height: 192}},
}

// LauncherIcons all receive the same bytes. The round variant is not masked.
var LauncherIcons = []string{"ic_launcher.png", "ic_launcher_round.png"}

const (
	ForegroundIcon = "ic_launcher_foreground.png"
	BackgroundIcon = "ic_launcher_background.png"
	WebIcon        = "app-icon.png"
	WebIconMaxSize = 512
)

var BackgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
