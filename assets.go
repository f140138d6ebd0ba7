package main

import (
	_ "embed"
	"image"
	"image/color"
	"os"
	"path/filepath"

	eb "github.com/hajimehoshi/ebiten/v2"

	"lightdrift/flow"
)

var (
	//go:embed assets/trail_shader.go
	trailShaderCode []byte
	//go:embed assets/haze_shader.go
	hazeShaderCode []byte
	//go:embed assets/bloom_prefilter_shader.go
	bloomPrefilterShaderCode []byte
	//go:embed assets/bloom_blur_shader.go
	bloomBlurShaderCode []byte
)

var (
	TrailShader          *eb.Shader
	HazeShader           *eb.Shader
	BloomPrefilterShader *eb.Shader
	BloomBlurShader      *eb.Shader
)

// HazeNoiseImage1 and 2 are seamless fbm tiles the haze shader scrolls
// against each other. Baked at startup instead of shipped as files.
var (
	HazeNoiseImage1 *eb.Image
	HazeNoiseImage2 *eb.Image
)

const hazeNoiseSize = 256

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(RectWH(3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

func LoadAssets() {
	pt := NewProfTimer("LoadAssets")

	// compile shaders
	{
		TrailShader = compileShader("trail_shader.go", trailShaderCode)
		HazeShader = compileShader("haze_shader.go", hazeShaderCode)
		BloomPrefilterShader = compileShader("bloom_prefilter_shader.go", bloomPrefilterShaderCode)
		BloomBlurShader = compileShader("bloom_blur_shader.go", bloomBlurShaderCode)
	}

	// bake haze noise
	if HazeNoiseImage1 == nil {
		HazeNoiseImage1 = eb.NewImageFromImage(
			flow.NoiseImage(FlagSeed, hazeNoiseSize, 4))
		HazeNoiseImage2 = eb.NewImageFromImage(
			flow.NoiseImage(FlagSeed+1, hazeNoiseSize, 3))
	}

	pt.Report()
}

// compileShader builds a Kage shader from the embedded source, or from
// disk when running with -hot so F5 picks up edits.
func compileShader(name string, embedded []byte) *eb.Shader {
	code := embedded

	if FlagHotReload {
		if onDisk, err := os.ReadFile(filepath.Join("assets", name)); err == nil {
			code = onDisk
		} else {
			ErrorLogger.Printf("failed to read %s from disk : %v", name, err)
		}
	}

	shader, err := eb.NewShader(code)
	if err != nil {
		ErrorLogger.Fatalf("failed to compile %s : %v", name, err)
	}

	return shader
}
