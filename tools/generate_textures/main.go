package main

import (
	"flag"
	"image"
	"image/color"
	"image/jpeg"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
)

// Writes procedural stand-ins for the lighting sample's textures so it runs
// without the photographic assets.
func main() {
	dir := flag.String("dir", filepath.Join("assets", "textures"), "output directory")
	size := flag.Int("size", 256, "texture edge length in pixels")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatal(err)
	}

	generate(*dir, "bamboo.jpg", *size, *force, func(x, y int, rng *rand.Rand) color.RGBA {
		n := float64(*size)
		// vertical stalks with a node ring every quarter
		stalk := math.Abs(math.Sin(float64(x) / n * math.Pi * 6))
		node := math.Exp(-math.Pow(math.Mod(float64(y), n/4)-n/8, 2) / 6)
		v := 150 + 60*stalk - 50*node + rng.Float64()*12 - 6
		return color.RGBA{clampByte(v * 0.82), clampByte(v * 0.9), clampByte(v * 0.45), 255}
	})

	generate(*dir, "fabric.jpg", *size, *force, func(x, y int, rng *rand.Rand) color.RGBA {
		// plain weave: alternating warp and weft threads
		warp := 0.5 + 0.5*math.Sin(float64(x)*0.8)
		weft := 0.5 + 0.5*math.Sin(float64(y)*0.8)
		over := (x/4+y/4)%2 == 0
		t := weft
		if over {
			t = warp
		}
		v := 110 + 70*t + rng.Float64()*10 - 5
		return color.RGBA{clampByte(v * 0.55), clampByte(v * 0.6), clampByte(v * 1.1), 255}
	})
}

func generate(dir, name string, size int, force bool, colorFn func(x, y int, rng *rand.Rand) color.RGBA) {
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil && !force {
		log.Printf("%s exists, skipping", path)
		return
	}

	rng := rand.New(rand.NewSource(int64(len(name) * 12345)))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, colorFn(x, y, rng))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d)", path, size, size)
}

func clampByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v)))
}
