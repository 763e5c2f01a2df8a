package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/ase"
)

func main() {
	cell := flag.Int("cell", 48, "Swatch cell size in pixels")
	cols := flag.Int("cols", 8, "Number of columns")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Printf("Usage: %s [options] input.ase output.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := flag.Arg(1)

	p, err := ase.Open(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading palette: %v\n", err)
		os.Exit(1)
	}

	var colors []ase.Color
	for _, item := range p.Items {
		switch item := item.(type) {
		case *ase.Entry:
			colors = append(colors, item.Color)
		case *ase.Group:
			for _, e := range item.Entries {
				colors = append(colors, e.Color)
			}
		}
	}
	if len(colors) == 0 {
		fmt.Fprintln(os.Stderr, "Error: palette contains no swatches")
		os.Exit(1)
	}

	size := *cell
	numCols := *cols
	if len(colors) < numCols {
		numCols = len(colors)
	}
	numRows := (len(colors) + numCols - 1) / numCols

	img := image.NewNRGBA(image.Rect(0, 0, numCols*size, numRows*size))
	for i, c := range colors {
		x := (i % numCols) * size
		y := (i / numCols) * size
		r := image.Rect(x, y, x+size, y+size)
		xdraw.Draw(img, r, image.NewUniform(c), image.Point{}, xdraw.Src)
	}

	out, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	err = png.Encode(out, img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d swatches from %s to %s\n",
		len(colors), inputFile, outputFile)
}
