package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ekinp/vocprep"
	"github.com/ekinp/vocprep/internal/config"
	"github.com/ekinp/vocprep/internal/utils"
	"github.com/ekinp/vocprep/pkg/batch"
	"github.com/ekinp/vocprep/pkg/geometry"
	"github.com/ekinp/vocprep/pkg/imgio"
	"github.com/ekinp/vocprep/pkg/overlay"
	"github.com/ekinp/vocprep/pkg/report"
	"github.com/ekinp/vocprep/pkg/voc"
)

func main() {
	var dataRoot, split, classList, outDir, cfgPath, writeCfg, imgDir string
	var maxSide, quality, stride int
	var writeBatch, writeStats, writeOverlay, augmentBatch bool

	flag.StringVar(&dataRoot, "data", voc.DefaultRoot, "VOC 2007 devkit root directory")
	flag.StringVar(&split, "split", "trainval", "image set split: train|val|trainval|test")
	flag.StringVar(&classList, "classes", "", "comma-separated class names (default: all 20)")
	flag.StringVar(&outDir, "out", "out", "output directory")
	flag.StringVar(&cfgPath, "config", "", "JSON config file (overrides other dataset flags)")
	flag.StringVar(&writeCfg, "write-config", "", "write a default config file to the given path and exit")
	flag.StringVar(&imgDir, "imgdir", "", "directory of custom images to resize onto the canvas")

	flag.IntVar(&maxSide, "max-size", 500, "max long side in pixels, larger images are downscaled")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	flag.IntVar(&stride, "stride", 0, "feature-map stride used in the weights path convention")

	flag.BoolVar(&writeBatch, "batch", false, "write the padded batch images")
	flag.BoolVar(&writeStats, "stats", false, "write box-size and class-count plots")
	flag.BoolVar(&writeOverlay, "overlay", false, "write ground-truth overlay images")
	flag.BoolVar(&augmentBatch, "augment", false, "randomly flip batch images horizontally")

	flag.Parse()

	if writeCfg != "" {
		if err := config.Default().SaveToFile(writeCfg); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", writeCfg)
		return
	}

	classes := voc.Classes
	if classList != "" {
		classes = strings.Split(classList, ",")
		for i := range classes {
			classes[i] = strings.TrimSpace(classes[i])
		}
	}

	maxHeight, maxWidth := voc.MaxHeight, voc.MaxWidth
	if cfgPath != "" {
		cfg, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid config: %v", err)
		}
		dataRoot = cfg.Dataset.Root
		split = cfg.Dataset.Split
		classes = cfg.Dataset.Classes
		maxSide = cfg.Geometry.MaxSide
		maxHeight = cfg.Geometry.MaxHeight
		maxWidth = cfg.Geometry.MaxWidth
		outDir = cfg.Output.Dir
		quality = cfg.Output.Quality
	}

	if !utils.DirExists(dataRoot) {
		log.Fatalf("dataset root %s does not exist", dataRoot)
	}
	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}

	pipeline := vocprep.NewWithOptions(dataRoot, maxSide, batch.Options{
		MaxHeight: maxHeight,
		MaxWidth:  maxWidth,
		PadLabel:  batch.PadLabel,
	})
	if augmentBatch {
		pipeline.EnableAugmentation(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	anns, err := pipeline.LoadSplit(split, classes)
	if err != nil {
		log.Fatalf("failed to load %s split: %v", split, err)
	}

	summary := report.Summarize(anns)
	log.Printf("loaded %d images, %d ground-truth boxes (%d classes)",
		summary.Images, summary.Boxes, len(summary.PerClass))
	log.Printf("box size: mean %.0fx%.0f px, median %.0fx%.0f px",
		summary.MeanWidth, summary.MeanHeight, summary.MedianWidth, summary.MedianHeight)

	if writeStats {
		sizePath := filepath.Join(outDir, "box_sizes.png")
		if err := report.WriteBoxSizePlot(anns, sizePath); err != nil {
			log.Printf("box size plot failed: %v", err)
		} else {
			log.Printf("wrote %s", sizePath)
		}
		countPath := filepath.Join(outDir, "class_counts.png")
		if err := report.WriteClassCountPlot(anns, countPath); err != nil {
			log.Printf("class count plot failed: %v", err)
		} else {
			log.Printf("wrote %s", countPath)
		}
	}

	if writeOverlay {
		for _, ann := range anns {
			img, err := imgio.Load(ann.ImagePath)
			if err != nil {
				log.Printf("load %s failed: %v", ann.ImagePath, err)
				continue
			}
			boxes := make([]geometry.PixelBox, len(ann.GTBoxes))
			for i, gt := range ann.GTBoxes {
				boxes[i] = geometry.PixelBox{gt.XMin, gt.YMin, gt.XMax, gt.YMax}
			}
			out := utils.GenerateOutputFilename(ann.Filename, outDir, "_gt", "png")
			if err := imgio.Save(overlay.DrawBoxes(img, boxes), out, quality, false); err != nil {
				log.Printf("save %s failed: %v", out, err)
				continue
			}
			log.Printf("wrote %s", out)
		}
	}

	if writeBatch {
		items, err := pipeline.BuildBatch(anns)
		if err != nil {
			log.Fatalf("batch assembly failed: %v", err)
		}
		for i, item := range items {
			out := filepath.Join(outDir, fmt.Sprintf("batch_%04d.png", i))
			if err := imgio.Save(item.Image, out, quality, false); err != nil {
				log.Printf("save %s failed: %v", out, err)
				continue
			}
			log.Printf("wrote %s (padding %+v)", out, item.Padding)
		}
	}

	if imgDir != "" {
		imgs, paths, err := pipeline.LoadCustomImages(imgDir, maxWidth, maxHeight)
		if err != nil {
			log.Fatalf("failed to load custom images: %v", err)
		}
		for i, img := range imgs {
			out := utils.GenerateOutputFilename(paths[i], outDir, "_resized", "png")
			if err := imgio.Save(img, out, quality, false); err != nil {
				log.Printf("save %s failed: %v", out, err)
				continue
			}
			log.Printf("wrote %s", out)
		}
	}

	weightsPath, err := vocprep.ModelWeightsPath(stride)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stdout, "weights path: %s\n", weightsPath)
}
