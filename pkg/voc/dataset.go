// Package voc indexes the Pascal VOC 2007 dataset and parses its
// annotation files.
//
// The expected on-disk layout is the standard VOCdevkit tree:
//
//	<root>/JPEGImages/<name>.jpg
//	<root>/Annotations/<name>.xml
//	<root>/ImageSets/Main/<class>_<split>.txt
package voc

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnknownSplit reports a split name outside train/val/trainval/test.
	ErrUnknownSplit = errors.New("unknown split")
	// ErrUnknownClass reports a class name outside the 20-class vocabulary.
	ErrUnknownClass = errors.New("unknown class")
)

// DefaultRoot is the conventional location of the VOC 2007 devkit.
var DefaultRoot = filepath.Join("data", "VOCdevkit", "VOC2007")

// ImagesDir returns <root>/JPEGImages.
func ImagesDir(root string) string { return filepath.Join(root, "JPEGImages") }

// AnnotationsDir returns <root>/Annotations.
func AnnotationsDir(root string) string { return filepath.Join(root, "Annotations") }

// ImageSetsDir returns <root>/ImageSets/Main.
func ImageSetsDir(root string) string { return filepath.Join(root, "ImageSets", "Main") }

// LoadDataset indexes one split of the dataset for the given classes.
//
// For every requested class the per-class list file
// <root>/ImageSets/Main/<class>_<split>.txt is read; lines carry
// "<name> <flag>" and names with a non-negative flag are kept. The union
// over all requested classes is taken in first-seen order, without
// duplicates. Each kept name's annotation is then parsed with its objects
// filtered to the requested class set.
func LoadDataset(root, split string, classes []string) ([]*Annotation, error) {
	if !ValidSplit(split) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplit, split)
	}
	for _, class := range classes {
		if _, ok := ClassID(class); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
		}
	}

	names, err := listImageNames(root, split, classes)
	if err != nil {
		return nil, err
	}

	dataset := make([]*Annotation, 0, len(names))
	for _, name := range names {
		ann, err := ParseAnnotation(filepath.Join(AnnotationsDir(root), name+".xml"), classes)
		if err != nil {
			return nil, err
		}
		ann.ImagePath = filepath.Join(ImagesDir(root), ann.Filename)
		dataset = append(dataset, ann)
	}
	return dataset, nil
}

// listImageNames unions the per-class list files of a split.
func listImageNames(root, split string, classes []string) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	for _, class := range classes {
		path := filepath.Join(ImageSetsDir(root), class+"_"+split+".txt")
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open image set: %w", err)
		}
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}
			flag, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("malformed image set line %q in %s: %w", scanner.Text(), path, err)
			}
			if flag < 0 {
				continue
			}
			name := fields[0]
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
		if err := scanner.Err(); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read image set %s: %w", path, err)
		}
		f.Close()
	}
	return names, nil
}
