package voc

import "sort"

// Class groups as defined by the VOC 2007 challenge.
var (
	Person   = []string{"person"}
	Animals  = []string{"bird", "cat", "cow", "dog", "horse", "sheep"}
	Vehicles = []string{"aeroplane", "bicycle", "boat", "bus", "car", "motorbike", "train"}
	Indoors  = []string{"bottle", "chair", "diningtable", "pottedplant", "sofa", "tvmonitor"}
)

// Splits lists the image-set splits shipped with VOC 2007.
var Splits = []string{"train", "val", "trainval", "test"}

// Default canvas limits for VOC 2007 images. No image in the dataset
// exceeds 500 pixels on either side.
const (
	MaxHeight = 500
	MaxWidth  = 500
)

// Classes is the canonical 20-class vocabulary, sorted alphabetically.
// A class ID is an index into this slice.
var Classes = buildClasses()

func buildClasses() []string {
	all := make([]string, 0, 20)
	all = append(all, Person...)
	all = append(all, Animals...)
	all = append(all, Vehicles...)
	all = append(all, Indoors...)
	sort.Strings(all)
	return all
}

// ClassID returns the ID of a class name, or false if the name is not
// part of the VOC vocabulary.
func ClassID(name string) (int, bool) {
	i := sort.SearchStrings(Classes, name)
	if i < len(Classes) && Classes[i] == name {
		return i, true
	}
	return 0, false
}

// ValidSplit reports whether the split name is one of the VOC image sets.
func ValidSplit(split string) bool {
	for _, s := range Splits {
		if s == split {
			return true
		}
	}
	return false
}
