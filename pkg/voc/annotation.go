package voc

import (
	"encoding/xml"
	"fmt"
	"os"
)

// GTBox is one labeled object region in absolute pixel coordinates.
type GTBox struct {
	ClassID   int    `json:"id"`
	ClassName string `json:"name"`
	XMin      int    `json:"xmin"`
	YMin      int    `json:"ymin"`
	XMax      int    `json:"xmax"`
	YMax      int    `json:"ymax"`
}

// Annotation is the parsed content of one VOC annotation XML file.
// It is immutable after construction.
type Annotation struct {
	Filename string  `json:"filename"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Depth    int     `json:"depth"`
	GTBoxes  []GTBox `json:"gt_boxes"`

	// ImagePath is the resolved path of the JPEG this annotation
	// describes. Set by the dataset indexer.
	ImagePath string `json:"image_path"`
}

// xmlAnnotation mirrors the VOC annotation schema.
type xmlAnnotation struct {
	XMLName  xml.Name `xml:"annotation"`
	Filename string   `xml:"filename"`
	Size     struct {
		Width  int `xml:"width"`
		Height int `xml:"height"`
		Depth  int `xml:"depth"`
	} `xml:"size"`
	Objects []struct {
		Name   string `xml:"name"`
		BndBox struct {
			XMin int `xml:"xmin"`
			YMin int `xml:"ymin"`
			XMax int `xml:"xmax"`
			YMax int `xml:"ymax"`
		} `xml:"bndbox"`
	} `xml:"object"`
}

// ParseAnnotation reads one annotation XML file and keeps only the objects
// whose class name is in keep. A nil keep set keeps every object.
func ParseAnnotation(path string, keep []string) (*Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation: %w", err)
	}
	defer f.Close()

	var raw xmlAnnotation
	if err := xml.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse annotation %s: %w", path, err)
	}

	var keepSet map[string]struct{}
	if keep != nil {
		keepSet = make(map[string]struct{}, len(keep))
		for _, name := range keep {
			keepSet[name] = struct{}{}
		}
	}

	ann := &Annotation{
		Filename: raw.Filename,
		Width:    raw.Size.Width,
		Height:   raw.Size.Height,
		Depth:    raw.Size.Depth,
	}
	for _, obj := range raw.Objects {
		if keepSet != nil {
			if _, ok := keepSet[obj.Name]; !ok {
				continue
			}
		}
		id, ok := ClassID(obj.Name)
		if !ok {
			return nil, fmt.Errorf("annotation %s: %w: %q", path, ErrUnknownClass, obj.Name)
		}
		ann.GTBoxes = append(ann.GTBoxes, GTBox{
			ClassID:   id,
			ClassName: obj.Name,
			XMin:      obj.BndBox.XMin,
			YMin:      obj.BndBox.YMin,
			XMax:      obj.BndBox.XMax,
			YMax:      obj.BndBox.YMax,
		})
	}
	return ann, nil
}

// GroundTruthBoxes collects the box lists of a dataset, one slice per image.
func GroundTruthBoxes(anns []*Annotation) [][]GTBox {
	boxes := make([][]GTBox, len(anns))
	for i, ann := range anns {
		boxes[i] = ann.GTBoxes
	}
	return boxes
}
