// Command export writes all test cases as JSON scene files, for use with
// previewraster and external reference renderers.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/preview/scene"
	"seehuhn.de/go/preview/testcases"
)

const outDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(name, tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(name string, tc testcases.TestCase) error {
	data, err := scene.FromGroups(name, tc.Width, tc.Height, tc.Groups).Encode(scene.JSON)
	if err != nil {
		return err
	}
	if err := scene.Validate(data); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name+".json"), append(data, '\n'), 0644)
}
