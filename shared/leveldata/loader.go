package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
//
// Rectangle objects in the Platforms, Floating and Hazards groups become bodies;
// every non-empty tile of the solid layer becomes a platform. The leftmost
// PlayerSpawn object sets the spawn point.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	pixelW := float64(levelMap.Width * levelMap.TileWidth)
	pixelH := float64(levelMap.Height * levelMap.TileHeight)
	if pixelH <= 0 {
		return nil, fmt.Errorf("load TMX %s: map has no height", tmxPath)
	}

	toWorld := func(x, y, w, h float64) gamemath.Rect {
		return gamemath.NewRect(x/pixelH, y/pixelH, w/pixelH, h/pixelH)
	}

	layout := &Layout{
		Width:  pixelW / pixelH,
		Height: 1,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerSolid {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				layout.Platforms = append(layout.Platforms, toWorld(float64(x)*tileW, float64(y)*tileH, tileW, tileH))
			}
		}
		break
	}

	var spawns []SpawnPoint
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			box := toWorld(o.X, o.Y, o.Width, o.Height)
			switch og.Name {
			case GroupPlatforms:
				layout.Platforms = append(layout.Platforms, box)
			case GroupFloating:
				layout.Floating = append(layout.Floating, box)
			case GroupHazards:
				layout.Hazards = append(layout.Hazards, box)
			case GroupPlayerSpawn:
				spawns = append(spawns, SpawnPoint{X: box.X, Y: box.Y})
			}
		}
	}

	// Leftmost spawn wins
	sort.Slice(spawns, func(i, j int) bool {
		return spawns[i].X < spawns[j].X
	})
	if len(spawns) > 0 {
		layout.Spawn = spawns[0]
		layout.HasSpawn = true
	}

	return layout, nil
}

// LoadAllLayouts discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLayouts(fsys fs.FS, levelsDir string) (map[string]*Layout, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		layout, err := LoadLayout(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		stem := strings.TrimSuffix(path.Base(match), ".tmx")
		layouts[stem] = layout
		names = append(names, stem)
	}

	sort.Strings(names)
	return layouts, names, nil
}
