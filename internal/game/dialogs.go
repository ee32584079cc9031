package game

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ucm-visualizer/internal/hud"
	"github.com/iburimskiy/ucm-visualizer/internal/kinematics"
	"github.com/iburimskiy/ucm-visualizer/internal/logging"
	"github.com/iburimskiy/ucm-visualizer/internal/scene"
)

// editFieldDialog asks for a new value of field f. Cancelling is not an error.
func (g *Game) editFieldDialog(f kinematics.Focus) error {
	name, unit := hud.FieldLabel(f)
	value, err := zenity.Entry(
		fmt.Sprintf("%s (%s):", name, unit),
		zenity.Title("Edit "+name),
		zenity.EntryText(g.session.Inputs.Field(f)),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("edit %s: %w", name, err)
	}

	g.session.SetField(f, value)
	g.log.Debug("field edited", logging.String("field", name), logging.String("value", value))
	return nil
}

// saveSnapshotDialog writes the current canvas, trail included, to a PNG.
func (g *Game) saveSnapshotDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.ConfirmOverwrite(),
		zenity.Filename("ucm.png"),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	img := image.NewRGBA(g.canvas.Bounds())
	g.canvas.ReadPixels(img.Pix)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := scene.RasterFrom(img).WritePNG(f); err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	g.log.Info("snapshot saved", logging.String("path", filename))
	return nil
}
