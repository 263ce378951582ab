// This file is part of zelda3mp.
//
// zelda3mp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zelda3mp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zelda3mp.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// returns the minimum Vec2{} required to fit any of the string values listed
// in the arguments.
func imguiGetFrameDim(s string, t ...string) imgui.Vec2 {
	w := imgui.CalcTextSize(s, false, 0)
	for i := range t {
		y := imgui.CalcTextSize(t[i], false, 0)
		if y.X > w.X {
			w = y
		}
	}

	w.Y = imgui.FontSize() + (imgui.CurrentStyle().FramePadding().Y * 2.5)

	// comboboxes in particuar look better with a small amount of trailing space
	w.X += imgui.CurrentStyle().FramePadding().X * 2.5

	return w
}

// returns the pixel width of a text string length characters wide. assumes all
// characters are of the same width. Uses the 'X' character for measurement.
func imguiTextWidth(length int) float32 {
	if length < 1 {
		return 0
	}
	return imguiGetFrameDim(strings.Repeat("X", length)).X
}

// imguiLabel aligns text with widget borders and positions cursor so next
// widget will follow the label.
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// pads imgui.Separator with additional spacing.
func imguiSeparator() {
	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()
}

// draw text in the specified color.
func imguiColorLabel(text string, col imgui.Vec4) {
	imgui.PushStyleColor(imgui.StyleColorText, col)
	imgui.Text(text)
	imgui.PopStyleColor()
}

// show tooltip for the most recent widget if it is being hovered over.
func imguiTooltip(f func()) {
	if imgui.IsItemHovered() {
		imgui.BeginTooltip()
		f()
		imgui.EndTooltip()
	}
}

// draw grid of bytes with before and after functions in addition to commit
// function. a nil commit function means the grid is read-only.
func drawByteGrid(id string, data []uint8, origin uint32,
	before func(idx int), after func(idx int), commit func(idx int, value uint8)) {

	const numColumns = 16

	if !imgui.BeginTableV(id, numColumns+1, imgui.TableFlagsSizingFixedFit, imgui.Vec2{}, 0.0) {
		return
	}
	defer imgui.EndTable()

	// set up columns
	width := imguiTextWidth(4)
	imgui.TableSetupColumnV(fmt.Sprintf("%s_column0", id), imgui.TableColumnFlagsNone, width, 0)
	width = imguiTextWidth(2)
	for i := 1; i < numColumns+1; i++ {
		imgui.TableSetupColumnV(fmt.Sprintf("%s_column%d", id, i), imgui.TableColumnFlagsNone, width, 0)
	}

	// header row
	imgui.TableNextRow()

	// skip first column of the header row
	imgui.TableNextColumn()

	// draw headers for each column
	for i := range numColumns {
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("-%x", i))
	}

	// the number of leading columns is the number of empty columns on the
	// first row
	leadingColumns := int(origin % numColumns)

	// we add numColumns to make sure we include the last line which may be
	// an incomplete row and would otherwise be missed out of the clipper
	clipperLen := (len(data) + numColumns + leadingColumns - 1) / numColumns

	var clipper imgui.ListClipper
	clipper.Begin(clipperLen)
	for clipper.Step() {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			idx := (i * numColumns) - leadingColumns
			addr := origin + uint32(idx)

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.AlignTextToFramePadding()
			imgui.Text(fmt.Sprintf("%03x-", (origin+uint32(i*numColumns))/numColumns))

			for j := 0; j < numColumns; j++ {
				imgui.TableNextColumn()

				// blank columns on the first row and after the end of data
				if idx < 0 || idx >= len(data) {
					idx++
					addr++
					continue // for loop
				}

				if before != nil {
					before(idx)
				}

				s := fmt.Sprintf("%02x", data[idx])
				if commit == nil {
					imgui.AlignTextToFramePadding()
					imgui.Text(s)
				} else {
					imgui.PushItemWidth(imguiTextWidth(2))
					if imguiHexInput(fmt.Sprintf("##%s%08x", id, addr), 2, &s) {
						if v, err := strconv.ParseUint(s, 16, 8); err == nil {
							commit(idx, uint8(v))
						}
					}
					imgui.PopItemWidth()
				}

				if after != nil {
					after(idx)
				}

				idx++
				addr++
			}
		}
	}
}
