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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/zelda3mp/zelda3mp/version"
)

type modal int

const (
	modalNone modal = iota
	modalAbout
	modalError
)

func (img *SdlImgui) modalDraw() {
	switch img.modal {
	case modalAbout:
		img.modalDrawAbout()
	case modalError:
		img.modalDrawError()
	}
}

func (img *SdlImgui) modalActive() bool {
	return img.modal != modalNone
}

// flags shared by all modal popups
const modalFlags = imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoSavedSettings

// draw a full width button at the foot of a modal popup. returns true if the
// button has been pressed, in which case the popup has been closed.
func (img *SdlImgui) modalCloseButton(label string) bool {
	imguiSeparator()
	sz := imgui.ContentRegionAvail()
	sz.Y = imgui.FrameHeight()
	if imgui.ButtonV(label, sz) {
		imgui.CloseCurrentPopup()
		img.modal = modalNone
		img.modalErr = nil
		return true
	}
	return false
}

func (img *SdlImgui) modalDrawAbout() {
	const popupTitle = "About"

	imgui.OpenPopup(popupTitle)
	if imgui.BeginPopupModalV(popupTitle, nil, modalFlags) {
		v, rev, release := version.Version()
		imgui.Text(version.ApplicationName)
		imgui.Spacing()
		imgui.Text(v)

		// the revision is only interesting for builds that aren't releases
		if !release && rev != "" {
			imgui.Text(rev)
		}
		imgui.Spacing()
		imgui.Text("Two players, one game RAM. The player state region")
		imgui.Text("is swapped in and out of game RAM on every switch.")

		img.modalCloseButton("Close")
		imgui.EndPopup()
	}
}

func (img *SdlImgui) modalDrawError() {
	const popupTitle = "Error"

	imgui.OpenPopup(popupTitle)
	if imgui.BeginPopupModalV(popupTitle, nil, modalFlags) {
		imgui.PushStyleColor(imgui.StyleColorText, img.cols.Error)
		if img.modalErr != nil {
			imgui.Text(img.modalErr.Error())
		}
		imgui.PopStyleColor()

		img.modalCloseButton("Continue")
		imgui.EndPopup()
	}
}
