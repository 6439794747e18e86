package components

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewFoldingSection creates a folded cell with a tappable header. Tapping
// the header unfolds the cell and tapping the header repeated at the top of
// the content folds it again. Content is padded so the unfolded view is at
// least twice the header height.
func NewFoldingSection(title string, content fyne.CanvasObject, logger *slog.Logger) *FoldingCell {
	cell := NewFoldingCell(nil, nil, logger)

	header := widget.NewButtonWithIcon(title, theme.MenuDropDownIcon(), cell.toggleFromUI)
	header.Alignment = widget.ButtonAlignLeading
	openHeader := widget.NewButtonWithIcon(title, theme.MenuExpandIcon(), cell.toggleFromUI)
	openHeader.Alignment = widget.ButtonAlignLeading

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, 2*header.MinSize().Height))
	body := container.NewStack(spacer, container.NewVBox(openHeader, content))

	cell.SetTitle(header)
	cell.SetContent(body)
	return cell
}

// NewUnfoldedFoldingSection creates a folding section that starts unfolded.
func NewUnfoldedFoldingSection(title string, content fyne.CanvasObject, logger *slog.Logger) *FoldingCell {
	cell := NewFoldingSection(title, content, logger)
	if err := cell.Unfold(true); err != nil {
		cell.logger.Warn("initial unfold failed", slog.Any("error", err))
	}
	return cell
}
