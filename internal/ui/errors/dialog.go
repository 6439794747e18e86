package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/shhac/foldingcell/internal/errors"
)

// ShowError displays a classified error dialog with recovery suggestions
// and technical details.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}

	uiErr := apperrors.ClassifyError(err)
	d := dialog.NewCustom(uiErr.Title, "Close", errorContent(uiErr), window)
	d.Resize(fyne.NewSize(480, 320))
	d.Show()
}

// errorContent builds the dialog body with word-wrapping labels to prevent
// horizontal expansion.
func errorContent(uiErr *apperrors.UIError) *fyne.Container {
	msgLabel := widget.NewLabel(uiErr.Message)
	msgLabel.Wrapping = fyne.TextWrapWord
	content := container.NewVBox(msgLabel)

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			lbl := widget.NewLabel("• " + suggestion)
			lbl.Wrapping = fyne.TextWrapWord
			content.Add(lbl)
		}
	}

	if uiErr.Details != "" {
		detailsLabel := widget.NewLabel(uiErr.Details)
		detailsLabel.Wrapping = fyne.TextWrapWord
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", detailsLabel),
		))
	}
	return content
}
