package slides

// Semantic purpose of a template element.
// ENUM(none, title, content, item, itemNumber, itemTitle, itemFigure, pageFigure, partNumber, background)
type SlotRole int

// IsFigure reports whether role belongs to an image slot.
func (x SlotRole) IsFigure() bool {
	return x == SlotRoleItemFigure || x == SlotRolePageFigure || x == SlotRoleBackground
}

// IsText reports whether role belongs to a text bearing slot.
func (x SlotRole) IsText() bool {
	switch x {
	case SlotRoleTitle, SlotRoleContent, SlotRoleItem, SlotRoleItemNumber, SlotRoleItemTitle, SlotRolePartNumber:
		return true
	}
	return false
}

// Classify derives slot role of an element: text elements by their text type,
// shapes by the type of embedded text, images by their image type.
func Classify(el Element) SlotRole {
	switch e := el.(type) {
	case *TextElement:
		return textRole(e.TextType)
	case *ShapeElement:
		if e.Text != nil {
			return textRole(e.Text.Type)
		}
	case *ImageElement:
		switch e.ImageType {
		case "itemFigure":
			return SlotRoleItemFigure
		case "pageFigure":
			return SlotRolePageFigure
		case "background":
			return SlotRoleBackground
		}
	}
	return SlotRoleNone
}

func textRole(tag string) SlotRole {
	switch tag {
	case "title":
		return SlotRoleTitle
	case "content":
		return SlotRoleContent
	case "item":
		return SlotRoleItem
	case "itemNumber":
		return SlotRoleItemNumber
	case "itemTitle":
		return SlotRoleItemTitle
	case "partNumber":
		return SlotRolePartNumber
	}
	// subtitle, notes, header, footer are decorative for us
	return SlotRoleNone
}

// CountRoles returns how many elements of each role are present.
func CountRoles(elements []Element) map[SlotRole]int {
	counts := make(map[SlotRole]int)
	for _, el := range elements {
		counts[Classify(el)]++
	}
	return counts
}
